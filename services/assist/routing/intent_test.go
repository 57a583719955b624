// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routing

import (
	"context"
	"testing"

	"github.com/AleutianAI/PartDesk/services/assist/config"
)

// makeTestClassifier builds a classifier from the embedded rules.
func makeTestClassifier(t *testing.T) *IntentClassifier {
	t.Helper()
	ctx := context.Background()
	scopeCfg, err := config.GetScopeConfig(ctx)
	if err != nil {
		t.Fatalf("loading scope config: %v", err)
	}
	intentCfg, err := config.GetIntentConfig(ctx)
	if err != nil {
		t.Fatalf("loading intent config: %v", err)
	}
	return NewIntentClassifier(intentCfg, NewScopeFilter(scopeCfg, nil), nil)
}

func TestClassify_ScopeGate(t *testing.T) {
	ic := makeTestClassifier(t)

	res := ic.Classify(context.Background(), "How do I fix my TV?")
	if res.Intent != IntentOutOfScope {
		t.Errorf("expected out_of_scope, got %s", res.Intent)
	}
	if res.Source != SourceScope {
		t.Errorf("expected scope source, got %s", res.Source)
	}
}

func TestClassify_Exceptions(t *testing.T) {
	ic := makeTestClassifier(t)
	ctx := context.Background()

	cases := map[string]Intent{
		"Is this part compatible and how do I install it?":    IntentInstall,
		"I need to find and install a water filter":           IntentLookup,
		"My dishwasher isn't working, I need to buy a new pump": IntentDiagnose,
	}
	for query, want := range cases {
		res := ic.Classify(ctx, query)
		if res.Intent != want {
			t.Errorf("%q: expected %s, got %s", query, want, res.Intent)
		}
		if res.Source != SourceException {
			t.Errorf("%q: expected exception source, got %s", query, res.Source)
		}
	}
}

func TestClassify_InstallPhrase(t *testing.T) {
	ic := makeTestClassifier(t)

	res := ic.Classify(context.Background(), "How do I install part number W10295370A?")
	if res.Intent != IntentInstall {
		t.Errorf("expected install, got %s", res.Intent)
	}
	if res.Source != SourcePhrase {
		t.Errorf("expected phrase source, got %s", res.Source)
	}
}

func TestClassify_AddToCartIsOrder(t *testing.T) {
	ic := makeTestClassifier(t)

	// "add to" is an order phrase; cart manipulation deliberately lands
	// on the order intent.
	res := ic.Classify(context.Background(), "Add part W10295370A to my cart")
	if res.Intent != IntentOrder {
		t.Errorf("expected order, got %s", res.Intent)
	}
}

func TestClassify_NotWorkingPhrase(t *testing.T) {
	ic := makeTestClassifier(t)

	res := ic.Classify(context.Background(), "my fridge compressor is not working")
	if res.Intent != IntentDiagnose {
		t.Errorf("expected diagnose, got %s", res.Intent)
	}
	if res.Source != SourcePhrase {
		t.Errorf("expected phrase source, got %s", res.Source)
	}
}

func TestClassify_NotWorkingPhraseSkippedOnBuy(t *testing.T) {
	ic := makeTestClassifier(t)

	// A buying mention makes the "not working" phrase defer; the
	// purchase override then picks the query up as an order.
	res := ic.Classify(context.Background(), "my dishwasher is not working so I will buy new racks")
	if res.Intent != IntentOrder {
		t.Errorf("expected order, got %s", res.Intent)
	}
	if res.Source != SourceOverride {
		t.Errorf("expected override source, got %s", res.Source)
	}
}

func TestClassify_StatusOverride(t *testing.T) {
	ic := makeTestClassifier(t)

	res := ic.Classify(context.Background(), "Where is my order for the dishwasher rack?")
	if res.Intent != IntentStatus {
		t.Errorf("expected status, got %s", res.Intent)
	}
	if res.Source != SourceOverride {
		t.Errorf("expected override source, got %s", res.Source)
	}
}

func TestClassify_PurchaseOverride(t *testing.T) {
	ic := makeTestClassifier(t)

	res := ic.Classify(context.Background(), "purchase drain pump today")
	if res.Intent != IntentOrder {
		t.Errorf("expected order, got %s", res.Intent)
	}
	if res.Source != SourceOverride {
		t.Errorf("expected override source, got %s", res.Source)
	}
}

func TestClassify_TroubleshootOverride(t *testing.T) {
	ic := makeTestClassifier(t)

	res := ic.Classify(context.Background(), "troubleshoot my dishwasher drain pump")
	if res.Intent != IntentDiagnose {
		t.Errorf("expected diagnose, got %s", res.Intent)
	}
}

func TestClassify_ThisPartCompatibility(t *testing.T) {
	ic := makeTestClassifier(t)

	res := ic.Classify(context.Background(), "does this part fit the GE dishwasher")
	if res.Intent != IntentCompatibility {
		t.Errorf("expected compatibility, got %s", res.Intent)
	}
}

func TestClassify_CompatibilityScored(t *testing.T) {
	ic := makeTestClassifier(t)

	res := ic.Classify(context.Background(), "Is part W10295370A compatible with model WDT780SAEM1?")
	if res.Intent != IntentCompatibility {
		t.Errorf("expected compatibility, got %s", res.Intent)
	}
}

func TestClassify_LookupScored(t *testing.T) {
	ic := makeTestClassifier(t)

	res := ic.Classify(context.Background(), "I need a new water filter for my refrigerator")
	if res.Intent != IntentLookup {
		t.Errorf("expected lookup, got %s", res.Intent)
	}
}

func TestClassify_DefaultLookup(t *testing.T) {
	ic := makeTestClassifier(t)

	// In scope but no keyword hits at all falls back to lookup.
	res := ic.Classify(context.Background(), "my refrigerator hums loudly")
	if res.Intent != IntentLookup {
		t.Errorf("expected lookup, got %s", res.Intent)
	}
	if res.Source != SourceDefault {
		t.Errorf("expected default source, got %s", res.Source)
	}
}

func TestClassify_WaterFilterInstallBonus(t *testing.T) {
	ic := makeTestClassifier(t)

	res := ic.Classify(context.Background(), "how would a water filter change taste in the fridge")
	if res.Intent != IntentInstall {
		t.Errorf("expected install via water filter bonus, got %s", res.Intent)
	}
}
