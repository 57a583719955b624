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

import "testing"

func TestIsContextDependent_ShortPronoun(t *testing.T) {
	cr := NewContextResolver(nil)
	cctx := &ConversationContext{}

	if !cr.IsContextDependent("How do I install it?", cctx) {
		t.Error("expected short pronoun query to be context-dependent")
	}
	if !cr.IsContextDependent("is it compatible", cctx) {
		t.Error("expected short pattern query to be context-dependent")
	}
}

func TestIsContextDependent_ShortWithoutSignal(t *testing.T) {
	cr := NewContextResolver(nil)

	if cr.IsContextDependent("water filter price", &ConversationContext{}) {
		t.Error("expected short query without pronoun or pattern to stand alone")
	}
}

func TestIsContextDependent_CartNeedsPartNumber(t *testing.T) {
	cr := NewContextResolver(nil)
	query := "please add that filter part to my shopping cart"

	if cr.IsContextDependent(query, &ConversationContext{}) {
		t.Error("expected cart query without remembered part to stand alone")
	}
	cctx := &ConversationContext{LastPartNumber: "W10295370A"}
	if !cr.IsContextDependent(query, cctx) {
		t.Error("expected cart query with remembered part to be context-dependent")
	}
}

func TestIsContextDependent_OrderStatus(t *testing.T) {
	cr := NewContextResolver(nil)

	if !cr.IsContextDependent("can you check the status of everything for me", &ConversationContext{}) {
		t.Error("expected order status query to be context-dependent")
	}
}

func TestEnhance_NoHistory(t *testing.T) {
	cr := NewContextResolver(nil)

	if _, _, ok := cr.Enhance("how do I install it", &ConversationContext{}); ok {
		t.Error("expected no rewrite without history")
	}
}

func TestEnhance_Install(t *testing.T) {
	cr := NewContextResolver(nil)
	cctx := &ConversationContext{
		LastIntent:        IntentLookup,
		LastPartName:      "water filter",
		LastApplianceType: "refrigerator",
	}

	intent, query, ok := cr.Enhance("how do I install it?", cctx)
	if !ok {
		t.Fatal("expected a rewrite")
	}
	if intent != IntentInstall {
		t.Errorf("expected install, got %s", intent)
	}
	if query != "How do I install a water filter in my refrigerator?" {
		t.Errorf("unexpected rewrite: %q", query)
	}
}

func TestEnhance_InstallDefaultsAppliance(t *testing.T) {
	cr := NewContextResolver(nil)
	cctx := &ConversationContext{
		LastIntent:   IntentLookup,
		LastPartName: "drain pump",
	}

	_, query, ok := cr.Enhance("installation steps?", cctx)
	if !ok {
		t.Fatal("expected a rewrite")
	}
	if query != "How do I install a drain pump in my refrigerator?" {
		t.Errorf("unexpected rewrite: %q", query)
	}
}

func TestEnhance_Compatibility(t *testing.T) {
	cr := NewContextResolver(nil)
	cctx := &ConversationContext{
		LastIntent:      IntentLookup,
		LastPartNumber:  "W10295370A",
		LastModelNumber: "WDT780SAEM1",
	}

	intent, query, ok := cr.Enhance("is it compatible?", cctx)
	if !ok {
		t.Fatal("expected a rewrite")
	}
	if intent != IntentCompatibility {
		t.Errorf("expected compatibility, got %s", intent)
	}
	if query != "Is part W10295370A compatible with WDT780SAEM1?" {
		t.Errorf("unexpected rewrite: %q", query)
	}
}

func TestEnhance_Lookup(t *testing.T) {
	cr := NewContextResolver(nil)
	cctx := &ConversationContext{
		LastIntent:        IntentDiagnose,
		LastPartName:      "door gasket",
		LastApplianceType: "dishwasher",
	}

	intent, query, ok := cr.Enhance("where can I buy one", cctx)
	if !ok {
		t.Fatal("expected a rewrite")
	}
	if intent != IntentLookup {
		t.Errorf("expected lookup, got %s", intent)
	}
	if query != "I need a door gasket for my dishwasher" {
		t.Errorf("unexpected rewrite: %q", query)
	}
}

func TestEnhance_GenericInstallAfterLookup(t *testing.T) {
	cr := NewContextResolver(nil)
	cctx := &ConversationContext{LastIntent: IntentLookup}

	// No remembered part name still rewrites, with placeholders.
	intent, query, ok := cr.Enhance("how does that go in", cctx)
	if !ok {
		t.Fatal("expected a rewrite")
	}
	if intent != IntentInstall {
		t.Errorf("expected install, got %s", intent)
	}
	if query != "How do I install a part in my refrigerator?" {
		t.Errorf("unexpected rewrite: %q", query)
	}
}

func TestEnhance_CartAdd(t *testing.T) {
	cr := NewContextResolver(nil)
	cctx := &ConversationContext{
		LastIntent:     IntentDiagnose,
		LastPartNumber: "W10348269",
	}

	intent, query, ok := cr.Enhance("add it to my basket", cctx)
	if !ok {
		t.Fatal("expected a rewrite")
	}
	if intent != IntentCart {
		t.Errorf("expected cart, got %s", intent)
	}
	if query != "Add part W10348269 to my cart" {
		t.Errorf("unexpected rewrite: %q", query)
	}
}

func TestEnhance_OrderStatus(t *testing.T) {
	cr := NewContextResolver(nil)
	cctx := &ConversationContext{LastIntent: IntentOrder}

	intent, query, ok := cr.Enhance("check my order", cctx)
	if !ok {
		t.Fatal("expected a rewrite")
	}
	if intent != IntentOrder {
		t.Errorf("expected order, got %s", intent)
	}
	if query != "Check my order status" {
		t.Errorf("unexpected rewrite: %q", query)
	}
}

func TestConversationContext_MonotonicUpdate(t *testing.T) {
	cctx := &ConversationContext{}

	cctx.Update(IntentLookup, Params{PartNumber: "W10295370A", PartName: "water filter"})
	cctx.Update(IntentInstall, Params{ApplianceType: "refrigerator"})

	if cctx.LastIntent != IntentInstall {
		t.Errorf("expected install, got %s", cctx.LastIntent)
	}
	if cctx.LastPartNumber != "W10295370A" {
		t.Errorf("expected part number retained, got %q", cctx.LastPartNumber)
	}
	if cctx.LastPartName != "water filter" {
		t.Errorf("expected part name retained, got %q", cctx.LastPartName)
	}
	if cctx.LastApplianceType != "refrigerator" {
		t.Errorf("expected appliance type set, got %q", cctx.LastApplianceType)
	}
}
