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

func TestExtract_Lookup_PartNumber(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentLookup, "Find part W10295370A for me")
	if params.PartNumber != "W10295370A" {
		t.Errorf("expected W10295370A, got %q", params.PartNumber)
	}
}

func TestExtract_Lookup_Synonym(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentLookup, "I need a new water filter")
	if params.PartNumber != "W10295370A" {
		t.Errorf("expected synonym part number, got %q", params.PartNumber)
	}
	if params.PartName != "water filter" {
		t.Errorf("expected part name water filter, got %q", params.PartName)
	}
}

func TestExtract_Lookup_HeaterSynonym(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentLookup, "my heater element needs replacing")
	if params.PartNumber != "WPW10518394" {
		t.Errorf("expected heating element part number, got %q", params.PartNumber)
	}
	if params.PartName != "heating element" {
		t.Errorf("expected canonical heating element name, got %q", params.PartName)
	}
}

func TestExtract_Compatibility(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentCompatibility, "Is W10295370A compatible with WDT780SAEM1?")
	if params.PartNumber != "W10295370A" {
		t.Errorf("expected part number, got %q", params.PartNumber)
	}
	if params.ModelNumber != "WDT780SAEM1" {
		t.Errorf("expected model number, got %q", params.ModelNumber)
	}
}

func TestExtract_Compatibility_InterleavedModel(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentCompatibility, "Will part 67003753 work with my GD5SHAAXNQ00 dishwasher?")
	if params.PartNumber != "67003753" {
		t.Errorf("expected part number 67003753, got %q", params.PartNumber)
	}
	if params.ModelNumber != "GD5SHAAXNQ00" {
		t.Errorf("expected model number GD5SHAAXNQ00, got %q", params.ModelNumber)
	}
}

func TestExtract_Compatibility_ModelEqualsPartRejected(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentCompatibility, "does 67003753 fit")
	if params.PartNumber != "67003753" {
		t.Errorf("expected part number, got %q", params.PartNumber)
	}
	if params.ModelNumber != "" {
		t.Errorf("expected no model number, got %q", params.ModelNumber)
	}
}

func TestExtract_Compatibility_WaterFilterFallback(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentCompatibility, "will a water filter work with my WRF535 fridge")
	if params.ModelNumber == "" {
		t.Fatal("expected a model number")
	}
	if params.PartNumber != "W10295370A" {
		t.Errorf("expected demo filter part, got %q", params.PartNumber)
	}
}

func TestExtract_Install(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentInstall, "How do I install a drain pump in my dishwasher?")
	if params.ApplianceType != "dishwasher" {
		t.Errorf("expected dishwasher, got %q", params.ApplianceType)
	}
	if params.PartName != "drain pump" {
		t.Errorf("expected drain pump, got %q", params.PartName)
	}
}

func TestExtract_Diagnose_Problem(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentDiagnose, "my fridge is not cooling at all")
	if params.ApplianceType != "refrigerator" {
		t.Errorf("expected refrigerator, got %q", params.ApplianceType)
	}
	if params.Problem != "not cooling" {
		t.Errorf("expected not cooling, got %q", params.Problem)
	}
}

func TestExtract_Diagnose_WaterTaste(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentDiagnose, "the water from my fridge tastes bad")
	if params.Problem != "water filter" {
		t.Errorf("expected water filter problem, got %q", params.Problem)
	}
	if params.PartName != "water filter" {
		t.Errorf("expected water filter part name, got %q", params.PartName)
	}
}

func TestExtract_Cart(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentCart, "add 3 units of W10295370A please")
	if params.CartAction != "add" {
		t.Errorf("expected add, got %q", params.CartAction)
	}
	if params.Quantity != "3" {
		t.Errorf("expected quantity 3, got %q", params.Quantity)
	}
	if params.PartNumber != "W10295370A" {
		t.Errorf("expected part number, got %q", params.PartNumber)
	}
}

func TestExtract_Cart_Defaults(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentCart, "cart contents")
	if params.CartAction != "view" {
		t.Errorf("expected default view, got %q", params.CartAction)
	}
	if params.Quantity != "1" {
		t.Errorf("expected default quantity 1, got %q", params.Quantity)
	}
}

func TestExtract_Order(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentOrder, "check order number #123456 for john.doe@example.com")
	if params.OrderNumber != "123456" {
		t.Errorf("expected order number, got %q", params.OrderNumber)
	}
	if params.Email != "john.doe@example.com" {
		t.Errorf("expected email, got %q", params.Email)
	}
}

func TestExtract_Status_NoParams(t *testing.T) {
	pe := NewParameterExtractor()

	params := pe.Extract(IntentStatus, "where is my stuff")
	if params != (Params{}) {
		t.Errorf("expected empty params, got %+v", params)
	}
}
