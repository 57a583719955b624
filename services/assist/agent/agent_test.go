// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/AleutianAI/PartDesk/services/assist/cart"
	"github.com/AleutianAI/PartDesk/services/assist/catalog"
	"github.com/AleutianAI/PartDesk/services/assist/config"
	"github.com/AleutianAI/PartDesk/services/assist/order"
	"github.com/AleutianAI/PartDesk/services/assist/routing"
	"github.com/AleutianAI/PartDesk/services/assist/tools"
)

func newTestOrchestrator(t *testing.T, cctx *routing.ConversationContext) *Orchestrator {
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

	scope := routing.NewScopeFilter(scopeCfg, nil)
	mock := catalog.NewMockCatalog(nil)
	docs := catalog.NewMockDocs()

	return New(Config{
		Scope:      scope,
		Classifier: routing.NewIntentClassifier(intentCfg, scope, nil),
		Extractor:  routing.NewParameterExtractor(),
		Resolver:   routing.NewContextResolver(nil),
		Tools: map[routing.Intent]tools.Tool{
			routing.IntentLookup:        tools.NewProductLookupTool(mock),
			routing.IntentCompatibility: tools.NewCompatibilityTool(mock),
			routing.IntentInstall:       tools.NewInstallationGuideTool(docs),
			routing.IntentDiagnose:      tools.NewErrorDiagnosisTool(docs, mock),
			routing.IntentCart:          tools.NewCartTool(cart.NewMemoryStore(), mock, "test-session"),
			routing.IntentOrder:         tools.NewOrderStatusTool(order.NewMockStore()),
		},
		Context: cctx,
	})
}

func TestProcessQuery_OutOfScope(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	for _, query := range []string{
		"I need a part",
		"I need a part for my microwave",
		"What's the best laptop to buy?",
	} {
		result := o.ProcessQuery(context.Background(), query)
		if result.ToolName != "out_of_scope" {
			t.Errorf("ProcessQuery(%q) tool = %q, want out_of_scope", query, result.ToolName)
		}
		if result.Result != outOfScopeReply {
			t.Errorf("ProcessQuery(%q) result = %q", query, result.Result)
		}
		if result.FollowUp != "" {
			t.Errorf("ProcessQuery(%q) follow-up = %q, want none", query, result.FollowUp)
		}
	}
}

func TestProcessQuery_AlwaysReturnsResult(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	for _, query := range []string{
		"",
		"   ",
		"?????",
		"My dishwasher WDT780SAEM1 needs a new drain pump right now",
		"tell me about part PS11752778",
	} {
		result := o.ProcessQuery(context.Background(), query)
		if result.ToolName == "" {
			t.Errorf("ProcessQuery(%q) returned empty tool name", query)
		}
		if result.Result == "" {
			t.Errorf("ProcessQuery(%q) returned empty result", query)
		}
	}
}

func TestProcessQuery_DiagnoseOverride(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	result := o.ProcessQuery(context.Background(), "My refrigerator ice maker is broken")
	if result.ToolName != "error_diagnosis_tool" {
		t.Fatalf("tool = %q, want error_diagnosis_tool", result.ToolName)
	}
	if !strings.HasPrefix(result.Result, "# Diagnosis for: ice maker") {
		t.Errorf("unexpected diagnosis:\n%s", result.Result)
	}
	if result.FollowUp != "Would you like me to help you find any of these parts?" {
		t.Errorf("follow-up = %q", result.FollowUp)
	}
}

func TestProcessQuery_FridgeNotCooling(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	result := o.ProcessQuery(context.Background(), "My fridge isn't cooling properly")
	if result.ToolName != "error_diagnosis_tool" {
		t.Fatalf("tool = %q, want error_diagnosis_tool", result.ToolName)
	}
	if !strings.HasPrefix(result.Result, "# Diagnosis for:") {
		t.Errorf("unexpected diagnosis:\n%s", result.Result)
	}
}

func TestProcessQuery_Compatibility(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	result := o.ProcessQuery(context.Background(),
		"Will part 67003753 work with my GD5SHAAXNQ00 dishwasher?")
	if result.ToolName != "compatibility_tool" {
		t.Fatalf("tool = %q, want compatibility_tool", result.ToolName)
	}
	want := "Not Compatible: Part #67003753 is not compatible with model GD5SHAAXNQ00."
	if result.Result != want {
		t.Errorf("result = %q, want %q", result.Result, want)
	}
	if result.FollowUp != "Would you like to see installation instructions for this part?" {
		t.Errorf("follow-up = %q", result.FollowUp)
	}

	cctx := o.Context()
	if cctx.LastIntent != routing.IntentCompatibility {
		t.Errorf("last intent = %q", cctx.LastIntent)
	}
	if cctx.LastPartNumber != "67003753" || cctx.LastModelNumber != "GD5SHAAXNQ00" {
		t.Errorf("context = %+v", cctx)
	}
}

func TestProcessQuery_LookupFollowUp(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	result := o.ProcessQuery(context.Background(), "tell me about part PS11752778")
	if result.ToolName != "product_lookup_tool" {
		t.Fatalf("tool = %q, want product_lookup_tool", result.ToolName)
	}
	if result.FollowUp != "Would you like installation instructions for the Dispenser Module?" {
		t.Errorf("follow-up = %q", result.FollowUp)
	}
}

func TestProcessQuery_ContextCarryOver(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	ctx := context.Background()

	first := o.ProcessQuery(ctx, "I need a water filter for my refrigerator")
	if first.ToolName != "product_lookup_tool" {
		t.Fatalf("first turn tool = %q, want product_lookup_tool", first.ToolName)
	}

	cctx := o.Context()
	if cctx.LastIntent != routing.IntentLookup {
		t.Fatalf("last intent = %q, want lookup", cctx.LastIntent)
	}
	if cctx.LastPartName != "water filter" {
		t.Fatalf("last part name = %q", cctx.LastPartName)
	}
	if cctx.LastPartNumber != "W10295370A" {
		t.Fatalf("last part number = %q", cctx.LastPartNumber)
	}

	second := o.ProcessQuery(ctx, "How do I install it?")
	if second.ToolName != "installation_guide_tool" {
		t.Fatalf("second turn tool = %q, want installation_guide_tool", second.ToolName)
	}
	if !strings.Contains(second.Result, "# Installation Guide for water filter") {
		t.Errorf("unexpected guide:\n%s", second.Result)
	}

	// The rewritten continuation dispatches directly and must not advance
	// the context.
	if cctx.LastIntent != routing.IntentLookup {
		t.Errorf("context advanced by continuation: %q", cctx.LastIntent)
	}
}

func TestProcessQuery_ContextIsMonotonic(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	ctx := context.Background()

	o.ProcessQuery(ctx, "I need a water filter for my refrigerator")
	o.ProcessQuery(ctx, "My refrigerator ice maker is broken")

	cctx := o.Context()
	if cctx.LastIntent != routing.IntentDiagnose {
		t.Errorf("last intent = %q, want diagnose", cctx.LastIntent)
	}
	// The second turn carried no part number, so the first turn's survives.
	if cctx.LastPartNumber != "W10295370A" {
		t.Errorf("last part number = %q, want W10295370A", cctx.LastPartNumber)
	}
}

func TestProcessQuery_CartFromContext(t *testing.T) {
	o := newTestOrchestrator(t, &routing.ConversationContext{
		LastIntent:     routing.IntentDiagnose,
		LastPartNumber: "PS11761591",
	})

	result := o.ProcessQuery(context.Background(), "add it to my cart")
	if result.ToolName != "cart_tool" {
		t.Fatalf("tool = %q, want cart_tool", result.ToolName)
	}
	if !strings.Contains(result.Result, "Added 1 of Refrigerator Water Filter to cart") {
		t.Errorf("unexpected cart result:\n%s", result.Result)
	}
	if result.FollowUp != "Would you like to view your cart or continue shopping?" {
		t.Errorf("follow-up = %q", result.FollowUp)
	}
}

func TestProcessQuery_OrderFromContext(t *testing.T) {
	o := newTestOrchestrator(t, &routing.ConversationContext{
		LastIntent: routing.IntentDiagnose,
	})

	result := o.ProcessQuery(context.Background(), "Can you track my order for me please")
	if result.ToolName != "order_status_tool" {
		t.Fatalf("tool = %q, want order_status_tool", result.ToolName)
	}
	if !strings.Contains(result.Result, "Order number or email is required") {
		t.Errorf("unexpected order result:\n%s", result.Result)
	}
	if result.FollowUp != "Would you like to check another order or continue shopping?" {
		t.Errorf("follow-up = %q", result.FollowUp)
	}
}

func TestProcessQuery_StatusIntentUnroutable(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	result := o.ProcessQuery(context.Background(),
		"Where is my dishwasher part order #123456?")
	if result.ToolName != "unknown_intent" {
		t.Fatalf("tool = %q, want unknown_intent", result.ToolName)
	}
	if result.Result != unknownIntentReply {
		t.Errorf("result = %q", result.Result)
	}
	if result.FollowUp != "" {
		t.Errorf("follow-up = %q, want none", result.FollowUp)
	}
}

func TestBuildSubQuery_Cart(t *testing.T) {
	const (
		viewCartPrompt = "Would you like to view your cart or continue shopping?"
		checkoutPrompt = "Would you like to checkout or continue shopping?"
		anythingElse   = "Is there anything else you'd like to do with your cart?"
	)

	cases := []struct {
		params       routing.Params
		want         string
		wantFollowUp string
	}{
		{routing.Params{CartAction: "add", PartNumber: "W10295370A", Quantity: "3"}, "add:W10295370A:3", viewCartPrompt},
		// No part number: the query falls back to view, but the follow-up
		// still answers the add request.
		{routing.Params{CartAction: "add"}, "view", viewCartPrompt},
		{routing.Params{CartAction: "remove", PartNumber: "W10295370A"}, "remove:W10295370A", anythingElse},
		{routing.Params{CartAction: "remove"}, "view", anythingElse},
		{routing.Params{CartAction: "clear"}, "clear", anythingElse},
		{routing.Params{CartAction: "view"}, "view", checkoutPrompt},
		{routing.Params{}, "view", checkoutPrompt},
	}
	for _, tc := range cases {
		got, followUp := buildSubQuery(routing.IntentCart, tc.params)
		if got != tc.want {
			t.Errorf("buildSubQuery(cart, %+v) = %q, want %q", tc.params, got, tc.want)
		}
		if followUp != tc.wantFollowUp {
			t.Errorf("buildSubQuery(cart, %+v) follow-up = %q, want %q", tc.params, followUp, tc.wantFollowUp)
		}
	}
}

func TestBuildSubQuery_Order(t *testing.T) {
	cases := []struct {
		params routing.Params
		want   string
	}{
		{routing.Params{OrderNumber: "123456", Email: "a@b.com"}, "123456:a@b.com"},
		{routing.Params{OrderNumber: "123456"}, "123456"},
		{routing.Params{Email: "a@b.com"}, "email:a@b.com"},
		{routing.Params{}, "status"},
	}
	for _, tc := range cases {
		got, _ := buildSubQuery(routing.IntentOrder, tc.params)
		if got != tc.want {
			t.Errorf("buildSubQuery(order, %+v) = %q, want %q", tc.params, got, tc.want)
		}
	}
}

func TestLookupFollowUp(t *testing.T) {
	cases := []struct {
		result string
		want   string
	}{
		{`{"error": "Part X not found"}`, ""},
		{`{"name": "Water Inlet Valve"}`, "Would you like installation instructions for the Water Inlet Valve?"},
		{"not json", "Would you like to check compatibility or get installation instructions?"},
	}
	for _, tc := range cases {
		if got := lookupFollowUp(tc.result); got != tc.want {
			t.Errorf("lookupFollowUp(%q) = %q, want %q", tc.result, got, tc.want)
		}
	}
}
