// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"context"
	"strings"
	"testing"
)

func TestLoadScopeConfig_Embedded(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadScopeConfig(ctx, defaultScopeRulesYAML)
	if err != nil {
		t.Fatalf("LoadScopeConfig failed on embedded YAML: %v", err)
	}

	if len(cfg.Exceptions) != 2 {
		t.Errorf("expected 2 exceptions, got %d", len(cfg.Exceptions))
	}
	if len(cfg.ApplianceKeywords) == 0 {
		t.Error("expected appliance keywords")
	}
	if len(cfg.PartKeywords) == 0 {
		t.Error("expected part keywords")
	}
	if len(cfg.Brands) == 0 {
		t.Error("expected brands")
	}
	if len(cfg.OutOfScopeTerms) == 0 {
		t.Error("expected out-of-scope terms")
	}
	if len(cfg.ModelPatterns) != 3 {
		t.Errorf("expected 3 model patterns, got %d", len(cfg.ModelPatterns))
	}
	if cfg.VagueQueryMaxWords != 4 {
		t.Errorf("expected vague_query_max_words = 4, got %d", cfg.VagueQueryMaxWords)
	}
}

func TestLoadScopeConfig_ExceptionsPinned(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadScopeConfig(ctx, defaultScopeRulesYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := map[string]bool{}
	for _, ex := range cfg.Exceptions {
		found[ex.Query] = ex.InScope
	}
	if in, ok := found["is this part compatible and how do i install it?"]; !ok || !in {
		t.Error("expected compound compat/install exception pinned in scope")
	}
	if in, ok := found["i need a part"]; !ok || in {
		t.Error("expected bare part request exception pinned out of scope")
	}
}

func TestLoadScopeConfig_BadPattern(t *testing.T) {
	yaml := []byte(`
appliance_keywords: [fridge]
part_keywords: [pump]
out_of_scope_terms: [oven]
model_patterns: ['[unclosed']
`)
	if _, err := LoadScopeConfig(context.Background(), yaml); err == nil {
		t.Fatal("expected error for invalid model pattern")
	}
}

func TestLoadScopeConfig_EmptyData(t *testing.T) {
	if _, err := LoadScopeConfig(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty YAML data")
	}
}

func TestGetScopeConfig_Singleton(t *testing.T) {
	ResetScopeConfig()
	t.Cleanup(ResetScopeConfig)

	ctx := context.Background()
	a, err := GetScopeConfig(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GetScopeConfig(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Error("expected the same cached config instance")
	}
}

func TestLoadIntentConfig_Embedded(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadIntentConfig(ctx, defaultIntentRulesYAML)
	if err != nil {
		t.Fatalf("LoadIntentConfig failed on embedded YAML: %v", err)
	}

	if len(cfg.Intents) != 6 {
		t.Fatalf("expected 6 intents, got %d", len(cfg.Intents))
	}
	order := []string{"lookup", "compatibility", "install", "diagnose", "order", "status"}
	for i, want := range order {
		if cfg.Intents[i].Name != want {
			t.Errorf("intent[%d]: expected %s, got %s", i, want, cfg.Intents[i].Name)
		}
	}
	if cfg.KeywordWeight != DefaultKeywordWeight {
		t.Errorf("expected keyword_weight = %d, got %d", DefaultKeywordWeight, cfg.KeywordWeight)
	}
	if cfg.StrongKeywordBonus != DefaultStrongKeywordBonus {
		t.Errorf("expected strong_keyword_bonus = %d, got %d", DefaultStrongKeywordBonus, cfg.StrongKeywordBonus)
	}
	if len(cfg.Exceptions) != 3 {
		t.Errorf("expected 3 exceptions, got %d", len(cfg.Exceptions))
	}
}

func TestLoadIntentConfig_PhraseScanOrder(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadIntentConfig(ctx, defaultIntentRulesYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Order phrases must be scanned before install/compatibility/diagnose
	// phrases: "add to" has to win over later tables.
	order := []string{"lookup", "order", "install", "compatibility", "diagnose"}
	if len(cfg.Phrases) != len(order) {
		t.Fatalf("expected %d phrase rules, got %d", len(order), len(cfg.Phrases))
	}
	for i, want := range order {
		if cfg.Phrases[i].Intent != want {
			t.Errorf("phrase_rule[%d]: expected %s, got %s", i, want, cfg.Phrases[i].Intent)
		}
	}
}

func TestLoadIntentConfig_StrongKeywordSubset(t *testing.T) {
	yaml := []byte(`
intents:
  - name: lookup
    keywords: [find]
    strong_keywords: [buy]
`)
	_, err := LoadIntentConfig(context.Background(), yaml)
	if err == nil {
		t.Fatal("expected error for strong keyword outside keywords")
	}
	if !strings.Contains(err.Error(), "strong keyword") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadIntentConfig_UnknownPhraseIntent(t *testing.T) {
	yaml := []byte(`
intents:
  - name: lookup
    keywords: [find]
phrases:
  - intent: bogus
    phrases: [looking for]
`)
	if _, err := LoadIntentConfig(context.Background(), yaml); err == nil {
		t.Fatal("expected error for phrase rule with unknown intent")
	}
}

func TestGetIntentConfig_Singleton(t *testing.T) {
	ResetIntentConfig()
	t.Cleanup(ResetIntentConfig)

	ctx := context.Background()
	a, err := GetIntentConfig(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GetIntentConfig(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Error("expected the same cached config instance")
	}
}
