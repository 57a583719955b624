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
	_ "embed"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Embedded Default Intent Rules
// =============================================================================

//go:embed intent_rules.yaml
var defaultIntentRulesYAML []byte

// =============================================================================
// Intent Configuration Types
// =============================================================================

// IntentConfig defines the keyword and phrase tables for intent detection.
//
// Description:
//
//	Declaration order is load-bearing in two places: the intents list fixes
//	the tie-break order of the keyword scorer (first declared wins on equal
//	scores), and the phrases list fixes the phrase-scan order.
//
// Thread Safety: Immutable after loading; safe for concurrent use.
type IntentConfig struct {
	// Exceptions pin the intent for exact lowercased queries. They are
	// checked before every other stage.
	Exceptions []IntentException `yaml:"exceptions"`

	// Intents are the scored intents with their keyword tables.
	Intents []IntentRule `yaml:"intents"`

	// Phrases are ordered phrase tables, scanned before keyword scoring.
	Phrases []PhraseRule `yaml:"phrases"`

	// KeywordWeight is the score added per keyword hit.
	KeywordWeight int `yaml:"keyword_weight"`

	// StrongKeywordBonus is the extra score added for a strong-keyword hit.
	StrongKeywordBonus int `yaml:"strong_keyword_bonus"`
}

// IntentRule is one intent's keyword table.
type IntentRule struct {
	// Name is the intent label.
	Name string `yaml:"name"`

	// Keywords each add KeywordWeight on a substring hit.
	Keywords []string `yaml:"keywords"`

	// StrongKeywords additionally add StrongKeywordBonus on a hit.
	// Must be a subset of Keywords.
	StrongKeywords []string `yaml:"strong_keywords"`
}

// PhraseRule is one intent's ordered phrase list.
type PhraseRule struct {
	// Intent is the intent a phrase hit resolves to.
	Intent string `yaml:"intent"`

	// Phrases are scanned in order against the lowercased query.
	Phrases []string `yaml:"phrases"`
}

// IntentException pins the intent for one exact query string.
type IntentException struct {
	// Label names the exception for logging and tracing.
	Label string `yaml:"label"`

	// Query is the exact lowercased query the exception applies to.
	Query string `yaml:"query"`

	// Intent is the pinned intent.
	Intent string `yaml:"intent"`
}

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultKeywordWeight is the default per-keyword score.
	DefaultKeywordWeight = 1

	// DefaultStrongKeywordBonus is the default strong-keyword extra score.
	DefaultStrongKeywordBonus = 2
)

// =============================================================================
// Singleton Intent Config
// =============================================================================

var (
	intentConfigMu      sync.RWMutex
	intentConfigOnce    sync.Once
	cachedIntentConfig  *IntentConfig
	intentConfigLoadErr error
)

// GetIntentConfig returns the cached intent configuration.
//
// Description:
//
//	Loads the embedded intent rules on first call and caches for subsequent
//	calls. Uses sync.Once for thread-safe initialization.
//
// Inputs:
//
//	ctx - Context for tracing. Must not be nil.
//
// Outputs:
//
//	*IntentConfig - The loaded configuration. Never nil on success.
//	error - Non-nil if loading or validation failed.
//
// Thread Safety: Safe for concurrent use via sync.Once.
func GetIntentConfig(ctx context.Context) (*IntentConfig, error) {
	if ctx == nil {
		return nil, fmt.Errorf("GetIntentConfig: ctx must not be nil")
	}

	intentConfigMu.RLock()
	if cachedIntentConfig != nil || intentConfigLoadErr != nil {
		cfg, err := cachedIntentConfig, intentConfigLoadErr
		intentConfigMu.RUnlock()
		return cfg, err
	}
	intentConfigMu.RUnlock()

	intentConfigMu.Lock()
	defer intentConfigMu.Unlock()

	if cachedIntentConfig != nil || intentConfigLoadErr != nil {
		return cachedIntentConfig, intentConfigLoadErr
	}

	intentConfigOnce.Do(func() {
		cachedIntentConfig, intentConfigLoadErr = LoadIntentConfig(ctx, defaultIntentRulesYAML)
	})

	return cachedIntentConfig, intentConfigLoadErr
}

// ResetIntentConfig resets the cached config for testing.
//
// Thread Safety: Safe for concurrent use.
func ResetIntentConfig() {
	intentConfigMu.Lock()
	defer intentConfigMu.Unlock()
	cachedIntentConfig = nil
	intentConfigLoadErr = nil
	intentConfigOnce = sync.Once{}
}

// LoadIntentConfig loads and validates an IntentConfig from YAML bytes.
//
// Inputs:
//
//	ctx - Context for tracing.
//	data - Raw YAML bytes to parse.
//
// Outputs:
//
//	*IntentConfig - The validated configuration.
//	error - Non-nil if parsing or validation fails.
func LoadIntentConfig(ctx context.Context, data []byte) (*IntentConfig, error) {
	_, span := configTracer.Start(ctx, "config.LoadIntentConfig")
	defer span.End()

	if len(data) == 0 {
		return nil, fmt.Errorf("LoadIntentConfig: empty YAML data")
	}
	if len(data) > MaxYAMLFileSize {
		return nil, fmt.Errorf("LoadIntentConfig: YAML data exceeds maximum size (%d > %d)", len(data), MaxYAMLFileSize)
	}

	var cfg IntentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("LoadIntentConfig: parsing YAML: %w", err)
	}

	if cfg.KeywordWeight <= 0 {
		cfg.KeywordWeight = DefaultKeywordWeight
	}
	if cfg.StrongKeywordBonus <= 0 {
		cfg.StrongKeywordBonus = DefaultStrongKeywordBonus
	}

	if err := validateIntentConfig(&cfg); err != nil {
		return nil, fmt.Errorf("LoadIntentConfig: validation: %w", err)
	}

	span.SetAttributes(
		attribute.Int("exceptions", len(cfg.Exceptions)),
		attribute.Int("intents", len(cfg.Intents)),
		attribute.Int("phrase_rules", len(cfg.Phrases)),
	)

	slog.Info("intent config loaded",
		slog.Int("exceptions", len(cfg.Exceptions)),
		slog.Int("intents", len(cfg.Intents)),
		slog.Int("phrase_rules", len(cfg.Phrases)),
	)

	return &cfg, nil
}

// validateIntentConfig checks all tables for consistency.
func validateIntentConfig(cfg *IntentConfig) error {
	if len(cfg.Intents) == 0 {
		return fmt.Errorf("intents must not be empty")
	}

	declared := make(map[string]bool, len(cfg.Intents))
	for i, it := range cfg.Intents {
		if it.Name == "" {
			return fmt.Errorf("intent[%d]: name must not be empty", i)
		}
		if declared[it.Name] {
			return fmt.Errorf("intent[%d] (%s): duplicate intent name", i, it.Name)
		}
		declared[it.Name] = true
		if len(it.Keywords) == 0 {
			return fmt.Errorf("intent[%d] (%s): keywords must not be empty", i, it.Name)
		}
		kw := make(map[string]bool, len(it.Keywords))
		for _, k := range it.Keywords {
			kw[k] = true
		}
		for _, s := range it.StrongKeywords {
			if !kw[s] {
				return fmt.Errorf("intent[%d] (%s): strong keyword %q is not in keywords", i, it.Name, s)
			}
		}
	}

	for i, pr := range cfg.Phrases {
		if !declared[pr.Intent] {
			return fmt.Errorf("phrase_rule[%d]: unknown intent %q", i, pr.Intent)
		}
		if len(pr.Phrases) == 0 {
			return fmt.Errorf("phrase_rule[%d] (%s): phrases must not be empty", i, pr.Intent)
		}
	}

	for i, ex := range cfg.Exceptions {
		if ex.Query == "" {
			return fmt.Errorf("exception[%d]: query must not be empty", i)
		}
		if ex.Intent == "" {
			return fmt.Errorf("exception[%d] (%q): intent must not be empty", i, ex.Query)
		}
	}

	return nil
}
