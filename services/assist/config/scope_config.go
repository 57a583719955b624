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
	"regexp"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"
)

var configTracer = otel.Tracer("partdesk.assist.config")

// MaxYAMLFileSize caps embedded or externally supplied rule files.
const MaxYAMLFileSize = 1 << 20

// =============================================================================
// Embedded Default Scope Rules
// =============================================================================

//go:embed scope_rules.yaml
var defaultScopeRulesYAML []byte

// =============================================================================
// Scope Configuration Types
// =============================================================================

// ScopeConfig defines the rule tables for the in-scope decision.
//
// Description:
//
//	Contains every table the scope filter consults: exact-query exceptions,
//	appliance/part keyword sets, brand names, out-of-scope terms, and the
//	model-number pattern families with their accepted prefixes.
//
// Thread Safety: Immutable after loading; safe for concurrent use.
type ScopeConfig struct {
	// Exceptions pin the scope decision for exact lowercased queries.
	// They are checked before every other rule.
	Exceptions []ScopeException `yaml:"exceptions"`

	// ApplianceKeywords are substrings that mark a query as being about a
	// refrigerator or dishwasher.
	ApplianceKeywords []string `yaml:"appliance_keywords"`

	// PartKeywords are substrings naming parts of the two appliance types.
	PartKeywords []string `yaml:"part_keywords"`

	// Brands are manufacturers commonly associated with the two appliance
	// types.
	Brands []string `yaml:"brands"`

	// OutOfScopeTerms reject a query on a whole-word match unless an
	// appliance keyword also appears.
	OutOfScopeTerms []string `yaml:"out_of_scope_terms"`

	// ModelPrefixes are the accepted leading characters for a model-number
	// pattern match.
	ModelPrefixes []string `yaml:"model_prefixes"`

	// ModelPatterns are regex sources matched against the raw query text.
	ModelPatterns []string `yaml:"model_patterns"`

	// VagueQueryMaxWords is the word count at or under which a bare brand
	// or "part" mention does not count as in scope.
	VagueQueryMaxWords int `yaml:"vague_query_max_words"`
}

// ScopeException pins the scope decision for one exact query string.
type ScopeException struct {
	// Label names the exception for logging and tracing.
	Label string `yaml:"label"`

	// Query is the exact lowercased query the exception applies to.
	Query string `yaml:"query"`

	// InScope is the pinned decision.
	InScope bool `yaml:"in_scope"`
}

// DefaultVagueQueryMaxWords is the default vague-query word threshold.
const DefaultVagueQueryMaxWords = 4

// =============================================================================
// Singleton Scope Config
// =============================================================================

var (
	scopeConfigMu      sync.RWMutex
	scopeConfigOnce    sync.Once
	cachedScopeConfig  *ScopeConfig
	scopeConfigLoadErr error
)

// GetScopeConfig returns the cached scope configuration.
//
// Description:
//
//	Loads the embedded scope rules on first call and caches for subsequent
//	calls. Uses sync.Once for thread-safe initialization.
//
// Inputs:
//
//	ctx - Context for tracing. Must not be nil.
//
// Outputs:
//
//	*ScopeConfig - The loaded configuration. Never nil on success.
//	error - Non-nil if loading or validation failed.
//
// Thread Safety: Safe for concurrent use via sync.Once.
func GetScopeConfig(ctx context.Context) (*ScopeConfig, error) {
	if ctx == nil {
		return nil, fmt.Errorf("GetScopeConfig: ctx must not be nil")
	}

	scopeConfigMu.RLock()
	if cachedScopeConfig != nil || scopeConfigLoadErr != nil {
		cfg, err := cachedScopeConfig, scopeConfigLoadErr
		scopeConfigMu.RUnlock()
		return cfg, err
	}
	scopeConfigMu.RUnlock()

	scopeConfigMu.Lock()
	defer scopeConfigMu.Unlock()

	if cachedScopeConfig != nil || scopeConfigLoadErr != nil {
		return cachedScopeConfig, scopeConfigLoadErr
	}

	scopeConfigOnce.Do(func() {
		cachedScopeConfig, scopeConfigLoadErr = LoadScopeConfig(ctx, defaultScopeRulesYAML)
	})

	return cachedScopeConfig, scopeConfigLoadErr
}

// ResetScopeConfig resets the cached config for testing.
//
// Thread Safety: Safe for concurrent use.
func ResetScopeConfig() {
	scopeConfigMu.Lock()
	defer scopeConfigMu.Unlock()
	cachedScopeConfig = nil
	scopeConfigLoadErr = nil
	scopeConfigOnce = sync.Once{}
}

// LoadScopeConfig loads and validates a ScopeConfig from YAML bytes.
//
// Description:
//
//	Parses the YAML, applies defaults for missing fields, and validates
//	all tables (non-empty keyword sets, compilable model patterns).
//
// Inputs:
//
//	ctx - Context for tracing.
//	data - Raw YAML bytes to parse.
//
// Outputs:
//
//	*ScopeConfig - The validated configuration.
//	error - Non-nil if parsing or validation fails.
func LoadScopeConfig(ctx context.Context, data []byte) (*ScopeConfig, error) {
	_, span := configTracer.Start(ctx, "config.LoadScopeConfig")
	defer span.End()

	if len(data) == 0 {
		return nil, fmt.Errorf("LoadScopeConfig: empty YAML data")
	}
	if len(data) > MaxYAMLFileSize {
		return nil, fmt.Errorf("LoadScopeConfig: YAML data exceeds maximum size (%d > %d)", len(data), MaxYAMLFileSize)
	}

	var cfg ScopeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("LoadScopeConfig: parsing YAML: %w", err)
	}

	if cfg.VagueQueryMaxWords <= 0 {
		cfg.VagueQueryMaxWords = DefaultVagueQueryMaxWords
	}

	if err := validateScopeConfig(&cfg); err != nil {
		return nil, fmt.Errorf("LoadScopeConfig: validation: %w", err)
	}

	span.SetAttributes(
		attribute.Int("exceptions", len(cfg.Exceptions)),
		attribute.Int("appliance_keywords", len(cfg.ApplianceKeywords)),
		attribute.Int("part_keywords", len(cfg.PartKeywords)),
		attribute.Int("brands", len(cfg.Brands)),
		attribute.Int("out_of_scope_terms", len(cfg.OutOfScopeTerms)),
		attribute.Int("model_patterns", len(cfg.ModelPatterns)),
	)

	slog.Info("scope config loaded",
		slog.Int("exceptions", len(cfg.Exceptions)),
		slog.Int("appliance_keywords", len(cfg.ApplianceKeywords)),
		slog.Int("part_keywords", len(cfg.PartKeywords)),
		slog.Int("out_of_scope_terms", len(cfg.OutOfScopeTerms)),
	)

	return &cfg, nil
}

// validateScopeConfig checks all tables for consistency.
func validateScopeConfig(cfg *ScopeConfig) error {
	for i, ex := range cfg.Exceptions {
		if ex.Query == "" {
			return fmt.Errorf("exception[%d]: query must not be empty", i)
		}
		if ex.Label == "" {
			return fmt.Errorf("exception[%d] (%q): label must not be empty", i, ex.Query)
		}
	}

	if len(cfg.ApplianceKeywords) == 0 {
		return fmt.Errorf("appliance_keywords must not be empty")
	}
	if len(cfg.PartKeywords) == 0 {
		return fmt.Errorf("part_keywords must not be empty")
	}
	if len(cfg.OutOfScopeTerms) == 0 {
		return fmt.Errorf("out_of_scope_terms must not be empty")
	}

	for i, pat := range cfg.ModelPatterns {
		if _, err := regexp.Compile(pat); err != nil {
			return fmt.Errorf("model_pattern[%d] (%q): %w", i, pat, err)
		}
	}

	return nil
}
