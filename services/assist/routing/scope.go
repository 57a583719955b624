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
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AleutianAI/PartDesk/services/assist/config"
)

// =============================================================================
// Prometheus Metrics
// =============================================================================

var (
	scopeDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "partdesk",
		Subsystem: "scope",
		Name:      "decisions_total",
		Help:      "Total scope decisions by outcome and rule",
	}, []string{"decision", "rule"})

	scopeLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "partdesk",
		Subsystem: "scope",
		Name:      "latency_seconds",
		Help:      "Scope filter execution latency",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
	})
)

// =============================================================================
// OTel Tracer
// =============================================================================

var scopeTracer = otel.Tracer("partdesk.assist.routing.scope")

// =============================================================================
// ScopeFilter
// =============================================================================

// ScopeFilter decides whether a query concerns refrigerator or dishwasher
// parts.
//
// Description:
//
//	Applies an ordered rule sequence: exact-query exceptions, model-number
//	detection (raw text), the oven heating-element exclusion, the
//	appliance-plus-brand rule, out-of-scope word rejection, appliance and
//	part keyword matches, brand-with-context matches, and the vague "part"
//	fallback. The first rule that fires decides.
//
// Thread Safety: Safe for concurrent use (all state is read-only after
// construction).
type ScopeFilter struct {
	cfg    *config.ScopeConfig
	logger *slog.Logger

	// exceptions maps exact lowercased queries to their pinned decision.
	exceptions map[string]config.ScopeException

	// modelPatterns are the compiled model-number regexes, run on raw text.
	modelPatterns []*regexp.Regexp
}

// ScopeResult is the outcome of one scope evaluation.
type ScopeResult struct {
	// InScope is the decision.
	InScope bool

	// Rule names the rule that decided (e.g. "model_number",
	// "out_of_scope_term", "exception:bare_part_request").
	Rule string

	// Duration is how long the evaluation took.
	Duration time.Duration
}

// NewScopeFilter creates a ScopeFilter from a validated config.
//
// Inputs:
//
//	cfg - Scope configuration. Must not be nil.
//	logger - Logger instance. May be nil (defaults to slog.Default).
//
// Outputs:
//
//	*ScopeFilter - The constructed filter.
//
// Thread Safety: The returned filter is safe for concurrent use.
func NewScopeFilter(cfg *config.ScopeConfig, logger *slog.Logger) *ScopeFilter {
	if logger == nil {
		logger = slog.Default()
	}

	sf := &ScopeFilter{
		cfg:        cfg,
		logger:     logger,
		exceptions: make(map[string]config.ScopeException, len(cfg.Exceptions)),
	}

	for _, ex := range cfg.Exceptions {
		sf.exceptions[strings.ToLower(ex.Query)] = ex
	}

	sf.modelPatterns = make([]*regexp.Regexp, 0, len(cfg.ModelPatterns))
	for _, pat := range cfg.ModelPatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			// Loading validates patterns; this only fires for hand-built configs.
			sf.logger.Warn("scope: invalid model pattern, will skip",
				slog.String("pattern", pat),
				slog.String("error", err.Error()),
			)
			continue
		}
		sf.modelPatterns = append(sf.modelPatterns, re)
	}

	return sf
}

// IsInScope reports whether the query is in scope.
//
// Thread Safety: Safe for concurrent use.
func (sf *ScopeFilter) IsInScope(ctx context.Context, query string) bool {
	return sf.Evaluate(ctx, query).InScope
}

// Evaluate runs the full rule sequence and reports the deciding rule.
//
// Inputs:
//
//	ctx - Context for tracing. Must not be nil.
//	query - The user's query string, case preserved.
//
// Outputs:
//
//	*ScopeResult - The decision with the rule that produced it.
//
// Thread Safety: Safe for concurrent use.
func (sf *ScopeFilter) Evaluate(ctx context.Context, query string) *ScopeResult {
	start := time.Now()

	_, span := scopeTracer.Start(ctx, "routing.ScopeFilter.Evaluate")
	defer span.End()

	result := sf.evaluate(query)
	result.Duration = time.Since(start)

	decision := "out_of_scope"
	if result.InScope {
		decision = "in_scope"
	}
	scopeDecisionsTotal.WithLabelValues(decision, result.Rule).Inc()
	scopeLatency.Observe(result.Duration.Seconds())

	span.SetAttributes(
		attribute.Bool("in_scope", result.InScope),
		attribute.String("rule", result.Rule),
	)

	sf.logger.Debug("scope decision",
		slog.Bool("in_scope", result.InScope),
		slog.String("rule", result.Rule),
		slog.String("query_preview", truncateForLog(query, 80)),
	)

	return result
}

func (sf *ScopeFilter) evaluate(query string) *ScopeResult {
	queryLower := strings.ToLower(query)

	// Exact-query exceptions decide before every other rule.
	if ex, ok := sf.exceptions[queryLower]; ok {
		return &ScopeResult{InScope: ex.InScope, Rule: "exception:" + ex.Label}
	}

	// Model numbers run on the raw text; case carries signal.
	if sf.hasModelNumber(query) {
		return &ScopeResult{InScope: true, Rule: "model_number"}
	}

	// Heating elements are shared with ovens; an oven mention wins.
	if strings.Contains(queryLower, "heating element") && strings.Contains(queryLower, "oven") {
		return &ScopeResult{InScope: false, Rule: "oven_heating_element"}
	}

	// "appliance" next to a known brand is assumed to be one of ours.
	if strings.Contains(queryLower, "appliance") {
		for _, brand := range sf.cfg.Brands {
			if strings.Contains(queryLower, brand) {
				return &ScopeResult{InScope: true, Rule: "appliance_brand"}
			}
		}
	}

	hasOutOfScope := sf.hasOutOfScopeTerm(queryLower)
	hasAppliance := containsAny(queryLower, sf.cfg.ApplianceKeywords)

	if hasOutOfScope && !hasAppliance {
		return &ScopeResult{InScope: false, Rule: "out_of_scope_term"}
	}
	if hasAppliance {
		return &ScopeResult{InScope: true, Rule: "appliance_keyword"}
	}

	if containsAny(queryLower, sf.cfg.PartKeywords) {
		return &ScopeResult{InScope: true, Rule: "part_keyword"}
	}

	// A bare brand mention needs enough surrounding context.
	wordCount := len(strings.Fields(queryLower))
	for _, brand := range sf.cfg.Brands {
		if strings.Contains(queryLower, brand) {
			if wordCount > sf.cfg.VagueQueryMaxWords || containsAny(queryLower, sf.cfg.PartKeywords) {
				return &ScopeResult{InScope: true, Rule: "brand_context"}
			}
		}
	}

	if strings.Contains(queryLower, "part") {
		if wordCount <= sf.cfg.VagueQueryMaxWords {
			return &ScopeResult{InScope: false, Rule: "vague_part"}
		}
		return &ScopeResult{InScope: true, Rule: "part_context"}
	}

	return &ScopeResult{InScope: false, Rule: "no_match"}
}

// hasModelNumber reports whether the raw text carries a plausible model
// number: a pattern match that either starts with a known prefix or is at
// least eight characters long.
func (sf *ScopeFilter) hasModelNumber(query string) bool {
	for _, re := range sf.modelPatterns {
		for _, match := range re.FindAllString(query, -1) {
			for _, prefix := range sf.cfg.ModelPrefixes {
				if strings.HasPrefix(match, prefix) {
					return true
				}
			}
			if len(match) >= 8 {
				return true
			}
		}
	}
	return false
}

// hasOutOfScopeTerm does whole-word matching by padding both the term and
// the text with spaces.
func (sf *ScopeFilter) hasOutOfScopeTerm(queryLower string) bool {
	padded := " " + queryLower + " "
	for _, term := range sf.cfg.OutOfScopeTerms {
		if strings.Contains(padded, " "+term+" ") {
			return true
		}
	}
	return false
}

// containsAny reports whether any of the terms is a substring of the text.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
