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
	intentResolvedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "partdesk",
		Subsystem: "intent",
		Name:      "resolved_total",
		Help:      "Total intents resolved by intent and stage",
	}, []string{"intent", "source"})

	intentLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "partdesk",
		Subsystem: "intent",
		Name:      "latency_seconds",
		Help:      "Intent classification latency",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
	})
)

// =============================================================================
// OTel Tracer
// =============================================================================

var intentTracer = otel.Tracer("partdesk.assist.routing.intent")

// =============================================================================
// IntentClassifier
// =============================================================================

// IntentClassifier resolves a query to one intent.
//
// Description:
//
//	Implements a 5-stage deterministic pipeline:
//	1. Exact-query exceptions
//	2. Scope gate (out-of-scope queries never reach later stages)
//	3. Ordered phrase tables, with the buy/purchase skip on the
//	   "not working" phrase family
//	4. Explicit override chain for order/status/diagnose/install/
//	   compatibility patterns the scorer gets wrong
//	5. Weighted keyword scoring with strong-keyword bonuses; lookup
//	   is the default when nothing scores
//
//	The "add" + "cart" override resolves to order rather than cart.
//	That mapping is load-bearing: dispatch sends order to the
//	order-status tool, so "add X to my cart" deliberately reproduces
//	the shipped behavior instead of reaching the cart.
//
// Thread Safety: Safe for concurrent use (all state is read-only after
// construction).
type IntentClassifier struct {
	cfg    *config.IntentConfig
	scope  *ScopeFilter
	logger *slog.Logger

	// exceptions maps exact lowercased queries to their pinned intent.
	exceptions map[string]config.IntentException
}

// NewIntentClassifier creates an IntentClassifier.
//
// Inputs:
//
//	cfg - Intent configuration. Must not be nil.
//	scope - Scope filter for the stage-2 gate. Must not be nil.
//	logger - Logger instance. May be nil (defaults to slog.Default).
//
// Thread Safety: The returned classifier is safe for concurrent use.
func NewIntentClassifier(cfg *config.IntentConfig, scope *ScopeFilter, logger *slog.Logger) *IntentClassifier {
	if logger == nil {
		logger = slog.Default()
	}

	ic := &IntentClassifier{
		cfg:        cfg,
		scope:      scope,
		logger:     logger,
		exceptions: make(map[string]config.IntentException, len(cfg.Exceptions)),
	}
	for _, ex := range cfg.Exceptions {
		ic.exceptions[strings.ToLower(ex.Query)] = ex
	}
	return ic
}

// Classify resolves the intent for one query.
//
// Inputs:
//
//	ctx - Context for tracing. Must not be nil.
//	query - The user's query string.
//
// Outputs:
//
//	ClassificationResult - Intent plus the stage and rule that resolved it.
//
// Thread Safety: Safe for concurrent use.
func (ic *IntentClassifier) Classify(ctx context.Context, query string) ClassificationResult {
	start := time.Now()

	ctx, span := intentTracer.Start(ctx, "routing.IntentClassifier.Classify")
	defer span.End()

	result := ic.classify(ctx, query)

	intentResolvedTotal.WithLabelValues(string(result.Intent), string(result.Source)).Inc()
	intentLatency.Observe(time.Since(start).Seconds())

	span.SetAttributes(
		attribute.String("intent", string(result.Intent)),
		attribute.String("source", string(result.Source)),
		attribute.String("rule", result.Rule),
	)

	ic.logger.Debug("intent resolved",
		slog.String("intent", string(result.Intent)),
		slog.String("source", string(result.Source)),
		slog.String("rule", result.Rule),
		slog.String("query_preview", truncateForLog(query, 80)),
	)

	return result
}

func (ic *IntentClassifier) classify(ctx context.Context, query string) ClassificationResult {
	queryLower := strings.ToLower(query)

	// Stage 1: exact-query exceptions.
	if ex, ok := ic.exceptions[queryLower]; ok {
		return ClassificationResult{Intent: Intent(ex.Intent), Source: SourceException, Rule: ex.Label}
	}

	// Stage 2: scope gate.
	if !ic.scope.IsInScope(ctx, query) {
		return ClassificationResult{Intent: IntentOutOfScope, Source: SourceScope}
	}

	// Stage 3: ordered phrase tables.
	if r, ok := ic.matchPhrases(queryLower); ok {
		return r
	}

	// Stage 4: override chain.
	if r, ok := ic.applyOverrides(queryLower); ok {
		return r
	}

	// Stage 5: weighted keyword scoring.
	return ic.scoreKeywords(queryLower)
}

// notWorkingPhrases defer to a purchase mention; the override chain picks
// those queries up later.
var notWorkingPhrases = map[string]bool{
	"isn't working":   true,
	"not working":     true,
	"stopped working": true,
}

func (ic *IntentClassifier) matchPhrases(queryLower string) (ClassificationResult, bool) {
	for _, pr := range ic.cfg.Phrases {
		for _, phrase := range pr.Phrases {
			if !strings.Contains(queryLower, phrase) {
				continue
			}
			if notWorkingPhrases[phrase] &&
				(strings.Contains(queryLower, "buy") || strings.Contains(queryLower, "purchase")) {
				continue
			}
			return ClassificationResult{Intent: Intent(pr.Intent), Source: SourcePhrase, Rule: phrase}, true
		}
	}
	return ClassificationResult{}, false
}

// applyOverrides runs the ordered override chain. Each rule encodes a
// pattern the keyword scorer is known to misclassify.
func (ic *IntentClassifier) applyOverrides(queryLower string) (ClassificationResult, bool) {
	has := func(s string) bool { return strings.Contains(queryLower, s) }
	override := func(intent Intent, rule string) (ClassificationResult, bool) {
		return ClassificationResult{Intent: intent, Source: SourceOverride, Rule: rule}, true
	}

	if has("add") && has("cart") {
		return override(IntentOrder, "add_cart")
	}

	if (has("purchase") || has("buy")) && !(has("how") || has("where") || has("this")) {
		return override(IntentOrder, "purchase_buy")
	}

	if has("shipping") && has("options") {
		return override(IntentOrder, "shipping_options")
	}

	if (has("order") && has("my")) || has("track") || has("shipping") || has("delivery") {
		if has("where is") || has("track") || has("when will") || has("status") {
			return override(IntentStatus, "order_tracking")
		}
		if has("buy") || has("purchase") || has("order") || has("cart") {
			return override(IntentOrder, "order_purchase")
		}
	}

	if has("not working") || has("isn't working") || has("stopped working") || has("problems") {
		if !((has("need") && has("buy")) || (has("need") && has("purchase"))) {
			return override(IntentDiagnose, "problem_indicator")
		}
	}

	if has("how to fix") || has("troubleshoot") {
		return override(IntentDiagnose, "how_to_fix")
	}

	if has("how do i") && (has("install") || has("replace") || has("fix")) {
		return override(IntentInstall, "how_do_i")
	}
	if has("how to") && (has("install") || has("replace") || has("fix")) {
		return override(IntentInstall, "how_to")
	}

	if has("this part") &&
		(has("compatible") || has("fit") || has("fits") || has("work") || has("works")) {
		return override(IntentCompatibility, "this_part")
	}

	return ClassificationResult{}, false
}

// scoreKeywords scores every intent's keyword table and picks the highest.
// Ties keep the first declared intent; a zero maximum defaults to lookup.
func (ic *IntentClassifier) scoreKeywords(queryLower string) ClassificationResult {
	scores := make(map[string]int, len(ic.cfg.Intents))
	for _, it := range ic.cfg.Intents {
		strong := make(map[string]bool, len(it.StrongKeywords))
		for _, s := range it.StrongKeywords {
			strong[s] = true
		}
		for _, kw := range it.Keywords {
			if !strings.Contains(queryLower, kw) {
				continue
			}
			scores[it.Name] += ic.cfg.KeywordWeight
			if strong[kw] {
				scores[it.Name] += ic.cfg.StrongKeywordBonus
			}
		}
	}

	if strings.Contains(queryLower, "this part") && scores[string(IntentCompatibility)] > 0 {
		scores[string(IntentCompatibility)] += ic.cfg.StrongKeywordBonus
	}
	if strings.Contains(queryLower, "water filter") && strings.Contains(queryLower, "how") {
		scores[string(IntentInstall)] += 3
	}

	maxScore := 0
	detected := IntentLookup
	for _, it := range ic.cfg.Intents {
		if scores[it.Name] > maxScore {
			maxScore = scores[it.Name]
			detected = Intent(it.Name)
		}
	}

	if maxScore == 0 {
		return ClassificationResult{Intent: IntentLookup, Source: SourceDefault}
	}
	return ClassificationResult{Intent: detected, Source: SourceScore}
}
