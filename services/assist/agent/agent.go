// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package agent orchestrates the query-understanding pipeline: scope gating,
// intent classification, parameter extraction, and tool dispatch. One
// Orchestrator serves one conversation session and owns that session's
// context.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"

	"github.com/AleutianAI/PartDesk/services/assist/routing"
	"github.com/AleutianAI/PartDesk/services/assist/tools"
)

// =============================================================================
// Metrics
// =============================================================================

var (
	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partdesk",
			Subsystem: "agent",
			Name:      "queries_total",
			Help:      "Processed queries by resolved tool name.",
		},
		[]string{"tool_name"},
	)

	queryLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "partdesk",
			Subsystem: "agent",
			Name:      "query_duration_seconds",
			Help:      "End-to-end query processing latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	llmFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partdesk",
			Subsystem: "agent",
			Name:      "llm_fallbacks_total",
			Help:      "LLM intent classification fallbacks by outcome.",
		},
		[]string{"outcome"},
	)
)

var agentTracer = otel.Tracer("partdesk.assist.agent")

// =============================================================================
// Responses
// =============================================================================

// Canned responses for queries the pipeline cannot route to a tool.
const (
	outOfScopeReply = "I'm sorry, but I can only help with questions about " +
		"refrigerator and dishwasher parts."

	unclearReply = "I understand your question is about appliance parts, but " +
		"I'm not sure how to help specifically. Could you please rephrase your " +
		"question about refrigerator or dishwasher parts?"

	unclearFollowUp = "Try asking about finding a specific part, checking " +
		"compatibility, installation instructions, or diagnosing a problem."

	unknownIntentReply = "I'm not sure how to process that request."

	toolErrorFollowUp = "Could you try rephrasing your question?"
)

// problemIndicators force the diagnose intent when present in a query,
// regardless of the classifier's output.
var problemIndicators = []string{
	"not working", "not cooling", "leaking", "strange", "noise", "broken",
	"doesn't work", "isn't working", "problem", "issue", "doesn't",
}

// DispatchResult is the outcome of one processed query.
type DispatchResult struct {
	// ToolName is the tool that produced the result, or one of the
	// sentinel names "out_of_scope", "unknown_intent", "error".
	ToolName string `json:"tool_name"`

	// Result is the display string for the user.
	Result string `json:"result"`

	// FollowUp is an optional suggested next question.
	FollowUp string `json:"follow_up,omitempty"`
}

// Classifier is the LLM fallback used when rule-based classification cannot
// place an in-scope query.
type Classifier interface {
	Classify(ctx context.Context, query string) (string, error)
}

// =============================================================================
// Orchestrator
// =============================================================================

// Orchestrator runs one session's queries through the pipeline.
//
// Description:
//
//	Each query passes through, in order: context-dependence detection,
//	the scope gate, rule-based classification with a diagnose override,
//	an optional LLM fallback, parameter extraction, and tool dispatch.
//	ProcessQuery always produces a DispatchResult; infrastructure
//	failures become an "error" result rather than a returned error.
//
// Thread Safety: Not safe for concurrent use. The session layer serializes
// queries per session.
type Orchestrator struct {
	scope      *routing.ScopeFilter
	classifier *routing.IntentClassifier
	extractor  *routing.ParameterExtractor
	resolver   *routing.ContextResolver
	llm        Classifier
	tools      map[routing.Intent]tools.Tool
	cctx       *routing.ConversationContext
	logger     *slog.Logger
}

// Config wires an Orchestrator's collaborators.
type Config struct {
	Scope      *routing.ScopeFilter
	Classifier *routing.IntentClassifier
	Extractor  *routing.ParameterExtractor
	Resolver   *routing.ContextResolver

	// LLM is the optional classification fallback. Nil disables it.
	LLM Classifier

	// Tools maps each routable intent to its handler.
	Tools map[routing.Intent]tools.Tool

	// Context is the session's conversation context. Nil starts a fresh
	// session.
	Context *routing.ConversationContext

	Logger *slog.Logger
}

// New creates an Orchestrator for one session.
func New(cfg Config) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cctx := cfg.Context
	if cctx == nil {
		cctx = &routing.ConversationContext{}
	}
	return &Orchestrator{
		scope:      cfg.Scope,
		classifier: cfg.Classifier,
		extractor:  cfg.Extractor,
		resolver:   cfg.Resolver,
		llm:        cfg.LLM,
		tools:      cfg.Tools,
		cctx:       cctx,
		logger:     logger,
	}
}

// Context returns the session's conversation context.
func (o *Orchestrator) Context() *routing.ConversationContext {
	return o.cctx
}

// ProcessQuery runs one user query through the pipeline.
//
// Inputs:
//
//	userInput - The raw query text.
//
// Outputs:
//
//	DispatchResult - Always populated; never panics and never returns an
//	error to the caller.
func (o *Orchestrator) ProcessQuery(ctx context.Context, userInput string) DispatchResult {
	ctx, span := agentTracer.Start(ctx, "agent.process_query")
	defer span.End()

	start := time.Now()
	result := o.processQuery(ctx, userInput)
	queryLatency.Observe(time.Since(start).Seconds())
	queriesTotal.WithLabelValues(result.ToolName).Inc()
	return result
}

func (o *Orchestrator) processQuery(ctx context.Context, userInput string) DispatchResult {
	// Continuation queries are rewritten from context and dispatched
	// directly; they do not advance the context themselves.
	if o.resolver.IsContextDependent(userInput, o.cctx) {
		if intent, enhanced, ok := o.resolver.Enhance(userInput, o.cctx); ok {
			o.logger.Info("dispatching context-dependent query",
				"query", truncateForLog(userInput, 80),
				"enhanced", enhanced,
				"intent", intent)
			return o.runTool(ctx, intent, enhanced)
		}
	}

	if !o.scope.IsInScope(ctx, userInput) {
		o.logger.Info("query out of scope", "query", truncateForLog(userInput, 80))
		return DispatchResult{ToolName: "out_of_scope", Result: outOfScopeReply}
	}

	classification := o.classifier.Classify(ctx, userInput)
	intent := classification.Intent

	if indicator, found := matchProblemIndicator(userInput); found {
		if intent != routing.IntentDiagnose {
			o.logger.Info("overriding intent to diagnose",
				"indicator", indicator,
				"previous_intent", intent)
		}
		intent = routing.IntentDiagnose
	}

	// The scope gate passed but the rules see nothing actionable; let the
	// LLM take a shot before giving up.
	if intent == routing.IntentOutOfScope && o.llm != nil {
		label, err := o.llm.Classify(ctx, userInput)
		if err != nil {
			llmFallbacksTotal.WithLabelValues("error").Inc()
			o.logger.Error("llm intent classification failed", "error", err)
		} else {
			llmFallbacksTotal.WithLabelValues("ok").Inc()
			o.logger.Info("llm classified intent", "intent", label)
			intent = routing.Intent(label)
		}
	}

	if intent == routing.IntentOutOfScope {
		return DispatchResult{
			ToolName: "out_of_scope",
			Result:   unclearReply,
			FollowUp: unclearFollowUp,
		}
	}

	result := o.runTool(ctx, intent, userInput)
	o.cctx.Update(intent, o.extractor.Extract(intent, userInput))
	return result
}

// runTool builds the tool sub-query for the intent and invokes the mapped
// tool.
func (o *Orchestrator) runTool(ctx context.Context, intent routing.Intent, userInput string) DispatchResult {
	tool, ok := o.tools[intent]
	if !ok {
		o.logger.Warn("no tool mapped for intent", "intent", intent)
		return DispatchResult{ToolName: "unknown_intent", Result: unknownIntentReply}
	}

	params := o.extractor.Extract(intent, userInput)
	subQuery, followUp := buildSubQuery(intent, params)

	o.logger.Info("running tool",
		"tool", tool.Name(),
		"intent", intent,
		"sub_query", truncateForLog(subQuery, 80))

	result, err := tool.Invoke(ctx, subQuery)
	if err != nil {
		o.logger.Error("tool invocation failed", "tool", tool.Name(), "error", err)
		return DispatchResult{
			ToolName: "error",
			Result:   fmt.Sprintf("I encountered an error while processing your request: %v", err),
			FollowUp: toolErrorFollowUp,
		}
	}

	if intent == routing.IntentLookup {
		followUp = lookupFollowUp(result)
	}
	return DispatchResult{ToolName: tool.Name(), Result: result, FollowUp: followUp}
}

// buildSubQuery renders the canonical colon-separated sub-query for the
// intent's tool grammar, plus the intent's fixed follow-up.
func buildSubQuery(intent routing.Intent, params routing.Params) (subQuery, followUp string) {
	switch intent {
	case routing.IntentLookup:
		return params.PartNumber, ""

	case routing.IntentCompatibility:
		return fmt.Sprintf("%s:%s", params.PartNumber, params.ModelNumber),
			"Would you like to see installation instructions for this part?"

	case routing.IntentInstall:
		q := params.PartName
		if params.ApplianceType != "" {
			q += ":" + params.ApplianceType
		}
		return q, "Do you need help finding this part?"

	case routing.IntentDiagnose:
		q := params.Problem
		if params.ApplianceType != "" {
			q += ":" + params.ApplianceType
		}
		return q, "Would you like me to help you find any of these parts?"

	case routing.IntentCart:
		action := params.CartAction
		if action == "" {
			action = "view"
		}
		subQuery = "view"
		switch {
		case action == "add" && params.PartNumber != "":
			subQuery = fmt.Sprintf("add:%s:%s", params.PartNumber, params.Quantity)
		case action == "remove" && params.PartNumber != "":
			subQuery = "remove:" + params.PartNumber
		case action == "clear":
			subQuery = "clear"
		}
		// The follow-up tracks the requested action, not the sub-query it
		// resolved to.
		switch action {
		case "add":
			followUp = "Would you like to view your cart or continue shopping?"
		case "view":
			followUp = "Would you like to checkout or continue shopping?"
		default:
			followUp = "Is there anything else you'd like to do with your cart?"
		}
		return subQuery, followUp

	case routing.IntentOrder:
		q := "status"
		switch {
		case params.OrderNumber != "" && params.Email != "":
			q = params.OrderNumber + ":" + params.Email
		case params.OrderNumber != "":
			q = params.OrderNumber
		case params.Email != "":
			q = "email:" + params.Email
		}
		return q, "Would you like to check another order or continue shopping?"
	}
	return "", ""
}

// lookupFollowUp derives a follow-up from a lookup result: nothing for a
// miss, the part's name on a hit, and a generic prompt when the result is
// not the expected JSON.
func lookupFollowUp(result string) string {
	var parsed struct {
		Error string `json:"error"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal([]byte(result), &parsed); err != nil {
		return "Would you like to check compatibility or get installation instructions?"
	}
	if parsed.Error != "" {
		return ""
	}
	if parsed.Name != "" {
		return fmt.Sprintf("Would you like installation instructions for the %s?", parsed.Name)
	}
	return "Would you like to check compatibility or get installation instructions?"
}

// matchProblemIndicator returns the first problem indicator present in the
// query.
func matchProblemIndicator(userInput string) (string, bool) {
	lowered := strings.ToLower(userInput)
	for _, indicator := range problemIndicators {
		if strings.Contains(lowered, indicator) {
			return indicator, true
		}
	}
	return "", false
}

// truncateForLog shortens a query for log lines.
func truncateForLog(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
