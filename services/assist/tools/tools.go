// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package tools implements the intent handlers the orchestrator dispatches
// to. Each tool consumes a canonical colon-separated sub-query built by the
// orchestrator and returns a display string — either JSON for structured
// results or markdown for guides and diagnoses. Tools return an error only
// for infrastructure failures; domain misses ("part not found") are encoded
// in the result string so the conversation can continue.
package tools

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

// =============================================================================
// Metrics
// =============================================================================

var (
	toolInvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partdesk",
			Subsystem: "tools",
			Name:      "invocations_total",
			Help:      "Tool invocations by tool name and outcome.",
		},
		[]string{"tool", "outcome"},
	)

	toolLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "partdesk",
			Subsystem: "tools",
			Name:      "invoke_duration_seconds",
			Help:      "Tool invocation latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"tool"},
	)
)

var toolTracer = otel.Tracer("partdesk.assist.tools")

// =============================================================================
// Tool Interface
// =============================================================================

// Tool is one intent handler.
//
// Thread Safety: Implementations must be safe for concurrent use. CartTool is
// the exception — it is bound to one session's cart and is serialized by the
// session lock in the service layer.
type Tool interface {
	// Name returns the stable tool identifier reported in dispatch results.
	Name() string

	// Invoke runs the tool against a canonical sub-query. The returned
	// string is the display result; error is reserved for infrastructure
	// failures.
	Invoke(ctx context.Context, query string) (string, error)
}

// observe records invocation metrics. Use with a named error return:
//
//	defer observe(t.Name(), time.Now(), &err)
func observe(tool string, start time.Time, err *error) {
	outcome := "success"
	if *err != nil {
		outcome = "error"
	}
	toolInvocationsTotal.WithLabelValues(tool, outcome).Inc()
	toolLatency.WithLabelValues(tool).Observe(time.Since(start).Seconds())
}
