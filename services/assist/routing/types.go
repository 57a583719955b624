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

// Intent is one of the query intents the pipeline can resolve.
type Intent string

const (
	// IntentLookup finds a specific part.
	IntentLookup Intent = "lookup"

	// IntentCompatibility checks a part against a model number.
	IntentCompatibility Intent = "compatibility"

	// IntentInstall requests installation instructions.
	IntentInstall Intent = "install"

	// IntentDiagnose troubleshoots an appliance problem.
	IntentDiagnose Intent = "diagnose"

	// IntentOrder covers purchase and order-status requests.
	IntentOrder Intent = "order"

	// IntentStatus tracks an existing order. No tool is mapped to it;
	// dispatch reports it as unroutable.
	IntentStatus Intent = "status"

	// IntentCart manipulates the shopping cart. Only the context
	// resolver produces it.
	IntentCart Intent = "cart"

	// IntentOutOfScope marks a query outside refrigerator/dishwasher parts.
	IntentOutOfScope Intent = "out_of_scope"
)

// ClassificationSource records which stage resolved the intent.
type ClassificationSource string

const (
	// SourceException is an exact-query exception hit.
	SourceException ClassificationSource = "exception"

	// SourcePhrase is a phrase-table hit.
	SourcePhrase ClassificationSource = "phrase"

	// SourceOverride is an explicit override-chain hit.
	SourceOverride ClassificationSource = "override"

	// SourceScore is the weighted keyword scorer.
	SourceScore ClassificationSource = "score"

	// SourceDefault is the lookup fallback when nothing scored.
	SourceDefault ClassificationSource = "default"

	// SourceScope marks an out-of-scope gate rejection.
	SourceScope ClassificationSource = "scope"
)

// ClassificationResult is the outcome of rule-based intent detection.
type ClassificationResult struct {
	// Intent is the resolved intent.
	Intent Intent

	// Source is the stage that resolved it.
	Source ClassificationSource

	// Rule names the specific rule that fired, when one did
	// (exception label, matched phrase, or override name).
	Rule string
}

// Params holds the entities extracted from a query for one intent.
//
// Description:
//
//	All fields are optional strings; absence is the empty string. Which
//	fields are populated depends on the intent the extractor ran for.
type Params struct {
	PartNumber    string
	PartName      string
	ModelNumber   string
	ApplianceType string
	Problem       string
	CartAction    string
	Quantity      string
	OrderNumber   string
	Email         string
}

// ConversationContext tracks the entities seen across a session.
//
// Description:
//
//	Fields update monotonically: a query that does not mention a part
//	number leaves the previous one in place. One context belongs to one
//	agent; it is not shared across sessions.
type ConversationContext struct {
	LastIntent        Intent `json:"last_intent,omitempty"`
	LastPartNumber    string `json:"last_part_number,omitempty"`
	LastPartName      string `json:"last_part_name,omitempty"`
	LastModelNumber   string `json:"last_model_number,omitempty"`
	LastApplianceType string `json:"last_appliance_type,omitempty"`
}

// Update folds one query's intent and extracted params into the context.
// Only fields present in params overwrite; everything else is retained.
func (c *ConversationContext) Update(intent Intent, params Params) {
	c.LastIntent = intent
	if params.PartNumber != "" {
		c.LastPartNumber = params.PartNumber
	}
	if params.PartName != "" {
		c.LastPartName = params.PartName
	}
	if params.ModelNumber != "" {
		c.LastModelNumber = params.ModelNumber
	}
	if params.ApplianceType != "" {
		c.LastApplianceType = params.ApplianceType
	}
}

// truncateForLog shortens a query for log lines.
func truncateForLog(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
