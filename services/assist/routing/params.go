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
	"regexp"
	"strings"
)

// =============================================================================
// Entity Patterns
// =============================================================================

var (
	// partNumberPattern matches forms like "W10295370A" or "67003753".
	partNumberPattern = regexp.MustCompile(`[a-zA-Z]{0,3}\d{4,10}[a-zA-Z0-9]{0,5}`)

	// modelNumberPattern matches forms like "WDT780SAEM1". A match equal to
	// the extracted part number is rejected.
	modelNumberPattern = regexp.MustCompile(`[a-zA-Z]{2,5}\d{3,7}[a-zA-Z0-9]{0,5}`)

	// modelNumberAltPattern catches interleaved forms like "GD5SHAAXNQ00"
	// that the primary family misses.
	modelNumberAltPattern = regexp.MustCompile(`[a-zA-Z]{1,3}\d{1,2}[a-zA-Z]{2,8}\d{1,4}[a-zA-Z0-9]{0,2}`)

	// quantityPattern matches "<n> pcs|pieces|units|quantity" in lowercased text.
	quantityPattern = regexp.MustCompile(`(\d+)\s+(pcs|pieces|units|quantity)`)

	// orderNumberPattern matches "order [number ]#123456" in lowercased text.
	orderNumberPattern = regexp.MustCompile(`order\s+(?:number\s+)?#?(\d{6,10})`)

	// emailPattern matches a plain email address in the raw text.
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
)

// partSynonym maps spoken part names to demo catalog part numbers.
type partSynonym struct {
	triggers []string
	name     string
	number   string
}

// partSynonyms is scanned in order; the first trigger hit wins.
var partSynonyms = []partSynonym{
	{triggers: []string{"water filter"}, name: "water filter", number: "W10295370A"},
	{triggers: []string{"ice maker"}, name: "ice maker", number: "W10190961"},
	{triggers: []string{"control board"}, name: "control board", number: "WPW10503278"},
	{triggers: []string{"heating element", "heater"}, name: "heating element", number: "WPW10518394"},
	{triggers: []string{"drain pump"}, name: "drain pump", number: "W10348269"},
	{triggers: []string{"door gasket", "seal"}, name: "door gasket", number: "WPW10438677"},
}

// knownPartNames is the name-only scan list for lookup and install queries.
var knownPartNames = []string{
	"water filter", "ice maker", "control board",
	"heating element", "drain pump", "door gasket",
}

// knownProblems is the ordered problem scan list for diagnose queries.
var knownProblems = []string{
	"not cooling", "no water", "leaking", "not draining",
	"making noise", "not working", "ice maker", "no ice",
	"water dispenser", "not running", "door", "light", "strange taste",
}

// =============================================================================
// ParameterExtractor
// =============================================================================

// ParameterExtractor pulls typed entities out of a query for one intent.
//
// Description:
//
//	Extraction is intent-directed: each intent populates only the fields
//	its tool grammar needs. Part and model numbers are matched on the raw
//	text; everything else on the lowercased text.
//
// Thread Safety: Stateless; safe for concurrent use.
type ParameterExtractor struct{}

// NewParameterExtractor creates a ParameterExtractor.
func NewParameterExtractor() *ParameterExtractor {
	return &ParameterExtractor{}
}

// Extract returns the entities relevant to the intent.
//
// Inputs:
//
//	intent - The resolved intent directing extraction.
//	query - The user's query string, case preserved.
//
// Outputs:
//
//	Params - Extracted entities; unset fields are empty strings.
func (pe *ParameterExtractor) Extract(intent Intent, query string) Params {
	queryLower := strings.ToLower(query)
	var params Params

	switch intent {
	case IntentLookup:
		if m := partNumberPattern.FindString(query); m != "" {
			params.PartNumber = m
			return params
		}
		for _, syn := range partSynonyms {
			if containsAny(queryLower, syn.triggers) {
				params.PartNumber = syn.number
				params.PartName = syn.name
				return params
			}
		}
		for _, name := range knownPartNames {
			if strings.Contains(queryLower, name) {
				params.PartName = name
				break
			}
		}

	case IntentCompatibility:
		params.PartNumber = partNumberPattern.FindString(query)
		if m := modelNumberPattern.FindString(query); m != "" && m != params.PartNumber {
			params.ModelNumber = m
		}
		if params.ModelNumber == "" {
			if m := modelNumberAltPattern.FindString(query); m != "" && m != params.PartNumber {
				params.ModelNumber = m
			}
		}
		// A model with no part plus a water-filter mention falls back to
		// the demo filter part.
		if params.ModelNumber != "" && params.PartNumber == "" &&
			strings.Contains(queryLower, "water filter") {
			params.PartNumber = "W10295370A"
			params.PartName = "water filter"
		}

	case IntentInstall, IntentDiagnose:
		params.ApplianceType = detectApplianceType(queryLower)
		if intent == IntentInstall {
			for _, name := range knownPartNames {
				if strings.Contains(queryLower, name) {
					params.PartName = name
					break
				}
			}
		} else {
			for _, problem := range knownProblems {
				if strings.Contains(queryLower, problem) {
					params.Problem = problem
					break
				}
			}
			// "the water tastes strange" means the filter is due.
			if strings.Contains(queryLower, "water") &&
				(strings.Contains(queryLower, "taste") ||
					strings.Contains(queryLower, "strange") ||
					strings.Contains(queryLower, "bad")) {
				params.Problem = "water filter"
				params.PartName = "water filter"
			}
		}

	case IntentCart:
		params.PartNumber = partNumberPattern.FindString(query)
		if m := quantityPattern.FindStringSubmatch(queryLower); m != nil {
			params.Quantity = m[1]
		} else {
			params.Quantity = "1"
		}
		params.CartAction = detectCartAction(queryLower)

	case IntentOrder:
		if m := orderNumberPattern.FindStringSubmatch(queryLower); m != nil {
			params.OrderNumber = m[1]
		}
		params.Email = emailPattern.FindString(query)
	}

	return params
}

// detectApplianceType maps appliance mentions to the two supported types.
func detectApplianceType(queryLower string) string {
	switch {
	case strings.Contains(queryLower, "refrigerator") || strings.Contains(queryLower, "fridge"):
		return "refrigerator"
	case strings.Contains(queryLower, "dishwasher") || strings.Contains(queryLower, "dish washer"):
		return "dishwasher"
	}
	return ""
}

// detectCartAction maps verbs to cart operations, defaulting to view.
func detectCartAction(queryLower string) string {
	has := func(s string) bool { return strings.Contains(queryLower, s) }
	switch {
	case has("add") || has("put"):
		return "add"
	case has("remove") || has("delete"):
		return "remove"
	case has("view") || has("show") || has("what"):
		return "view"
	case has("clear") || has("empty"):
		return "clear"
	}
	return "view"
}
