// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tools

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/AleutianAI/PartDesk/services/assist/catalog"
)

// commonPartTerms are the replaceable components scanned for inside
// troubleshooting documents so a diagnosis can suggest parts to check.
var commonPartTerms = []string{
	"compressor", "condenser", "evaporator", "fan motor", "water filter",
	"ice maker", "thermostat", "temperature control", "defrost heater",
	"door gasket", "water valve", "dispenser", "control board", "pump",
	"spray arm", "heating element", "water inlet valve", "float switch",
	"timer", "control panel", "door latch", "drain hose",
}

// ErrorDiagnosisTool turns a problem description into a markdown diagnosis
// built from troubleshooting documents, with likely replacement parts priced
// from the catalog.
//
// Inputs:
//   - query: "problem[:appliance_type]"
type ErrorDiagnosisTool struct {
	docs    catalog.Docs
	catalog catalog.Catalog
}

// NewErrorDiagnosisTool creates a diagnosis tool backed by the given
// documentation store and catalog.
func NewErrorDiagnosisTool(d catalog.Docs, c catalog.Catalog) *ErrorDiagnosisTool {
	return &ErrorDiagnosisTool{docs: d, catalog: c}
}

func (t *ErrorDiagnosisTool) Name() string { return "error_diagnosis_tool" }

func (t *ErrorDiagnosisTool) Invoke(ctx context.Context, query string) (result string, err error) {
	ctx, span := toolTracer.Start(ctx, "tools.error_diagnosis")
	defer span.End()
	defer observe(t.Name(), time.Now(), &err)

	parts := strings.SplitN(query, ":", 2)
	problem := strings.TrimSpace(parts[0])
	applianceType := ""
	if len(parts) == 2 {
		applianceType = strings.TrimSpace(parts[1])
	}

	docs, err := t.docs.GetTroubleshootingDocs(ctx, problem, applianceType, 3)
	if err != nil {
		return "", fmt.Errorf("error diagnosis: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Sprintf("No troubleshooting information found for '%s'.", problem), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Diagnosis for: %s\n\n", problem)

	seen := map[string]bool{}
	for _, doc := range docs {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", doc.Title, doc.Content)
		for _, name := range likelyParts(doc.Content) {
			seen[name] = true
		}
	}

	if len(seen) > 0 {
		names := make([]string, 0, len(seen))
		for name := range seen {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("## Likely Parts to Check/Replace:\n")
		for _, name := range names {
			matches, searchErr := t.catalog.SearchParts(ctx, name, applianceType, 1)
			if searchErr != nil {
				return "", fmt.Errorf("error diagnosis: part search: %w", searchErr)
			}
			if len(matches) > 0 {
				p := matches[0]
				fmt.Fprintf(&b, "• %s (Part #%s, Price: $%s)\n",
					p.Name, p.PartNumber, formatPrice(p.Price))
			} else {
				fmt.Fprintf(&b, "• %s\n", name)
			}
		}
	}
	return b.String(), nil
}

// likelyParts scans text for known replaceable component terms and returns
// their display names.
func likelyParts(text string) []string {
	lowered := strings.ToLower(text)
	var found []string
	for _, term := range commonPartTerms {
		if strings.Contains(lowered, term) {
			found = append(found, titleCase(term))
		}
	}
	return found
}

// titleCase capitalizes each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// formatPrice renders a price with only the precision the value carries,
// so 239.5 prints as "239.5" and 42 prints as "42".
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
