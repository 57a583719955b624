// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

import (
	"context"
	"log/slog"
	"strings"
)

// =============================================================================
// Mock catalog
// =============================================================================

// genericRepairSteps is returned when no installation doc covers the part.
var genericRepairSteps = []string{
	"1. Turn off power to the appliance",
	"2. Remove the old part carefully",
	"3. Install the new part in the same position",
	"4. Restore power and test the appliance",
}

// genericSafetyNotes is returned when no safety doc is present.
var genericSafetyNotes = []string{
	"ALWAYS disconnect power before attempting repairs",
	"Use appropriate safety gear (gloves, eye protection)",
	"Turn off water supply for water-connected appliances",
	"Keep a fire extinguisher nearby",
	"When in doubt, consult a professional",
}

// MockCatalog serves the fixture parts catalog from memory.
//
// Thread Safety: The fixture slices are never mutated after construction,
// so all methods are safe for concurrent use.
type MockCatalog struct {
	refrigeratorParts []Part
	dishwasherParts   []Part
	logger            *slog.Logger
}

// NewMockCatalog builds a catalog over the built-in fixture data.
func NewMockCatalog(logger *slog.Logger) *MockCatalog {
	if logger == nil {
		logger = slog.Default()
	}
	c := &MockCatalog{
		refrigeratorParts: refrigeratorParts,
		dishwasherParts:   dishwasherParts,
		logger:            logger,
	}
	logger.Debug("mock catalog initialized",
		"refrigerator_parts", len(c.refrigeratorParts),
		"dishwasher_parts", len(c.dishwasherParts))
	return c
}

// allParts returns the refrigerator parts followed by the dishwasher parts.
func (c *MockCatalog) allParts() []Part {
	all := make([]Part, 0, len(c.refrigeratorParts)+len(c.dishwasherParts))
	all = append(all, c.refrigeratorParts...)
	all = append(all, c.dishwasherParts...)
	return all
}

// GetPart returns the part with an exact part-number match.
func (c *MockCatalog) GetPart(_ context.Context, partNumber string) (*Part, error) {
	for _, part := range c.allParts() {
		if part.PartNumber == partNumber {
			p := part
			return &p, nil
		}
	}
	return nil, ErrPartNotFound
}

// SearchParts returns parts whose name, description, or part number contains
// the query, case-insensitively. An empty applianceType searches both
// collections, refrigerator parts first.
func (c *MockCatalog) SearchParts(_ context.Context, query, applianceType string, limit int) ([]Part, error) {
	q := strings.ToLower(query)

	var collections [][]Part
	if applianceType == "refrigerator" || applianceType == "" {
		collections = append(collections, c.refrigeratorParts)
	}
	if applianceType == "dishwasher" || applianceType == "" {
		collections = append(collections, c.dishwasherParts)
	}

	var results []Part
	for _, collection := range collections {
		for _, part := range collection {
			if strings.Contains(strings.ToLower(part.Name), q) ||
				strings.Contains(strings.ToLower(part.Description), q) ||
				strings.Contains(strings.ToLower(part.PartNumber), q) {
				results = append(results, part)
			}
			if len(results) >= limit {
				return results[:limit], nil
			}
		}
	}
	return results, nil
}

// FindByModel returns parts compatible with the model number. The model is
// uppercased before matching; fixture model lists are all uppercase.
func (c *MockCatalog) FindByModel(_ context.Context, modelNumber string, limit int) ([]Part, error) {
	model := strings.ToUpper(modelNumber)

	var results []Part
	for _, part := range c.allParts() {
		for _, m := range part.CompatibleModels {
			if m == model {
				results = append(results, part)
				break
			}
		}
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// CheckCompatibility reports whether the part lists the model. An unknown
// part number is reported as not compatible rather than an error.
func (c *MockCatalog) CheckCompatibility(ctx context.Context, partNumber, modelNumber string) (bool, error) {
	part, err := c.GetPart(ctx, partNumber)
	if err != nil {
		return false, nil
	}
	model := strings.ToUpper(modelNumber)
	for _, m := range part.CompatibleModels {
		if m == model {
			return true, nil
		}
	}
	return false, nil
}

// GetPopularParts returns the leading fixture parts for the appliance type.
// An unrecognized appliance type yields an empty result.
func (c *MockCatalog) GetPopularParts(_ context.Context, applianceType string, limit int) ([]Part, error) {
	var source []Part
	switch strings.ToLower(applianceType) {
	case "refrigerator":
		source = c.refrigeratorParts
	case "dishwasher":
		source = c.dishwasherParts
	default:
		return []Part{}, nil
	}
	if limit > len(source) {
		limit = len(source)
	}
	return source[:limit], nil
}

// =============================================================================
// Mock documentation store
// =============================================================================

// MockDocs serves the fixture installation, troubleshooting, and safety
// documentation from memory.
//
// Thread Safety: The fixture slice is never mutated after construction,
// so all methods are safe for concurrent use.
type MockDocs struct {
	docs []Doc
}

// NewMockDocs builds a documentation store over the built-in fixture docs.
func NewMockDocs() *MockDocs {
	return &MockDocs{docs: docFixtures}
}

// GetInstallationDocs returns installation docs whose title contains the part
// name, filtered by appliance type. Empty filters match everything.
func (d *MockDocs) GetInstallationDocs(_ context.Context, partName, applianceType string, limit int) ([]Doc, error) {
	var results []Doc
	for _, doc := range d.docs {
		if doc.Type != "installation" {
			continue
		}
		if applianceType != "" && doc.ApplianceType != applianceType {
			continue
		}
		if partName != "" && !strings.Contains(strings.ToLower(doc.Title), strings.ToLower(partName)) {
			continue
		}
		results = append(results, doc)
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// GetTroubleshootingDocs returns troubleshooting docs matching the problem in
// either title or content, filtered by appliance type.
func (d *MockDocs) GetTroubleshootingDocs(_ context.Context, problem, applianceType string, limit int) ([]Doc, error) {
	p := strings.ToLower(problem)

	var results []Doc
	for _, doc := range d.docs {
		if doc.Type != "troubleshooting" {
			continue
		}
		if applianceType != "" && doc.ApplianceType != applianceType {
			continue
		}
		if p != "" &&
			!strings.Contains(strings.ToLower(doc.Title), p) &&
			!strings.Contains(strings.ToLower(doc.Content), p) {
			continue
		}
		results = append(results, doc)
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// GetRepairSteps extracts the numbered replacement steps for a part from its
// installation doc. A doc whose steps sit under deeper subsections yields an
// empty list; callers treat that the same as having only prose docs. When no
// doc covers the part at all, generic steps are returned.
func (d *MockDocs) GetRepairSteps(ctx context.Context, partName, applianceType string) ([]string, error) {
	docs, err := d.GetInstallationDocs(ctx, partName, applianceType, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return genericRepairSteps, nil
	}

	content := docs[0].Content
	const marker = "## Step-by-Step Instructions"
	if !strings.Contains(content, marker) {
		return genericRepairSteps, nil
	}

	section := strings.SplitN(content, marker, 2)[1]
	if idx := strings.Index(section, "##"); idx >= 0 {
		section = section[:idx]
	}

	steps := []string{}
	for _, line := range strings.Split(strings.TrimSpace(section), "\n") {
		line = strings.TrimSpace(line)
		if startsWithStepNumber(line) {
			steps = append(steps, line)
		}
	}
	return steps, nil
}

// startsWithStepNumber reports whether the line opens with "1." through "10.".
func startsWithStepNumber(line string) bool {
	for i := 1; i <= 10; i++ {
		if strings.HasPrefix(line, stepPrefixes[i-1]) {
			return true
		}
	}
	return false
}

var stepPrefixes = []string{"1.", "2.", "3.", "4.", "5.", "6.", "7.", "8.", "9.", "10."}

// GetSafetyNotes pulls up to five headline safety points out of the safety
// doc, or generic notes when none exists.
func (d *MockDocs) GetSafetyNotes(_ context.Context, _ string) ([]string, error) {
	for _, doc := range d.docs {
		if doc.Type != "safety" {
			continue
		}

		var notes []string
		for _, line := range strings.Split(doc.Content, "\n") {
			trimmed := strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(trimmed, "###"):
				notes = append(notes, strings.TrimSpace(strings.ReplaceAll(trimmed, "###", "")))
			case strings.HasPrefix(trimmed, "1. **ALWAYS"):
				notes = append(notes, "ALWAYS disconnect power before repairs")
			case strings.Contains(line, "If you smell gas"):
				notes = append(notes, "If you smell gas, evacuate and call from a safe location")
			}
		}
		if len(notes) > 5 {
			notes = notes[:5]
		}
		return notes, nil
	}
	return genericSafetyNotes, nil
}
