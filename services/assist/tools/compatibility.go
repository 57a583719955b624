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
	"strings"
	"time"

	"github.com/AleutianAI/PartDesk/services/assist/catalog"
)

// CompatibilityTool checks whether a part fits an appliance model.
//
// Inputs:
//   - query: "part_number:model_number"
type CompatibilityTool struct {
	catalog catalog.Catalog
}

// NewCompatibilityTool creates a compatibility tool backed by the given catalog.
func NewCompatibilityTool(c catalog.Catalog) *CompatibilityTool {
	return &CompatibilityTool{catalog: c}
}

func (t *CompatibilityTool) Name() string { return "compatibility_tool" }

func (t *CompatibilityTool) Invoke(ctx context.Context, query string) (result string, err error) {
	ctx, span := toolTracer.Start(ctx, "tools.compatibility")
	defer span.End()
	defer observe(t.Name(), time.Now(), &err)

	parts := strings.Split(query, ":")
	if len(parts) != 2 {
		return "Invalid query format. Use 'part_number:model_number'", nil
	}
	partNumber := strings.TrimSpace(parts[0])
	modelNumber := strings.TrimSpace(parts[1])

	compatible, err := t.catalog.CheckCompatibility(ctx, partNumber, modelNumber)
	if err != nil {
		return "", fmt.Errorf("compatibility check: %w", err)
	}
	if !compatible {
		return fmt.Sprintf(
			"Not Compatible: Part #%s is not compatible with model %s.",
			partNumber, modelNumber,
		), nil
	}

	// Name the part in the positive answer when the catalog knows it.
	partName := "Unknown Part"
	if part, lookupErr := t.catalog.GetPart(ctx, partNumber); lookupErr == nil {
		partName = part.Name
	}
	return fmt.Sprintf(
		"Fits: %s (Part #%s) is compatible with model %s.",
		partName, partNumber, modelNumber,
	), nil
}
