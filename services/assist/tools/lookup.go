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
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AleutianAI/PartDesk/services/assist/catalog"
)

// ProductLookupTool resolves a part number to its full catalog record.
type ProductLookupTool struct {
	catalog catalog.Catalog
}

// NewProductLookupTool creates a lookup tool backed by the given catalog.
func NewProductLookupTool(c catalog.Catalog) *ProductLookupTool {
	return &ProductLookupTool{catalog: c}
}

func (t *ProductLookupTool) Name() string { return "product_lookup_tool" }

// Invoke looks up the part number in the query and returns the part record
// as indented JSON, or a JSON error object when the part is unknown.
func (t *ProductLookupTool) Invoke(ctx context.Context, query string) (result string, err error) {
	ctx, span := toolTracer.Start(ctx, "tools.product_lookup")
	defer span.End()
	defer observe(t.Name(), time.Now(), &err)

	partNumber := strings.TrimSpace(query)
	part, err := t.catalog.GetPart(ctx, partNumber)
	if errors.Is(err, catalog.ErrPartNotFound) {
		return errorJSON(fmt.Sprintf("Part %s not found", partNumber)), nil
	}
	if err != nil {
		return "", fmt.Errorf("product lookup: %w", err)
	}

	out, err := json.MarshalIndent(part, "", "  ")
	if err != nil {
		return "", fmt.Errorf("product lookup: encode part: %w", err)
	}
	return string(out), nil
}

// errorJSON encodes a domain-level error as a compact JSON object so callers
// can key on the "error" field.
func errorJSON(msg string) string {
	out, _ := json.Marshal(map[string]string{"error": msg})
	return string(out)
}
