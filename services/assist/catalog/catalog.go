// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package catalog provides the parts catalog and repair documentation
// collaborators the dispatch tools consume. The in-memory implementations
// carry a fixture catalog of refrigerator and dishwasher parts for demo
// and test use; the interfaces leave room for a live backend.
package catalog

import (
	"context"
	"errors"
)

// ErrPartNotFound is returned by GetPart for an unknown part number.
var ErrPartNotFound = errors.New("catalog: part not found")

// Part is one catalog entry.
type Part struct {
	PartNumber       string   `json:"partNumber"`
	Name             string   `json:"name"`
	ImageURL         string   `json:"imageUrl"`
	Price            float64  `json:"price"`
	Stock            string   `json:"stock"`
	CompatibleModels []string `json:"compatibleModels"`
	Description      string   `json:"description"`
}

// Doc is one repair documentation entry.
type Doc struct {
	Title         string `json:"title"`
	Type          string `json:"type"`
	ApplianceType string `json:"applianceType"`
	Content       string `json:"content"`
}

// Catalog is the read side of the parts catalog.
//
// Thread Safety: Implementations must be safe for concurrent use.
type Catalog interface {
	// GetPart returns the part with the given number, or ErrPartNotFound.
	GetPart(ctx context.Context, partNumber string) (*Part, error)

	// SearchParts returns parts whose name, description, or part number
	// contains the query, optionally filtered by appliance type.
	SearchParts(ctx context.Context, query, applianceType string, limit int) ([]Part, error)

	// FindByModel returns parts compatible with the model number.
	FindByModel(ctx context.Context, modelNumber string, limit int) ([]Part, error)

	// CheckCompatibility reports whether the part lists the model.
	CheckCompatibility(ctx context.Context, partNumber, modelNumber string) (bool, error)

	// GetPopularParts returns the leading parts for one appliance type.
	GetPopularParts(ctx context.Context, applianceType string, limit int) ([]Part, error)
}

// Docs is the read side of the repair documentation store.
//
// Thread Safety: Implementations must be safe for concurrent use.
type Docs interface {
	// GetInstallationDocs returns installation docs matching a part name
	// and appliance type; empty filters match everything.
	GetInstallationDocs(ctx context.Context, partName, applianceType string, limit int) ([]Doc, error)

	// GetTroubleshootingDocs returns troubleshooting docs matching a
	// problem description and appliance type.
	GetTroubleshootingDocs(ctx context.Context, problem, applianceType string, limit int) ([]Doc, error)

	// GetRepairSteps returns the numbered replacement steps for a part,
	// falling back to generic steps when no doc covers it.
	GetRepairSteps(ctx context.Context, partName, applianceType string) ([]string, error)

	// GetSafetyNotes returns up to five safety notes for repairs.
	GetSafetyNotes(ctx context.Context, applianceType string) ([]string, error)
}
