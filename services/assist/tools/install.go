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

// InstallationGuideTool assembles a markdown installation guide for a part.
//
// Inputs:
//   - query: "part_name[:appliance_type]"
//
// The tool prefers curated step-by-step instructions. When the docs store has
// no step list for the part it falls back to compiling the raw installation
// documents instead.
type InstallationGuideTool struct {
	docs catalog.Docs
}

// NewInstallationGuideTool creates an installation tool backed by the given
// documentation store.
func NewInstallationGuideTool(d catalog.Docs) *InstallationGuideTool {
	return &InstallationGuideTool{docs: d}
}

func (t *InstallationGuideTool) Name() string { return "installation_guide_tool" }

func (t *InstallationGuideTool) Invoke(ctx context.Context, query string) (result string, err error) {
	ctx, span := toolTracer.Start(ctx, "tools.installation_guide")
	defer span.End()
	defer observe(t.Name(), time.Now(), &err)

	parts := strings.SplitN(query, ":", 2)
	partName := strings.TrimSpace(parts[0])
	applianceType := ""
	if len(parts) == 2 {
		applianceType = strings.TrimSpace(parts[1])
	}

	steps, err := t.docs.GetRepairSteps(ctx, partName, applianceType)
	if err != nil {
		return "", fmt.Errorf("installation guide: %w", err)
	}
	if len(steps) > 0 {
		return t.stepGuide(ctx, partName, applianceType, steps)
	}
	return t.docGuide(ctx, partName, applianceType)
}

// stepGuide renders curated repair steps plus appliance safety precautions.
func (t *InstallationGuideTool) stepGuide(ctx context.Context, partName, applianceType string, steps []string) (string, error) {
	numbered := make([]string, len(steps))
	for i, step := range steps {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, step)
	}

	notes, err := t.docs.GetSafetyNotes(ctx, applianceType)
	if err != nil {
		return "", fmt.Errorf("installation guide: safety notes: %w", err)
	}
	safetySection := ""
	if len(notes) > 0 {
		bullets := make([]string, len(notes))
		for i, note := range notes {
			bullets[i] = "• " + note
		}
		safetySection = "\n\n⚠️ SAFETY PRECAUTIONS:\n" + strings.Join(bullets, "\n")
	}

	return fmt.Sprintf(
		"# Installation Guide for %s\n\n## Step-by-Step Instructions:\n%s%s",
		partName, strings.Join(numbered, "\n"), safetySection,
	), nil
}

// docGuide compiles up to two raw installation documents for the part.
func (t *InstallationGuideTool) docGuide(ctx context.Context, partName, applianceType string) (string, error) {
	docs, err := t.docs.GetInstallationDocs(ctx, partName, applianceType, 2)
	if err != nil {
		return "", fmt.Errorf("installation guide: docs: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Sprintf("No installation instructions found for %s.", partName), nil
	}

	var b strings.Builder
	b.WriteString("# Installation Guide\n\n")
	for _, doc := range docs {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", doc.Title, doc.Content)
	}

	notes, err := t.docs.GetSafetyNotes(ctx, applianceType)
	if err != nil {
		return "", fmt.Errorf("installation guide: safety notes: %w", err)
	}
	if len(notes) > 0 {
		bullets := make([]string, len(notes))
		for i, note := range notes {
			bullets[i] = "• " + note
		}
		b.WriteString("## ⚠️ Safety Precautions:\n")
		b.WriteString(strings.Join(bullets, "\n"))
	}
	return b.String(), nil
}
