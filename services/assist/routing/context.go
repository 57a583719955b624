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
	"fmt"
	"log/slog"
	"strings"
)

// followUpPatterns mark a short query as a continuation when it starts
// with one of them.
var followUpPatterns = []string{
	"how do i",
	"how to",
	"install",
	"compatible",
	"will it work",
	"is it compatible",
	"where does it go",
	"how much",
	"what about",
	"add to cart",
	"remove from cart",
	"check order",
}

// contextPronouns mark a short query as referring to an earlier entity.
var contextPronouns = []string{"it", "this", "that", "them", "these", "those"}

// maxShortQueryWords is the word count at or under which pronoun and
// pattern checks apply.
const maxShortQueryWords = 5

// ContextResolver detects continuation queries and rewrites them into
// self-contained ones using the conversation context.
//
// Description:
//
//	"How do I install it?" after a part lookup becomes a full install
//	query for the remembered part. Rewrites use fixed English templates
//	so the rewritten query flows through the same extraction rules as a
//	fresh one.
//
// Thread Safety: Stateless; safe for concurrent use.
type ContextResolver struct {
	logger *slog.Logger
}

// NewContextResolver creates a ContextResolver.
func NewContextResolver(logger *slog.Logger) *ContextResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContextResolver{logger: logger}
}

// IsContextDependent reports whether the query likely refers to earlier
// conversation state.
//
// Description:
//
//	Short queries (at most five words) count when they contain a bare
//	pronoun or start with a follow-up pattern. Longer queries count when
//	they mention the cart while a part number is remembered, or mention
//	order tracking at all.
func (cr *ContextResolver) IsContextDependent(query string, cctx *ConversationContext) bool {
	queryLower := strings.TrimSpace(strings.ToLower(query))
	words := strings.Fields(queryLower)

	if len(words) <= maxShortQueryWords {
		for _, w := range words {
			for _, pronoun := range contextPronouns {
				if w == pronoun {
					return true
				}
			}
		}
		for _, pattern := range followUpPatterns {
			if strings.HasPrefix(queryLower, pattern) {
				return true
			}
		}
	} else if strings.Contains(queryLower, "cart") ||
		strings.Contains(queryLower, "add") ||
		strings.Contains(queryLower, "basket") {
		if cctx != nil && cctx.LastPartNumber != "" {
			return true
		}
	} else if strings.Contains(queryLower, "order") ||
		strings.Contains(queryLower, "status") ||
		strings.Contains(queryLower, "track") {
		return true
	}

	return false
}

// Enhance rewrites a continuation query into a self-contained one.
//
// Inputs:
//
//	query - The original continuation query.
//	cctx - The session's conversation context. Must not be nil.
//
// Outputs:
//
//	Intent - The intent of the rewritten query.
//	string - The rewritten query.
//	bool - False when no rewrite applies (the caller falls back to the
//	normal pipeline).
func (cr *ContextResolver) Enhance(query string, cctx *ConversationContext) (Intent, string, bool) {
	queryLower := strings.TrimSpace(strings.ToLower(query))

	if cctx == nil || cctx.LastIntent == "" {
		return "", "", false
	}

	has := func(s string) bool { return strings.Contains(queryLower, s) }

	if (has("how") && has("install")) || has("installation") {
		if cctx.LastPartName != "" {
			return IntentInstall, fmt.Sprintf("How do I install a %s in my %s?",
				cctx.LastPartName, applianceOrDefault(cctx)), true
		}
	} else if has("compatible") || has("work with") {
		if cctx.LastPartNumber != "" && cctx.LastModelNumber != "" {
			return IntentCompatibility, fmt.Sprintf("Is part %s compatible with %s?",
				cctx.LastPartNumber, cctx.LastModelNumber), true
		}
	} else if has("where") || has("find") || has("get") {
		if cctx.LastPartName != "" {
			return IntentLookup, fmt.Sprintf("I need a %s for my %s",
				cctx.LastPartName, applianceOrDefault(cctx)), true
		}
	}

	// A lookup or compatibility turn followed by an install-ish question
	// becomes an install query even without a remembered part name.
	if cctx.LastIntent == IntentLookup || cctx.LastIntent == IntentCompatibility {
		if has("install") || has("how") {
			partName := cctx.LastPartName
			if partName == "" {
				partName = "part"
			}
			return IntentInstall, fmt.Sprintf("How do I install a %s in my %s?",
				partName, applianceOrDefault(cctx)), true
		}
	} else if has("cart") || has("add") || has("basket") {
		if cctx.LastPartNumber != "" {
			if has("add") {
				return IntentCart, fmt.Sprintf("Add part %s to my cart", cctx.LastPartNumber), true
			}
			return IntentCart, "View my cart", true
		}
	} else if has("order") || has("status") || has("track") {
		return IntentOrder, "Check my order status", true
	}

	return "", "", false
}

// applianceOrDefault falls back to refrigerator when the context has no
// appliance type.
func applianceOrDefault(cctx *ConversationContext) string {
	if cctx.LastApplianceType != "" {
		return cctx.LastApplianceType
	}
	return "refrigerator"
}
