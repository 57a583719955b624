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
	"fmt"
	"strings"
	"time"

	"github.com/AleutianAI/PartDesk/services/assist/order"
)

// OrderStatusTool looks up order records by order number, customer email, or
// both.
//
// Inputs:
//   - query: "order_number:email" | "order_number" | "email:address" |
//     a bare email address | "status" (no identifier extracted)
type OrderStatusTool struct {
	store order.Store
}

// NewOrderStatusTool creates an order lookup tool backed by the given store.
func NewOrderStatusTool(s order.Store) *OrderStatusTool {
	return &OrderStatusTool{store: s}
}

func (t *OrderStatusTool) Name() string { return "order_status_tool" }

func (t *OrderStatusTool) Invoke(ctx context.Context, query string) (result string, err error) {
	ctx, span := toolTracer.Start(ctx, "tools.order_status")
	defer span.End()
	defer observe(t.Name(), time.Now(), &err)

	query = strings.TrimSpace(query)
	orderNumber, email := parseOrderQuery(query)
	if orderNumber == "" && email == "" {
		return errorJSON("Order number or email is required"), nil
	}

	if orderNumber != "" {
		ord, ok, err := t.store.GetByNumber(ctx, orderNumber)
		if err != nil {
			return "", fmt.Errorf("order status: %w", err)
		}
		if ok {
			out, err := json.MarshalIndent(ord, "", "  ")
			if err != nil {
				return "", fmt.Errorf("order status: encode order: %w", err)
			}
			return string(out), nil
		}
		if email == "" {
			return errorJSON(fmt.Sprintf("Order '%s' not found", strings.ToUpper(orderNumber))), nil
		}
		// Unknown order number but we also have an email; fall through to
		// the email lookup.
	}

	email = strings.ToLower(email)
	orders, err := t.store.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("order status: %w", err)
	}
	if len(orders) == 0 {
		return errorJSON(fmt.Sprintf("No orders found for email '%s'", email)), nil
	}

	out, err := json.MarshalIndent(struct {
		CustomerEmail string        `json:"customer_email"`
		Orders        []order.Order `json:"orders"`
	}{CustomerEmail: email, Orders: orders}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("order status: encode orders: %w", err)
	}
	return string(out), nil
}

// parseOrderQuery splits a canonical order sub-query into its identifiers.
// "status" is the orchestrator's placeholder for a query with no usable
// identifier.
func parseOrderQuery(query string) (orderNumber, email string) {
	if query == "" || strings.EqualFold(query, "status") {
		return "", ""
	}
	if rest, ok := strings.CutPrefix(query, "email:"); ok {
		return "", strings.TrimSpace(rest)
	}
	if before, after, ok := strings.Cut(query, ":"); ok {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	if strings.Contains(query, "@") {
		return "", query
	}
	return query, ""
}
