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
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/AleutianAI/PartDesk/services/assist/cart"
	"github.com/AleutianAI/PartDesk/services/assist/catalog"
)

// CartTool manages one session's shopping cart.
//
// Inputs:
//   - query: "add:part_number:quantity" | "remove:part_number[:quantity]" |
//     "view" | "clear"
//
// Every result is a JSON object: domain failures carry an "error" field,
// successes carry "status": "success" plus operation-specific fields.
type CartTool struct {
	store   cart.Store
	catalog catalog.Catalog
	cartID  string
}

// NewCartTool creates a cart tool bound to one session's cart.
func NewCartTool(store cart.Store, c catalog.Catalog, cartID string) *CartTool {
	return &CartTool{store: store, catalog: c, cartID: cartID}
}

func (t *CartTool) Name() string { return "cart_tool" }

func (t *CartTool) Invoke(ctx context.Context, query string) (result string, err error) {
	ctx, span := toolTracer.Start(ctx, "tools.cart")
	defer span.End()
	defer observe(t.Name(), time.Now(), &err)

	parts := strings.SplitN(query, ":", 3)
	operation := strings.ToLower(strings.TrimSpace(parts[0]))

	switch operation {
	case "add":
		return t.add(ctx, parts)
	case "remove":
		return t.remove(ctx, parts)
	case "view":
		return t.view(ctx)
	case "clear":
		return t.clear(ctx)
	default:
		return errorJSON(fmt.Sprintf(
			"Unknown operation: %s. Valid operations are 'add', 'remove', 'view', 'clear'",
			operation,
		)), nil
	}
}

func (t *CartTool) add(ctx context.Context, parts []string) (string, error) {
	if len(parts) < 3 {
		return errorJSON("Invalid format. Use 'add:part_number:quantity'"), nil
	}
	partNumber := strings.TrimSpace(parts[1])

	quantity, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return errorJSON("Quantity must be a valid number"), nil
	}
	if quantity <= 0 {
		return errorJSON("Quantity must be positive"), nil
	}

	part, err := t.catalog.GetPart(ctx, partNumber)
	if errors.Is(err, catalog.ErrPartNotFound) {
		return errorJSON(fmt.Sprintf("Part %s not found", partNumber)), nil
	}
	if err != nil {
		return "", fmt.Errorf("cart add: %w", err)
	}

	current, _, err := t.store.Get(ctx, t.cartID, partNumber)
	if err != nil {
		return "", fmt.Errorf("cart add: %w", err)
	}
	newQuantity := current + quantity
	if err := t.store.Set(ctx, t.cartID, partNumber, newQuantity); err != nil {
		return "", fmt.Errorf("cart add: %w", err)
	}

	return marshalResult(struct {
		Status   string        `json:"status"`
		Message  string        `json:"message"`
		Part     *catalog.Part `json:"part"`
		Quantity int           `json:"quantity"`
	}{
		Status:   "success",
		Message:  fmt.Sprintf("Added %d of %s to cart", quantity, part.Name),
		Part:     part,
		Quantity: newQuantity,
	})
}

func (t *CartTool) remove(ctx context.Context, parts []string) (string, error) {
	if len(parts) < 2 {
		return errorJSON("Invalid format. Use 'remove:part_number[:quantity]'"), nil
	}
	partNumber := strings.TrimSpace(parts[1])

	// Optional third segment reduces the quantity instead of removing the
	// line item outright.
	quantity := -1
	if len(parts) == 3 {
		q, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return errorJSON("Quantity must be a valid number"), nil
		}
		if q <= 0 {
			return errorJSON("Quantity must be positive"), nil
		}
		quantity = q
	}

	current, ok, err := t.store.Get(ctx, t.cartID, partNumber)
	if err != nil {
		return "", fmt.Errorf("cart remove: %w", err)
	}
	if !ok {
		return errorJSON(fmt.Sprintf("Part %s not in cart", partNumber)), nil
	}

	var message string
	if quantity < 0 || quantity >= current {
		if err := t.store.Delete(ctx, t.cartID, partNumber); err != nil {
			return "", fmt.Errorf("cart remove: %w", err)
		}
		message = fmt.Sprintf("Removed part %s from cart", partNumber)
	} else {
		if err := t.store.Set(ctx, t.cartID, partNumber, current-quantity); err != nil {
			return "", fmt.Errorf("cart remove: %w", err)
		}
		message = fmt.Sprintf("Reduced quantity of part %s by %d", partNumber, quantity)
	}

	return marshalResult(struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}{Status: "success", Message: message})
}

// cartItem is one priced line in a cart view.
type cartItem struct {
	PartNumber string  `json:"part_number"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

func (t *CartTool) view(ctx context.Context) (string, error) {
	contents, err := t.store.All(ctx, t.cartID)
	if err != nil {
		return "", fmt.Errorf("cart view: %w", err)
	}
	if len(contents) == 0 {
		return marshalResult(struct {
			Status  string     `json:"status"`
			Message string     `json:"message"`
			Items   []cartItem `json:"items"`
		}{Status: "success", Message: "Your cart is empty", Items: []cartItem{}})
	}

	partNumbers := make([]string, 0, len(contents))
	for pn := range contents {
		partNumbers = append(partNumbers, pn)
	}
	sort.Strings(partNumbers)

	items := make([]cartItem, 0, len(contents))
	total := 0.0
	for _, pn := range partNumbers {
		part, err := t.catalog.GetPart(ctx, pn)
		if errors.Is(err, catalog.ErrPartNotFound) {
			// Stale cart entry; the catalog no longer knows the part.
			continue
		}
		if err != nil {
			return "", fmt.Errorf("cart view: %w", err)
		}
		quantity := contents[pn]
		lineTotal := part.Price * float64(quantity)
		items = append(items, cartItem{
			PartNumber: pn,
			Name:       part.Name,
			Quantity:   quantity,
			UnitPrice:  part.Price,
			TotalPrice: lineTotal,
		})
		total += lineTotal
	}

	return marshalResult(struct {
		Status     string     `json:"status"`
		Message    string     `json:"message"`
		Items      []cartItem `json:"items"`
		TotalPrice float64    `json:"total_price"`
	}{
		Status:     "success",
		Message:    fmt.Sprintf("Cart contains %d items", len(items)),
		Items:      items,
		TotalPrice: total,
	})
}

func (t *CartTool) clear(ctx context.Context) (string, error) {
	if err := t.store.Clear(ctx, t.cartID); err != nil {
		return "", fmt.Errorf("cart clear: %w", err)
	}
	return marshalResult(struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}{Status: "success", Message: "Your cart has been cleared"})
}

func marshalResult(v any) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode cart result: %w", err)
	}
	return string(out), nil
}
