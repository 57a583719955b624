// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByNumber(t *testing.T) {
	s := NewMockStore()

	o, ok, err := s.GetByNumber(context.Background(), "ord123456")
	require.NoError(t, err)
	require.True(t, ok, "lookup should be case-insensitive")
	assert.Equal(t, "Shipped", o.Status)
	assert.Equal(t, "UPS", o.Carrier)
	assert.Equal(t, 99.98, o.Total)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 2, o.Items[0].Quantity)
}

func TestGetByNumber_NotFound(t *testing.T) {
	s := NewMockStore()

	_, ok, err := s.GetByNumber(context.Background(), "ORD000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindByEmail(t *testing.T) {
	s := NewMockStore()

	orders, err := s.FindByEmail(context.Background(), "Jane.Smith@Example.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD789012", orders[0].OrderNumber)
	assert.Equal(t, "Processing", orders[0].Status)
	assert.Len(t, orders[0].Items, 2)
}

func TestFindByEmail_NoOrders(t *testing.T) {
	s := NewMockStore()

	orders, err := s.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
