// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, DefaultTTL), mr
}

func TestRedisStore_SetAndGet(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "PS11761591", 2))

	qty, ok, err := store.Get(ctx, "s1", "PS11761591")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, qty)
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _ := setupRedisStore(t)

	qty, ok, err := store.Get(context.Background(), "s1", "PS11761591")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, qty)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "PS11761591", 1))

	ttl := mr.TTL("cart:s1")
	assert.Equal(t, DefaultTTL, ttl)

	mr.FastForward(DefaultTTL + time.Minute)

	_, ok, err := store.Get(ctx, "s1", "PS11761591")
	require.NoError(t, err)
	assert.False(t, ok, "cart should have expired")
}

func TestRedisStore_DeleteAndAll(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "PS11761591", 2))
	require.NoError(t, store.Set(ctx, "s1", "PS11743427", 1))

	items, err := store.All(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"PS11761591": 2, "PS11743427": 1}, items)

	require.NoError(t, store.Delete(ctx, "s1", "PS11761591"))

	items, err = store.All(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"PS11743427": 1}, items)
}

func TestRedisStore_Clear(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "PS11761591", 2))
	require.NoError(t, store.Clear(ctx, "s1"))

	items, err := store.All(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisStore_CartsAreIsolated(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "PS11761591", 2))

	_, ok, err := store.Get(ctx, "s2", "PS11761591")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "PS11761591", 3))

	qty, ok, err := store.Get(ctx, "s1", "PS11761591")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, qty)

	require.NoError(t, store.Delete(ctx, "s1", "PS11761591"))
	_, ok, err = store.Get(ctx, "s1", "PS11761591")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "s1", "PS11743427", 1))
	require.NoError(t, store.Clear(ctx, "s1"))
	items, err := store.All(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
