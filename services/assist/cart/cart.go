// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package cart persists shopping carts. The Redis-backed store keeps each
// cart as a hash of part number to quantity under "cart:<id>" with a sliding
// 24 hour expiry; the in-memory store backs tests and deployments without
// Redis.
package cart

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an idle cart survives before Redis drops it.
const DefaultTTL = 24 * time.Hour

// Store is the quantity-per-part persistence behind the cart tool.
//
// Thread Safety: Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the quantity for one part and whether it is present.
	Get(ctx context.Context, cartID, partNumber string) (int, bool, error)

	// Set stores the quantity for one part and refreshes the cart expiry.
	Set(ctx context.Context, cartID, partNumber string, quantity int) error

	// Delete removes one part from the cart.
	Delete(ctx context.Context, cartID, partNumber string) error

	// All returns every part and quantity in the cart.
	All(ctx context.Context, cartID string) (map[string]int, error)

	// Clear drops the whole cart.
	Clear(ctx context.Context, cartID string) error
}

// =============================================================================
// Redis store
// =============================================================================

// RedisStore keeps carts in Redis hashes.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client. A non-positive ttl falls back to
// DefaultTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Dial connects to Redis and verifies the connection with a ping.
func Dial(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

func (s *RedisStore) Get(ctx context.Context, cartID, partNumber string) (int, bool, error) {
	val, err := s.client.HGet(ctx, cartKey(cartID), partNumber).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("cart get: %w", err)
	}
	qty, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("cart get: corrupt quantity %q: %w", val, err)
	}
	return qty, true, nil
}

func (s *RedisStore) Set(ctx context.Context, cartID, partNumber string, quantity int) error {
	key := cartKey(cartID)
	if err := s.client.HSet(ctx, key, partNumber, quantity).Err(); err != nil {
		return fmt.Errorf("cart set: %w", err)
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart expire: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, cartID, partNumber string) error {
	if err := s.client.HDel(ctx, cartKey(cartID), partNumber).Err(); err != nil {
		return fmt.Errorf("cart delete: %w", err)
	}
	return nil
}

func (s *RedisStore) All(ctx context.Context, cartID string) (map[string]int, error) {
	raw, err := s.client.HGetAll(ctx, cartKey(cartID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cart list: %w", err)
	}
	items := make(map[string]int, len(raw))
	for partNumber, val := range raw {
		qty, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("cart list: corrupt quantity %q for %s: %w", val, partNumber, err)
		}
		items[partNumber] = qty
	}
	return items, nil
}

func (s *RedisStore) Clear(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("cart clear: %w", err)
	}
	return nil
}
