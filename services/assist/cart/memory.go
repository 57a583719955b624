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
	"sync"
)

// MemoryStore keeps carts in process memory. It does not expire carts;
// it exists for tests and for running without a Redis instance.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]map[string]int
}

// NewMemoryStore builds an empty in-memory cart store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]map[string]int)}
}

func (s *MemoryStore) Get(_ context.Context, cartID, partNumber string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	qty, ok := s.carts[cartID][partNumber]
	return qty, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, cartID, partNumber string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.carts[cartID]
	if !ok {
		items = make(map[string]int)
		s.carts[cartID] = items
	}
	items[partNumber] = quantity
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, cartID, partNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts[cartID], partNumber)
	return nil
}

func (s *MemoryStore) All(_ context.Context, cartID string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make(map[string]int, len(s.carts[cartID]))
	for partNumber, qty := range s.carts[cartID] {
		items[partNumber] = qty
	}
	return items, nil
}

func (s *MemoryStore) Clear(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
	return nil
}
