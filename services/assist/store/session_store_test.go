// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package store

import (
	"context"
	"testing"

	"github.com/AleutianAI/PartDesk/services/assist/routing"
)

// openTestDB opens an in-memory BadgerDB for testing.
func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(InMemoryConfig())
	if err != nil {
		t.Fatalf("openTestDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func makeTestContext() *routing.ConversationContext {
	return &routing.ConversationContext{
		LastIntent:        routing.IntentLookup,
		LastPartNumber:    "PS11761591",
		LastPartName:      "water filter",
		LastApplianceType: "refrigerator",
	}
}

func TestSessionStore_Load_EmptyDB(t *testing.T) {
	s := NewBadgerSessionStore(openTestDB(t), 0, nil)

	cctx, err := s.Load(context.Background(), "nosuchsession")
	if err != nil {
		t.Errorf("expected nil error on miss, got %v", err)
	}
	if cctx != nil {
		t.Errorf("expected nil context on miss, got %+v", cctx)
	}
}

func TestSessionStore_RoundTrip(t *testing.T) {
	s := NewBadgerSessionStore(openTestDB(t), 0, nil)
	ctx := context.Background()

	want := makeTestContext()
	if err := s.Save(ctx, "sess1", want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx, "sess1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("expected context after save, got nil")
	}
	if got.LastIntent != want.LastIntent ||
		got.LastPartNumber != want.LastPartNumber ||
		got.LastPartName != want.LastPartName ||
		got.LastApplianceType != want.LastApplianceType {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestSessionStore_SessionsAreIsolated(t *testing.T) {
	s := NewBadgerSessionStore(openTestDB(t), 0, nil)
	ctx := context.Background()

	if err := s.Save(ctx, "sess1", makeTestContext()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cctx, err := s.Load(ctx, "sess2")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cctx != nil {
		t.Errorf("expected miss for other session, got %+v", cctx)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	s := NewBadgerSessionStore(openTestDB(t), 0, nil)
	ctx := context.Background()

	if err := s.Save(ctx, "sess1", makeTestContext()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete(ctx, "sess1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	cctx, err := s.Load(ctx, "sess1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cctx != nil {
		t.Errorf("expected miss after delete, got %+v", cctx)
	}

	// Deleting an absent session is not an error.
	if err := s.Delete(ctx, "sess1"); err != nil {
		t.Errorf("Delete absent session: %v", err)
	}
}

func TestSessionStore_SaveNilContext(t *testing.T) {
	s := NewBadgerSessionStore(openTestDB(t), 0, nil)

	if err := s.Save(context.Background(), "sess1", nil); err != nil {
		t.Errorf("expected nil save to be a no-op, got %v", err)
	}
}
