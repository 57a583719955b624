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

// =============================================================================
// SessionStore — Conversation Context Persistence
// =============================================================================
//
// Conversation context survives service restarts so that a returning websocket
// or HTTP client keeps its follow-up resolution ("install it", "is it
// compatible") across a deploy. Records are tiny (five short strings), so gob
// encoding and a per-session key are sufficient.
//
// Storage layout:
//
//	assist/session/v1/{sessionID}  →  gob-encoded routing.ConversationContext
//	                                   TTL: 24 hours
//
// TTL is enforced by BadgerDB's native GC. Expired keys return ErrKeyNotFound,
// which the store treats as a miss — the session simply starts cold.

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/AleutianAI/PartDesk/services/assist/routing"
)

// sessionDefaultTTL matches the cart expiry: an idle day ends the session.
const sessionDefaultTTL = 24 * time.Hour

// sessionKeyPrefix is versioned (v1) to allow future format changes without
// collision.
const sessionKeyPrefix = "assist/session/v1/"

// errSessionMiss distinguishes "key not found" (a normal miss) from a genuine
// storage error in Load.
var errSessionMiss = errors.New("session miss")

// SessionStore persists conversation context across service restarts.
//
// # Description
//
// Load returns (nil, nil) on a miss — absent key or expired TTL — so callers
// can treat a cold session and a missing store identically. The service layer
// checks for a nil SessionStore and runs in-memory-only; that is the correct
// behavior for tests and for deployments without a session directory.
//
// # Thread Safety
//
// Implementations must be safe for concurrent use.
type SessionStore interface {
	// Load retrieves the context for a session.
	//
	// Returns (nil, nil) on miss. Returns (nil, error) on storage failure.
	Load(ctx context.Context, sessionID string) (*routing.ConversationContext, error)

	// Save persists the context for a session with a 24 hour TTL.
	Save(ctx context.Context, sessionID string, cctx *routing.ConversationContext) error

	// Delete removes the context for a session. Deleting an absent session
	// is not an error.
	Delete(ctx context.Context, sessionID string) error
}

// BadgerSessionStore implements SessionStore backed by a BadgerDB instance.
//
// # Thread Safety
//
// Safe for concurrent use.
type BadgerSessionStore struct {
	db     *DB
	ttl    time.Duration
	logger *slog.Logger
}

// NewBadgerSessionStore creates a session store backed by the given DB.
//
// The DB must be opened by the caller (typically in main) and must not be
// closed before the store is done being used — this store does not own the
// DB lifecycle. Pass ttl 0 to use the default (24 hours).
func NewBadgerSessionStore(db *DB, ttl time.Duration, logger *slog.Logger) *BadgerSessionStore {
	if db == nil {
		panic("NewBadgerSessionStore: db must not be nil")
	}
	if ttl <= 0 {
		ttl = sessionDefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BadgerSessionStore{db: db, ttl: ttl, logger: logger}
}

func sessionKey(sessionID string) []byte {
	return []byte(sessionKeyPrefix + sessionID)
}

// Load retrieves the persisted context for a session, or (nil, nil) when the
// session is cold.
func (s *BadgerSessionStore) Load(ctx context.Context, sessionID string) (*routing.ConversationContext, error) {
	key := sessionKey(sessionID)

	var raw []byte
	err := s.db.WithReadTxn(ctx, func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errSessionMiss
		}
		if err != nil {
			return fmt.Errorf("get session key: %w", err)
		}
		raw, err = item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("copy value: %w", err)
		}
		return nil
	})

	if errors.Is(err, errSessionMiss) {
		s.logger.Debug("session store: miss", slog.String("session", sessionID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}

	var cctx routing.ConversationContext
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&cctx); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}

	s.logger.Debug("session store: hit",
		slog.String("session", sessionID),
		slog.String("last_intent", string(cctx.LastIntent)),
	)
	return &cctx, nil
}

// Save persists the context for a session with the configured TTL.
func (s *BadgerSessionStore) Save(ctx context.Context, sessionID string, cctx *routing.ConversationContext) error {
	if cctx == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(cctx); err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	key := sessionKey(sessionID)
	err := s.db.WithTxn(ctx, func(txn *badger.Txn) error {
		entry := badger.NewEntry(key, buf.Bytes()).WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Delete removes the persisted context for a session.
func (s *BadgerSessionStore) Delete(ctx context.Context, sessionID string) error {
	err := s.db.WithTxn(ctx, func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(sessionID))
	})
	if err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
