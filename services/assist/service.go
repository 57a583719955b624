// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package assist exposes the appliance-parts assistant over HTTP and
// WebSocket. The Service owns a registry of per-session pipeline agents;
// handlers in this package adapt it to Gin.
package assist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/PartDesk/services/assist/agent"
	"github.com/AleutianAI/PartDesk/services/assist/cart"
	"github.com/AleutianAI/PartDesk/services/assist/catalog"
	"github.com/AleutianAI/PartDesk/services/assist/config"
	"github.com/AleutianAI/PartDesk/services/assist/order"
	"github.com/AleutianAI/PartDesk/services/assist/routing"
	"github.com/AleutianAI/PartDesk/services/assist/store"
	"github.com/AleutianAI/PartDesk/services/assist/tools"
)

// ============================================================================
// Metrics
// ============================================================================

var (
	sessionsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "partdesk",
		Subsystem: "service",
		Name:      "sessions_created_total",
		Help:      "Number of conversation sessions created.",
	})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "partdesk",
		Subsystem: "service",
		Name:      "sessions_active",
		Help:      "Number of conversation sessions currently held in memory.",
	})
)

// ErrSessionNotFound is returned when a session id has no conversation
// context in memory or in the session store.
var ErrSessionNotFound = errors.New("session not found")

// session pairs one pipeline agent with the lock that serializes its
// queries. The agent itself is not safe for concurrent use.
type session struct {
	mu   sync.Mutex
	orch *agent.Orchestrator
}

// Service is the session registry behind the HTTP and WebSocket surface.
//
// Description:
//
//	Holds one pipeline agent per session id. Agents share the scope
//	filter, intent classifier, parameter extractor, and backing stores;
//	each agent owns its session's conversation context and cart id.
//	An optional session store restores contexts across restarts.
//
// Thread Safety: Safe for concurrent use. The registry map is guarded by
// a mutex and each session's queries are serialized by a per-session lock.
type Service struct {
	scope      *routing.ScopeFilter
	classifier *routing.IntentClassifier
	extractor  *routing.ParameterExtractor
	resolver   *routing.ContextResolver
	llm        agent.Classifier

	catalog  catalog.Catalog
	docs     catalog.Docs
	carts    cart.Store
	orders   order.Store
	sessions store.SessionStore

	deps   map[string]string
	logger *slog.Logger

	mu     sync.Mutex
	active map[string]*session
}

// ServiceConfig wires a Service's backing stores and optional layers.
type ServiceConfig struct {
	Catalog catalog.Catalog
	Docs    catalog.Docs
	Carts   cart.Store
	Orders  order.Store

	// Sessions is the optional persistent context store. Nil keeps all
	// conversation state in memory.
	Sessions store.SessionStore

	// LLM is the optional classification fallback passed to each agent.
	LLM agent.Classifier

	// Dependencies describes the backing services for the health
	// endpoint, e.g. {"cart": "redis", "llm": "configured"}.
	Dependencies map[string]string

	Logger *slog.Logger
}

// NewService loads the routing configuration and builds the shared
// pipeline stages. The per-session agents are created lazily on first
// query.
func NewService(ctx context.Context, cfg ServiceConfig) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	scopeCfg, err := config.GetScopeConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scope config: %w", err)
	}
	intentCfg, err := config.GetIntentConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading intent config: %w", err)
	}

	if err := warmCheck(ctx, cfg.Catalog, cfg.Docs); err != nil {
		return nil, fmt.Errorf("warming backing stores: %w", err)
	}

	scope := routing.NewScopeFilter(scopeCfg, logger)
	deps := cfg.Dependencies
	if deps == nil {
		deps = map[string]string{}
	}

	return &Service{
		scope:      scope,
		classifier: routing.NewIntentClassifier(intentCfg, scope, logger),
		extractor:  routing.NewParameterExtractor(),
		resolver:   routing.NewContextResolver(logger),
		llm:        cfg.LLM,
		catalog:    cfg.Catalog,
		docs:       cfg.Docs,
		carts:      cfg.Carts,
		orders:     cfg.Orders,
		sessions:   cfg.Sessions,
		deps:       deps,
		logger:     logger,
		active:     make(map[string]*session),
	}, nil
}

// Query runs one user message through the session's pipeline agent.
//
// Description:
//
//	Resolves or creates the session (generating a fresh id when none is
//	given), serializes against other queries on the same session, runs
//	the pipeline, and persists the updated conversation context when a
//	session store is configured. Save failures are logged and swallowed;
//	the reply already computed is still returned.
//
// Outputs:
//
//	string - The session id, newly generated when the input id was empty.
//	agent.DispatchResult - The pipeline's reply. Always populated.
func (s *Service) Query(ctx context.Context, sessionID, message string) (string, agent.DispatchResult, error) {
	sessionID, sess, err := s.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return sessionID, agent.DispatchResult{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	result := sess.orch.ProcessQuery(ctx, message)

	if s.sessions != nil {
		if err := s.sessions.Save(ctx, sessionID, sess.orch.Context()); err != nil {
			s.logger.Warn("Failed to persist session context",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()))
		}
	}
	return sessionID, result, nil
}

// ContextSnapshot returns a copy of the session's conversation context.
// Returns ErrSessionNotFound when the id is unknown both in memory and in
// the session store.
func (s *Service) ContextSnapshot(ctx context.Context, sessionID string) (routing.ConversationContext, error) {
	s.mu.Lock()
	sess, ok := s.active[sessionID]
	s.mu.Unlock()
	if ok {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		return *sess.orch.Context(), nil
	}

	if s.sessions != nil {
		cctx, err := s.sessions.Load(ctx, sessionID)
		if err != nil {
			return routing.ConversationContext{}, fmt.Errorf("loading session %s: %w", sessionID, err)
		}
		if cctx != nil {
			return *cctx, nil
		}
	}
	return routing.ConversationContext{}, ErrSessionNotFound
}

// ResetContext discards the session's conversation context in memory and
// in the session store. Resetting an unknown session is a no-op.
func (s *Service) ResetContext(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.active[sessionID]
	if ok {
		delete(s.active, sessionID)
		sessionsActive.Dec()
	}
	s.mu.Unlock()
	if ok {
		// Wait for an in-flight query to finish before the agent is
		// dropped.
		sess.mu.Lock()
		defer sess.mu.Unlock()
	}

	if s.sessions != nil {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return fmt.Errorf("deleting session %s: %w", sessionID, err)
		}
	}
	return nil
}

// Dependencies reports the backing-service modes for the health endpoint.
func (s *Service) Dependencies() map[string]string {
	return s.deps
}

// Catalog exposes the parts catalog for read-only handlers.
func (s *Service) Catalog() catalog.Catalog {
	return s.catalog
}

// warmCheck verifies the catalog and docs stores answer before the
// service accepts traffic. Both probes run concurrently; the first
// failure aborts startup.
func warmCheck(ctx context.Context, c catalog.Catalog, d catalog.Docs) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := c.GetPopularParts(gctx, "refrigerator", 1)
		return err
	})
	g.Go(func() error {
		_, err := d.GetSafetyNotes(gctx, "refrigerator")
		return err
	})
	return g.Wait()
}

func (s *Service) getOrCreateSession(ctx context.Context, sessionID string) (string, *session, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.active[sessionID]; ok {
		return sessionID, sess, nil
	}

	var cctx *routing.ConversationContext
	if s.sessions != nil {
		restored, err := s.sessions.Load(ctx, sessionID)
		if err != nil {
			s.logger.Warn("Failed to restore session context, starting fresh",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()))
		} else {
			cctx = restored
		}
	}

	sess := &session{orch: agent.New(agent.Config{
		Scope:      s.scope,
		Classifier: s.classifier,
		Extractor:  s.extractor,
		Resolver:   s.resolver,
		LLM:        s.llm,
		Tools:      s.newToolSet(sessionID),
		Context:    cctx,
		Logger:     s.logger.With(slog.String("session_id", sessionID)),
	})}
	s.active[sessionID] = sess
	sessionsCreatedTotal.Inc()
	sessionsActive.Inc()
	return sessionID, sess, nil
}

// newToolSet builds the per-session tool map. Only the cart tool carries
// session state (the cart id); the rest are stateless adapters over the
// shared stores.
func (s *Service) newToolSet(sessionID string) map[routing.Intent]tools.Tool {
	return map[routing.Intent]tools.Tool{
		routing.IntentLookup:        tools.NewProductLookupTool(s.catalog),
		routing.IntentCompatibility: tools.NewCompatibilityTool(s.catalog),
		routing.IntentInstall:       tools.NewInstallationGuideTool(s.docs),
		routing.IntentDiagnose:      tools.NewErrorDiagnosisTool(s.docs, s.catalog),
		routing.IntentCart:          tools.NewCartTool(s.carts, s.catalog, sessionID),
		routing.IntentOrder:         tools.NewOrderStatusTool(s.orders),
	}
}
