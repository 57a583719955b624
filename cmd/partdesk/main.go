// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command partdesk starts the PartDesk assistant API server.
//
// PartDesk answers natural-language questions about refrigerator and
// dishwasher parts:
//   - Keyword-first intent routing with an optional LLM fallback
//   - Part lookup, compatibility checks, installation guides, diagnosis
//   - Per-session shopping cart and order status
//   - HTTP and WebSocket chat surfaces
//
// Usage:
//
//	go run ./cmd/partdesk
//	go run ./cmd/partdesk -port 9090
//
// With Redis (cart persistence):
//
//	REDIS_ADDR=localhost:6379 go run ./cmd/partdesk
//
// With DeepSeek (LLM classification fallback):
//
//	DEEPSEEK_API_KEY=sk-... go run ./cmd/partdesk
//
// Example requests:
//
//	# Health check
//	curl http://localhost:8080/v1/assist/health
//
//	# Ask a question (omit session_id to start a conversation)
//	curl -X POST http://localhost:8080/v1/assist/query \
//	  -H "Content-Type: application/json" \
//	  -d '{"message": "My ice maker is not working"}'
//
//	# Continue the conversation
//	curl -X POST http://localhost:8080/v1/assist/query \
//	  -H "Content-Type: application/json" \
//	  -d '{"session_id": "<id from previous reply>", "message": "How do I install it?"}'
//
//	# Inspect a session's conversation context
//	curl http://localhost:8080/v1/assist/context/<session_id>
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/AleutianAI/PartDesk/services/assist"
	"github.com/AleutianAI/PartDesk/services/assist/agent"
	"github.com/AleutianAI/PartDesk/services/assist/cart"
	"github.com/AleutianAI/PartDesk/services/assist/catalog"
	"github.com/AleutianAI/PartDesk/services/assist/order"
	"github.com/AleutianAI/PartDesk/services/assist/store"
	"github.com/AleutianAI/PartDesk/services/llm"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	debug := flag.Bool("debug", false, "Enable debug mode")
	flag.Parse()

	if *debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// W3C TraceContext propagation so trace ids flow from incoming HTTP
	// headers through the pipeline spans.
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	deps := map[string]string{}

	// Redis cart store with graceful degradation: the assistant works
	// without it, carts just don't survive a restart.
	var carts cart.Store
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		client, err := cart.Dial(ctx, redisAddr, os.Getenv("REDIS_PASSWORD"), redisDB())
		cancel()
		if err != nil {
			slog.Warn("Redis unavailable, falling back to in-memory cart store",
				slog.String("addr", redisAddr),
				slog.String("error", err.Error()))
		} else {
			carts = cart.NewRedisStore(client, 0)
			deps["cart"] = "redis"
			slog.Info("Redis cart store connected", slog.String("addr", redisAddr))
		}
	}
	if carts == nil {
		carts = cart.NewMemoryStore()
		deps["cart"] = "memory"
	}

	// Session context BadgerDB, same degradation posture: without it the
	// service runs in-memory-only.
	var sessions store.SessionStore
	var sessionDB *store.DB
	sessionDir := os.Getenv("SESSION_DB_DIR")
	if sessionDir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			sessionDir = filepath.Join(home, ".partdesk", "sessions")
		}
	}
	if sessionDir != "" {
		cfg := store.DefaultConfig()
		cfg.Path = sessionDir
		db, err := store.OpenDB(cfg)
		if err != nil {
			slog.Warn("Session BadgerDB unavailable, context persistence disabled",
				slog.String("path", sessionDir),
				slog.String("error", err.Error()))
		} else {
			sessionDB = db
			sessions = store.NewBadgerSessionStore(db, 0, slog.Default())
			slog.Info("Session BadgerDB opened", slog.String("path", sessionDir))
		}
	}
	if sessions == nil {
		deps["sessions"] = "disabled"
	} else {
		deps["sessions"] = "badger"
	}

	// Optional DeepSeek fallback classifier.
	var fallback agent.Classifier
	if client, err := llm.NewDeepSeekClient(); err != nil {
		slog.Info("DeepSeek fallback disabled", slog.String("reason", err.Error()))
		deps["llm"] = "not configured (keyword classifier only)"
	} else {
		fallback = client
		deps["llm"] = "configured"
	}

	svc, err := assist.NewService(context.Background(), assist.ServiceConfig{
		Catalog:      catalog.NewMockCatalog(slog.Default()),
		Docs:         catalog.NewMockDocs(),
		Carts:        carts,
		Orders:       order.NewMockStore(),
		Sessions:     sessions,
		LLM:          fallback,
		Dependencies: deps,
	})
	if err != nil {
		slog.Error("Failed to create assist service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers := assist.NewHandlers(svc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("partdesk"))
	if *debug {
		router.Use(gin.Logger())
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	assist.RegisterRoutes(v1, handlers)

	printBanner(*port, fallback != nil)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		slog.Info("Shutting down PartDesk server")
		if sessionDB != nil {
			if err := sessionDB.Close(); err != nil {
				slog.Warn("Failed to close session BadgerDB", slog.String("error", err.Error()))
			}
		}
		os.Exit(0)
	}()

	addr := fmt.Sprintf(":%d", *port)
	slog.Info("Starting PartDesk server", slog.String("address", addr))
	if err := router.Run(addr); err != nil {
		slog.Error("Failed to start server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// redisDB reads the REDIS_DB index, defaulting to 0.
func redisDB() int {
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

func printBanner(port int, llmEnabled bool) {
	llmStatus := "DISABLED (set DEEPSEEK_API_KEY to enable)"
	if llmEnabled {
		llmStatus = "ENABLED (DeepSeek fallback)"
	}

	banner := `
╔═══════════════════════════════════════════════════════════════════╗
║                       PARTDESK API SERVER                         ║
╠═══════════════════════════════════════════════════════════════════╣
║                                                                   ║
║  Conversational assistant for refrigerator and dishwasher parts.  ║
║  LLM Fallback: %-50s ║
║                                                                   ║
║  Quick Start:                                                     ║
║  ┌─────────────────────────────────────────────────────────────┐  ║
║  │ # Health check                                              │  ║
║  │ curl http://localhost:%d/v1/assist/health             │  ║
║  │                                                             │  ║
║  │ # Ask a question                                            │  ║
║  │ curl -X POST http://localhost:%d/v1/assist/query \    │  ║
║  │   -H "Content-Type: application/json" \                     │  ║
║  │   -d '{"message": "My ice maker is not working"}'           │  ║
║  │                                                             │  ║
║  │ # Popular parts                                             │  ║
║  │ curl "http://localhost:%d/v1/assist/parts/popular?\   │  ║
║  │   appliance_type=refrigerator"                              │  ║
║  └─────────────────────────────────────────────────────────────┘  ║
║                                                                   ║
║  Endpoints:                                                       ║
║  ├── Query: POST /query, WS /chat                                ║
║  ├── Session: GET /context/:session, POST /context/:s/reset      ║
║  ├── Catalog: GET /parts/popular                                 ║
║  └── Health: GET /health, GET /ready, GET /metrics               ║
║                                                                   ║
║  Press Ctrl+C to stop                                             ║
╚═══════════════════════════════════════════════════════════════════╝
`
	fmt.Printf(banner, llmStatus, port, port, port)
}
