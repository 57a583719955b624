// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package assist

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AleutianAI/PartDesk/services/assist/agent"
	"github.com/AleutianAI/PartDesk/services/assist/catalog"
	"github.com/AleutianAI/PartDesk/services/assist/routing"
)

// ErrorResponse is the JSON error body shared by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// QueryRequest is the body of POST /v1/assist/query.
type QueryRequest struct {
	// SessionID continues an existing conversation. Empty starts a new
	// session; the generated id is returned in the response.
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// QueryResponse is one pipeline reply plus the session it belongs to.
type QueryResponse struct {
	SessionID string `json:"session_id"`
	agent.DispatchResult
}

// ContextResponse is the body of GET /v1/assist/context/:session.
type ContextResponse struct {
	SessionID string                      `json:"session_id"`
	Context   routing.ConversationContext `json:"context"`
}

// PopularPartsResponse is the body of GET /v1/assist/parts/popular.
type PopularPartsResponse struct {
	ApplianceType string         `json:"appliance_type"`
	Parts         []catalog.Part `json:"parts"`
}

// Handlers holds the HTTP handlers for the assist service.
type Handlers struct {
	svc *Service
}

// NewHandlers creates the handler set for a service.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// getOrCreateRequestID returns the request's X-Request-ID header, minting
// one when the client did not send it. The id is echoed on the response
// for client-side correlation.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

// HandleQuery handles POST /v1/assist/query.
//
// Description:
//
//	Runs one user message through the session's pipeline and returns the
//	reply. Omitting session_id starts a new conversation; the response
//	carries the id to use on the next turn.
//
// Request Body:
//
//	{"session_id": "abc123", "message": "My ice maker is not working"}
//
// Response:
//
//	200 OK: QueryResponse
//	400 Bad Request: Missing or blank message
//
// Thread Safety: Safe for concurrent use. Queries on the same session are
// serialized by the service.
func (h *Handlers) HandleQuery(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleQuery")

	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "message is required",
			Code:  "MISSING_PARAMETER",
		})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "message must not be blank",
			Code:  "MISSING_PARAMETER",
		})
		return
	}

	sessionID, result, err := h.svc.Query(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		logger.Error("Query failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to process query",
			Code:  "QUERY_FAILED",
		})
		return
	}

	logger.Info("Query dispatched",
		slog.String("session_id", sessionID),
		slog.String("tool_name", result.ToolName))

	c.JSON(http.StatusOK, QueryResponse{
		SessionID:      sessionID,
		DispatchResult: result,
	})
}

// HandleContext handles GET /v1/assist/context/:session.
//
// Response:
//
//	200 OK: ContextResponse
//	404 Not Found: Unknown session id
func (h *Handlers) HandleContext(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleContext")

	sessionID := c.Param("session")
	cctx, err := h.svc.ContextSnapshot(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "session not found",
				Code:  "SESSION_NOT_FOUND",
			})
			return
		}
		logger.Error("Context lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load session context",
			Code:  "CONTEXT_LOAD_FAILED",
		})
		return
	}

	c.JSON(http.StatusOK, ContextResponse{
		SessionID: sessionID,
		Context:   cctx,
	})
}

// HandleContextReset handles POST /v1/assist/context/:session/reset.
//
// Discards the session's conversation context. Resetting a session that
// does not exist succeeds; the next query starts fresh either way.
func (h *Handlers) HandleContextReset(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleContextReset")

	sessionID := c.Param("session")
	if err := h.svc.ResetContext(c.Request.Context(), sessionID); err != nil {
		logger.Error("Context reset failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to reset session context",
			Code:  "CONTEXT_RESET_FAILED",
		})
		return
	}

	logger.Info("Session context reset", slog.String("session_id", sessionID))
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"status":     "reset",
	})
}

// HandleHealth handles GET /v1/assist/health.
//
// Reports the modes of the backing services. Degraded backends (memory
// cart store, disabled session persistence) are healthy in development;
// the handler reports what is wired, not whether it should be.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"dependencies": h.svc.Dependencies(),
	})
}

// HandleReady handles GET /v1/assist/ready. The service is ready once
// constructed: configuration is embedded and validated at startup.
func (h *Handlers) HandleReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ready": true})
}

// HandlePopularParts handles GET /v1/assist/parts/popular.
//
// Query Parameters:
//
//	appliance_type: "refrigerator" or "dishwasher" (required)
//	limit: Maximum parts to return, default 5 (optional)
//
// Response:
//
//	200 OK: PopularPartsResponse (empty parts list for unknown types)
//	400 Bad Request: Missing appliance_type
func (h *Handlers) HandlePopularParts(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandlePopularParts")

	applianceType := c.Query("appliance_type")
	if applianceType == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "appliance_type parameter is required",
			Code:  "MISSING_PARAMETER",
		})
		return
	}

	limit := 5
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	parts, err := h.svc.Catalog().GetPopularParts(c.Request.Context(), applianceType, limit)
	if err != nil {
		logger.Error("Popular parts lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to load popular parts",
			Code:  "CATALOG_FAILED",
		})
		return
	}
	if parts == nil {
		parts = []catalog.Part{}
	}

	c.JSON(http.StatusOK, PopularPartsResponse{
		ApplianceType: applianceType,
		Parts:         parts,
	})
}
