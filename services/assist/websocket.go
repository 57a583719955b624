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
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/AleutianAI/PartDesk/services/assist/agent"
)

var chatConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "partdesk",
	Subsystem: "service",
	Name:      "chat_connections_active",
	Help:      "Number of open WebSocket chat connections.",
})

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Development posture: the UI is served from a different origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChatFrame is the per-message reply sent to WebSocket clients. Data
// carries the tool result decoded as JSON when it parses as an object,
// or {"text": ...} for plain-text results.
type ChatFrame struct {
	Message          string         `json:"message"`
	ToolUsed         string         `json:"tool_used"`
	Data             map[string]any `json:"data"`
	SuggestedActions []string       `json:"suggested_actions"`
}

// errorFrame is sent when the pipeline itself fails. The pipeline
// converts tool errors into replies, so this covers registry failures
// and panics recovered upstream.
var errorFrame = ChatFrame{
	Message:  "I'm sorry, I encountered an error processing your request. Please try again.",
	ToolUsed: "error",
	Data:     map[string]any{},
	SuggestedActions: []string{
		"I need a water filter for my refrigerator",
		"Installation Help",
		"Order Status",
	},
}

// HandleChat handles GET /v1/assist/chat.
//
// Description:
//
//	Upgrades the connection and serves a chat loop: each text message
//	from the client runs through the pipeline and produces one JSON
//	frame. The connection owns a single conversation session, so context
//	carries across messages until the client disconnects.
//
// Thread Safety: Safe for concurrent use. Each connection reads and
// writes from its own goroutine only.
func (h *Handlers) HandleChat(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleChat")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	chatConnectionsActive.Inc()
	defer chatConnectionsActive.Dec()

	var sessionID string
	logger.Info("Chat client connected")

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Chat connection error", slog.String("error", err.Error()))
			} else {
				logger.Info("Chat client disconnected")
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var frame ChatFrame
		newSessionID, result, qerr := h.svc.Query(c.Request.Context(), sessionID, string(payload))
		if qerr != nil {
			logger.Error("Chat query failed", slog.String("error", qerr.Error()))
			frame = errorFrame
		} else {
			sessionID = newSessionID
			frame = buildChatFrame(result)
		}

		if err := conn.WriteJSON(frame); err != nil {
			logger.Warn("Failed to write chat frame", slog.String("error", err.Error()))
			return
		}
	}
}

// buildChatFrame converts a pipeline reply into the client frame,
// attaching the per-tool default suggested actions after the reply's own
// follow-up.
func buildChatFrame(result agent.DispatchResult) ChatFrame {
	data := map[string]any{}
	if err := json.Unmarshal([]byte(result.Result), &data); err != nil {
		data = map[string]any{"text": result.Result}
	}

	var actions []string
	if result.FollowUp != "" {
		actions = append(actions, result.FollowUp)
	}
	switch result.ToolName {
	case "product_lookup_tool":
		actions = append(actions,
			"Is this compatible with my refrigerator?",
			"How do I install this?",
			"Add to cart")
	case "error_diagnosis_tool":
		actions = append(actions,
			"Find replacement parts",
			"Installation instructions")
	case "cart_tool":
		actions = append(actions,
			"Continue shopping",
			"Checkout",
			"Clear cart")
	case "out_of_scope":
		actions = []string{
			"I need a water filter for my refrigerator",
			"Installation Help",
			"Order Status",
		}
	}
	if actions == nil {
		actions = []string{}
	}

	return ChatFrame{
		Message:          result.Result,
		ToolUsed:         result.ToolName,
		Data:             data,
		SuggestedActions: actions,
	}
}
