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
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all assist routes with the router.
//
// Description:
//
//	Registers all /v1/assist/* endpoints with the given Gin router group.
//	The router group should already have any required middleware applied.
//
// Inputs:
//
//	rg - Gin router group (typically /v1)
//	handlers - The handlers instance
//
// Query Endpoints:
//
//	POST /v1/assist/query - Run one message through the pipeline
//	GET  /v1/assist/chat - WebSocket chat (one frame per message)
//
// Session Endpoints:
//
//	GET  /v1/assist/context/:session - Conversation context snapshot
//	POST /v1/assist/context/:session/reset - Discard a session's context
//
// Catalog Endpoints:
//
//	GET  /v1/assist/parts/popular - Popular parts by appliance type
//
// Health Endpoints:
//
//	GET  /v1/assist/health - Backing-service health report
//	GET  /v1/assist/ready - Readiness probe
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	assist := rg.Group("/assist")
	{
		assist.POST("/query", handlers.HandleQuery)
		assist.GET("/chat", handlers.HandleChat)

		assist.GET("/context/:session", handlers.HandleContext)
		assist.POST("/context/:session/reset", handlers.HandleContextReset)

		assist.GET("/parts/popular", handlers.HandlePopularParts)

		assist.GET("/health", handlers.HandleHealth)
		assist.GET("/ready", handlers.HandleReady)
	}
}
