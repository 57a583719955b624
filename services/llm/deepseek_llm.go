// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// DeepSeek Wire Types
// =============================================================================

const defaultDeepSeekBaseURL = "https://api.deepseek.com/v1/chat/completions"

type deepseekRequest struct {
	Model       string            `json:"model"`
	Messages    []deepseekMessage `json:"messages"`
	Temperature float32           `json:"temperature"`
	MaxTokens   int               `json:"max_tokens"`
}

type deepseekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepseekResponse struct {
	ID      string           `json:"id"`
	Choices []deepseekChoice `json:"choices"`
	Error   *deepseekError   `json:"error,omitempty"`
}

type deepseekChoice struct {
	Index        int             `json:"index"`
	Message      deepseekMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

type deepseekError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// =============================================================================
// Client Implementation
// =============================================================================

// classifyPromptTemplate asks for exactly one intent label. The label set must
// stay in sync with classifierIntents below.
const classifyPromptTemplate = `You are a specialized intent classifier for an appliance parts system.
Your task is to categorize user queries related to refrigerator and dishwasher parts.

The possible intents are:
- lookup: User wants to find or identify a specific part
- compatibility: User wants to check if a part is compatible with their appliance
- install: User needs installation instructions for a part
- diagnose: User has an issue and needs to diagnose which part may be causing it
- out_of_scope: Query is not related to refrigerator or dishwasher parts

Analyze the following query and respond with only one of the intent labels above:

User query: "%s"

Intent:`

// classifierIntents is scanned in order against the lowercased model output.
// "out_of_scope" is last so a hedging answer that names a real intent wins.
var classifierIntents = []string{
	"lookup", "compatibility", "install", "diagnose", "out_of_scope",
}

// DeepSeekClient classifies query intent using the DeepSeek chat completions
// REST API directly, without third-party SDKs.
//
// Description:
//
//	The client sends a single low-temperature completion per query and maps
//	the response back onto the fixed intent label set. It is a fallback for
//	queries the rule-based classifier refuses, so latency matters more than
//	nuance: max_tokens is capped at 50.
//
// Thread Safety: DeepSeekClient is safe for concurrent use.
type DeepSeekClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

// NewDeepSeekClientWithConfig creates a DeepSeekClient with explicit
// configuration. Useful for testing with mock servers or when configuration
// comes from a source other than environment variables.
func NewDeepSeekClientWithConfig(apiKey, model, baseURL string) *DeepSeekClient {
	return &DeepSeekClient{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
	}
}

// NewDeepSeekClient creates a new DeepSeekClient from environment variables.
//
// Description:
//
//	Reads DEEPSEEK_API_KEY and DEEPSEEK_MODEL from the environment.
//	Defaults to "deepseek-chat" if DEEPSEEK_MODEL is not set.
//
// Outputs:
//   - *DeepSeekClient: The configured client.
//   - error: Non-nil if DEEPSEEK_API_KEY is missing.
func NewDeepSeekClient() (*DeepSeekClient, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	model := os.Getenv("DEEPSEEK_MODEL")
	if apiKey == "" {
		slog.Warn("DeepSeek API Key is empty. DeepSeek Client will not function.")
		return nil, fmt.Errorf("deepseek: API key is missing (DEEPSEEK_API_KEY)")
	}
	if model == "" {
		model = "deepseek-chat"
	}
	slog.Info("Initializing DeepSeek client", "model", model)
	return &DeepSeekClient{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultDeepSeekBaseURL,
	}, nil
}

// Classify returns one of the fixed intent labels for the query.
//
// Description:
//
//	Sends the classification prompt and scans the lowercased response for
//	a known label. An unrecognizable response maps to "out_of_scope" with
//	no error; transport and API failures return an error and the caller
//	decides the fallback.
//
// Inputs:
//   - ctx: Context for cancellation and timeout.
//   - query: The user query to classify.
//
// Outputs:
//   - string: One of lookup, compatibility, install, diagnose, out_of_scope.
//   - error: Non-nil if the request fails.
//
// Thread Safety: This method is safe for concurrent use.
func (d *DeepSeekClient) Classify(ctx context.Context, query string) (string, error) {
	slog.Debug("Classifying intent via DeepSeek", slog.String("model", d.model))

	reqPayload := deepseekRequest{
		Model: d.model,
		Messages: []deepseekMessage{
			{Role: "user", Content: fmt.Sprintf(classifyPromptTemplate, query)},
		},
		Temperature: 0.1,
		MaxTokens:   50,
	}

	reqBody, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("deepseek: marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", d.baseURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("deepseek: creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+d.apiKey)

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("deepseek: HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("deepseek: reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepseek: API returned status %d: %s", resp.StatusCode, SafeLogString(string(bodyBytes)))
	}

	var apiResp deepseekResponse
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return "", fmt.Errorf("deepseek: parsing response JSON: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("deepseek: API error: %s - %s", apiResp.Error.Type, SafeLogString(apiResp.Error.Message))
	}

	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("deepseek: returned no choices")
	}

	label := extractIntentLabel(apiResp.Choices[0].Message.Content)
	slog.Debug("DeepSeek classification result",
		slog.String("intent", label),
		slog.String("finish_reason", apiResp.Choices[0].FinishReason),
	)
	return label, nil
}

// extractIntentLabel maps raw model output onto the fixed label set,
// defaulting to out_of_scope for anything unrecognizable.
func extractIntentLabel(response string) string {
	response = strings.ToLower(strings.TrimSpace(response))
	for _, intent := range classifierIntents {
		if strings.Contains(response, intent) {
			return intent
		}
	}
	return "out_of_scope"
}
