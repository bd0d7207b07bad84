// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai is the gateway to the external media generation endpoint.
// The provider speaks a chat-completions-shaped protocol: a prompt goes
// out as a user message and the reply text carries the generated media's
// URL. The gateway's contract is fail-soft — generation never returns an
// error to its caller; failed assets degrade to labeled placeholders.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds the credentials and model names for the generation
// endpoint. Constructed once at startup from application config; an empty
// APIKey makes every generation call fall back to placeholders.
type Config struct {
	APIKey     string
	BaseURL    string
	ImageModel string
	VideoModel string
}

// client performs the HTTP calls to the chat completions endpoint.
type client struct {
	config     Config
	httpClient *http.Client
}

func newChatClient(cfg Config) *client {
	return &client{
		config:     cfg,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// chat sends a single user message to the given model and returns the
// assistant's reply text.
func (c *client) chat(ctx context.Context, model, content string) (string, error) {
	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "user", Content: content},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("generation marshal: %w", err)
	}

	url := c.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("generation read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("generation unmarshal: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("generation: no choices returned")
	}

	return result.Choices[0].Message.Content, nil
}

// --- chat-completions request/response types ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}
