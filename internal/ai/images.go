// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"adforge/internal/models"
)

// DefaultImageCount is the number of image variations generated per
// campaign.
const DefaultImageCount = 5

// Gateway talks to the external media generation endpoint. Construct one
// per process with NewGateway and pass it to whoever needs generation;
// there is no package-level instance.
type Gateway struct {
	config Config
	client *client
}

// NewGateway creates a Gateway from explicit configuration.
func NewGateway(cfg Config) *Gateway {
	return &Gateway{
		config: cfg,
		client: newChatClient(cfg),
	}
}

// GenerateImages requests count image variations concurrently and waits
// for all of them. The barrier cannot fail as a whole: each request's
// error is absorbed into that slot's placeholder before the join, so the
// returned slice always holds count well-formed assets in index order.
func (g *Gateway) GenerateImages(ctx context.Context, prompt string, count int) []models.GeneratedImage {
	if count <= 0 {
		count = DefaultImageCount
	}

	results := make([]models.GeneratedImage, count)

	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = g.generateSingleImage(ctx, prompt, slot+1)
		}(i)
	}
	wg.Wait()

	return results
}

// generateSingleImage runs one generation request. index is 1-based and
// drives the variation suffix and the placeholder label.
func (g *Gateway) generateSingleImage(ctx context.Context, prompt string, index int) models.GeneratedImage {
	if g.config.APIKey == "" {
		slog.Warn("image generation skipped: no API key configured", "index", index)
		return placeholderImage(index, prompt, "API key is not configured")
	}

	content := fmt.Sprintf(
		"%s (variation %d). Professional advertising photography, high quality, commercial use, 1024x1024 resolution.",
		prompt, index,
	)

	reply, err := g.client.chat(ctx, g.config.ImageModel, content)
	if err != nil {
		slog.Error("image generation failed", "index", index, "error", err)
		return placeholderImage(index, prompt, err.Error())
	}

	url := extractImageURL(reply)
	if url == "" {
		slog.Error("no image URL found in response", "index", index)
		return placeholderImage(index, prompt, "no image URL found in response")
	}

	return models.GeneratedImage{URL: url, Index: index, Prompt: prompt}
}

// placeholderImage builds the fail-soft stand-in for a failed slot.
func placeholderImage(index int, prompt, reason string) models.GeneratedImage {
	return models.GeneratedImage{
		URL:         fmt.Sprintf("https://via.placeholder.com/1024x1024?text=Image+%d+Generation+Failed", index),
		Index:       index,
		Prompt:      prompt,
		Placeholder: true,
		Error:       reason,
	}
}

// EnhanceImagePrompt appends brand guidelines and the fixed quality
// qualifiers to the campaign prompt.
func EnhanceImagePrompt(basePrompt, brandGuidelines string) string {
	return fmt.Sprintf(
		"%s. Brand guidelines: %s. Professional advertising photography, high quality, commercial use, brand consistent.",
		basePrompt, brandGuidelines,
	)
}
