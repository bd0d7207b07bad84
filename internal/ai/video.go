// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"log/slog"

	"adforge/internal/models"
)

const (
	// videoDuration is the fixed clip length the video model produces.
	videoDuration = 5

	placeholderVideoURL     = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"
	placeholderVideoMessage = "This is a placeholder video. Video generation in progress or API unavailable."
)

// GenerateVideo requests a single short promotional clip. Like image
// generation it never fails: a missing credential, an upstream error, or
// an unparsable reply all degrade to the sample placeholder video.
func (g *Gateway) GenerateVideo(ctx context.Context, prompt, brandGuidelines string) models.GeneratedVideo {
	if g.config.APIKey == "" {
		slog.Warn("video generation skipped: no API key configured")
		return placeholderVideo(prompt)
	}

	enhanced := enhanceVideoPrompt(prompt, brandGuidelines)

	reply, err := g.client.chat(ctx, g.config.VideoModel, enhanced)
	if err != nil {
		slog.Error("video generation failed", "error", err)
		return placeholderVideo(prompt)
	}

	url := extractVideoURL(reply)
	if url == "" {
		slog.Error("no video URL found in response")
		return placeholderVideo(prompt)
	}

	return models.GeneratedVideo{URL: url, Duration: videoDuration, Prompt: enhanced}
}

// enhanceVideoPrompt wraps the campaign prompt with the cinematic and
// brand qualifiers the video model expects.
func enhanceVideoPrompt(basePrompt, brandGuidelines string) string {
	return fmt.Sprintf(
		"Create a professional advertising video: %s. Brand guidelines: %s. Cinematic, smooth camera movement, professional lighting, commercial quality, 5 seconds duration.",
		basePrompt, brandGuidelines,
	)
}

func placeholderVideo(prompt string) models.GeneratedVideo {
	return models.GeneratedVideo{
		URL:         placeholderVideoURL,
		Duration:    videoDuration,
		Prompt:      prompt,
		Placeholder: true,
		Message:     placeholderVideoMessage,
	}
}
