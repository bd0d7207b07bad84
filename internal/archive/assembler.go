// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package archive packages generated campaign assets into a ZIP stream.
// Assembly is tolerant of partial failure: an unreachable asset is logged
// and skipped, and the archive completes with whatever succeeded.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"adforge/internal/models"
)

const (
	imageFetchTimeout = 30 * time.Second
	videoFetchTimeout = 60 * time.Second
)

// Assembler downloads campaign assets and streams them into a ZIP
// container. Safe for concurrent use; each call is self-contained.
type Assembler struct {
	client *http.Client
}

// NewAssembler creates an Assembler. Per-asset timeouts are applied via
// context, not the client, because images and video use different bounds.
func NewAssembler() *Assembler {
	return &Assembler{client: &http.Client{}}
}

// Write assembles the campaign archive directly into w (normally the
// outbound HTTP response). Entry order is fixed: images in index order,
// video, description, README. Asset fetch failures degrade the contents;
// only a write error on w itself aborts the stream.
func (a *Assembler) Write(ctx context.Context, w io.Writer, images []models.GeneratedImage, video *models.GeneratedVideo, description string) error {
	zw := zip.NewWriter(w)

	for i, img := range images {
		if ctx.Err() != nil {
			// Client went away; no point fetching the rest.
			break
		}
		data, err := a.fetchAsset(ctx, img.URL, imageFetchTimeout)
		if err != nil {
			slog.Error("failed to download image, skipping", "index", i+1, "url", img.URL, "error", err)
			continue
		}
		if err := addFile(zw, fmt.Sprintf("images/image-%d.png", i+1), data); err != nil {
			return fmt.Errorf("archive: adding image %d: %w", i+1, err)
		}
		slog.Debug("added image to archive", "index", i+1)
	}

	if video != nil && video.URL != "" && !video.Placeholder && ctx.Err() == nil {
		data, err := a.fetchAsset(ctx, video.URL, videoFetchTimeout)
		if err != nil {
			slog.Error("failed to download video, skipping", "url", video.URL, "error", err)
		} else if err := addFile(zw, "video/campaign-video.mp4", data); err != nil {
			return fmt.Errorf("archive: adding video: %w", err)
		}
	}

	if description != "" {
		if err := addFile(zw, "campaign-description.txt", []byte(description)); err != nil {
			return fmt.Errorf("archive: adding description: %w", err)
		}
	}

	if err := addFile(zw, "README.txt", []byte(buildReadme())); err != nil {
		return fmt.Errorf("archive: adding readme: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("archive: finalizing: %w", err)
	}
	return nil
}

// fetchAsset downloads one asset with a bounded timeout.
func (a *Assembler) fetchAsset(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func addFile(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}

func buildReadme() string {
	return fmt.Sprintf(`Ad Campaign Assets
==================

This ZIP file contains all the generated assets for your ad campaign.

Contents:
- images/ - AI-generated campaign images
- video/ - 1 promotional video (if available)
- campaign-description.txt - Detailed campaign description and usage guidelines

Generated: %s

For best results, review the campaign description for recommended usage across different channels.`,
		time.Now().Format("1/2/2006, 3:04:05 PM"))
}
