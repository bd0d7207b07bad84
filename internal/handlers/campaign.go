// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"adforge/internal/ai"
	"adforge/internal/campaign"
	"adforge/internal/models"
)

// maxUploadMemory bounds how much of a multipart upload is held in memory.
const maxUploadMemory = 32 << 20

// Generator produces campaign media. Implemented by ai.Gateway; handler
// tests substitute a mock.
type Generator interface {
	GenerateImages(ctx context.Context, prompt string, count int) []models.GeneratedImage
	GenerateVideo(ctx context.Context, prompt, brandGuidelines string) models.GeneratedVideo
}

// WebsiteScraper extracts campaign prefill data from a company website.
type WebsiteScraper interface {
	Scrape(ctx context.Context, url string) (*models.ScrapeResult, error)
}

// Archiver streams campaign assets into a ZIP container.
type Archiver interface {
	Write(ctx context.Context, w io.Writer, images []models.GeneratedImage, video *models.GeneratedVideo, description string) error
}

// Campaign groups the campaign API handlers and their dependencies.
type Campaign struct {
	generator Generator
	service   *campaign.Service
	scraper   WebsiteScraper
	assembler Archiver
}

// NewCampaign creates the campaign handler group.
func NewCampaign(generator Generator, service *campaign.Service, scraper WebsiteScraper, assembler Archiver) *Campaign {
	return &Campaign{
		generator: generator,
		service:   service,
		scraper:   scraper,
		assembler: assembler,
	}
}

// generateMetadata describes one generation run.
type generateMetadata struct {
	CampaignID      string `json:"campaignId"`
	GeneratedAt     string `json:"generatedAt"`
	ImageCount      int    `json:"imageCount"`
	CampaignPrompt  string `json:"campaignPrompt"`
	BrandGuidelines string `json:"brandGuidelines"`
}

// generateResult is the data payload of a successful generation call.
type generateResult struct {
	Images      []models.GeneratedImage `json:"images"`
	Video       models.GeneratedVideo   `json:"video"`
	Description string                  `json:"description"`
	Metadata    generateMetadata        `json:"metadata"`
}

// Generate runs the full campaign pipeline: 5 image variations, one
// video, and the description document. Generation is fail-soft, so this
// endpoint only errors on missing input — degraded assets come back as
// placeholders inside a 200.
func (h *Campaign) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && err != http.ErrNotMultipart {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	campaignPrompt := strings.TrimSpace(r.FormValue("campaignPrompt"))
	brandGuidelines := strings.TrimSpace(r.FormValue("brandGuidelinesText"))

	if campaignPrompt == "" {
		writeError(w, http.StatusBadRequest, "Campaign prompt is required")
		return
	}

	// Reference uploads inform the user's own review flow; they are
	// counted for the log and discarded without touching disk.
	var guidelineFiles, inputImages int
	if r.MultipartForm != nil {
		guidelineFiles = len(r.MultipartForm.File["brandGuidelineFiles"])
		inputImages = len(r.MultipartForm.File["inputImages"])
	}

	slog.Info("starting campaign generation",
		"prompt", campaignPrompt,
		"guideline_files", guidelineFiles,
		"input_images", inputImages,
	)

	imageGuidelines := brandGuidelines
	if imageGuidelines == "" {
		imageGuidelines = "Professional, high-quality advertising"
	}
	videoGuidelines := brandGuidelines
	if videoGuidelines == "" {
		videoGuidelines = "Professional advertising"
	}

	enhancedPrompt := ai.EnhanceImagePrompt(campaignPrompt, imageGuidelines)
	images := h.generator.GenerateImages(r.Context(), enhancedPrompt, ai.DefaultImageCount)
	video := h.generator.GenerateVideo(r.Context(), campaignPrompt, videoGuidelines)
	description := h.service.Description(campaignPrompt, videoGuidelines, images)

	writeData(w, generateResult{
		Images:      images,
		Video:       video,
		Description: description,
		Metadata: generateMetadata{
			CampaignID:      uuid.New().String(),
			GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
			ImageCount:      len(images),
			CampaignPrompt:  campaignPrompt,
			BrandGuidelines: brandGuidelines,
		},
	})
}

// downloadRequest is the payload of a download call: the assets from a
// previous generation, echoed back by the client.
type downloadRequest struct {
	Images      []models.GeneratedImage `json:"images"`
	Video       *models.GeneratedVideo  `json:"video"`
	Description string                  `json:"description"`
}

// Download assembles the campaign archive and streams it as the
// response. Once streaming starts, asset failures degrade the archive
// contents rather than the HTTP status.
func (h *Campaign) Download(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Images == nil {
		writeError(w, http.StatusBadRequest, "Images array is required")
		return
	}

	slog.Info("creating campaign archive", "images", len(req.Images), "has_video", req.Video != nil)

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=campaign-%d.zip", time.Now().UnixMilli()))

	if err := h.assembler.Write(r.Context(), w, req.Images, req.Video, req.Description); err != nil {
		// Headers are already out; all we can do is log and drop the
		// connection mid-stream.
		slog.Error("campaign archive streaming failed", "error", err)
	}
}

// RandomData returns a fully populated sample campaign brief.
func (h *Campaign) RandomData(w http.ResponseWriter, r *http.Request) {
	writeData(w, h.service.RandomBrief())
}

// SuggestAudiences returns canned audience suggestions for a platform.
func (h *Campaign) SuggestAudiences(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Platform    string             `json:"platform"`
		CompanyInfo models.CompanyInfo `json:"companyInfo"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	writeData(w, h.service.SuggestAudiences(req.Platform))
}

// SuggestPlatforms recommends up to three platforms for the company.
func (h *Campaign) SuggestPlatforms(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyInfo models.CompanyInfo `json:"companyInfo"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	writeData(w, h.service.SuggestPlatforms(req.CompanyInfo))
}

// ImproveText lightly edits user-entered copy.
func (h *Campaign) ImproveText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text    string `json:"text"`
		Context string `json:"context"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	writeData(w, map[string]string{
		"improvedText": h.service.ImproveText(req.Text, req.Context),
	})
}

// SuggestConcepts returns the canned campaign concepts.
func (h *Campaign) SuggestConcepts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductInfo     models.ProductInfo `json:"productInfo"`
		BrandGuidelines models.BrandInfo   `json:"brandGuidelines"`
		Platform        string             `json:"platform"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	writeData(w, h.service.SuggestConcepts(req.ProductInfo))
}

// ScrapeWebsite extracts prefill data from a company website. A scrape
// failure is not an HTTP error: the client gets {success:false} and falls
// back to manual entry.
func (h *Campaign) ScrapeWebsite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	result, err := h.scraper.Scrape(r.Context(), req.URL)
	if err != nil {
		slog.Error("website scraping failed", "url", req.URL, "error", err)
		writeJSON(w, http.StatusOK, envelope{
			Success: false,
			Error:   "Failed to scrape website. Please enter information manually.",
		})
		return
	}

	writeData(w, result)
}
