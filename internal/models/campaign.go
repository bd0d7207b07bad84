// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures shared across the AdForge
// service: scraped website data, the user's campaign brief, and the
// generated campaign assets.
package models

// ProductImage is a single harvested product image with a caption derived
// from the surrounding markup.
type ProductImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// ScrapeResult holds everything extracted from a company website. Built
// once per scrape call and returned to the wizard for prefilling; fields
// the page does not provide are empty strings, never missing keys.
type ScrapeResult struct {
	CompanyName     string         `json:"companyName"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	URL             string         `json:"url"`
	BrandGuidelines string         `json:"brandGuidelines"`
	BrandColors     string         `json:"brandColors"`
	BrandVoice      string         `json:"brandVoice"`
	ProductImages   []ProductImage `json:"productImages"`
}

// GeneratedImage is one image produced by the generation gateway.
// Invariant: either URL points at a real generated asset, or Placeholder
// is true and Error carries the reason generation fell back.
type GeneratedImage struct {
	URL         string `json:"url"`
	Index       int    `json:"index"`
	Prompt      string `json:"prompt,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
	Error       string `json:"error,omitempty"`
}

// GeneratedVideo is the single promotional video for a campaign. The same
// placeholder invariant as GeneratedImage applies.
type GeneratedVideo struct {
	URL         string `json:"url"`
	Duration    int    `json:"duration"`
	Prompt      string `json:"prompt,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
	Message     string `json:"message,omitempty"`
}

// CompanyInfo describes the company behind a campaign.
type CompanyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

// BrandInfo captures brand guidelines, colors and voice.
type BrandInfo struct {
	Guidelines string `json:"guidelines"`
	Colors     string `json:"colors"`
	Voice      string `json:"voice"`
}

// SocialInfo describes the target platform and audience.
type SocialInfo struct {
	Platform       string `json:"platform"`
	TargetAudience string `json:"targetAudience"`
	AgeRange       string `json:"ageRange"`
	Interests      string `json:"interests"`
}

// ProductInfo describes the advertised product.
type ProductInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Features    string `json:"features"`
	ProductURL  string `json:"productUrl"`
}

// CampaignInfo holds the campaign objective and messaging.
type CampaignInfo struct {
	Objective string `json:"objective"`
	Message   string `json:"message"`
	Notes     string `json:"notes"`
}

// CampaignBrief is the full user-edited aggregate collected by the
// multi-step wizard. It mirrors the shape returned by the random-data
// endpoint so the frontend can prefill every step from one object.
type CampaignBrief struct {
	Company  CompanyInfo  `json:"company"`
	Brand    BrandInfo    `json:"brand"`
	Social   SocialInfo   `json:"social"`
	Product  ProductInfo  `json:"product"`
	Campaign CampaignInfo `json:"campaign"`
}

// PlatformSuggestion pairs a recommended platform with the reason it fits
// the company profile.
type PlatformSuggestion struct {
	Platform string `json:"platform"`
	Reason   string `json:"reason"`
}

// ConceptSuggestion is one canned campaign concept.
type ConceptSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Objective   string `json:"objective"`
}
