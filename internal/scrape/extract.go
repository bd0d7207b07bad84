// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"adforge/internal/models"
)

const (
	maxDescriptionLen = 200
	maxAboutLen       = 300
	maxMissionLen     = 200
)

// Scraper fetches a company website and extracts the fields the campaign
// wizard can prefill: identity, brand guidelines, voice, and product images.
type Scraper struct {
	fetcher *fetcher
}

// New creates a Scraper with the default bounded-timeout fetcher.
func New() *Scraper {
	return &Scraper{fetcher: newFetcher()}
}

// Scrape downloads the page at rawURL and runs the extraction heuristics.
// Only the fetch or an invalid URL can fail; missing markup degrades to
// empty fields.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*models.ScrapeResult, error) {
	if rawURL == "" || !strings.HasPrefix(rawURL, "http") {
		return nil, fmt.Errorf("invalid URL provided")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL provided")
	}
	origin := parsed.Scheme + "://" + parsed.Host

	html, err := s.fetcher.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(html)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	title := extractTitle(doc)
	guidelines, colors := extractBrandInfo(doc)

	return &models.ScrapeResult{
		CompanyName:     extractCompanyName(doc, title),
		Title:           title,
		Description:     extractDescription(doc),
		URL:             rawURL,
		BrandGuidelines: guidelines,
		BrandColors:     colors,
		BrandVoice:      classifyVoice(doc.joinedText("h1, h2, h3")),
		ProductImages:   harvestImages(doc, origin),
	}, nil
}

// extractTitle prefers the Open Graph title over the document title, with
// the first heading as a last resort.
func extractTitle(doc *document) string {
	if t := doc.attr(`meta[property="og:title"]`, "content"); t != "" {
		return t
	}
	if t := doc.text("title"); t != "" {
		return t
	}
	return doc.text("h1")
}

// extractDescription prefers og:description, then the description meta
// tag, then the first paragraph of body text.
func extractDescription(doc *document) string {
	if d := doc.attr(`meta[property="og:description"]`, "content"); d != "" {
		return d
	}
	if d := doc.attr(`meta[name="description"]`, "content"); d != "" {
		return d
	}
	return truncate(doc.text("p"), maxDescriptionLen)
}

// extractCompanyName uses og:site_name when present, otherwise derives the
// name from the title by splitting on "|" or "-".
func extractCompanyName(doc *document, title string) string {
	if name := doc.attr(`meta[property="og:site_name"]`, "content"); name != "" {
		return name
	}
	if i := strings.Index(title, "|"); i >= 0 {
		return strings.TrimSpace(title[:i])
	}
	if i := strings.Index(title, "-"); i >= 0 {
		return strings.TrimSpace(title[:i])
	}
	return strings.TrimSpace(title)
}

// extractBrandInfo pulls brand guidelines from about/mission sections and
// a brand color hint from the theme-color meta tag. Section markup is
// converted to clean text so the guidelines read as prose, not HTML.
func extractBrandInfo(doc *document) (guidelines, colors string) {
	colors = doc.attr(`meta[name="theme-color"]`, "content")

	about := truncate(sectionText(doc, `section[class*="about"], div[class*="about"], section[id*="about"]`), maxAboutLen)
	mission := truncate(sectionText(doc, `section[class*="mission"], div[class*="mission"], section[class*="vision"]`), maxMissionLen)

	var parts []string
	if about != "" {
		parts = append(parts, about)
	}
	if mission != "" && mission != about {
		parts = append(parts, mission)
	}

	if len(parts) > 0 {
		return strings.Join(parts, "\n\n"), colors
	}

	// No dedicated sections: build a generic guideline from the meta
	// description when one exists.
	if desc := doc.attr(`meta[name="description"]`, "content"); desc != "" {
		guidelines = "Professional and modern brand focused on quality and customer satisfaction. " + desc
	}
	return guidelines, colors
}

// sectionText extracts the first matching section and converts its markup
// to markdown-flavored plain text. Falls back to the raw node text when
// conversion fails.
func sectionText(doc *document, selector string) string {
	h := doc.html(selector)
	if strings.TrimSpace(h) == "" {
		return ""
	}
	md, err := htmltomarkdown.ConvertString(h)
	if err != nil {
		return doc.text(selector)
	}
	return strings.TrimSpace(md)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
