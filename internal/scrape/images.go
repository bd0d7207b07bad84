// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package scrape

import (
	"strings"
	"unicode/utf8"

	"adforge/internal/models"
)

const (
	// maxProductImages caps the harvest so the wizard isn't flooded.
	// The cap and the selector order below are contractual.
	maxProductImages = 5

	maxCaptionLen     = 100
	defaultCaption    = "Product image"
	ogDefaultCaption  = "Product featured image"
	minSiblingTextLen = 3
	maxSiblingTextLen = 150
)

// productImageSelectors are scanned in order; earlier selectors win the
// discovery-order slots.
var productImageSelectors = []string{
	`img[class*="product"]`,
	`img[class*="Product"]`,
	`img[id*="product"]`,
	`img[id*="Product"]`,
	`.product-image img`,
	`.product-gallery img`,
	`[class*="gallery"] img`,
	`[class*="slider"] img`,
	`main img`,
	`article img`,
}

// harvestImages collects up to maxProductImages candidate product images:
// the Open Graph image first, then matches of the fixed selector list.
// Results are deduplicated by normalized URL and each carries a caption.
func harvestImages(doc *document, origin string) []models.ProductImage {
	var images []models.ProductImage
	seen := make(map[string]bool)

	if og := doc.attr(`meta[property="og:image"]`, "content"); og != "" {
		if u := normalizeImageURL(og, origin); u != "" {
			caption := doc.attr(`meta[property="og:image:alt"]`, "content")
			if caption == "" {
				caption = ogDefaultCaption
			}
			images = append(images, models.ProductImage{URL: u, Caption: caption})
			seen[u] = true
		}
	}

	for _, selector := range productImageSelectors {
		doc.each(selector, func(el element) {
			if len(images) >= maxProductImages {
				return
			}
			src := el.attr("src")
			if src == "" {
				src = el.attr("data-src")
			}
			if src == "" || strings.Contains(src, "logo") || strings.Contains(src, "icon") {
				return
			}
			u := normalizeImageURL(src, origin)
			if u == "" || seen[u] {
				return
			}
			seen[u] = true
			images = append(images, models.ProductImage{URL: u, Caption: imageCaption(el)})
		})
	}

	if len(images) > maxProductImages {
		images = images[:maxProductImages]
	}
	return images
}

// imageCaption derives a caption using a fixed priority chain: alt, title,
// aria-label, the enclosing figure's caption, nearby sibling text, and
// finally a default. The chain order is contractual.
func imageCaption(el element) string {
	for _, name := range []string{"alt", "title", "aria-label"} {
		if v := el.attr(name); v != "" {
			return v
		}
	}

	if fc := el.closestText("figure", "figcaption"); fc != "" {
		return truncate(fc, maxCaptionLen)
	}

	sibling := el.siblingText("p, span, div")
	if n := utf8.RuneCountInString(sibling); n > minSiblingTextLen && n < maxSiblingTextLen {
		return truncate(sibling, maxCaptionLen)
	}

	return defaultCaption
}

// normalizeImageURL converts a page-relative image reference to an
// absolute URL. Returns "" when the source cannot be normalized.
func normalizeImageURL(src, origin string) string {
	src = strings.TrimSpace(src)
	switch {
	case src == "":
		return ""
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return src
	case strings.HasPrefix(src, "//"):
		return "https:" + src
	case strings.HasPrefix(src, "/"):
		return origin + src
	default:
		return origin + "/" + src
	}
}
