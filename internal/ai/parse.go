// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"regexp"
	"strings"
)

// The provider returns generated media as markdown image syntax, a bare
// .mp4 link, or occasionally a reply that is nothing but the URL.
var (
	markdownImageRe = regexp.MustCompile(`!\[.*?\]\((https?://[^)]+)\)`)
	mp4URLRe        = regexp.MustCompile(`https?://\S+\.mp4`)
)

// extractImageURL pulls an image URL out of the model reply. Returns ""
// when no URL can be found.
func extractImageURL(content string) string {
	if m := markdownImageRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if strings.HasPrefix(content, "http") {
		return strings.TrimSpace(content)
	}
	return ""
}

// extractVideoURL pulls a video URL out of the model reply, also
// accepting a bare .mp4 link anywhere in the text.
func extractVideoURL(content string) string {
	if m := markdownImageRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if m := mp4URLRe.FindString(content); m != "" {
		return m
	}
	if strings.HasPrefix(content, "http") {
		return strings.TrimSpace(content)
	}
	return ""
}
