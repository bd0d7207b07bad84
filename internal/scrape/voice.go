// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package scrape

import "strings"

// voiceRule maps heading keywords to a canned brand voice description.
// Rules are tested in order; the first with any keyword hit wins.
type voiceRule struct {
	keywords []string
	voice    string
}

var voiceRules = []voiceRule{
	{[]string{"innovative", "cutting-edge", "technology"}, "Innovative, forward-thinking, and tech-savvy"},
	{[]string{"professional", "enterprise", "business"}, "Professional, trustworthy, and authoritative"},
	{[]string{"friendly", "community", "together"}, "Friendly, approachable, and community-focused"},
	{[]string{"luxury", "premium", "exclusive"}, "Premium, sophisticated, and exclusive"},
}

// defaultVoice is used when no keyword set matches the page headings.
const defaultVoice = "Professional yet approachable, confident and clear"

// classifyVoice infers a brand voice from the page's heading text.
func classifyVoice(headings string) string {
	headings = strings.ToLower(headings)
	for _, rule := range voiceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(headings, kw) {
				return rule.voice
			}
		}
	}
	return defaultVoice
}
