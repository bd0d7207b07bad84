// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package campaign implements the wizard's assistance features: random
// brief generation, audience/platform/concept suggestions, text
// improvement, and the campaign description document. Everything here is
// table-driven and deterministic apart from the random brief.
package campaign

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"adforge/internal/models"
)

// Service provides campaign assistance features. Construct one with
// NewService and pass it where needed.
type Service struct{}

// NewService creates a campaign Service.
func NewService() *Service {
	return &Service{}
}

var (
	industries = []string{
		"Technology", "Fashion", "Food & Beverage", "Healthcare", "Finance",
		"Education", "Travel", "Fitness", "Beauty", "Real Estate",
	}
	platforms  = []string{"Instagram", "Facebook", "LinkedIn", "Twitter", "TikTok", "YouTube"}
	objectives = []string{"Brand Awareness", "Lead Generation", "Product Launch", "Engagement", "Conversion"}
)

// audienceSuggestions is keyed by the same platform set RandomBrief draws
// from, so a generated platform always has a suggestion list.
var audienceSuggestions = map[string][]string{
	"Instagram": {
		"Young adults (18-34) interested in visual content",
		"Lifestyle enthusiasts and trendsetters",
		"Mobile-first consumers",
		"Brand-conscious shoppers",
		"Influencer followers",
	},
	"Facebook": {
		"Adults (25-54) with diverse interests",
		"Community-oriented users",
		"Family-focused demographics",
		"Local business supporters",
		"Event attendees",
	},
	"LinkedIn": {
		"Business professionals and decision-makers",
		"B2B buyers and enterprise clients",
		"Industry thought leaders",
		"Job seekers and recruiters",
		"Corporate executives",
	},
	"Twitter": {
		"News-conscious and trend-aware users",
		"Tech-savvy early adopters",
		"Opinion leaders and influencers",
		"Real-time engagement seekers",
		"Brand advocates",
	},
	"TikTok": {
		"Gen Z and young millennials (16-30)",
		"Entertainment-focused users",
		"Viral content consumers",
		"Creative and authentic brand followers",
		"Short-form video enthusiasts",
	},
	"YouTube": {
		"Video content consumers of all ages",
		"Tutorial and how-to seekers",
		"Entertainment and education focused",
		"Product review watchers",
		"Long-form content enthusiasts",
	},
}

// RandomBrief fills every wizard step with plausible sample data drawn
// from the static industry/platform/objective tables.
func (s *Service) RandomBrief() models.CampaignBrief {
	industry := industries[rand.IntN(len(industries))]
	platform := platforms[rand.IntN(len(platforms))]
	objective := objectives[rand.IntN(len(objectives))]

	lower := strings.ToLower(industry)

	audience := "Young adults aged 25-40"
	ageRange := "25-40"
	if platform == "LinkedIn" {
		audience = "Professionals and business decision-makers"
		ageRange = "30-55"
	}

	return models.CampaignBrief{
		Company: models.CompanyInfo{
			Name:        fmt.Sprintf("%s Innovations Inc.", industry),
			Description: fmt.Sprintf("A leading %s company focused on innovation and customer satisfaction. We deliver cutting-edge solutions that transform the industry.", lower),
			Website:     fmt.Sprintf("https://www.%s-innovations.com", strings.ReplaceAll(lower, " ", "")),
		},
		Brand: models.BrandInfo{
			Guidelines: fmt.Sprintf("Modern, professional, and innovative. Our brand represents quality and trust in the %s sector. We use bold colors and clean typography to convey our message.", lower),
			Colors:     "#0066CC, #FF6B35, #F7F7F7",
			Voice:      "Professional yet approachable, confident and inspiring",
		},
		Social: models.SocialInfo{
			Platform:       platform,
			TargetAudience: fmt.Sprintf("%s interested in %s solutions", audience, lower),
			AgeRange:       ageRange,
			Interests:      fmt.Sprintf("%s, Innovation, Quality Products, Lifestyle", industry),
		},
		Product: models.ProductInfo{
			Name:        fmt.Sprintf("%s Pro Solution", industry),
			Description: fmt.Sprintf("Revolutionary %s product that solves key customer pain points with innovative features and exceptional quality.", lower),
			Features:    "Advanced technology, User-friendly interface, Premium quality, Sustainable materials",
		},
		Campaign: models.CampaignInfo{
			Objective: objective,
			Message:   fmt.Sprintf("Discover the future of %s with our innovative solution. Transform your experience today!", lower),
			Notes:     fmt.Sprintf("Focus on %s through compelling visuals and clear messaging.", strings.ToLower(objective)),
		},
	}
}

// SuggestAudiences returns the canned audience list for the platform.
// An unknown platform falls back to the Instagram list; the caller is not
// told about the substitution (pending product-owner confirmation).
func (s *Service) SuggestAudiences(platform string) []string {
	if list, ok := audienceSuggestions[platform]; ok {
		return list
	}
	return audienceSuggestions["Instagram"]
}

// platformRule matches company-description keywords to a platform pitch.
type platformRule struct {
	keywords   []string
	suggestion models.PlatformSuggestion
}

var platformRules = []platformRule{
	{[]string{"b2b", "enterprise", "professional"}, models.PlatformSuggestion{Platform: "LinkedIn", Reason: "Best for B2B and professional audiences"}},
	{[]string{"visual", "lifestyle", "fashion", "beauty"}, models.PlatformSuggestion{Platform: "Instagram", Reason: "Perfect for visual storytelling"}},
	{[]string{"young", "gen z", "trending"}, models.PlatformSuggestion{Platform: "TikTok", Reason: "Ideal for reaching younger demographics"}},
	{[]string{"video", "tutorial", "education"}, models.PlatformSuggestion{Platform: "YouTube", Reason: "Great for long-form video content"}},
}

var defaultPlatformSuggestions = []models.PlatformSuggestion{
	{Platform: "Instagram", Reason: "Versatile platform with high engagement"},
	{Platform: "Facebook", Reason: "Broad reach across demographics"},
	{Platform: "LinkedIn", Reason: "Professional networking and B2B"},
}

// SuggestPlatforms recommends up to three platforms based on keywords in
// the company description, with a default trio when nothing matches.
func (s *Service) SuggestPlatforms(company models.CompanyInfo) []models.PlatformSuggestion {
	description := strings.ToLower(company.Description)

	var suggestions []models.PlatformSuggestion
	for _, rule := range platformRules {
		for _, kw := range rule.keywords {
			if strings.Contains(description, kw) {
				suggestions = append(suggestions, rule.suggestion)
				break
			}
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, defaultPlatformSuggestions...)
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

var (
	informalWordsRe     = regexp.MustCompile(`(?i)\b(cool|awesome|great)\b`)
	terminalPunctuation = regexp.MustCompile(`[.!?]$`)
)

// ImproveText applies light copy-editing to user text: trims whitespace,
// capitalizes the first letter, terminates the sentence, and for a
// professional context replaces informal tone words. Empty input comes
// back unchanged.
func (s *Service) ImproveText(text, context string) string {
	improved := strings.TrimSpace(text)
	if improved == "" {
		return text
	}

	r, size := utf8.DecodeRuneInString(improved)
	improved = string(unicode.ToUpper(r)) + improved[size:]

	if !terminalPunctuation.MatchString(improved) {
		improved += "."
	}

	if strings.Contains(context, "professional") {
		improved = informalWordsRe.ReplaceAllString(improved, "exceptional")
	}

	return improved
}

// SuggestConcepts returns the five canned campaign concepts with the
// product name interpolated into the showcase concept.
func (s *Service) SuggestConcepts(product models.ProductInfo) []models.ConceptSuggestion {
	name := product.Name
	if name == "" {
		name = "your product"
	}

	return []models.ConceptSuggestion{
		{
			Title:       "Product Showcase",
			Description: fmt.Sprintf("Highlight the key features and benefits of %s with stunning visuals and clear messaging.", name),
			Objective:   "Product Awareness",
		},
		{
			Title:       "Customer Success Stories",
			Description: "Share authentic testimonials and user experiences to build trust and credibility.",
			Objective:   "Social Proof",
		},
		{
			Title:       "Limited Time Offer",
			Description: "Create urgency with a special promotion or exclusive deal for early adopters.",
			Objective:   "Conversion",
		},
		{
			Title:       "Behind the Scenes",
			Description: "Give your audience an insider look at your brand story, values, and team.",
			Objective:   "Brand Connection",
		},
		{
			Title:       "Problem-Solution",
			Description: "Address customer pain points and demonstrate how your product provides the perfect solution.",
			Objective:   "Value Proposition",
		},
	}
}
