// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package campaign

import (
	"fmt"
	"strings"
	"time"

	"adforge/internal/models"
)

// imagePurposes assigns a role to each generated variation by index.
var imagePurposes = []string{
	"Hero image for main campaign visual",
	"Secondary supporting visual for variety",
	"Social media optimized variant",
	"Alternative angle/composition",
	"Complementary campaign asset",
}

func imagePurpose(index int) string {
	if index >= 1 && index <= len(imagePurposes) {
		return imagePurposes[index-1]
	}
	return "Campaign visual asset"
}

// Description builds the campaign description document that ships in the
// download archive: concept, guidelines, per-asset details, and usage
// recommendations.
func (s *Service) Description(campaignPrompt, brandGuidelines string, images []models.GeneratedImage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Ad Campaign Description\n\n")
	fmt.Fprintf(&b, "**Generated on:** %s\n\n", time.Now().Format("1/2/2006, 3:04:05 PM"))
	fmt.Fprintf(&b, "## Campaign Concept\n%s\n\n", campaignPrompt)
	fmt.Fprintf(&b, "## Brand Guidelines\n%s\n\n", brandGuidelines)

	fmt.Fprintf(&b, "## Campaign Overview\n")
	fmt.Fprintf(&b, "This ad campaign leverages cutting-edge AI technology to create visually stunning and brand-consistent marketing materials. The campaign includes %d unique images and one promotional video, all designed to capture attention and drive engagement.\n\n", len(images))

	fmt.Fprintf(&b, "## Creative Assets\n\n")
	fmt.Fprintf(&b, "### Images (%d variations)\n", len(images))
	for _, img := range images {
		fmt.Fprintf(&b, "\n**Image %d:**\n", img.Index)
		fmt.Fprintf(&b, "- Style: Professional advertising photography\n")
		fmt.Fprintf(&b, "- Resolution: 1024x1024\n")
		fmt.Fprintf(&b, "- Purpose: %s\n", imagePurpose(img.Index))
		fmt.Fprintf(&b, "- Usage: Social media, web banners, print materials\n")
	}

	b.WriteString(`
### Video
- Duration: 5 seconds
- Format: MP4, 1080p
- Purpose: Social media stories, video ads, website hero section
- Style: Cinematic, professional, brand-aligned

## Recommended Usage

### Social Media
- Instagram: Use images 1-3 for feed posts, video for stories/reels
- Facebook: Images 2-4 for carousel ads, video for video ads
- LinkedIn: Images 1 and 5 for professional posts
- Twitter/X: Images 3-5 for tweet attachments

### Digital Advertising
- Display Ads: All images optimized for various banner sizes
- Video Ads: Use the generated video for pre-roll and mid-roll placements
- Native Advertising: Images 1-3 for sponsored content

### Print & Offline
- Brochures: Images 1, 3, and 5
- Posters: Any image can be upscaled for large format printing
- Point of Sale: Images 2 and 4 for in-store displays

## Campaign Metrics to Track
- Engagement Rate
- Click-Through Rate (CTR)
- Conversion Rate
- Brand Awareness Lift
- Social Media Reach and Impressions

## Next Steps
1. Review all generated assets
2. Select primary and secondary images for different channels
3. Customize copy and calls-to-action for each platform
4. A/B test different image variations
5. Monitor performance and optimize based on data

## Brand Consistency Notes
All assets have been generated following the provided brand guidelines to ensure consistency across all marketing channels. The visual style, color palette, and messaging align with your brand identity.

---
*Generated by AdForge - Powered by AI*`)

	return b.String()
}
