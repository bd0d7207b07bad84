// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package scrape

import (
	"fmt"
	"strings"
	"testing"
)

const testOrigin = "https://site.com"

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"https://cdn.x.com/a.png", "https://cdn.x.com/a.png"},
		{"http://cdn.x.com/a.png", "http://cdn.x.com/a.png"},
		{"//cdn.x.com/a.png", "https://cdn.x.com/a.png"},
		{"/a.png", "https://site.com/a.png"},
		{"a.png", "https://site.com/a.png"},
		{"  /a.png  ", "https://site.com/a.png"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeImageURL(tt.src, testOrigin); got != tt.want {
			t.Errorf("normalizeImageURL(%q): got %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestHarvestImages_CapsAtFive(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<html><body><main>`)
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, `<img src="/img-%d.png" alt="Image %d">`, i, i)
	}
	b.WriteString(`</main></body></html>`)

	images := harvestImages(mustParse(t, b.String()), testOrigin)
	if len(images) != maxProductImages {
		t.Fatalf("got %d images, want %d", len(images), maxProductImages)
	}

	// Discovery order is preserved.
	for i, img := range images {
		want := fmt.Sprintf("%s/img-%d.png", testOrigin, i)
		if img.URL != want {
			t.Errorf("image %d: got %q, want %q", i, img.URL, want)
		}
	}
}

func TestHarvestImages_DeduplicatesByNormalizedURL(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<main>
			<img src="/a.png" alt="First">
			<img src="/a.png" alt="Duplicate">
		</main>
		<article><img src="a.png" alt="Also duplicate"></article>
	</body></html>`)

	images := harvestImages(doc, testOrigin)
	if len(images) != 1 {
		t.Fatalf("got %d images, want 1: %+v", len(images), images)
	}
	if images[0].Caption != "First" {
		t.Errorf("first discovery wins: got caption %q", images[0].Caption)
	}
}

func TestHarvestImages_SkipsLogosAndIcons(t *testing.T) {
	doc := mustParse(t, `<html><body><main>
		<img src="/logo.png" alt="Logo">
		<img src="/favicon-icon.png" alt="Icon">
		<img src="/product.png" alt="Product shot">
	</main></body></html>`)

	images := harvestImages(doc, testOrigin)
	if len(images) != 1 {
		t.Fatalf("got %d images, want 1", len(images))
	}
	if images[0].URL != testOrigin+"/product.png" {
		t.Errorf("got %q", images[0].URL)
	}
}

func TestHarvestImages_OpenGraphFirst(t *testing.T) {
	doc := mustParse(t, `<html><head>
		<meta property="og:image" content="https://cdn.site.com/og.png">
		<meta property="og:image:alt" content="Featured widget">
	</head><body><main><img src="/other.png" alt="Other"></main></body></html>`)

	images := harvestImages(doc, testOrigin)
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2", len(images))
	}
	if images[0].URL != "https://cdn.site.com/og.png" {
		t.Errorf("og image should come first, got %q", images[0].URL)
	}
	if images[0].Caption != "Featured widget" {
		t.Errorf("og caption: got %q", images[0].Caption)
	}
}

func TestHarvestImages_OpenGraphDefaultCaption(t *testing.T) {
	doc := mustParse(t, `<html><head>
		<meta property="og:image" content="/og.png">
	</head><body></body></html>`)

	images := harvestImages(doc, testOrigin)
	if len(images) != 1 {
		t.Fatalf("got %d images, want 1", len(images))
	}
	if images[0].Caption != ogDefaultCaption {
		t.Errorf("got %q, want %q", images[0].Caption, ogDefaultCaption)
	}
}

func TestHarvestImages_DataSrcFallback(t *testing.T) {
	doc := mustParse(t, `<html><body><main>
		<img data-src="/lazy.png" alt="Lazy loaded">
	</main></body></html>`)

	images := harvestImages(doc, testOrigin)
	if len(images) != 1 {
		t.Fatalf("got %d images, want 1", len(images))
	}
	if images[0].URL != testOrigin+"/lazy.png" {
		t.Errorf("got %q", images[0].URL)
	}
}

func TestHarvestImages_EveryImageHasACaption(t *testing.T) {
	doc := mustParse(t, `<html><body><main>
		<img src="/a.png">
		<img src="/b.png" alt="">
		<img src="/c.png" alt="Real caption">
	</main></body></html>`)

	images := harvestImages(doc, testOrigin)
	for _, img := range images {
		if img.Caption == "" {
			t.Errorf("image %q has empty caption", img.URL)
		}
	}
}

func TestImageCaption_AltBeatsTitle(t *testing.T) {
	doc := mustParse(t, `<html><body><main>
		<img src="/a.png" alt="A" title="B">
	</main></body></html>`)

	images := harvestImages(doc, testOrigin)
	if len(images) != 1 {
		t.Fatalf("got %d images, want 1", len(images))
	}
	if images[0].Caption != "A" {
		t.Errorf("got %q, want %q", images[0].Caption, "A")
	}
}

func TestImageCaption_Chain(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "title when no alt",
			html: `<main><img src="/a.png" title="From title"></main>`,
			want: "From title",
		},
		{
			name: "aria-label when no alt or title",
			html: `<main><img src="/a.png" aria-label="From aria"></main>`,
			want: "From aria",
		},
		{
			name: "figcaption",
			html: `<main><figure><img src="/a.png"><figcaption>From figure</figcaption></figure></main>`,
			want: "From figure",
		},
		{
			name: "sibling text",
			html: `<main><div><img src="/a.png"><p>Nearby sibling text</p></div></main>`,
			want: "Nearby sibling text",
		},
		{
			name: "sibling text too short",
			html: `<main><div><img src="/a.png"><p>ab</p></div></main>`,
			want: defaultCaption,
		},
		{
			name: "sibling text too long",
			html: `<main><div><img src="/a.png"><p>` + strings.Repeat("x", 200) + `</p></div></main>`,
			want: defaultCaption,
		},
		{
			name: "default",
			html: `<main><img src="/a.png"></main>`,
			want: defaultCaption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := harvestImages(mustParse(t, `<html><body>`+tt.html+`</body></html>`), testOrigin)
			if len(images) != 1 {
				t.Fatalf("got %d images, want 1", len(images))
			}
			if images[0].Caption != tt.want {
				t.Errorf("got %q, want %q", images[0].Caption, tt.want)
			}
		})
	}
}

func TestImageCaption_LongFigcaptionTruncated(t *testing.T) {
	long := strings.Repeat("y", 300)
	doc := mustParse(t, `<html><body><main>
		<figure><img src="/a.png"><figcaption>`+long+`</figcaption></figure>
	</main></body></html>`)

	images := harvestImages(doc, testOrigin)
	if len(images) != 1 {
		t.Fatalf("got %d images, want 1", len(images))
	}
	if len(images[0].Caption) != maxCaptionLen {
		t.Errorf("caption len: got %d, want %d", len(images[0].Caption), maxCaptionLen)
	}
}
