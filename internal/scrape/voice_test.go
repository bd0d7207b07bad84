package scrape

import "testing"

func TestClassifyVoice(t *testing.T) {
	tests := []struct {
		name     string
		headings string
		want     string
	}{
		{"innovative", "Cutting-edge technology for tomorrow", "Innovative, forward-thinking, and tech-savvy"},
		{"professional", "Enterprise solutions for business", "Professional, trustworthy, and authoritative"},
		{"friendly", "Building community together", "Friendly, approachable, and community-focused"},
		{"luxury", "Exclusive premium craftsmanship", "Premium, sophisticated, and exclusive"},
		{"default", "Welcome to our website", defaultVoice},
		{"empty", "", defaultVoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyVoice(tt.headings); got != tt.want {
				t.Errorf("classifyVoice(%q): got %q, want %q", tt.headings, got, tt.want)
			}
		})
	}
}

func TestClassifyVoice_PriorityOrder(t *testing.T) {
	// A page hitting several keyword sets resolves to the first rule.
	got := classifyVoice("Innovative luxury business community")
	if got != "Innovative, forward-thinking, and tech-savvy" {
		t.Errorf("got %q, want the innovative voice", got)
	}
}
