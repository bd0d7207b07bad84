// Package router sets up all HTTP routes and middleware chains for the
// AdForge campaign API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adforge/internal/handlers"
	"adforge/internal/middleware"
)

// Campaign generation hits a paid upstream endpoint; keep the per-IP
// budget generous enough for a wizard session but bounded.
const (
	rateLimit       = 30
	rateLimitWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(campaign *handlers.Campaign) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no rate limiting.
	r.Get("/health", healthHandler)

	limiter := middleware.NewRateLimiter(rateLimit, rateLimitWindow)

	r.Route("/campaign", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Post("/generate", campaign.Generate)
		r.Post("/download", campaign.Download)
		r.Post("/random-data", campaign.RandomData)
		r.Post("/suggest-audiences", campaign.SuggestAudiences)
		r.Post("/suggest-platforms", campaign.SuggestPlatforms)
		r.Post("/improve-text", campaign.ImproveText)
		r.Post("/suggest-concepts", campaign.SuggestConcepts)
		r.Post("/scrape-website", campaign.ScrapeWebsite)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
