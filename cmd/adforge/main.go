// Package main is the entry point for the AdForge campaign API server.
// It loads configuration, wires the services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"adforge/internal/ai"
	"adforge/internal/archive"
	"adforge/internal/campaign"
	"adforge/internal/config"
	"adforge/internal/handlers"
	"adforge/internal/router"
	"adforge/internal/scrape"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env file")
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger — format and level come from configuration.
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"generation_configured", cfg.AI.APIKey != "",
	)
	if cfg.AI.APIKey == "" {
		slog.Warn("no generation API key configured — campaigns will use placeholder assets")
	}

	// Construct each service once and pass it down explicitly.
	gateway := ai.NewGateway(ai.Config{
		APIKey:     cfg.AI.APIKey,
		BaseURL:    cfg.AI.BaseURL,
		ImageModel: cfg.AI.ImageModel,
		VideoModel: cfg.AI.VideoModel,
	})
	campaignService := campaign.NewService()
	scraper := scrape.New()
	assembler := archive.NewAssembler()

	campaignHandlers := handlers.NewCampaign(gateway, campaignService, scraper, assembler)

	r := router.New(campaignHandlers)

	// WriteTimeout must accommodate the full generation round trip:
	// five image calls plus a video call against the upstream endpoint.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
