// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. The AI credential is read once here at process start and passed
// explicitly into the generation gateway; nothing reads the environment at
// call time.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// HTTP configures the listen address of the API server.
type HTTP struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"3001"`
}

// Log configures the structured logger. Level is one of debug, info,
// warn, error; Format is "text" or "json".
type Log struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// AI configures the external media generation endpoint. An empty APIKey is
// a valid state: the gateway then serves placeholder assets.
type AI struct {
	APIKey     string `env:"API_KEY"`
	BaseURL    string `env:"BASE_URL" envDefault:"https://api.blackbox.ai"`
	ImageModel string `env:"IMAGE_MODEL" envDefault:"blackboxai/google/nano-banana"`
	VideoModel string `env:"VIDEO_MODEL" envDefault:"blackboxai/google/veo-3-fast"`
}

// Config holds all application configuration values loaded from the
// environment. Nested sections are populated with their envPrefix.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	HTTP HTTP   `envPrefix:"HTTP_"`
	Log  Log    `envPrefix:"LOG_"`
	AI   AI     `envPrefix:"BLACKBOX_"`
}

// Load reads configuration from environment variables, applying defaults
// where appropriate.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SlogLevel converts the textual log level into a slog.Level. Unknown
// levels default to info.
func (l Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
