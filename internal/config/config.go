// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

// Package config loads Moodreel configuration from three layers:
// built-in defaults, an optional YAML file, and environment variables.
// Precedence is ENV > file > defaults.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Recommend RecommendConfig `koanf:"recommend"`
	Users     UsersConfig     `koanf:"users"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// TMDBConfig holds settings for the TMDB upstream API.
type TMDBConfig struct {
	// BaseURL is the TMDB API root. Override for testing against fakes.
	BaseURL string `koanf:"base_url"`

	// ImageBaseURL is prepended to TMDB poster paths.
	ImageBaseURL string `koanf:"image_base_url"`

	// AccessToken is the TMDB v4 read access token (sent as a Bearer header).
	AccessToken string `koanf:"access_token"`

	// APIKey is the TMDB v3 API key (sent as an api_key query parameter).
	APIKey string `koanf:"api_key"`

	Timeout       time.Duration `koanf:"timeout"`
	RetryAttempts int           `koanf:"retry_attempts"`
	RetryDelay    time.Duration `koanf:"retry_delay"`

	// RateLimit caps outbound TMDB requests per second. 0 disables limiting.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	// GenreCacheTTL controls how long the genre catalog is served from cache.
	GenreCacheTTL time.Duration `koanf:"genre_cache_ttl"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// RequestTimeout bounds a single Recommend call end to end.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// CandidateLimit caps per-recommender candidate lists before merging.
	CandidateLimit int `koanf:"candidate_limit"`

	// ResultLimit caps each list in the final recommendation set.
	ResultLimit int `koanf:"result_limit"`

	// PeerLimit caps how many similar users collaborative filtering considers.
	PeerLimit int `koanf:"peer_limit"`

	// ResolveWorkers bounds concurrent metadata lookups during candidate
	// resolution.
	ResolveWorkers int `koanf:"resolve_workers"`
}

// UsersConfig holds user store settings.
type UsersConfig struct {
	// SeedFile optionally points at a YAML file of users and ratings.
	// When empty, the built-in seed data is used.
	SeedFile string `koanf:"seed_file"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins      []string      `koanf:"cors_origins"`
	RateLimitEnabled bool          `koanf:"rate_limit_enabled"`
	RateLimitRPM     int           `koanf:"rate_limit_rpm"`
	RateLimitWindow  time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values.
// Defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		TMDB: TMDBConfig{
			BaseURL:       "https://api.themoviedb.org/3",
			ImageBaseURL:  "https://image.tmdb.org/t/p/w500",
			AccessToken:   "",
			APIKey:        "",
			Timeout:       10 * time.Second,
			RetryAttempts: 3,
			RetryDelay:    500 * time.Millisecond,
			RateLimit:     35, // TMDB allows ~40 req/s; leave headroom
			RateBurst:     10,
			GenreCacheTTL: 6 * time.Hour,
		},
		Recommend: RecommendConfig{
			RequestTimeout: 10 * time.Second,
			CandidateLimit: 10,
			ResultLimit:    5,
			PeerLimit:      3,
			ResolveWorkers: 4,
		},
		Users: UsersConfig{
			SeedFile: "",
		},
		Security: SecurityConfig{
			CORSOrigins:      []string{"*"},
			RateLimitEnabled: true,
			RateLimitRPM:     120,
			RateLimitWindow:  time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
