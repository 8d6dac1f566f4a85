// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateTMDB(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging, or production, got %q", c.Server.Environment)
	}

	return nil
}

func (c *Config) validateTMDB() error {
	if err := validateHTTPURL(c.TMDB.BaseURL, "TMDB_BASE_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.TMDB.ImageBaseURL, "TMDB_IMAGE_BASE_URL"); err != nil {
		return err
	}

	if c.TMDB.AccessToken == "" && c.TMDB.APIKey == "" {
		return fmt.Errorf("TMDB_ACCESS_TOKEN or TMDB_API_KEY is required")
	}

	if c.TMDB.RetryAttempts < 1 {
		return fmt.Errorf("TMDB_RETRY_ATTEMPTS must be at least 1, got %d", c.TMDB.RetryAttempts)
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive, got %v", c.TMDB.Timeout)
	}
	if c.TMDB.RateLimit < 0 {
		return fmt.Errorf("TMDB_RATE_LIMIT must not be negative, got %v", c.TMDB.RateLimit)
	}
	if c.TMDB.GenreCacheTTL <= 0 {
		return fmt.Errorf("TMDB_GENRE_CACHE_TTL must be positive, got %v", c.TMDB.GenreCacheTTL)
	}

	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.RequestTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must be positive, got %v", c.Recommend.RequestTimeout)
	}
	if c.Recommend.CandidateLimit < 1 {
		return fmt.Errorf("RECOMMEND_CANDIDATE_LIMIT must be at least 1, got %d", c.Recommend.CandidateLimit)
	}
	if c.Recommend.ResultLimit < 1 {
		return fmt.Errorf("RECOMMEND_RESULT_LIMIT must be at least 1, got %d", c.Recommend.ResultLimit)
	}
	if c.Recommend.PeerLimit < 1 {
		return fmt.Errorf("RECOMMEND_PEER_LIMIT must be at least 1, got %d", c.Recommend.PeerLimit)
	}
	if c.Recommend.ResolveWorkers < 1 {
		return fmt.Errorf("RECOMMEND_RESOLVE_WORKERS must be at least 1, got %d", c.Recommend.ResolveWorkers)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL must be a valid level, got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}

	return nil
}

// validateHTTPURL checks that a URL is well-formed with an http or https
// scheme and a host.
func validateHTTPURL(raw, name string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", name)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https scheme, got %q", name, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host", name)
	}

	return nil
}
