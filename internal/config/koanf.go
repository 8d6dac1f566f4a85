// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/moodreel/config.yaml",
	"/etc/moodreel/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds the application configuration from three layers:
//
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if present)
//  3. Environment variables: override any setting
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Env vars arrive as strings; convert known slice fields.
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the first file found, or empty string if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths are parsed as comma-separated
// slices when sourced from environment variables.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for
// known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		if !k.Exists(path) {
			continue
		}

		raw := k.Get(path)
		str, ok := raw.(string)
		if !ok {
			continue // already a slice (from file or defaults)
		}

		parts := strings.Split(str, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				values = append(values, trimmed)
			}
		}

		if err := k.Set(path, values); err != nil {
			return fmt.Errorf("failed to set slice field %s: %w", path, err)
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config paths.
// Unmapped variables are dropped so arbitrary environment noise never leaks
// into the configuration.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server
		"host":             "server.host",
		"port":             "server.port",
		"read_timeout":     "server.read_timeout",
		"write_timeout":    "server.write_timeout",
		"idle_timeout":     "server.idle_timeout",
		"shutdown_timeout": "server.shutdown_timeout",
		"environment":      "server.environment",

		// TMDB upstream
		"tmdb_base_url":        "tmdb.base_url",
		"tmdb_image_base_url":  "tmdb.image_base_url",
		"tmdb_access_token":    "tmdb.access_token",
		"tmdb_api_key":         "tmdb.api_key",
		"tmdb_timeout":         "tmdb.timeout",
		"tmdb_retry_attempts":  "tmdb.retry_attempts",
		"tmdb_retry_delay":     "tmdb.retry_delay",
		"tmdb_rate_limit":      "tmdb.rate_limit",
		"tmdb_rate_burst":      "tmdb.rate_burst",
		"tmdb_genre_cache_ttl": "tmdb.genre_cache_ttl",

		// Recommendation engine
		"recommend_request_timeout": "recommend.request_timeout",
		"recommend_candidate_limit": "recommend.candidate_limit",
		"recommend_result_limit":    "recommend.result_limit",
		"recommend_peer_limit":      "recommend.peer_limit",
		"recommend_resolve_workers": "recommend.resolve_workers",

		// User store
		"users_seed_file": "users.seed_file",

		// Security
		"cors_origins":       "security.cors_origins",
		"rate_limit_enabled": "security.rate_limit_enabled",
		"rate_limit_rpm":     "security.rate_limit_rpm",
		"rate_limit_window":  "security.rate_limit_window",

		// Logging
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	return ""
}
