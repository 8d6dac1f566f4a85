// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

// Package main is the entry point for the Moodreel server.
//
// Moodreel is a movie recommendation and discovery service backed by The
// Movie Database (TMDB). It serves per-user recommendations from three
// strategies (content-based popularity, collaborative filtering over
// co-rating similarity, and a hybrid merge), plus genre-filtered discovery
// and free-text search, every movie enriched with curated mood tags.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered load via Koanf v2 (defaults, YAML, env vars)
//  2. User store: embedded seed profiles or a YAML seed file
//  3. TMDB gateway: rate-limited client, circuit breaker, genre cache
//  4. Recommendation engine: content, collaborative, hybrid
//  5. Supervisor tree: genre cache refresher (data layer) and HTTP server
//     (api layer) under suture supervision
//
// # Configuration
//
// Required:
//   - TMDB_ACCESS_TOKEN or TMDB_API_KEY: TMDB credentials
//
// Common options:
//   - PORT: HTTP listen port (default 8000)
//   - LOG_LEVEL, LOG_FORMAT: logging (default info, json)
//   - USERS_SEED_FILE: YAML file of user rating profiles
//   - CORS_ORIGINS: comma-separated allowed origins
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the HTTP server stops
// accepting connections and in-flight requests get the configured shutdown
// timeout to complete.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/moodreel/moodreel/internal/api"
	"github.com/moodreel/moodreel/internal/config"
	"github.com/moodreel/moodreel/internal/logging"
	"github.com/moodreel/moodreel/internal/recommend"
	"github.com/moodreel/moodreel/internal/supervisor"
	"github.com/moodreel/moodreel/internal/supervisor/services"
	"github.com/moodreel/moodreel/internal/tmdb"
	"github.com/moodreel/moodreel/internal/users"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Int("port", cfg.Server.Port).
		Msg("Moodreel starting")

	store, err := buildUserStore(cfg)
	if err != nil {
		return fmt.Errorf("load user store: %w", err)
	}
	logging.Info().Int("users", store.Len()).Msg("User store loaded")

	breaker := tmdb.NewBreakerClient(tmdb.NewClient(&cfg.TMDB))
	genreCache := tmdb.NewGenreCache(breaker, cfg.TMDB.GenreCacheTTL)
	catalog := tmdb.NewCatalog(breaker, genreCache, cfg.TMDB.ImageBaseURL)

	engine := recommend.NewEngine(store, catalog, cfg.Recommend)

	server := api.NewServer(engine, catalog, store, genreCache.Warmed, cfg)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout

	tree := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	tree.AddDataService(services.NewGenreRefreshService(genreCache, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(httpServer, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", httpServer.Addr).Msg("Supervisor tree starting")

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	logging.Info().Msg("Moodreel stopped")
	return nil
}

// buildUserStore loads the user store from the configured seed file, or the
// embedded seed profiles when none is set.
func buildUserStore(cfg *config.Config) (*users.Store, error) {
	if cfg.Users.SeedFile != "" {
		return users.NewFromFile(cfg.Users.SeedFile)
	}
	return users.NewFromSeed(), nil
}
