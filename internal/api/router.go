// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

// Package api exposes the HTTP surface: recommendation, user, and movie
// discovery endpoints plus health probes, all wrapped in a standard JSON
// envelope.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moodreel/moodreel/internal/config"
	"github.com/moodreel/moodreel/internal/middleware"
	"github.com/moodreel/moodreel/internal/models"
	"github.com/moodreel/moodreel/internal/users"
)

// Recommender produces recommendation sets for users.
type Recommender interface {
	Recommend(ctx context.Context, userID int) (*models.RecommendationSet, error)
}

// MovieCatalog serves enriched movie listings for browsing endpoints.
type MovieCatalog interface {
	Discover(ctx context.Context, genreID, page int) (*models.MovieListing, error)
	Search(ctx context.Context, query string, page int) (*models.MovieListing, error)
}

// Server wires handlers to their dependencies.
type Server struct {
	engine  Recommender
	catalog MovieCatalog
	store   *users.Store
	ready   func() bool
	cfg     *config.Config
}

// NewServer creates the API server. ready reports whether the service can
// answer catalog-backed requests; it gates the readiness probe.
func NewServer(engine Recommender, catalog MovieCatalog, store *users.Store, ready func() bool, cfg *config.Config) *Server {
	if ready == nil {
		ready = func() bool { return true }
	}
	return &Server{
		engine:  engine,
		catalog: catalog,
		store:   store,
		ready:   ready,
		cfg:     cfg,
	}
}

// Router assembles the chi router with the full middleware stack.
func (s *Server) Router() http.Handler {
	cm := NewChiMiddleware(NewChiMiddlewareConfig(&s.cfg.Security))

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(cm.CORS())
	r.Use(middleware.Metrics)

	// Health probes stay outside rate limiting so orchestrators are never
	// throttled away from them.
	r.Get("/api/v1/health", s.handleHealth)
	r.Get("/api/v1/health/live", s.handleLive)
	r.Get("/api/v1/health/ready", s.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(cm.RateLimitByIP())

		r.Get("/api/v1/recommendations", s.handleRecommendations)
		r.Get("/api/v1/users", s.handleUsers)
		r.Get("/api/v1/users/{id}", s.handleUser)
		r.Get("/api/v1/movies/discover", s.handleDiscover)
		r.Get("/api/v1/movies/search", s.handleSearch)
	})

	return r
}

// handleHealth reports overall service health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]interface{}{
		"status":  "healthy",
		"service": "moodreel",
		"users":   s.store.Len(),
		"ready":   s.ready(),
	}, time.Now())
}

// handleLive is the liveness probe: the process is up and serving.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]string{"status": "alive"}, time.Now())
}

// handleReady is the readiness probe: ready once the genre catalog has
// warmed, so early traffic never sees half-enriched movies.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.ready() {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY",
			"genre catalog has not loaded yet", nil)
		return
	}
	respondSuccess(w, map[string]string{"status": "ready"}, time.Now())
}
