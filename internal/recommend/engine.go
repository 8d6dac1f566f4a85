// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

// Package recommend implements the recommendation engine: a content-based
// popularity recommender, a collaborative recommender built on co-rating
// similarity between users, and a hybrid merge of the two.
package recommend

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/moodreel/moodreel/internal/config"
	"github.com/moodreel/moodreel/internal/logging"
	"github.com/moodreel/moodreel/internal/metrics"
	"github.com/moodreel/moodreel/internal/models"
)

// ErrUserNotFound is returned when a recommendation is requested for an
// unknown user ID. It is always returned before any upstream call is made.
var ErrUserNotFound = errors.New("user not found")

// Catalog is the movie source the engine draws candidates from.
type Catalog interface {
	// Popular returns the current popularity-ranked movie list.
	Popular(ctx context.Context) ([]models.Movie, error)

	// Movie resolves a single movie by ID.
	Movie(ctx context.Context, id int) (*models.Movie, error)
}

// UserStore provides user profiles for collaborative filtering.
type UserStore interface {
	// Get returns the user with the given ID.
	Get(id int) (models.User, bool)

	// All returns every user in a stable order.
	All() []models.User
}

// Engine orchestrates the recommenders and assembles the response.
type Engine struct {
	users   UserStore
	catalog Catalog
	cfg     config.RecommendConfig
}

// NewEngine creates a recommendation engine.
func NewEngine(users UserStore, catalog Catalog, cfg config.RecommendConfig) *Engine {
	return &Engine{
		users:   users,
		catalog: catalog,
		cfg:     cfg,
	}
}

// Recommend produces the three recommendation lists for a user. The user
// check happens first so unknown IDs never cost an upstream call. The
// content-based and collaborative recommenders run concurrently under a
// shared timeout budget; each degrades to an empty list on upstream
// trouble rather than failing the request.
func (e *Engine) Recommend(ctx context.Context, userID int) (*models.RecommendationSet, error) {
	start := time.Now()

	user, ok := e.users.Get(userID)
	if !ok {
		metrics.RecordRecommendation("user_not_found", time.Since(start))
		return nil, ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	var content, collab []models.Movie

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		content = e.contentBased(gctx)
		return nil
	})
	g.Go(func() error {
		collab = e.collaborative(gctx, user)
		return nil
	})
	// Recommenders degrade internally and never return errors.
	_ = g.Wait()

	hybrid := mergeHybrid(content, collab, e.cfg.CandidateLimit)

	set := &models.RecommendationSet{
		ContentBased:  truncate(content, e.cfg.ResultLimit),
		Collaborative: truncate(collab, e.cfg.ResultLimit),
		Hybrid:        truncate(hybrid, e.cfg.ResultLimit),
	}

	metrics.RecordRecommendation("success", time.Since(start))
	metrics.RecommendationListSize.WithLabelValues("content").Observe(float64(len(set.ContentBased)))
	metrics.RecommendationListSize.WithLabelValues("collaborative").Observe(float64(len(set.Collaborative)))
	metrics.RecommendationListSize.WithLabelValues("hybrid").Observe(float64(len(set.Hybrid)))

	logging.Ctx(ctx).Info().
		Int("user_id", userID).
		Int("content", len(set.ContentBased)).
		Int("collaborative", len(set.Collaborative)).
		Int("hybrid", len(set.Hybrid)).
		Dur("elapsed", time.Since(start)).
		Msg("Recommendations generated")

	return set, nil
}

// truncate caps a list at n without mutating the input.
func truncate(movies []models.Movie, n int) []models.Movie {
	if len(movies) <= n {
		return movies
	}
	return movies[:n]
}
