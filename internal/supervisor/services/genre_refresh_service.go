// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// GenreCatalog is the refreshable genre catalog the service maintains.
type GenreCatalog interface {
	// Refresh fetches a fresh genre catalog.
	Refresh(ctx context.Context) error

	// TTL is the catalog lifetime; the service refreshes ahead of expiry.
	TTL() time.Duration
}

// GenreRefreshService keeps the genre cache warm so request paths rarely
// pay the catalog fetch. It refreshes immediately on start and then at 90%
// of the cache TTL. A failed refresh is retried on the next tick; the cache
// keeps serving stale data in the meantime.
type GenreRefreshService struct {
	catalog GenreCatalog
	logger  zerolog.Logger
	name    string
}

// NewGenreRefreshService creates a genre cache refresher.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewGenreRefreshService(catalog GenreCatalog, logger zerolog.Logger) *GenreRefreshService {
	return &GenreRefreshService{
		catalog: catalog,
		logger:  logger.With().Str("service", "genre-refresh").Logger(),
		name:    "genre-refresh",
	}
}

// Serve implements suture.Service.
func (s *GenreRefreshService) Serve(ctx context.Context) error {
	interval := s.catalog.TTL() * 9 / 10
	if interval <= 0 {
		interval = time.Hour
	}

	s.logger.Info().Dur("interval", interval).Msg("genre refresh service starting")

	if err := s.catalog.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("initial genre catalog load failed (will retry)")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("genre refresh service stopping")
			return ctx.Err()
		case <-ticker.C:
			if err := s.catalog.Refresh(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("genre catalog refresh failed")
			}
		}
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *GenreRefreshService) String() string {
	return s.name
}
