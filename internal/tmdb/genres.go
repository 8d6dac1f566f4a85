// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package tmdb

import (
	"context"
	"sync"
	"time"

	"github.com/moodreel/moodreel/internal/logging"
	"github.com/moodreel/moodreel/internal/metrics"
)

// GenreCache caches the TMDB genre catalog with a TTL. The catalog changes
// rarely, so one fetch serves every list-shaped movie that needs its genre
// IDs resolved to names.
type GenreCache struct {
	api API
	ttl time.Duration

	mu        sync.RWMutex
	names     map[int]string
	fetchedAt time.Time
}

// NewGenreCache creates a genre cache over the given TMDB API.
func NewGenreCache(api API, ttl time.Duration) *GenreCache {
	return &GenreCache{
		api: api,
		ttl: ttl,
	}
}

// Lookup resolves a genre ID to its name, fetching the catalog if the cache
// is empty or stale. A stale cache that fails to refresh keeps serving the
// previous catalog.
func (gc *GenreCache) Lookup(ctx context.Context, id int) (string, bool) {
	gc.mu.RLock()
	fresh := gc.names != nil && time.Since(gc.fetchedAt) < gc.ttl
	name, ok := gc.names[id]
	gc.mu.RUnlock()

	if fresh {
		metrics.GenreCacheHits.Inc()
		return name, ok
	}

	metrics.GenreCacheMisses.Inc()
	if err := gc.Refresh(ctx); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Genre catalog refresh failed, serving stale data")
	}

	gc.mu.RLock()
	defer gc.mu.RUnlock()
	name, ok = gc.names[id]
	return name, ok
}

// Refresh fetches the genre catalog and replaces the cached copy.
func (gc *GenreCache) Refresh(ctx context.Context) error {
	genres, err := gc.api.Genres(ctx)
	if err != nil {
		metrics.GenreCacheRefreshes.WithLabelValues("error").Inc()
		return err
	}

	names := make(map[int]string, len(genres))
	for _, g := range genres {
		names[g.ID] = g.Name
	}

	gc.mu.Lock()
	gc.names = names
	gc.fetchedAt = time.Now()
	gc.mu.Unlock()

	metrics.GenreCacheRefreshes.WithLabelValues("success").Inc()
	logging.Ctx(ctx).Debug().Int("genres", len(names)).Msg("Genre catalog refreshed")
	return nil
}

// Warmed reports whether the cache has ever loaded a catalog. Used by the
// readiness probe.
func (gc *GenreCache) Warmed() bool {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return gc.names != nil
}

// TTL returns the configured cache lifetime.
func (gc *GenreCache) TTL() time.Duration {
	return gc.ttl
}
