// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package tmdb

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// fakeAPI is an in-memory API implementation for cache and catalog tests.
type fakeAPI struct {
	genres     []GenreRecord
	genreErr   error
	genreCalls atomic.Int32

	popular    []MovieRecord
	popularErr error

	search      *SearchResult
	searchErr   error
	discover    *SearchResult
	discoverErr error

	movies   map[int]*MovieRecord
	movieErr error
}

func (f *fakeAPI) Popular(_ context.Context, _ int) ([]MovieRecord, error) {
	return f.popular, f.popularErr
}

func (f *fakeAPI) Search(_ context.Context, _ string, _ int) (*SearchResult, error) {
	return f.search, f.searchErr
}

func (f *fakeAPI) Discover(_ context.Context, _, _ int) (*SearchResult, error) {
	return f.discover, f.discoverErr
}

func (f *fakeAPI) Genres(_ context.Context) ([]GenreRecord, error) {
	f.genreCalls.Add(1)
	return f.genres, f.genreErr
}

func (f *fakeAPI) Movie(_ context.Context, id int) (*MovieRecord, error) {
	if f.movieErr != nil {
		return nil, f.movieErr
	}
	m, ok := f.movies[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return m, nil
}

func TestGenreCacheSingleFetch(t *testing.T) {
	api := &fakeAPI{genres: []GenreRecord{{ID: 27, Name: "Horror"}, {ID: 35, Name: "Comedy"}}}
	cache := NewGenreCache(api, time.Hour)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		name, ok := cache.Lookup(ctx, 27)
		if !ok || name != "Horror" {
			t.Fatalf("Lookup(27) = %q, %v", name, ok)
		}
	}
	if _, ok := cache.Lookup(ctx, 99); ok {
		t.Error("Lookup(99) found, want missing")
	}

	if calls := api.genreCalls.Load(); calls != 1 {
		t.Errorf("upstream genre fetches = %d, want 1", calls)
	}
}

func TestGenreCacheServesStaleOnRefreshFailure(t *testing.T) {
	api := &fakeAPI{genres: []GenreRecord{{ID: 27, Name: "Horror"}}}
	cache := NewGenreCache(api, time.Nanosecond) // immediately stale

	ctx := context.Background()
	if _, ok := cache.Lookup(ctx, 27); !ok {
		t.Fatal("initial lookup failed")
	}

	api.genreErr = errors.New("upstream down")
	time.Sleep(time.Millisecond)

	name, ok := cache.Lookup(ctx, 27)
	if !ok || name != "Horror" {
		t.Errorf("stale lookup = %q, %v; want Horror from stale cache", name, ok)
	}
}

func TestGenreCacheWarmed(t *testing.T) {
	api := &fakeAPI{genres: []GenreRecord{{ID: 27, Name: "Horror"}}}
	cache := NewGenreCache(api, time.Hour)

	if cache.Warmed() {
		t.Error("Warmed() = true before first fetch")
	}

	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if !cache.Warmed() {
		t.Error("Warmed() = false after refresh")
	}
}
