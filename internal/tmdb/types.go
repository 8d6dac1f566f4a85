// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

// Package tmdb is the gateway to The Movie Database API. It provides a
// rate-limited, retrying HTTP client, a circuit breaker wrapper, a TTL cache
// for the genre catalog, and a catalog layer that turns TMDB records into
// enriched domain movies.
package tmdb

import (
	"context"
	"errors"
)

// ErrUpstream marks any failure to obtain a valid TMDB response. Callers
// use errors.Is against it to distinguish upstream trouble from local bugs.
var ErrUpstream = errors.New("tmdb upstream unavailable")

// MovieRecord is a TMDB movie as returned by list and detail endpoints.
// List endpoints populate GenreIDs; the detail endpoint populates Genres.
type MovieRecord struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Overview    string        `json:"overview"`
	PosterPath  string        `json:"poster_path"`
	ReleaseDate string        `json:"release_date"`
	VoteAverage float64       `json:"vote_average"`
	Popularity  float64       `json:"popularity"`
	GenreIDs    []int         `json:"genre_ids"`
	Genres      []GenreRecord `json:"genres"`
}

// GenreRecord is a TMDB genre catalog entry.
type GenreRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SearchResult is a paginated TMDB movie list response.
type SearchResult struct {
	Page         int           `json:"page"`
	Results      []MovieRecord `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// genreListResponse is the GET /genre/movie/list payload.
type genreListResponse struct {
	Genres []GenreRecord `json:"genres"`
}

// API is the TMDB operation surface shared by Client and BreakerClient.
type API interface {
	Popular(ctx context.Context, page int) ([]MovieRecord, error)
	Search(ctx context.Context, query string, page int) (*SearchResult, error)
	Discover(ctx context.Context, genreID, page int) (*SearchResult, error)
	Genres(ctx context.Context) ([]GenreRecord, error)
	Movie(ctx context.Context, id int) (*MovieRecord, error)
}
