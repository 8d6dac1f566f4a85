// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package tmdb

import (
	"context"

	"github.com/moodreel/moodreel/internal/models"
	"github.com/moodreel/moodreel/internal/moods"
)

// Catalog turns raw TMDB records into enriched domain movies: genre IDs
// resolved to names through the genre cache, mood tags attached, and poster
// paths expanded to full image URLs.
type Catalog struct {
	api          API
	genres       *GenreCache
	imageBaseURL string
}

// NewCatalog creates a catalog over the given TMDB API and genre cache.
func NewCatalog(api API, genres *GenreCache, imageBaseURL string) *Catalog {
	return &Catalog{
		api:          api,
		genres:       genres,
		imageBaseURL: imageBaseURL,
	}
}

// GenreCache exposes the underlying genre cache for readiness checks and
// background refresh.
func (c *Catalog) GenreCache() *GenreCache {
	return c.genres
}

// Popular returns the first page of popular movies as enriched domain
// movies, in gateway order.
func (c *Catalog) Popular(ctx context.Context) ([]models.Movie, error) {
	records, err := c.api.Popular(ctx, 1)
	if err != nil {
		return nil, err
	}
	return c.fromRecords(ctx, records), nil
}

// Search returns enriched movies matching a query, with paging totals.
func (c *Catalog) Search(ctx context.Context, query string, page int) (*models.MovieListing, error) {
	result, err := c.api.Search(ctx, query, page)
	if err != nil {
		return nil, err
	}
	return &models.MovieListing{
		Movies:      c.fromRecords(ctx, result.Results),
		TotalPages:  result.TotalPages,
		CurrentPage: result.Page,
	}, nil
}

// Discover returns popularity-sorted movies, optionally filtered to a
// genre, with paging totals. genreID 0 means no filter.
func (c *Catalog) Discover(ctx context.Context, genreID, page int) (*models.MovieListing, error) {
	result, err := c.api.Discover(ctx, genreID, page)
	if err != nil {
		return nil, err
	}
	return &models.MovieListing{
		Movies:      c.fromRecords(ctx, result.Results),
		TotalPages:  result.TotalPages,
		CurrentPage: result.Page,
	}, nil
}

// Movie returns a single enriched movie by TMDB ID. Detail responses carry
// genre names directly, so no cache lookup is needed.
func (c *Catalog) Movie(ctx context.Context, id int) (*models.Movie, error) {
	record, err := c.api.Movie(ctx, id)
	if err != nil {
		return nil, err
	}

	genre := "Unknown"
	if len(record.Genres) > 0 {
		genre = record.Genres[0].Name
	}

	movie := c.build(record, genre)
	return &movie, nil
}

// fromRecords converts list-shaped records, resolving each primary genre ID
// through the genre cache.
func (c *Catalog) fromRecords(ctx context.Context, records []MovieRecord) []models.Movie {
	out := make([]models.Movie, 0, len(records))
	for i := range records {
		record := &records[i]

		genre := "Unknown"
		if len(record.GenreIDs) > 0 {
			if name, ok := c.genres.Lookup(ctx, record.GenreIDs[0]); ok {
				genre = name
			}
		}

		out = append(out, c.build(record, genre))
	}
	return out
}

// build assembles a domain movie from a record and its resolved genre.
func (c *Catalog) build(record *MovieRecord, genre string) models.Movie {
	imageURL := models.PlaceholderImageURL
	if record.PosterPath != "" {
		imageURL = c.imageBaseURL + record.PosterPath
	}

	return models.Movie{
		ID:          record.ID,
		Title:       record.Title,
		Genre:       genre,
		AvgRating:   record.VoteAverage,
		ImageURL:    imageURL,
		Type:        "Movie",
		Moods:       moods.ForGenre(genre),
		Overview:    record.Overview,
		ReleaseDate: record.ReleaseDate,
	}
}
