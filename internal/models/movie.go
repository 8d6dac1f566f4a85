// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package models

// PlaceholderImageURL is returned for movies without a poster.
const PlaceholderImageURL = "https://placehold.co/500x750/1a1a1a/ffffff?text=No+Image"

// Movie is an enriched catalog item as returned by the API.
//
// The JSON field names are part of the public API contract and are consumed
// by the frontend as-is: id, title, genre, avgRating, imageUrl, type, moods,
// overview, releaseDate.
//
// Genre is the primary genre label (first genre reported by the catalog, or
// "Unknown"). Moods is derived from Genre at enrichment time; an unknown
// genre yields the single generic fallback mood, so the list is never
// empty.
type Movie struct {
	// ID is the TMDB movie identifier.
	ID int `json:"id"`

	// Title is the movie title.
	Title string `json:"title"`

	// Genre is the primary genre label.
	Genre string `json:"genre"`

	// AvgRating is the catalog vote average on its native 0-10 scale,
	// passed through unmodified.
	AvgRating float64 `json:"avgRating"`

	// ImageURL is the full poster URL, or PlaceholderImageURL when the
	// catalog has no poster for this movie.
	ImageURL string `json:"imageUrl"`

	// Type is always "Movie". Kept for frontend compatibility with
	// mixed-media responses.
	Type string `json:"type"`

	// Moods is the ordered mood-tag list derived from Genre.
	Moods []string `json:"moods"`

	// Overview is the plot summary.
	Overview string `json:"overview"`

	// ReleaseDate is the release date in YYYY-MM-DD form.
	ReleaseDate string `json:"releaseDate"`
}

// RecommendationSet is the three-list response produced by the
// recommendation engine. Each list is capped at five entries and item IDs
// within one list are unique.
type RecommendationSet struct {
	// ContentBased is the content-based recommendation list.
	ContentBased []Movie `json:"contentBased"`

	// Collaborative is the peer-based recommendation list.
	Collaborative []Movie `json:"collaborative"`

	// Hybrid is the deduplicated merge of the other two lists.
	Hybrid []Movie `json:"hybrid"`
}

// MovieListing is the paginated response shape for discover and search
// endpoints, mirroring the catalog's own pagination.
type MovieListing struct {
	Movies      []Movie `json:"movies"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
}
