// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

// Package models defines the shared data structures for Moodreel.
//
// # Domain Types
//
//   - Movie: enriched catalog item (primary genre, mood tags, poster URL)
//   - User: read-only rating profile
//   - RecommendationSet: the three-list engine result
//   - MovieListing: paginated discover/search response
//
// # API Types
//
//   - APIResponse: standardized response wrapper
//   - APIError: structured error payload with machine-readable codes
//   - Metadata: timing metadata attached to every response
//
// The package has no internal dependencies so every layer can import it
// without cycles.
package models
