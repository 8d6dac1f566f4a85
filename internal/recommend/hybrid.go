// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package recommend

import "github.com/moodreel/moodreel/internal/models"

// mergeHybrid concatenates the content-based list followed by the
// collaborative list, keeps the first occurrence of each movie ID, and caps
// the result at limit. Inputs are not mutated.
func mergeHybrid(content, collab []models.Movie, limit int) []models.Movie {
	seen := make(map[int]bool, len(content)+len(collab))
	merged := make([]models.Movie, 0, limit)

	for _, list := range [][]models.Movie{content, collab} {
		for _, movie := range list {
			if seen[movie.ID] {
				continue
			}
			seen[movie.ID] = true
			merged = append(merged, movie)

			if len(merged) >= limit {
				return merged
			}
		}
	}

	return merged
}
