// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package users

import "github.com/moodreel/moodreel/internal/models"

// seedUsers returns the built-in demo profiles. Movie IDs index into the
// curated catalog served by the recommendation engine, not TMDB IDs.
func seedUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "Alice", Ratings: map[int]int{1: 5, 2: 4, 8: 5, 13: 4}},
		{ID: 2, Name: "Bob", Ratings: map[int]int{3: 5, 7: 4, 14: 5, 15: 3}},
		{ID: 3, Name: "Charlie", Ratings: map[int]int{1: 5, 3: 4, 8: 4, 14: 4}},
		{ID: 4, Name: "Diana", Ratings: map[int]int{4: 5, 9: 5, 16: 5, 6: 3}},
		{ID: 5, Name: "Eve", Ratings: map[int]int{10: 5, 12: 4, 18: 5}},
		{ID: 6, Name: "Frank", Ratings: map[int]int{6: 5, 5: 4, 17: 5}},
		{ID: 7, Name: "Grace", Ratings: map[int]int{11: 5, 19: 5, 4: 4}},
	}
}
