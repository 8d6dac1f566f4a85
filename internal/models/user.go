// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package models

// User is a rating profile from the read-only user store.
//
// Ratings maps movie ID to a 1-5 star rating. The map is immutable for the
// lifetime of the process: the store hands out copies, and the
// recommendation engine never writes to it.
type User struct {
	// ID is the user identifier.
	ID int `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Ratings maps movie ID to the user's 1-5 rating.
	Ratings map[int]int `json:"ratings"`
}

// HasRated reports whether the user has rated the given movie.
func (u User) HasRated(movieID int) bool {
	_, ok := u.Ratings[movieID]
	return ok
}
