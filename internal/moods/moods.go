// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

// Package moods maps movie genres to curated mood tags.
// The mapping is a fixed editorial table; every TMDB movie genre has an
// entry, and unknown genres fall back to a generic mood rather than an
// error.
package moods

// fallbackMood tags movies whose genre has no entry in the table.
const fallbackMood = "Entertaining"

// genreMoods is the editorial genre-to-mood table. Order within each entry
// is significant and preserved in API responses.
var genreMoods = map[string][]string{
	"Action":          {"Exciting", "Intense", "Epic"},
	"Adventure":       {"Exciting", "Epic", "Funny"},
	"Animation":       {"Whimsical", "Heartwarming", "Funny"},
	"Comedy":          {"Funny", "Lighthearted", "Quirky"},
	"Crime":           {"Dark", "Intense", "Mysterious"},
	"Documentary":     {"Thought-provoking", "Informative"},
	"Drama":           {"Emotional", "Heartwarming", "Thought-provoking"},
	"Family":          {"Heartwarming", "Funny", "Whimsical"},
	"Fantasy":         {"Whimsical", "Epic", "Exciting"},
	"History":         {"Epic", "Thought-provoking", "Emotional"},
	"Horror":          {"Dark", "Intense", "Scary"},
	"Music":           {"Emotional", "Funny", "Heartwarming"},
	"Mystery":         {"Mysterious", "Thought-provoking", "Intense"},
	"Romance":         {"Emotional", "Heartwarming", "Funny"},
	"Science Fiction": {"Thought-provoking", "Exciting", "Dark"},
	"TV Movie":        {"Lighthearted", "Emotional"},
	"Thriller":        {"Intense", "Mysterious", "Dark"},
	"War":             {"Epic", "Intense", "Emotional"},
	"Western":         {"Epic", "Exciting", "Intense"},
}

// ForGenre returns the mood tags for a genre name. Unknown genres return
// the single generic fallback mood, so the list is never empty.
// The returned slice is a copy; callers may mutate it freely.
func ForGenre(genre string) []string {
	entry, ok := genreMoods[genre]
	if !ok {
		return []string{fallbackMood}
	}

	out := make([]string, len(entry))
	copy(out, entry)
	return out
}

// Genres returns the number of genres in the mood table.
func Genres() int {
	return len(genreMoods)
}
