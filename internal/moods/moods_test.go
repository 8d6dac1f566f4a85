// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package moods

import (
	"reflect"
	"testing"
)

func TestForGenre(t *testing.T) {
	tests := []struct {
		genre string
		want  []string
	}{
		{"Action", []string{"Exciting", "Intense", "Epic"}},
		{"Adventure", []string{"Exciting", "Epic", "Funny"}},
		{"Animation", []string{"Whimsical", "Heartwarming", "Funny"}},
		{"Comedy", []string{"Funny", "Lighthearted", "Quirky"}},
		{"Crime", []string{"Dark", "Intense", "Mysterious"}},
		{"Documentary", []string{"Thought-provoking", "Informative"}},
		{"Drama", []string{"Emotional", "Heartwarming", "Thought-provoking"}},
		{"Family", []string{"Heartwarming", "Funny", "Whimsical"}},
		{"Fantasy", []string{"Whimsical", "Epic", "Exciting"}},
		{"History", []string{"Epic", "Thought-provoking", "Emotional"}},
		{"Horror", []string{"Dark", "Intense", "Scary"}},
		{"Music", []string{"Emotional", "Funny", "Heartwarming"}},
		{"Mystery", []string{"Mysterious", "Thought-provoking", "Intense"}},
		{"Romance", []string{"Emotional", "Heartwarming", "Funny"}},
		{"Science Fiction", []string{"Thought-provoking", "Exciting", "Dark"}},
		{"TV Movie", []string{"Lighthearted", "Emotional"}},
		{"Thriller", []string{"Intense", "Mysterious", "Dark"}},
		{"War", []string{"Epic", "Intense", "Emotional"}},
		{"Western", []string{"Epic", "Exciting", "Intense"}},
	}

	for _, tt := range tests {
		t.Run(tt.genre, func(t *testing.T) {
			got := ForGenre(tt.genre)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ForGenre(%q) = %v, want %v", tt.genre, got, tt.want)
			}
		})
	}

	if Genres() != len(tests) {
		t.Errorf("Genres() = %d, want %d", Genres(), len(tests))
	}
}

func TestForGenreUnknown(t *testing.T) {
	for _, genre := range []string{"Telenovela", "Unknown", ""} {
		got := ForGenre(genre)
		if !reflect.DeepEqual(got, []string{"Entertaining"}) {
			t.Errorf("ForGenre(%q) = %v, want [Entertaining]", genre, got)
		}
	}
}

func TestForGenreReturnsCopy(t *testing.T) {
	first := ForGenre("Horror")
	first[0] = "Cozy"

	second := ForGenre("Horror")
	if second[0] != "Dark" {
		t.Errorf("mutation leaked into mood table: got %v", second)
	}
}

func TestForGenreCaseSensitive(t *testing.T) {
	got := ForGenre("horror")
	if !reflect.DeepEqual(got, []string{"Entertaining"}) {
		t.Errorf("ForGenre is case sensitive; got %v for lowercase input", got)
	}
}
