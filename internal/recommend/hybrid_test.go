// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package recommend

import (
	"reflect"
	"testing"

	"github.com/moodreel/moodreel/internal/models"
)

func moviesByID(ids ...int) []models.Movie {
	out := make([]models.Movie, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Movie{ID: id})
	}
	return out
}

func idsOf(movies []models.Movie) []int {
	out := make([]int, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func TestMergeHybrid(t *testing.T) {
	tests := []struct {
		name    string
		content []int
		collab  []int
		limit   int
		want    []int
	}{
		{
			name:    "content first then collab",
			content: []int{1, 2, 3},
			collab:  []int{4, 5},
			limit:   10,
			want:    []int{1, 2, 3, 4, 5},
		},
		{
			name:    "dedup keeps first occurrence",
			content: []int{1, 2, 3},
			collab:  []int{3, 2, 4},
			limit:   10,
			want:    []int{1, 2, 3, 4},
		},
		{
			name:    "identical lists merge to themselves",
			content: []int{7, 8, 9},
			collab:  []int{7, 8, 9},
			limit:   10,
			want:    []int{7, 8, 9},
		},
		{
			name:    "cap applies after dedup",
			content: []int{1, 2, 3, 4, 5, 6, 7},
			collab:  []int{8, 9, 10, 11, 12},
			limit:   10,
			want:    []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name:    "both empty",
			content: nil,
			collab:  nil,
			limit:   10,
			want:    []int{},
		},
		{
			name:    "empty content",
			content: nil,
			collab:  []int{5, 6},
			limit:   10,
			want:    []int{5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeHybrid(moviesByID(tt.content...), moviesByID(tt.collab...), tt.limit)
			if !reflect.DeepEqual(idsOf(got), tt.want) {
				t.Errorf("mergeHybrid = %v, want %v", idsOf(got), tt.want)
			}
		})
	}
}

func TestMergeHybridDoesNotMutateInputs(t *testing.T) {
	content := moviesByID(1, 2)
	collab := moviesByID(2, 3)

	_ = mergeHybrid(content, collab, 10)

	if !reflect.DeepEqual(idsOf(content), []int{1, 2}) || !reflect.DeepEqual(idsOf(collab), []int{2, 3}) {
		t.Error("inputs were mutated")
	}
}
