// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package recommend

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/moodreel/moodreel/internal/models"
	"github.com/moodreel/moodreel/internal/users"
)

func TestRankPeers(t *testing.T) {
	store := users.NewFromSeed()
	engine := NewEngine(store, &fakeCatalog{}, testEngineConfig())

	alice, _ := store.Get(1)
	peers := engine.rankPeers(alice)

	// Charlie shares movies 1 and 8 with Alice; everyone else shares none,
	// so the zero-similarity tie resolves in ascending ID order.
	wantIDs := []int{3, 2, 4}
	gotIDs := make([]int, len(peers))
	for i, p := range peers {
		gotIDs[i] = p.ID
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("peer IDs = %v, want %v", gotIDs, wantIDs)
	}
}

func TestRankPeersAllZeroSimilarity(t *testing.T) {
	store := users.New([]models.User{
		{ID: 1, Name: "target", Ratings: map[int]int{100: 5}},
		{ID: 2, Name: "b", Ratings: map[int]int{200: 5}},
		{ID: 3, Name: "c", Ratings: map[int]int{300: 5}},
		{ID: 4, Name: "d", Ratings: map[int]int{400: 5}},
		{ID: 5, Name: "e", Ratings: map[int]int{500: 5}},
	})
	engine := NewEngine(store, &fakeCatalog{}, testEngineConfig())

	target, _ := store.Get(1)
	peers := engine.rankPeers(target)

	wantIDs := []int{2, 3, 4}
	gotIDs := make([]int, len(peers))
	for i, p := range peers {
		gotIDs[i] = p.ID
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("degenerate peer IDs = %v, want first three in table order %v", gotIDs, wantIDs)
	}
}

func TestHarvestCandidates(t *testing.T) {
	target := models.User{ID: 1, Ratings: map[int]int{1: 5, 2: 4}}
	peers := []models.User{
		{ID: 2, Ratings: map[int]int{1: 5, 3: 5, 4: 3, 5: 4}}, // 1 rated by target, 4 below threshold
		{ID: 3, Ratings: map[int]int{3: 4, 6: 5}},             // 3 already seen
	}

	got := harvestCandidates(target, peers, 10)
	want := []int{3, 5, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("harvestCandidates = %v, want %v", got, want)
	}
}

func TestHarvestCandidatesCap(t *testing.T) {
	ratings := make(map[int]int)
	for id := 10; id < 40; id++ {
		ratings[id] = 5
	}
	target := models.User{ID: 1, Ratings: map[int]int{}}
	peers := []models.User{{ID: 2, Ratings: ratings}}

	got := harvestCandidates(target, peers, 10)
	if len(got) != 10 {
		t.Fatalf("candidate count = %d, want 10", len(got))
	}
	// Ascending ID order within a peer.
	for i, id := range got {
		if id != 10+i {
			t.Errorf("candidate[%d] = %d, want %d", i, id, 10+i)
		}
	}
}

func TestResolveCandidatesPreservesOrder(t *testing.T) {
	// Earlier candidates resolve slower; output order must still match
	// candidate order.
	catalog := &fakeCatalog{
		movieDelay: map[int]time.Duration{
			11: 30 * time.Millisecond,
			12: 20 * time.Millisecond,
			13: 10 * time.Millisecond,
		},
	}
	engine := NewEngine(users.NewFromSeed(), catalog, testEngineConfig())

	movies := engine.resolveCandidates(context.Background(), []int{11, 12, 13, 14})

	wantIDs := []int{11, 12, 13, 14}
	if len(movies) != len(wantIDs) {
		t.Fatalf("resolved %d movies, want %d", len(movies), len(wantIDs))
	}
	for i, m := range movies {
		if m.ID != wantIDs[i] {
			t.Errorf("resolved[%d].ID = %d, want %d", i, m.ID, wantIDs[i])
		}
	}
}

func TestResolveCandidatesDropsFailures(t *testing.T) {
	catalog := &fakeCatalog{failIDs: map[int]bool{12: true}}
	engine := NewEngine(users.NewFromSeed(), catalog, testEngineConfig())

	movies := engine.resolveCandidates(context.Background(), []int{11, 12, 13})

	wantIDs := []int{11, 13}
	if len(movies) != len(wantIDs) {
		t.Fatalf("resolved %d movies, want %d", len(movies), len(wantIDs))
	}
	for i, m := range movies {
		if m.ID != wantIDs[i] {
			t.Errorf("resolved[%d].ID = %d, want %d", i, m.ID, wantIDs[i])
		}
	}
}

func TestResolveCandidatesEmpty(t *testing.T) {
	engine := NewEngine(users.NewFromSeed(), &fakeCatalog{}, testEngineConfig())

	movies := engine.resolveCandidates(context.Background(), nil)
	if movies == nil || len(movies) != 0 {
		t.Errorf("resolveCandidates(nil) = %v, want empty non-nil slice", movies)
	}
}
