// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

// Package users provides the in-memory user rating store backing the
// collaborative recommender. The store is immutable after construction and
// safe for concurrent reads.
package users

import (
	"fmt"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/moodreel/moodreel/internal/models"
)

// Store holds user profiles keyed by ID.
type Store struct {
	byID  map[int]models.User
	order []int // ascending user IDs, fixed at construction
}

// New builds a store from the given users. Ratings maps are copied so later
// mutation of the inputs cannot affect the store.
func New(list []models.User) *Store {
	s := &Store{byID: make(map[int]models.User, len(list))}
	for _, u := range list {
		ratings := make(map[int]int, len(u.Ratings))
		for movieID, rating := range u.Ratings {
			ratings[movieID] = rating
		}
		u.Ratings = ratings
		s.byID[u.ID] = u
	}

	s.order = make([]int, 0, len(s.byID))
	for id := range s.byID {
		s.order = append(s.order, id)
	}
	sort.Ints(s.order)

	return s
}

// NewFromSeed builds a store from the built-in seed profiles.
func NewFromSeed() *Store {
	return New(seedUsers())
}

// NewFromFile builds a store from a YAML seed file with the shape:
//
//	users:
//	  - id: 1
//	    name: Alice
//	    ratings:
//	      1: 5
//	      2: 4
func NewFromFile(path string) (*Store, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load user seed file %s: %w", path, err)
	}

	var list []models.User
	if err := k.Unmarshal("users", &list); err != nil {
		return nil, fmt.Errorf("failed to parse user seed file %s: %w", path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("user seed file %s contains no users", path)
	}

	for _, u := range list {
		if u.ID <= 0 {
			return nil, fmt.Errorf("user seed file %s: user %q has invalid id %d", path, u.Name, u.ID)
		}
	}

	return New(list), nil
}

// Get returns the user with the given ID. The returned user's ratings map is
// a copy; callers may mutate it without affecting the store.
func (s *Store) Get(id int) (models.User, bool) {
	u, ok := s.byID[id]
	if !ok {
		return models.User{}, false
	}

	ratings := make(map[int]int, len(u.Ratings))
	for movieID, rating := range u.Ratings {
		ratings[movieID] = rating
	}
	u.Ratings = ratings
	return u, true
}

// All returns every user in ascending ID order. Stable ordering keeps
// similarity tie-breaking deterministic across calls.
func (s *Store) All() []models.User {
	out := make([]models.User, 0, len(s.order))
	for _, id := range s.order {
		u, _ := s.Get(id)
		out = append(out, u)
	}
	return out
}

// Len returns the number of users in the store.
func (s *Store) Len() int {
	return len(s.byID)
}
