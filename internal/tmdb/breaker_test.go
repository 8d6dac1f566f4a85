// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
)

func TestCastResult(t *testing.T) {
	want := &SearchResult{Page: 1}

	got, err := castResult[*SearchResult](want, nil)
	if err != nil {
		t.Fatalf("castResult error: %v", err)
	}
	if got != want {
		t.Error("castResult returned different pointer")
	}

	if _, err := castResult[*SearchResult]("wrong-type", nil); err == nil {
		t.Error("castResult with wrong type: want error")
	}

	boom := errors.New("boom")
	if _, err := castResult[*SearchResult](nil, boom); !errors.Is(err, boom) {
		t.Errorf("castResult error passthrough = %v, want boom", err)
	}
}

func TestStateHelpers(t *testing.T) {
	states := []struct {
		state gobreaker.State
		str   string
		f     float64
	}{
		{gobreaker.StateClosed, "closed", 0},
		{gobreaker.StateHalfOpen, "half-open", 1},
		{gobreaker.StateOpen, "open", 2},
	}

	for _, tt := range states {
		if got := stateToString(tt.state); got != tt.str {
			t.Errorf("stateToString(%v) = %q, want %q", tt.state, got, tt.str)
		}
		if got := stateToFloat(tt.state); got != tt.f {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.f)
		}
	}
}

func TestBreakerClientPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"A"}],"total_pages":1}`))
	}))
	defer server.Close()

	bc := NewBreakerClient(testClient(server.URL))

	movies, err := bc.Popular(context.Background(), 1)
	if err != nil {
		t.Fatalf("Popular() error: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "A" {
		t.Errorf("unexpected movies: %v", movies)
	}
}

func TestBreakerClientOpensAfterFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	bc := NewBreakerClient(testClient(server.URL))
	ctx := context.Background()

	// Drive enough failures to trip the 60%-of-10 threshold.
	for i := 0; i < 12; i++ {
		_, _ = bc.Popular(ctx, 1)
	}

	_, err := bc.Popular(ctx, 1)
	if err == nil {
		t.Fatal("Popular() after trip = nil error")
	}
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("rejected call error = %v, want ErrUpstream wrap", err)
	}
}
