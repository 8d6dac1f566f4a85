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
	"sync/atomic"
	"testing"
	"time"

	"github.com/moodreel/moodreel/internal/config"
)

// testClient returns a Client pointed at the given fake server with fast
// retries and no rate limiting.
func testClient(serverURL string) *Client {
	return NewClient(&config.TMDBConfig{
		BaseURL:       serverURL,
		AccessToken:   "test-token",
		APIKey:        "test-key",
		Timeout:       5 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	})
}

func TestClientAuth(t *testing.T) {
	var gotAuth, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.URL.Query().Get("api_key")
		_, _ = w.Write([]byte(`{"page":1,"results":[],"total_pages":0}`))
	}))
	defer server.Close()

	if _, err := testClient(server.URL).Popular(context.Background(), 1); err != nil {
		t.Fatalf("Popular() error: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want Bearer test-token", gotAuth)
	}
	if gotKey != "test-key" {
		t.Errorf("api_key = %q, want test-key", gotKey)
	}
}

func TestClientRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"genres":[{"id":27,"name":"Horror"}]}`))
	}))
	defer server.Close()

	genres, err := testClient(server.URL).Genres(context.Background())
	if err != nil {
		t.Fatalf("Genres() error: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("server calls = %d, want 3", calls.Load())
	}
	if len(genres) != 1 || genres[0].Name != "Horror" {
		t.Errorf("unexpected genres: %v", genres)
	}
}

func TestClientExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Popular(context.Background(), 1)
	if err == nil {
		t.Fatal("Popular() = nil error, want failure")
	}
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("error %v does not wrap ErrUpstream", err)
	}
	if calls.Load() != 3 {
		t.Errorf("server calls = %d, want 3", calls.Load())
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Movie(context.Background(), 42)
	if err == nil {
		t.Fatal("Movie() = nil error, want failure")
	}
	if calls.Load() != 1 {
		t.Errorf("server calls = %d, want 1 (no retry on 404)", calls.Load())
	}
}

func TestClientHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(server.URL).Popular(ctx, 1)
	if err == nil {
		t.Fatal("Popular() with cancelled context = nil error")
	}
}

func TestClientDiscoverQuery(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"sort_by":     r.URL.Query().Get("sort_by"),
			"with_genres": r.URL.Query().Get("with_genres"),
			"page":        r.URL.Query().Get("page"),
		}
		_, _ = w.Write([]byte(`{"page":2,"results":[],"total_pages":5}`))
	}))
	defer server.Close()

	result, err := testClient(server.URL).Discover(context.Background(), 27, 2)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	if gotQuery["sort_by"] != "popularity.desc" {
		t.Errorf("sort_by = %q, want popularity.desc", gotQuery["sort_by"])
	}
	if gotQuery["with_genres"] != "27" {
		t.Errorf("with_genres = %q, want 27", gotQuery["with_genres"])
	}
	if gotQuery["page"] != "2" {
		t.Errorf("page = %q, want 2", gotQuery["page"])
	}
	if result.TotalPages != 5 || result.Page != 2 {
		t.Errorf("unexpected paging: %+v", result)
	}
}

func TestClientRateLimiterSingleTokenPerRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"page":1,"results":[],"total_pages":0}`))
	}))
	defer server.Close()

	client := NewClient(&config.TMDBConfig{
		BaseURL:       server.URL,
		AccessToken:   "test-token",
		Timeout:       5 * time.Second,
		RetryAttempts: 1,
		RetryDelay:    time.Millisecond,
		RateLimit:     50,
		RateBurst:     1,
	})

	start := time.Now()
	for i := 0; i < 5; i++ {
		if _, err := client.Popular(context.Background(), 1); err != nil {
			t.Fatalf("Popular() error: %v", err)
		}
	}
	elapsed := time.Since(start)

	// Five requests at 50/s with burst 1 cost four token waits, roughly
	// 80ms. Consuming two tokens per request would take over 180ms.
	if elapsed > 150*time.Millisecond {
		t.Errorf("5 rate-limited requests took %v, want under 150ms", elapsed)
	}
}

func TestClientRetryDecodesFreshValue(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// valid prefix then a syntax error, so fields may have
			// been decoded before the attempt fails
			_, _ = w.Write([]byte(`{"page":9,"total_pages":7,"results":[],"oops":}`))
			return
		}
		_, _ = w.Write([]byte(`{"results":[{"id":2,"title":"B"}]}`))
	}))
	defer server.Close()

	result, err := testClient(server.URL).Search(context.Background(), "b", 1)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("server calls = %d, want 2", calls.Load())
	}

	if result.Page != 0 || result.TotalPages != 0 {
		t.Errorf("stale fields from failed attempt: page=%d total_pages=%d, want 0/0",
			result.Page, result.TotalPages)
	}
	if len(result.Results) != 1 || result.Results[0].ID != 2 {
		t.Errorf("unexpected results: %+v", result.Results)
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"network error", errors.New("connection refused"), true},
		{"server error", &statusError{code: 500}, true},
		{"rate limited", &statusError{code: 429}, true},
		{"not found", &statusError{code: 404}, false},
		{"unauthorized", &statusError{code: 401}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryable(tt.err); got != tt.want {
				t.Errorf("retryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
