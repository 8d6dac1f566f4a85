// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/moodreel/moodreel/internal/logging"
	"github.com/moodreel/moodreel/internal/metrics"
)

// BreakerClient wraps Client with a circuit breaker so a failing TMDB API
// does not cascade into every recommendation request.
//
// The breaker uses real time for its interval and timeout calculations.
// The timing only determines when to probe for recovery, never data
// integrity; unit tests should exercise the wrapped client directly.
type BreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewBreakerClient wraps a TMDB client with circuit breaker protection.
// Breaker configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
func NewBreakerClient(client *Client) *BreakerClient {
	cbName := "tmdb-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("Opening TMDB circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).
				Msg("TMDB circuit state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &BreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// execute wraps a TMDB call with circuit breaker protection.
func (bc *BreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := bc.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(bc.name, "rejected").Inc()
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(bc.name, "failure").Inc()
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(bc.name, "success").Inc()
	return result, nil
}

// castResult safely type-casts the circuit breaker result.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts breaker state to a numeric value for metrics.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts breaker state to a string for logging.
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Popular retrieves the popular movie list with breaker protection.
func (bc *BreakerClient) Popular(ctx context.Context, page int) ([]MovieRecord, error) {
	return castResult[[]MovieRecord](bc.execute(func() (interface{}, error) {
		return bc.client.Popular(ctx, page)
	}))
}

// Search retrieves search results with breaker protection.
func (bc *BreakerClient) Search(ctx context.Context, query string, page int) (*SearchResult, error) {
	return castResult[*SearchResult](bc.execute(func() (interface{}, error) {
		return bc.client.Search(ctx, query, page)
	}))
}

// Discover retrieves discovery results with breaker protection.
func (bc *BreakerClient) Discover(ctx context.Context, genreID, page int) (*SearchResult, error) {
	return castResult[*SearchResult](bc.execute(func() (interface{}, error) {
		return bc.client.Discover(ctx, genreID, page)
	}))
}

// Genres retrieves the genre catalog with breaker protection.
func (bc *BreakerClient) Genres(ctx context.Context) ([]GenreRecord, error) {
	return castResult[[]GenreRecord](bc.execute(func() (interface{}, error) {
		return bc.client.Genres(ctx)
	}))
}

// Movie retrieves movie details with breaker protection.
func (bc *BreakerClient) Movie(ctx context.Context, id int) (*MovieRecord, error) {
	return castResult[*MovieRecord](bc.execute(func() (interface{}, error) {
		return bc.client.Movie(ctx, id)
	}))
}
