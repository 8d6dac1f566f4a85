// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

// Package metrics exposes Prometheus instrumentation for:
//   - API endpoint latency and throughput
//   - TMDB upstream calls, retries, and rate limiter waits
//   - Circuit breaker state
//   - Genre cache efficiency
//   - Recommendation engine timings
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// TMDB upstream metrics
	TMDBRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of TMDB API requests",
		},
		[]string{"operation", "status"}, // status: "success", "error"
	)

	TMDBRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "TMDB API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	TMDBRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_retries_total",
			Help: "Total number of TMDB request retries",
		},
		[]string{"operation"},
	)

	TMDBRateLimitWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tmdb_rate_limit_waits_total",
			Help: "Total number of TMDB requests delayed by the rate limiter",
		},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Genre cache metrics
	GenreCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genre_cache_hits_total",
			Help: "Total number of genre catalog cache hits",
		},
	)

	GenreCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "genre_cache_misses_total",
			Help: "Total number of genre catalog cache misses",
		},
	)

	GenreCacheRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genre_cache_refreshes_total",
			Help: "Total number of genre catalog refresh attempts",
		},
		[]string{"result"}, // result: "success", "error"
	)

	// Recommendation engine metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"result"}, // result: "success", "user_not_found", "upstream_error"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "End-to-end recommendation generation duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"algorithm"}, // "content", "collaborative", "total"
	)

	RecommendationListSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_list_size",
			Help:    "Number of movies returned per recommendation list",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
		[]string{"algorithm"},
	)
)

// RecordAPIRequest records metrics for a completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordTMDBRequest records metrics for a completed TMDB call.
func RecordTMDBRequest(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	TMDBRequestsTotal.WithLabelValues(operation, status).Inc()
	TMDBRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordRecommendation records metrics for a completed recommendation request.
func RecordRecommendation(result string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(result).Inc()
	RecommendationDuration.WithLabelValues("total").Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
