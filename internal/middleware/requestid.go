// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

// Package middleware provides HTTP middleware shared across the API:
// request ID propagation, security headers, and Prometheus instrumentation.
package middleware

import (
	"net/http"

	"github.com/moodreel/moodreel/internal/logging"
)

// RequestID assigns each request a unique ID, honoring an ID supplied by an
// upstream proxy. The ID is echoed in the X-Request-ID response header and
// stored in the request context for structured logging.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
