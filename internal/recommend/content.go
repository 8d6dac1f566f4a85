// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package recommend

import (
	"context"
	"time"

	"github.com/moodreel/moodreel/internal/logging"
	"github.com/moodreel/moodreel/internal/metrics"
	"github.com/moodreel/moodreel/internal/models"
)

// contentBased returns the first candidateLimit popular movies in catalog
// order. Ratings are deliberately ignored: popularity stands in for taste
// until a real content model exists. Upstream failure degrades to an empty
// list; the error is logged, never propagated.
func (e *Engine) contentBased(ctx context.Context) []models.Movie {
	start := time.Now()
	defer func() {
		metrics.RecommendationDuration.WithLabelValues("content").Observe(time.Since(start).Seconds())
	}()

	popular, err := e.catalog.Popular(ctx)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Content-based recommender degraded to empty list")
		return []models.Movie{}
	}

	return truncate(popular, e.cfg.CandidateLimit)
}
