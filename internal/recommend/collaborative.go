// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package recommend

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/moodreel/moodreel/internal/logging"
	"github.com/moodreel/moodreel/internal/metrics"
	"github.com/moodreel/moodreel/internal/models"
)

// highRatingThreshold is the minimum peer rating for a movie to count as a
// recommendation candidate.
const highRatingThreshold = 4

// peerScore pairs a user with their similarity to the target.
type peerScore struct {
	user       models.User
	similarity int
}

// collaborative recommends movies that similar users rated highly.
// Similarity is the count of co-rated movies; rating values are ignored at
// this stage. Candidate IDs are capped before resolution, and each ID is
// resolved through the catalog with bounded concurrency. A failed
// resolution drops that movie only.
func (e *Engine) collaborative(ctx context.Context, user models.User) []models.Movie {
	start := time.Now()
	defer func() {
		metrics.RecommendationDuration.WithLabelValues("collaborative").Observe(time.Since(start).Seconds())
	}()

	peers := e.rankPeers(user)
	candidates := harvestCandidates(user, peers, e.cfg.CandidateLimit)

	return e.resolveCandidates(ctx, candidates)
}

// rankPeers scores every other user by co-rating similarity and returns the
// top PeerLimit peers. The sort is stable over the store's ascending-ID
// order, so ties (including all-zero similarity) resolve deterministically.
func (e *Engine) rankPeers(user models.User) []models.User {
	var scores []peerScore
	for _, other := range e.users.All() {
		if other.ID == user.ID {
			continue
		}

		similarity := 0
		for movieID := range user.Ratings {
			if other.HasRated(movieID) {
				similarity++
			}
		}
		scores = append(scores, peerScore{user: other, similarity: similarity})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].similarity > scores[j].similarity
	})

	limit := e.cfg.PeerLimit
	if limit > len(scores) {
		limit = len(scores)
	}

	peers := make([]models.User, 0, limit)
	for _, s := range scores[:limit] {
		peers = append(peers, s.user)
	}
	return peers
}

// harvestCandidates collects movie IDs the peers rated highly and the
// target has not rated. Peers contribute in rank order; within a peer,
// movies contribute in ascending ID order. First appearance wins and the
// list is capped at limit.
func harvestCandidates(user models.User, peers []models.User, limit int) []int {
	seen := make(map[int]bool)
	var candidates []int

	for _, peer := range peers {
		ids := make([]int, 0, len(peer.Ratings))
		for movieID := range peer.Ratings {
			ids = append(ids, movieID)
		}
		sort.Ints(ids)

		for _, movieID := range ids {
			if peer.Ratings[movieID] < highRatingThreshold {
				continue
			}
			if user.HasRated(movieID) || seen[movieID] {
				continue
			}
			seen[movieID] = true
			candidates = append(candidates, movieID)

			if len(candidates) >= limit {
				return candidates
			}
		}
	}

	return candidates
}

// resolveCandidates looks up each candidate ID through the catalog with a
// bounded worker pool. Results keep candidate order regardless of which
// lookup finishes first; failed lookups leave a gap that is squeezed out.
func (e *Engine) resolveCandidates(ctx context.Context, candidates []int) []models.Movie {
	if len(candidates) == 0 {
		return []models.Movie{}
	}

	resolved := make([]*models.Movie, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.ResolveWorkers)

	for i, movieID := range candidates {
		g.Go(func() error {
			movie, err := e.catalog.Movie(gctx, movieID)
			if err != nil {
				logging.Ctx(gctx).Warn().Err(err).Int("movie_id", movieID).
					Msg("Dropping unresolvable recommendation candidate")
				return nil
			}
			resolved[i] = movie
			return nil
		})
	}
	_ = g.Wait()

	movies := make([]models.Movie, 0, len(candidates))
	for _, m := range resolved {
		if m != nil {
			movies = append(movies, *m)
		}
	}
	return movies
}
