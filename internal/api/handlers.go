// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moodreel/moodreel/internal/logging"
	"github.com/moodreel/moodreel/internal/recommend"
	"github.com/moodreel/moodreel/internal/tmdb"
	"github.com/moodreel/moodreel/internal/validation"
)

// recommendationRequest is the query contract for GET /recommendations.
type recommendationRequest struct {
	UserID int `validate:"required,min=1"`
}

// movieListRequest is the query contract for discover and search endpoints.
type movieListRequest struct {
	Query   string
	GenreID int `validate:"min=0"`
	Page    int `validate:"min=1,max=500"`
}

// handleRecommendations serves GET /api/v1/recommendations?user_id=N.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, err := intQueryParam(r, "user_id", 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "user_id must be an integer", nil)
		return
	}
	req := recommendationRequest{UserID: userID}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(), verr.Details())
		return
	}

	set, err := s.engine.Recommend(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, recommend.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "USER_NOT_FOUND",
				"user "+strconv.Itoa(req.UserID)+" does not exist", nil)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Int("user_id", req.UserID).
			Msg("Recommendation request failed")
		respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR",
			"recommendation sources are unavailable", nil)
		return
	}

	respondSuccess(w, set, start)
}

// handleUsers serves GET /api/v1/users.
func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, s.store.All(), time.Now())
}

// handleUser serves GET /api/v1/users/{id}.
func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "id must be an integer", nil)
		return
	}

	user, ok := s.store.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "USER_NOT_FOUND",
			"user "+strconv.Itoa(id)+" does not exist", nil)
		return
	}

	respondSuccess(w, user, start)
}

// handleDiscover serves GET /api/v1/movies/discover?genre=&page=.
func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	genreID, err := intQueryParam(r, "genre", 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "genre must be an integer", nil)
		return
	}
	page, err := intQueryParam(r, "page", 1)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "page must be an integer", nil)
		return
	}

	req := movieListRequest{GenreID: genreID, Page: page}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(), verr.Details())
		return
	}

	listing, err := s.catalog.Discover(r.Context(), req.GenreID, req.Page)
	if err != nil {
		s.respondUpstreamError(w, r, "discover", err)
		return
	}

	respondSuccess(w, listing, start)
}

// handleSearch serves GET /api/v1/movies/search?query=&page=.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	query := r.URL.Query().Get("query")
	if query == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "query is required", nil)
		return
	}
	page, err := intQueryParam(r, "page", 1)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "page must be an integer", nil)
		return
	}

	req := movieListRequest{Query: query, Page: page}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(), verr.Details())
		return
	}

	listing, err := s.catalog.Search(r.Context(), req.Query, req.Page)
	if err != nil {
		s.respondUpstreamError(w, r, "search", err)
		return
	}

	respondSuccess(w, listing, start)
}

// respondUpstreamError logs and maps a catalog failure to the wire.
func (s *Server) respondUpstreamError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	logging.Ctx(r.Context()).Error().Err(err).Str("operation", operation).
		Msg("Catalog request failed")

	if errors.Is(err, tmdb.ErrUpstream) {
		respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR",
			"movie catalog is unavailable", nil)
		return
	}
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
		"unexpected error", nil)
}
