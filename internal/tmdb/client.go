// Moodreel - Movie Recommendation and Discovery Service
// Copyright 2026 Moodreel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moodreel/moodreel

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/moodreel/moodreel/internal/config"
	"github.com/moodreel/moodreel/internal/logging"
	"github.com/moodreel/moodreel/internal/metrics"
)

// Client is a TMDB API client with outbound rate limiting and bounded
// retry with exponential backoff. All methods issue idempotent GETs.
type Client struct {
	baseURL       string
	accessToken   string
	apiKey        string
	retryAttempts int
	retryDelay    time.Duration
	limiter       *rate.Limiter
	httpClient    *http.Client
}

// NewClient creates a TMDB client from configuration.
func NewClient(cfg *config.TMDBConfig) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		baseURL:       cfg.BaseURL,
		accessToken:   cfg.AccessToken,
		apiKey:        cfg.APIKey,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		limiter:       limiter,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Popular retrieves the popularity-ranked movie list for a page.
func (c *Client) Popular(ctx context.Context, page int) ([]MovieRecord, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var result SearchResult
	if err := c.get(ctx, "popular", "/movie/popular", params, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// Search retrieves movies matching a free-text query.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))

	var result SearchResult
	if err := c.get(ctx, "search", "/search/movie", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Discover retrieves movies sorted by descending popularity, optionally
// filtered to a genre. genreID 0 means no genre filter.
func (c *Client) Discover(ctx context.Context, genreID, page int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	params.Set("page", strconv.Itoa(page))
	if genreID > 0 {
		params.Set("with_genres", strconv.Itoa(genreID))
	}

	var result SearchResult
	if err := c.get(ctx, "discover", "/discover/movie", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Genres retrieves the movie genre catalog.
func (c *Client) Genres(ctx context.Context) ([]GenreRecord, error) {
	var result genreListResponse
	if err := c.get(ctx, "genres", "/genre/movie/list", url.Values{}, &result); err != nil {
		return nil, err
	}
	return result.Genres, nil
}

// Movie retrieves full details for a single movie by TMDB ID.
func (c *Client) Movie(ctx context.Context, id int) (*MovieRecord, error) {
	var result MovieRecord
	if err := c.get(ctx, "movie", "/movie/"+strconv.Itoa(id), url.Values{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// get performs a rate-limited, retrying GET against the TMDB API and
// decodes the JSON response into out.
func (c *Client) get(ctx context.Context, operation, path string, params url.Values, out interface{}) error {
	start := time.Now()

	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	if c.apiKey != "" {
		query.Set("api_key", c.apiKey)
	}

	reqURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	err := c.retryWithBackoff(ctx, operation, func() error {
		return c.doOnce(ctx, reqURL, out)
	})

	metrics.RecordTMDBRequest(operation, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpstream, operation, err)
	}
	return nil
}

// waitForSlot blocks until the outbound rate limiter admits one request. A
// single reservation is taken per attempt; the wait metric counts only
// attempts that actually had to wait.
func (c *Client) waitForSlot(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}

	reservation := c.limiter.Reserve()
	if !reservation.OK() {
		return errors.New("rate limiter cannot admit request")
	}

	delay := reservation.Delay()
	if delay == 0 {
		return nil
	}

	metrics.TMDBRateLimitWaits.Inc()
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		reservation.Cancel()
		return ctx.Err()
	}
}

// doOnce performs a single request attempt.
func (c *Client) doOnce(ctx context.Context, reqURL string, out interface{}) error {
	if err := c.waitForSlot(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	// A partially decoded earlier attempt must not leak fields into this
	// one, so out is zeroed before every decode.
	target := reflect.ValueOf(out).Elem()
	target.Set(reflect.Zero(target.Type()))

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError is a non-200 TMDB response.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// retryable reports whether a failed attempt is worth repeating. Client
// errors other than 429 are permanent; everything else (network failures,
// 5xx, 429) may be transient.
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	return true
}

// retryWithBackoff runs fn up to the configured attempt count, doubling the
// delay between attempts. Waits are context-cancellable.
func (c *Client) retryWithBackoff(ctx context.Context, operation string, fn func() error) error {
	var err error
	delay := c.retryDelay

	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = fn()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}

		if attempt < c.retryAttempts-1 {
			metrics.TMDBRetriesTotal.WithLabelValues(operation).Inc()
			logging.Ctx(ctx).Warn().Err(err).Str("operation", operation).
				Int("attempt", attempt+1).Int("max_attempts", c.retryAttempts).
				Dur("delay", delay).Msg("TMDB request retry")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}
	}

	return fmt.Errorf("max retry attempts reached: %w", err)
}
