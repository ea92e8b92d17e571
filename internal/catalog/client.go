// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/cache"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/metrics"
)

// DefaultBaseURL is the TMDB v3 API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

const (
	// maxErrorBodySize bounds how much of a failed response is kept for diagnostics.
	maxErrorBodySize = 64 * 1024

	// maxBodySize bounds a successful response body.
	maxBodySize = 10 * 1024 * 1024

	// maxRetryDelay caps a server-supplied Retry-After.
	maxRetryDelay = 10 * time.Second

	cacheNamespace = "tmdb"
)

// Endpoint labels used in metrics and logs.
const (
	EndpointSearch   = "search"
	EndpointSimilar  = "similar"
	EndpointDetails  = "details"
	EndpointPopular  = "popular"
	EndpointDiscover = "discover"
)

// Status texts reported by StatusText.
const (
	StatusOK            = "ok"
	StatusMissingAPIKey = "TMDB API key not configured"
	StatusCircuitOpen   = "catalog circuit open"
)

var (
	// ErrMissingAPIKey is returned for every request when no API key is configured.
	ErrMissingAPIKey = errors.New("tmdb api key not configured")

	// ErrEmptyQuery is returned when a search query is blank.
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrInvalidID is returned when a movie or genre ID is not positive.
	ErrInvalidID = errors.New("id must be positive")
)

// StatusError is returned when TMDB answers with a non-200 status.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Sprintf("tmdb %s returned %d: %s", e.Endpoint, e.StatusCode, body)
}

// Config holds catalog client configuration.
type Config struct {
	// APIKey is the TMDB v3 API key. Empty degrades every lookup to an empty result.
	APIKey string

	// BaseURL is the API root (default DefaultBaseURL).
	BaseURL string

	// Language is passed as the language query parameter when set.
	Language string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// RateLimit is the sustained outbound request rate per second (0 disables limiting).
	RateLimit float64

	// RateBurst is the limiter bucket size.
	RateBurst int

	// MaxRetries is the number of retries after an HTTP 429.
	MaxRetries int

	// RetryBaseDelay is the first backoff delay; it doubles per retry.
	RetryBaseDelay time.Duration

	// Breaker configures the circuit breaker.
	Breaker BreakerConfig
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		Timeout:        5 * time.Second,
		RateLimit:      40,
		RateBurst:      10,
		MaxRetries:     2,
		RetryBaseDelay: 500 * time.Millisecond,
		Breaker:        DefaultBreakerConfig(),
	}
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey         string
	baseURL        string
	language       string
	httpClient     *http.Client
	limiter        *rate.Limiter
	breaker        *breaker
	cache          cache.Cacher
	cacheType      string
	maxRetries     int
	retryBaseDelay time.Duration
	logger         zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithCache enables response caching. cacheType labels cache metrics.
func WithCache(cacher cache.Cacher, cacheType string) Option {
	return func(c *Client) {
		c.cache = cacher
		c.cacheType = cacheType
	}
}

// WithLogger overrides the component logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a catalog client. A missing API key is not an error: the
// client is created and every lookup degrades to an empty result.
//
//nolint:gocritic // Config is copied once at construction
func New(cfg Config, opts ...Option) *Client {
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = defaults.RetryBaseDelay
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		apiKey:         strings.TrimSpace(cfg.APIKey),
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		language:       strings.TrimSpace(cfg.Language),
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		limiter:        rate.NewLimiter(limit, burst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
		logger:         logging.WithComponent("catalog"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache != nil && c.cacheType == "" {
		c.cacheType = string(cache.CacheTypeMemory)
	}
	c.breaker = newBreaker(cfg.Breaker, c.logger)

	if c.apiKey == "" {
		c.logger.Warn().Msg("TMDB API key not configured; catalog lookups will return empty results")
	}

	return c
}

// HasAPIKey reports whether an API key is configured.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// StatusText describes catalog availability for health checks and CLI output.
func (c *Client) StatusText() string {
	switch {
	case c.apiKey == "":
		return StatusMissingAPIKey
	case c.breaker.state() == gobreaker.StateOpen:
		return StatusCircuitOpen
	default:
		return StatusOK
	}
}

// SearchMovies searches TMDB for the supplied title.
func (c *Client) SearchMovies(ctx context.Context, query string) (*Page, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	params := url.Values{}
	params.Set("query", query)

	var page Page
	if err := c.get(ctx, EndpointSearch, "/search/movie", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetSimilar returns movies TMDB considers similar to movieID.
func (c *Client) GetSimilar(ctx context.Context, movieID int64) (*Page, error) {
	if movieID <= 0 {
		return nil, ErrInvalidID
	}

	var page Page
	if err := c.get(ctx, EndpointSimilar, fmt.Sprintf("/movie/%d/similar", movieID), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetMovieDetails fetches the full movie record with keywords appended.
func (c *Client) GetMovieDetails(ctx context.Context, movieID int64) (*Movie, error) {
	if movieID <= 0 {
		return nil, ErrInvalidID
	}
	params := url.Values{}
	params.Set("append_to_response", "keywords")

	var movie Movie
	if err := c.get(ctx, EndpointDetails, fmt.Sprintf("/movie/%d", movieID), params, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetPopular returns the first page of currently popular movies.
func (c *Client) GetPopular(ctx context.Context) (*Page, error) {
	var page Page
	if err := c.get(ctx, EndpointPopular, "/movie/popular", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DiscoverByGenre returns movies of the given genre sorted by popularity.
func (c *Client) DiscoverByGenre(ctx context.Context, genreID int) (*Page, error) {
	if genreID <= 0 {
		return nil, ErrInvalidID
	}
	params := url.Values{}
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("sort_by", "popularity.desc")

	var page Page
	if err := c.get(ctx, EndpointDiscover, "/discover/movie", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// get runs the request pipeline and decodes the body into out.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out interface{}) error {
	if c.apiKey == "" {
		metrics.RecordCatalogRequest(endpoint, metrics.ResultSkipped, 0)
		return ErrMissingAPIKey
	}

	reqURL := c.buildURL(path, params)
	key := cache.GenerateKey(cacheNamespace, reqURL)

	if !isRefresh(ctx) {
		if body, ok := c.cachedBody(key); ok {
			if err := json.Unmarshal(body, out); err == nil {
				metrics.RecordCatalogRequest(endpoint, metrics.ResultCached, 0)
				return nil
			}
			c.cache.Delete(key)
		}
	}

	start := time.Now()
	body, err := c.breaker.execute(func() ([]byte, error) {
		return c.fetch(ctx, endpoint, reqURL)
	})
	duration := time.Since(start)
	if err != nil {
		result := metrics.ResultError
		if isBreakerRejection(err) {
			result = metrics.ResultRejected
		}
		metrics.RecordCatalogRequest(endpoint, result, duration)
		return fmt.Errorf("tmdb %s: %w", endpoint, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		metrics.RecordCatalogRequest(endpoint, metrics.ResultError, duration)
		return fmt.Errorf("decode tmdb %s response: %w", endpoint, err)
	}
	metrics.RecordCatalogRequest(endpoint, metrics.ResultSuccess, duration)

	if c.cache != nil {
		c.cache.Set(key, body)
	}
	return nil
}

type refreshKey struct{}

// ContextWithRefresh marks ctx so lookups skip the cached response, go
// upstream and store the fresh body with a new TTL. A failed refresh leaves
// the existing entry in place.
func ContextWithRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshKey{}, true)
}

func isRefresh(ctx context.Context) bool {
	refresh, _ := ctx.Value(refreshKey{}).(bool)
	return refresh
}

func (c *Client) buildURL(path string, params url.Values) string {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("api_key", c.apiKey)
	if c.language != "" {
		query.Set("language", c.language)
	}
	return c.baseURL + path + "?" + query.Encode()
}

func (c *Client) cachedBody(key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	value, ok := c.cache.Get(key)
	metrics.RecordCacheLookup(c.cacheType, ok)
	if !ok {
		return nil, false
	}
	body, ok := value.([]byte)
	return body, ok
}

// fetch executes the GET with automatic retry on rate limiting (HTTP 429).
//
// Retries use exponential backoff from retryBaseDelay and honor a
// Retry-After header (in seconds) capped at maxRetryDelay.
func (c *Client) fetch(ctx context.Context, endpoint, reqURL string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", redactAPIKey(err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("execute request: %w", redactAPIKey(err))
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < c.maxRetries {
			delay := retryDelay(resp.Header.Get("Retry-After"), c.retryBaseDelay, attempt)
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
			resp.Body.Close()
			metrics.CatalogRateLimited.Inc()

			c.logger.Warn().
				Str("endpoint", endpoint).
				Dur("retry_delay", delay).
				Int("attempt", attempt+1).
				Int("max_retries", c.maxRetries).
				Msg("TMDB rate limited (HTTP 429), retrying")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			continue
		}

		return readBody(endpoint, resp)
	}
}

func readBody(endpoint string, resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

// readBodyForError reads at most maxErrorBodySize bytes of a failed response.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// retryDelay returns base*2^attempt, or the Retry-After seconds when present.
func retryDelay(retryAfter string, base time.Duration, attempt int) time.Duration {
	delay := base * time.Duration(1<<attempt)
	if seconds, err := strconv.Atoi(strings.TrimSpace(retryAfter)); err == nil && seconds >= 0 {
		delay = time.Duration(seconds) * time.Second
	}
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	return delay
}

// redactAPIKey strips the api_key query parameter from URL errors so that the
// key never reaches logs.
func redactAPIKey(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		q := u.Query()
		if q.Has("api_key") {
			q.Set("api_key", "REDACTED")
			u.RawQuery = q.Encode()
			urlErr.URL = u.String()
		}
	}
	return err
}
