// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/cache"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
)

// fakeTMDB serves canned TMDB responses and counts upstream hits.
type fakeTMDB struct {
	server *httptest.Server
	hits   atomic.Int64
}

func newFakeTMDB(t *testing.T, handler http.HandlerFunc) *fakeTMDB {
	t.Helper()
	f := &fakeTMDB{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func testConfig(baseURL string) catalog.Config {
	cfg := catalog.DefaultConfig()
	cfg.APIKey = "key"
	cfg.BaseURL = baseURL
	cfg.RateLimit = 0
	cfg.RetryBaseDelay = time.Millisecond
	return cfg
}

func newTestClient(t *testing.T, cfg catalog.Config, opts ...catalog.Option) *catalog.Client {
	t.Helper()
	opts = append([]catalog.Option{catalog.WithLogger(zerolog.Nop())}, opts...)
	return catalog.New(cfg, opts...)
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestSearchMoviesSuccess(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "key" {
			t.Errorf("expected api_key query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("query") != "Inception" {
			t.Errorf("expected query=Inception, got %q", r.URL.Query().Get("query"))
		}
		writeJSON(w, `{"page":1,"results":[{"id":27205,"title":"Inception"},{"id":64956,"title":"Inception: The Cobol Job"}]}`)
	})

	client := newTestClient(t, testConfig(tmdb.server.URL))

	page, err := client.SearchMovies(context.Background(), "  Inception ")
	if err != nil {
		t.Fatalf("SearchMovies returned error: %v", err)
	}
	if len(page.Results) != 2 || page.Results[0].Title != "Inception" {
		t.Fatalf("unexpected response: %#v", page)
	}

	id, ok := client.SearchID(context.Background(), "Inception")
	if !ok || id != 27205 {
		t.Fatalf("SearchID = (%d, %v), want (27205, true)", id, ok)
	}
}

func TestSearchIDNoResults(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"page":1,"results":[]}`)
	})

	client := newTestClient(t, testConfig(tmdb.server.URL))

	if id, ok := client.SearchID(context.Background(), "zzzz-no-such-film"); ok {
		t.Fatalf("SearchID = (%d, true), want not found", id)
	}
}

func TestSearchMoviesEmptyQuery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, testConfig("https://example.com"))

	if _, err := client.SearchMovies(context.Background(), "  "); !errors.Is(err, catalog.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestMissingAPIKeyPerformsNoIO(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"page":1,"results":[{"id":1,"title":"Example"}]}`)
	})

	cfg := testConfig(tmdb.server.URL)
	cfg.APIKey = ""
	client := newTestClient(t, cfg)
	ctx := context.Background()

	if _, ok := client.SearchID(ctx, "Example"); ok {
		t.Error("SearchID should report not found without an API key")
	}
	if got := client.FetchSimilar(ctx, 1); len(got) != 0 {
		t.Errorf("FetchSimilar = %v, want empty", got)
	}
	if _, ok := client.FetchDetails(ctx, 1); ok {
		t.Error("FetchDetails should fail without an API key")
	}
	if got := client.FetchPopular(ctx); len(got) != 0 {
		t.Errorf("FetchPopular = %v, want empty", got)
	}
	if got := client.FetchByGenre(ctx, 28); len(got) != 0 {
		t.Errorf("FetchByGenre = %v, want empty", got)
	}
	if _, err := client.GetPopular(ctx); !errors.Is(err, catalog.ErrMissingAPIKey) {
		t.Errorf("GetPopular error = %v, want ErrMissingAPIKey", err)
	}

	if hits := tmdb.hits.Load(); hits != 0 {
		t.Errorf("expected no upstream requests, got %d", hits)
	}
	if client.HasAPIKey() {
		t.Error("HasAPIKey() = true, want false")
	}
	if got := client.StatusText(); got != catalog.StatusMissingAPIKey {
		t.Errorf("StatusText() = %q, want %q", got, catalog.StatusMissingAPIKey)
	}
}

func TestHTTPErrorDegradesToEmpty(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status_code":500}`))
	})

	client := newTestClient(t, testConfig(tmdb.server.URL))

	_, err := client.GetSimilar(context.Background(), 42)
	var statusErr *catalog.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected StatusError 500, got %v", err)
	}

	if got := client.FetchSimilar(context.Background(), 42); len(got) != 0 {
		t.Errorf("FetchSimilar = %v, want empty", got)
	}
}

func TestDegradedLookupLogsRequestIDs(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	var buf bytes.Buffer
	cfg := testConfig(tmdb.server.URL)
	cfg.MaxRetries = 0
	client := newTestClient(t, cfg, catalog.WithLogger(zerolog.New(&buf)))

	ctx := logging.ContextWithRequestID(context.Background(), "req-77")
	ctx = logging.ContextWithCorrelationID(ctx, "corr-77")
	if got := client.FetchPopular(ctx); len(got) != 0 {
		t.Fatalf("FetchPopular = %v, want empty", got)
	}

	var line string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.Contains(l, "Catalog lookup failed") {
			line = l
		}
	}
	for _, want := range []string{`"request_id":"req-77"`, `"correlation_id":"corr-77"`, `"endpoint":"popular"`} {
		if !strings.Contains(line, want) {
			t.Errorf("failure log %q missing %s", line, want)
		}
	}
}

func TestTransportFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := newTestClient(t, testConfig(baseURL))

	if got := client.FetchPopular(context.Background()); len(got) != 0 {
		t.Errorf("FetchPopular = %v, want empty", got)
	}

	_, err := client.GetPopular(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if got := err.Error(); strings.Contains(got, "api_key=key") {
		t.Errorf("error leaks api key: %s", got)
	}
}

func TestGetMovieDetailsWithKeywords(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/550" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("append_to_response") != "keywords" {
			t.Errorf("expected append_to_response=keywords, got %q", r.URL.RawQuery)
		}
		writeJSON(w, `{
			"id": 550,
			"title": "Fight Club",
			"overview": "An insomniac office worker...",
			"vote_average": 8.4,
			"popularity": 61.4,
			"poster_path": "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
			"genres": [{"id": 18, "name": "Drama"}],
			"keywords": {"keywords": [{"id": 825, "name": "support group"}, {"id": 851, "name": "dual identity"}]}
		}`)
	})

	client := newTestClient(t, testConfig(tmdb.server.URL))

	movie, ok := client.FetchDetails(context.Background(), 550)
	if !ok {
		t.Fatal("FetchDetails reported failure")
	}
	if movie.Title != "Fight Club" || movie.VoteAverage != 8.4 {
		t.Errorf("unexpected movie: %+v", movie)
	}
	if !movie.HasGenre(18) {
		t.Error("expected Drama genre from genres list")
	}
	names := movie.KeywordNames()
	if len(names) != 2 || names[0] != "support group" {
		t.Errorf("KeywordNames() = %v", names)
	}
}

func TestDiscoverByGenreParams(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/discover/movie" || q.Get("with_genres") != "27" || q.Get("sort_by") != "popularity.desc" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		writeJSON(w, `{"page":1,"results":[{"id":1,"title":"Scary","genre_ids":[27]}]}`)
	})

	client := newTestClient(t, testConfig(tmdb.server.URL))

	movies := client.FetchByGenre(context.Background(), 27)
	if len(movies) != 1 || !movies[0].HasGenre(27) {
		t.Fatalf("unexpected movies: %+v", movies)
	}

	if got := client.FetchByGenre(context.Background(), 0); len(got) != 0 {
		t.Errorf("FetchByGenre(0) = %v, want empty", got)
	}
	if hits := tmdb.hits.Load(); hits != 1 {
		t.Errorf("expected 1 upstream request, got %d", hits)
	}
}

func TestLanguageParameter(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("language") != "en-US" {
			t.Errorf("expected language=en-US, got %q", r.URL.RawQuery)
		}
		writeJSON(w, `{"page":1,"results":[]}`)
	})

	cfg := testConfig(tmdb.server.URL)
	cfg.Language = "en-US"
	client := newTestClient(t, cfg)

	_ = client.FetchPopular(context.Background())
}

func TestResponseCacheAvoidsRepeatIO(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"page":1,"results":[{"id":7,"title":"Cached"}]}`)
	})

	responses := cache.New(time.Hour)
	t.Cleanup(func() { _ = responses.Close() })
	client := newTestClient(t, testConfig(tmdb.server.URL), catalog.WithCache(responses, "memory"))

	first := client.FetchSimilar(context.Background(), 1)
	second := client.FetchSimilar(context.Background(), 1)

	if len(first) != 1 || len(second) != 1 || second[0].Title != "Cached" {
		t.Fatalf("unexpected results: %v / %v", first, second)
	}
	if hits := tmdb.hits.Load(); hits != 1 {
		t.Errorf("expected 1 upstream request, got %d", hits)
	}

	_ = client.FetchSimilar(context.Background(), 2)
	if hits := tmdb.hits.Load(); hits != 2 {
		t.Errorf("expected a different URL to miss the cache, got %d requests", hits)
	}
}

func TestRefreshBypassesAndRewritesCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, `{"page":1,"results":[{"id":1,"title":"Old"}]}`)
			return
		}
		writeJSON(w, `{"page":1,"results":[{"id":2,"title":"New"}]}`)
	})

	responses := cache.New(time.Hour)
	t.Cleanup(func() { _ = responses.Close() })
	client := newTestClient(t, testConfig(tmdb.server.URL), catalog.WithCache(responses, "memory"))
	ctx := context.Background()

	_ = client.FetchPopular(ctx)
	if got := client.FetchPopular(ctx); len(got) != 1 || got[0].Title != "Old" {
		t.Fatalf("cached read = %v, want Old", got)
	}
	if hits := tmdb.hits.Load(); hits != 1 {
		t.Fatalf("expected 1 upstream request before refresh, got %d", hits)
	}

	if got := client.FetchPopular(catalog.ContextWithRefresh(ctx)); len(got) != 1 || got[0].Title != "New" {
		t.Fatalf("refresh = %v, want New", got)
	}
	if hits := tmdb.hits.Load(); hits != 2 {
		t.Errorf("refresh should go upstream, got %d requests", hits)
	}

	if got := client.FetchPopular(ctx); len(got) != 1 || got[0].Title != "New" {
		t.Errorf("read after refresh = %v, want the rewritten entry", got)
	}
	if hits := tmdb.hits.Load(); hits != 2 {
		t.Errorf("read after refresh should hit the cache, got %d requests", hits)
	}
}

func TestFailedRefreshKeepsCachedEntry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, `{"page":1,"results":[{"id":1,"title":"Kept"}]}`)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	})

	responses := cache.New(time.Hour)
	t.Cleanup(func() { _ = responses.Close() })
	cfg := testConfig(tmdb.server.URL)
	cfg.MaxRetries = 0
	client := newTestClient(t, cfg, catalog.WithCache(responses, "memory"))
	ctx := context.Background()

	_ = client.FetchPopular(ctx)
	if got := client.FetchPopular(catalog.ContextWithRefresh(ctx)); len(got) != 0 {
		t.Fatalf("failed refresh = %v, want empty", got)
	}
	if got := client.FetchPopular(ctx); len(got) != 1 || got[0].Title != "Kept" {
		t.Errorf("read after failed refresh = %v, want Kept", got)
	}
}

func TestFailedResponsesAreNotCached(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(w, `{"page":1,"results":[{"id":3,"title":"Recovered"}]}`)
	})

	responses := cache.New(time.Hour)
	t.Cleanup(func() { _ = responses.Close() })
	client := newTestClient(t, testConfig(tmdb.server.URL), catalog.WithCache(responses, "memory"))

	if got := client.FetchPopular(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty result on 502, got %v", got)
	}
	if got := client.FetchPopular(context.Background()); len(got) != 1 {
		t.Fatalf("expected recovery after failure, got %v", got)
	}
}

func TestRetryOnRateLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		writeJSON(w, `{"page":1,"results":[{"id":9,"title":"After Retry"}]}`)
	})

	client := newTestClient(t, testConfig(tmdb.server.URL))

	movies := client.FetchPopular(context.Background())
	if len(movies) != 1 || movies[0].Title != "After Retry" {
		t.Fatalf("unexpected result: %v", movies)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("expected 2 upstream calls, got %d", got)
	}
}

func TestRateLimitRetriesExhausted(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	cfg := testConfig(tmdb.server.URL)
	cfg.MaxRetries = 1
	client := newTestClient(t, cfg)

	_, err := client.GetPopular(context.Background())
	var statusErr *catalog.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected StatusError 429, got %v", err)
	}
	if hits := tmdb.hits.Load(); hits != 2 {
		t.Errorf("expected 2 attempts, got %d", hits)
	}
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	cfg := testConfig(tmdb.server.URL)
	cfg.Breaker = catalog.BreakerConfig{
		Name:         "tmdb-test-breaker",
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  3,
		FailureRatio: 0.5,
	}
	client := newTestClient(t, cfg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = client.FetchPopular(ctx)
	}
	if got := client.StatusText(); got != catalog.StatusCircuitOpen {
		t.Fatalf("StatusText() = %q, want %q", got, catalog.StatusCircuitOpen)
	}

	before := tmdb.hits.Load()
	if got := client.FetchPopular(ctx); len(got) != 0 {
		t.Errorf("expected empty result while open, got %v", got)
	}
	if tmdb.hits.Load() != before {
		t.Error("expected open circuit to short-circuit upstream requests")
	}
}

func TestNotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	cfg := testConfig(tmdb.server.URL)
	cfg.Breaker = catalog.BreakerConfig{Name: "tmdb-404-breaker", MinRequests: 2, FailureRatio: 0.5, Timeout: time.Minute}
	client := newTestClient(t, cfg)

	for i := 0; i < 5; i++ {
		if _, ok := client.FetchDetails(context.Background(), 999999); ok {
			t.Fatal("FetchDetails should fail on 404")
		}
	}
	if got := client.StatusText(); got != catalog.StatusOK {
		t.Errorf("StatusText() = %q, want %q", got, catalog.StatusOK)
	}
}

func TestContextCancellation(t *testing.T) {
	t.Parallel()

	tmdb := newFakeTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"page":1,"results":[{"id":1}]}`)
	})

	client := newTestClient(t, testConfig(tmdb.server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := client.FetchPopular(ctx); len(got) != 0 {
		t.Errorf("expected empty result for cancelled context, got %v", got)
	}
}

func TestInvalidIDs(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, testConfig("https://example.com"))
	ctx := context.Background()

	if _, err := client.GetSimilar(ctx, 0); !errors.Is(err, catalog.ErrInvalidID) {
		t.Errorf("GetSimilar(0) error = %v, want ErrInvalidID", err)
	}
	if _, err := client.GetMovieDetails(ctx, -1); !errors.Is(err, catalog.ErrInvalidID) {
		t.Errorf("GetMovieDetails(-1) error = %v, want ErrInvalidID", err)
	}
	if _, err := client.DiscoverByGenre(ctx, 0); !errors.Is(err, catalog.ErrInvalidID) {
		t.Errorf("DiscoverByGenre(0) error = %v, want ErrInvalidID", err)
	}
}
