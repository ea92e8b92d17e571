// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	if m.config == nil {
		t.Fatal("config is nil")
	}
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want []", m.config.CORSAllowedOrigins)
	}
	if m.config.RateLimitRequests != 60 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 60/1m", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
}

func TestChiMiddleware_RateLimitCustomKey(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitKeyFunc = func(r *http.Request) (string, error) {
		return r.Header.Get("X-Client"), nil
	}
	limited := NewChiMiddleware(cfg).RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/mood", nil)
		req.Header.Set("X-Client", client)
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do("a"); code != http.StatusNoContent {
		t.Fatalf("first request from a = %d", code)
	}
	if code := do("b"); code != http.StatusNoContent {
		t.Errorf("first request from b = %d, want its own budget", code)
	}
	if code := do("a"); code != http.StatusTooManyRequests {
		t.Errorf("second request from a = %d, want 429", code)
	}
}

func TestChiMiddleware_RateLimitZeroRequestsDisables(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 0
	passthrough := NewChiMiddleware(cfg).RateLimit()

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		passthrough(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	}
}
