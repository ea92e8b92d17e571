// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/middleware"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	CORSOrigins       []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool

	// Logger receives one access log line per request.
	Logger zerolog.Logger
}

// NewRouter builds the chi router for h.
//
// Middleware order (outermost first): RealIP, RequestID, request logging,
// Recoverer, Prometheus metrics, compression, CORS. Rate limiting applies
// to the endpoints that reach the catalog or the classifier.
//
//nolint:gocritic // RouterConfig is passed once at startup
func NewRouter(h *Handler, cfg RouterConfig) *chi.Mux {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.CORSOrigins
	mwConfig.RateLimitRequests = cfg.RateLimitRequests
	mwConfig.RateLimitWindow = cfg.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.RateLimitDisabled
	mw := NewChiMiddleware(mwConfig)

	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Compress(5, "application/json"))
	r.Use(mw.CORS())

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit())
			r.Get("/recommendations", h.Recommendations)
			r.Post("/recommendations", h.RecommendationsPost)
			r.Get("/mood", h.Mood)
		})

		r.Get("/genres", h.Genres)

		r.Route("/health", func(r chi.Router) {
			r.Get("/live", h.HealthLive)
			r.Get("/ready", h.HealthReady)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
