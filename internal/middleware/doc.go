// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

/*
Package middleware provides HTTP middleware for the recommender API.

Key Components:

  - Request ID: UUID-based request tracking, propagated into the logging
    context so engine and catalog log lines carry the same request_id
  - Request Logger: one structured zerolog line per request
  - Prometheus Metrics: request counts and latency labelled by chi route
    pattern

All middleware uses the standard func(http.Handler) http.Handler shape and
can be passed directly to chi's Router.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics)

Metric labels use the matched route pattern (for example
/api/v1/recommendations) rather than the raw URL path, so query strings
and unmatched paths cannot grow label cardinality.
*/
package middleware
