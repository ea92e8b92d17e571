// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

// Package metrics holds the Prometheus instruments for the recommender:
// catalog calls, response cache efficiency, circuit breaker state,
// recommendation latency and HTTP API traffic.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Catalog call results.
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultCached   = "cached"
	ResultRejected = "rejected"
	ResultSkipped  = "skipped"
)

var (
	// Catalog (TMDB) Metrics
	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of catalog lookups by endpoint and result",
		},
		[]string{"endpoint", "result"}, // result: success, error, cached, rejected, skipped
	)

	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Upstream catalog request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"endpoint"},
	)

	CatalogRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_rate_limited_total",
			Help: "Total number of HTTP 429 responses received from the catalog",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "memory", "redis"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Mood Classification Metrics
	MoodClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_classifications_total",
			Help: "Total number of mood classifications by resolved mood and deciding signal",
		},
		[]string{"mood", "signal"}, // signal: "keyword", "sentiment", "empty"
	)

	// Recommendation Metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by candidate source",
		},
		[]string{"source"}, // "favorites", "genre", "popular", "none"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "End-to-end recommendation latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_candidate_pool_size",
			Help:    "Number of candidates gathered before ranking",
			Buckets: []float64{0, 5, 10, 20, 40, 80, 120, 150},
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_result_count",
			Help:    "Number of recommendations returned",
			Buckets: []float64{0, 1, 5, 10, 15},
		},
	)

	RecommendPanics = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_panics_recovered_total",
			Help: "Total number of recovered panics in the recommendation pipeline",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// RecordCatalogRequest records the outcome of one catalog lookup. duration is
// only observed for calls that reached the network.
func RecordCatalogRequest(endpoint, result string, duration time.Duration) {
	CatalogRequestsTotal.WithLabelValues(endpoint, result).Inc()
	if result == ResultSuccess || result == ResultError {
		CatalogRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
	}
}

// RecordCacheLookup records a cache hit or miss for the given cache type.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
		return
	}
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// RecordMoodClassification records a resolved mood and the signal that decided it.
func RecordMoodClassification(mood, signal string) {
	MoodClassifications.WithLabelValues(mood, signal).Inc()
}

// RecordRecommendation records one completed recommendation request.
func RecordRecommendation(source string, candidates, results int, duration time.Duration) {
	RecommendRequestsTotal.WithLabelValues(source).Inc()
	RecommendCandidates.Observe(float64(candidates))
	RecommendResults.Observe(float64(results))
	RecommendDuration.Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
