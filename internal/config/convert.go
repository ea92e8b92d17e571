// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package config

import (
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/cache"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/mood"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/recommend"
)

// CatalogClientConfig returns the TMDB client settings.
func (c *Config) CatalogClientConfig() catalog.Config {
	breaker := catalog.DefaultBreakerConfig()
	breaker.MaxRequests = c.Catalog.Breaker.MaxRequests
	breaker.Interval = c.Catalog.Breaker.Interval
	breaker.Timeout = c.Catalog.Breaker.Timeout
	breaker.MinRequests = c.Catalog.Breaker.MinRequests
	breaker.FailureRatio = c.Catalog.Breaker.FailureRatio

	return catalog.Config{
		APIKey:         c.Catalog.APIKey,
		BaseURL:        c.Catalog.BaseURL,
		Language:       c.Catalog.Language,
		Timeout:        c.Catalog.Timeout,
		RateLimit:      c.Catalog.RateLimit,
		RateBurst:      c.Catalog.RateBurst,
		MaxRetries:     c.Catalog.MaxRetries,
		RetryBaseDelay: c.Catalog.RetryBaseDelay,
		Breaker:        breaker,
	}
}

// CacheSettings returns the response cache settings.
func (c *Config) CacheSettings() cache.CacheConfig {
	return cache.CacheConfig{
		Type:      cache.CacheType(c.Cache.Type),
		TTL:       c.Cache.TTL,
		RedisURL:  c.Cache.RedisURL,
		KeyPrefix: c.Cache.KeyPrefix,
	}
}

// ClassifierOptions returns the mood classifier options.
func (c *Config) ClassifierOptions() []mood.Option {
	return []mood.Option{
		mood.WithThresholds(c.Mood.HappyThreshold, c.Mood.SadThreshold),
		mood.WithFullKeywordScan(c.Mood.FullKeywordScan),
	}
}

// EngineConfig returns the recommendation engine settings.
func (c *Config) EngineConfig() *recommend.Config {
	return &recommend.Config{
		WeightProfile: c.Recommend.WeightProfile,
		Weights: recommend.Weights{
			Rating:       c.Recommend.Weights.Rating,
			Popularity:   c.Recommend.Weights.Popularity,
			MoodPerMatch: c.Recommend.Weights.MoodPerMatch,
			GenreMatch:   c.Recommend.Weights.GenreMatch,
		},
		MaxCandidates:     c.Recommend.MaxCandidates,
		TopN:              c.Recommend.TopN,
		EnrichDetails:     c.Recommend.EnrichDetails,
		DetailConcurrency: c.Recommend.DetailConcurrency,
		RequestTimeout:    c.Recommend.RequestTimeout,
	}
}

// LoggingSettings returns the logger settings.
func (c *Config) LoggingSettings() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}
