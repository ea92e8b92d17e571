// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package config

import (
	"fmt"
	"time"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/validation"
)

// Rate limit bounds.
const (
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate checks field bounds via struct tags, then the rules that span
// several fields.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	validators := []func() error{
		c.validateCatalog,
		c.validateCache,
		c.validateMood,
		c.validateRateLimits,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if err := validateHTTPURL(c.Catalog.BaseURL, "TMDB_BASE_URL"); err != nil {
		return fmt.Errorf("TMDB_BASE_URL is invalid: %w", err)
	}
	return nil
}

// validateCache requires a redis URL only when the redis cache is selected.
func (c *Config) validateCache() error {
	if c.Cache.Type != "redis" {
		return nil
	}
	if c.Cache.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required when CACHE_TYPE=redis")
	}
	if err := validateRedisURL(c.Cache.RedisURL); err != nil {
		return fmt.Errorf("REDIS_URL is invalid: %w", err)
	}
	return nil
}

func (c *Config) validateMood() error {
	if c.Mood.SadThreshold >= c.Mood.HappyThreshold {
		return fmt.Errorf("mood.sad_threshold (%v) must be below mood.happy_threshold (%v)",
			c.Mood.SadThreshold, c.Mood.HappyThreshold)
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Server.RateLimitDisabled {
		return nil
	}
	if c.Server.RateLimitRequests > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at most %d", maxRateLimitRequests)
	}
	if c.Server.RateLimitWindow < minRateLimitWindow || c.Server.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any CORS origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// WarmupActive reports whether background catalog warm-up should run. It
// needs an API key and a cache to fill.
func (c *Config) WarmupActive() bool {
	return c.Catalog.WarmupEnabled && c.Catalog.APIKey != "" && c.Cache.Type != "none"
}
