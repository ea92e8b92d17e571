// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2):
//  1. Defaults from defaultConfig()
//  2. Optional YAML config file (CONFIG_PATH, config.yaml, /etc/recommender/config.yaml)
//  3. Environment variables (see envTransformFunc)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Cache     CacheConfig     `koanf:"cache"`
	Mood      MoodConfig      `koanf:"mood"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig configures the TMDB client.
type CatalogConfig struct {
	// APIKey is the TMDB v3 API key (TMDB_API_KEY). Optional: without it
	// every lookup returns an empty result.
	APIKey         string        `koanf:"api_key"`
	BaseURL        string        `koanf:"base_url" validate:"required,url"`
	Language       string        `koanf:"language"`
	Timeout        time.Duration `koanf:"timeout" validate:"gt=0"`
	RateLimit      float64       `koanf:"rate_limit" validate:"gte=0"`
	RateBurst      int           `koanf:"rate_burst" validate:"gte=1"`
	MaxRetries     int           `koanf:"max_retries" validate:"gte=0,lte=10"`
	RetryBaseDelay time.Duration `koanf:"retry_base_delay" validate:"gt=0"`
	Breaker        BreakerConfig `koanf:"breaker"`

	// WarmupEnabled prefetches popular and per-genre lists in the
	// background while serving. Ignored when caching is disabled.
	WarmupEnabled  bool          `koanf:"warmup_enabled"`
	WarmupInterval time.Duration `koanf:"warmup_interval" validate:"gte=0"`
}

// BreakerConfig configures the catalog circuit breaker.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests" validate:"gte=1"`
	Interval     time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
	MinRequests  uint32        `koanf:"min_requests" validate:"gte=1"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gt=0,lte=1"`
}

// CacheConfig configures the catalog response cache.
type CacheConfig struct {
	// Type is memory, redis or none.
	Type      string        `koanf:"type" validate:"oneof=memory redis none"`
	TTL       time.Duration `koanf:"ttl" validate:"gt=0"`
	RedisURL  string        `koanf:"redis_url"`
	KeyPrefix string        `koanf:"key_prefix"`
}

// MoodConfig configures the mood classifier.
type MoodConfig struct {
	HappyThreshold  float64 `koanf:"happy_threshold" validate:"gte=-1,lte=1"`
	SadThreshold    float64 `koanf:"sad_threshold" validate:"gte=-1,lte=1"`
	FullKeywordScan bool    `koanf:"full_keyword_scan"`
}

// WeightsConfig overrides the weights of the selected profile when any
// field is non-zero.
type WeightsConfig struct {
	Rating       float64 `koanf:"rating" validate:"gte=0"`
	Popularity   float64 `koanf:"popularity" validate:"gte=0"`
	MoodPerMatch float64 `koanf:"mood_per_match" validate:"gte=0"`
	GenreMatch   float64 `koanf:"genre_match" validate:"gte=0"`
}

// RecommendConfig configures the recommendation engine.
type RecommendConfig struct {
	WeightProfile     string        `koanf:"weight_profile" validate:"oneof=classic balanced"`
	Weights           WeightsConfig `koanf:"weights"`
	MaxCandidates     int           `koanf:"max_candidates" validate:"gte=1,lte=1000"`
	TopN              int           `koanf:"top_n" validate:"gte=1,lte=100"`
	EnrichDetails     bool          `koanf:"enrich_details"`
	DetailConcurrency int           `koanf:"detail_concurrency" validate:"gte=1,lte=32"`
	RequestTimeout    time.Duration `koanf:"request_timeout" validate:"gte=0"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port" validate:"gte=1,lte=65535"`
	ReadTimeout       time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout      time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"gte=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Format string `koanf:"format" validate:"oneof=json console auto"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// String summarizes the configuration without secrets.
func (c *Config) String() string {
	key := "unset"
	if c.Catalog.APIKey != "" {
		key = "set"
	}
	return fmt.Sprintf("catalog(api_key=%s base_url=%s) cache(%s ttl=%s) recommend(profile=%s top_n=%d) server(%s)",
		key, c.Catalog.BaseURL, c.Cache.Type, c.Cache.TTL, c.Recommend.WeightProfile, c.Recommend.TopN, c.Server.Addr())
}
