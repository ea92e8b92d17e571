// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
// The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/recommender/config.yaml",
	"/etc/recommender/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every default applied.
func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			APIKey:         "",
			BaseURL:        "https://api.themoviedb.org/3",
			Language:       "",
			Timeout:        5 * time.Second,
			RateLimit:      40,
			RateBurst:      10,
			MaxRetries:     2,
			RetryBaseDelay: 500 * time.Millisecond,
			Breaker: BreakerConfig{
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      60 * time.Second,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
			WarmupEnabled:  true,
			WarmupInterval: 55 * time.Minute,
		},
		Cache: CacheConfig{
			Type:      "memory",
			TTL:       time.Hour,
			RedisURL:  "",
			KeyPrefix: "recommender:",
		},
		Mood: MoodConfig{
			HappyThreshold:  0.4,
			SadThreshold:    -0.4,
			FullKeywordScan: false,
		},
		Recommend: RecommendConfig{
			WeightProfile:     "classic",
			MaxCandidates:     150,
			TopN:              15,
			EnrichDetails:     true,
			DetailConcurrency: 1,
			RequestTimeout:    60 * time.Second,
		},
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8501,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      90 * time.Second,
			ShutdownTimeout:   15 * time.Second,
			RateLimitRequests: 60,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration with layered sources:
//  1. Defaults
//  2. Config file (optional)
//  3. Environment variables
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// TMDB_API_KEY -> catalog.api_key, HTTP_PORT -> server.port, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" when none
// exists. CONFIG_PATH takes priority over the default paths.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed as comma-separated lists when set from the
// environment.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated strings to slices for the
// known slice paths. Values already loaded as lists are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to config paths.
var envMappings = map[string]string{
	// Catalog
	"tmdb_api_key":               "catalog.api_key",
	"tmdb_base_url":              "catalog.base_url",
	"tmdb_language":              "catalog.language",
	"tmdb_timeout":               "catalog.timeout",
	"tmdb_rate_limit":            "catalog.rate_limit",
	"tmdb_rate_burst":            "catalog.rate_burst",
	"tmdb_max_retries":           "catalog.max_retries",
	"tmdb_retry_base_delay":      "catalog.retry_base_delay",
	"tmdb_breaker_max_requests":  "catalog.breaker.max_requests",
	"tmdb_breaker_interval":      "catalog.breaker.interval",
	"tmdb_breaker_timeout":       "catalog.breaker.timeout",
	"tmdb_breaker_min_requests":  "catalog.breaker.min_requests",
	"tmdb_breaker_failure_ratio": "catalog.breaker.failure_ratio",
	"tmdb_warmup":                "catalog.warmup_enabled",
	"tmdb_warmup_interval":       "catalog.warmup_interval",

	// Cache
	"cache_type":       "cache.type",
	"cache_ttl":        "cache.ttl",
	"redis_url":        "cache.redis_url",
	"cache_key_prefix": "cache.key_prefix",

	// Mood
	"mood_happy_threshold":   "mood.happy_threshold",
	"mood_sad_threshold":     "mood.sad_threshold",
	"mood_full_keyword_scan": "mood.full_keyword_scan",

	// Recommendation engine
	"recommend_weight_profile":        "recommend.weight_profile",
	"recommend_weight_rating":         "recommend.weights.rating",
	"recommend_weight_popularity":     "recommend.weights.popularity",
	"recommend_weight_mood_per_match": "recommend.weights.mood_per_match",
	"recommend_weight_genre_match":    "recommend.weights.genre_match",
	"recommend_max_candidates":        "recommend.max_candidates",
	"recommend_top_n":                 "recommend.top_n",
	"recommend_enrich_details":        "recommend.enrich_details",
	"recommend_detail_concurrency":    "recommend.detail_concurrency",
	"recommend_request_timeout":       "recommend.request_timeout",

	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"rate_limit_requests":   "server.rate_limit_requests",
	"rate_limit_window":     "server.rate_limit_window",
	"disable_rate_limit":    "server.rate_limit_disabled",
	"cors_origins":          "server.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its config path.
// Unmapped variables return "" and are skipped.
//
// Examples:
//   - TMDB_API_KEY -> catalog.api_key
//   - HTTP_PORT -> server.port
//   - RECOMMEND_WEIGHT_PROFILE -> recommend.weight_profile
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
