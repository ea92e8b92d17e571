// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

/*
Package config loads and validates the recommender configuration.

# Configuration Sources

Values are layered with Koanf v2, later sources overriding earlier ones:

 1. Built-in defaults
 2. An optional YAML file: $CONFIG_PATH, ./config.yaml or /etc/recommender/config.yaml
 3. Environment variables

# Environment Variables

Catalog:
  - TMDB_API_KEY: TMDB v3 API key (optional; without it every lookup is empty)
  - TMDB_BASE_URL: API root (default: https://api.themoviedb.org/3)
  - TMDB_TIMEOUT: per-request timeout (default: 5s)
  - TMDB_RATE_LIMIT, TMDB_RATE_BURST: outbound rate limit (default: 40/s, burst 10)
  - TMDB_MAX_RETRIES, TMDB_RETRY_BASE_DELAY: HTTP 429 retries (default: 2, 500ms)

Cache:
  - CACHE_TYPE: memory, redis or none (default: memory)
  - CACHE_TTL: response lifetime (default: 1h)
  - REDIS_URL: required when CACHE_TYPE=redis

Mood and recommendations:
  - MOOD_HAPPY_THRESHOLD, MOOD_SAD_THRESHOLD: compound score cut-offs (default: 0.4, -0.4)
  - MOOD_FULL_KEYWORD_SCAN: consult every keyword table entry (default: false)
  - RECOMMEND_WEIGHT_PROFILE: classic or balanced (default: classic)
  - RECOMMEND_WEIGHT_RATING, _POPULARITY, _MOOD_PER_MATCH, _GENRE_MATCH: explicit weights
  - RECOMMEND_MAX_CANDIDATES, RECOMMEND_TOP_N: pool cap and result size (default: 150, 15)

Server and logging:
  - HTTP_HOST, HTTP_PORT: listen address (default: 0.0.0.0:8501)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT: per-IP API limit
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example

	cfg, err := config.Load()
	if err != nil {
	    return fmt.Errorf("load config: %w", err)
	}
	client := catalog.New(cfg.CatalogClientConfig())
*/
package config
