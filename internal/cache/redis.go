// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
)

// redisOpTimeout bounds every Redis round trip; a slow cache must not stall a recommendation.
const redisOpTimeout = 500 * time.Millisecond

// DefaultKeyPrefix namespaces cached responses in a shared Redis database.
const DefaultKeyPrefix = "recommender:"

// RedisCache is a Cacher backed by Redis. Values are stored as raw bytes;
// anything that is not []byte or string is JSON-encoded on Set, and Get always
// returns []byte. Redis failures are logged and reported as misses.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger zerolog.Logger

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logging.WithComponent("cache").With().Str("cache_type", string(CacheTypeRedis)).Logger(),
	}
}

// NewRedisFromURL parses a redis:// URL and creates a RedisCache. The
// connection is lazy; an unreachable server only degrades to cache misses.
func NewRedisFromURL(rawURL, prefix string, ttl time.Duration) (*RedisCache, error) {
	if rawURL == "" {
		return nil, errors.New("redis cache requires a URL")
	}
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedis(redis.NewClient(opts), prefix, ttl), nil
}

// Ping checks connectivity to the Redis server.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get returns the stored bytes for key.
func (r *RedisCache) Get(key string) (interface{}, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Debug().Err(err).Msg("Redis get failed")
		}
		r.misses.Add(1)
		return nil, false
	}

	r.hits.Add(1)
	return val, true
}

// Set stores value with the default TTL.
func (r *RedisCache) Set(key string, value interface{}) {
	r.SetWithTTL(key, value, r.ttl)
}

// SetWithTTL stores value with a custom TTL.
func (r *RedisCache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			r.logger.Debug().Err(err).Msg("Redis value not encodable")
			return
		}
		data = encoded
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+key, data, ttl).Err(); err != nil {
		r.logger.Debug().Err(err).Msg("Redis set failed")
	}
}

// Delete removes key.
func (r *RedisCache) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	n, err := r.client.Del(ctx, r.prefix+key).Result()
	if err != nil {
		r.logger.Debug().Err(err).Msg("Redis delete failed")
		return
	}
	r.evictions.Add(n)
}

// Clear removes every key under the cache prefix.
func (r *RedisCache) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*redisOpTimeout)
	defer cancel()

	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err == nil {
			r.evictions.Add(1)
		}
	}
	if err := iter.Err(); err != nil {
		r.logger.Debug().Err(err).Msg("Redis clear failed")
	}
}

// GetStats returns local hit/miss counters. TotalKeys is the size of the
// Redis database and is zero when the server is unreachable.
func (r *RedisCache) GetStats() Stats {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	size, err := r.client.DBSize(ctx).Result()
	if err != nil {
		size = 0
	}

	return Stats{
		Hits:      r.hits.Load(),
		Misses:    r.misses.Load(),
		Evictions: r.evictions.Load(),
		TotalKeys: size,
	}
}

// HitRate returns the cache hit rate as a percentage.
func (r *RedisCache) HitRate() float64 {
	hits, misses := r.hits.Load(), r.misses.Load()
	if hits+misses == 0 {
		return 0.0
	}
	return float64(hits) / float64(hits+misses) * 100.0
}

// Close closes the underlying client.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
