// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

// Package cache provides the response caches used by the catalog client.
package cache

import (
	"fmt"
	"time"
)

// DefaultTTL is the lifetime of a cached catalog response.
const DefaultTTL = time.Hour

// Cacher defines the interface for cache implementations.
// Both Cache (in-process TTL map) and RedisCache implement it,
// so the catalog client can share responses across processes when configured.
//
// Usage:
//
//	var c Cacher = New(time.Hour)
//	c.Set("key", body)
//	if val, ok := c.Get("key"); ok {
//	    // Use cached value
//	}
type Cacher interface {
	// Get retrieves a value from the cache.
	// Returns the value and true if found and not expired.
	Get(key string) (interface{}, bool)

	// Set stores a value in the cache with the default TTL.
	Set(key string, value interface{})

	// SetWithTTL stores a value with a custom TTL.
	SetWithTTL(key string, value interface{}, ttl time.Duration)

	// Delete removes a value from the cache.
	Delete(key string)

	// Clear removes all entries from the cache.
	Clear()

	// GetStats returns cache statistics.
	GetStats() Stats

	// HitRate returns the cache hit rate as a percentage.
	HitRate() float64

	// Close releases background resources.
	Close() error
}

// CacheType represents the type of cache to create.
type CacheType string

const (
	// CacheTypeMemory is the in-process TTL cache (default).
	CacheTypeMemory CacheType = "memory"

	// CacheTypeRedis shares responses through a Redis server.
	CacheTypeRedis CacheType = "redis"

	// CacheTypeNone disables response caching.
	CacheTypeNone CacheType = "none"
)

// CacheConfig holds configuration for creating a cache.
type CacheConfig struct {
	// Type specifies the cache implementation (memory, redis or none)
	Type CacheType

	// TTL is the default time-to-live for cache entries
	TTL time.Duration

	// RedisURL is a redis:// connection URL (only used for redis)
	RedisURL string

	// KeyPrefix namespaces keys in a shared Redis database
	KeyPrefix string
}

// NewCacher creates a cache based on the configuration. A nil Cacher with a
// nil error means caching is disabled.
//
// Example:
//
//	c, err := NewCacher(CacheConfig{Type: CacheTypeMemory, TTL: time.Hour})
func NewCacher(cfg CacheConfig) (Cacher, error) {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	switch cfg.Type {
	case CacheTypeNone:
		return nil, nil
	case CacheTypeRedis:
		r, err := NewRedisFromURL(cfg.RedisURL, cfg.KeyPrefix, cfg.TTL)
		if err != nil {
			return nil, err
		}
		return r, nil
	case CacheTypeMemory, "":
		return New(cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

// Verify interface implementations at compile time
var (
	_ Cacher = (*Cache)(nil)
	_ Cacher = (*RedisCache)(nil)
)
