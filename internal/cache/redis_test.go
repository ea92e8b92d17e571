// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package cache

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// unreachableRedis points at a port nothing listens on so every call fails fast.
func unreachableRedis(t *testing.T) *RedisCache {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	r := NewRedis(client, "", time.Minute)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRedisCache_DegradesToMiss(t *testing.T) {
	t.Parallel()

	r := unreachableRedis(t)

	r.Set("key", []byte("value"))
	if _, ok := r.Get("key"); ok {
		t.Fatal("Expected miss when Redis is unreachable")
	}

	stats := r.GetStats()
	if stats.Misses != 1 || stats.Hits != 0 {
		t.Errorf("Expected 1 miss and 0 hits, got %+v", stats)
	}
	if r.HitRate() != 0 {
		t.Errorf("Expected 0 hit rate, got %f", r.HitRate())
	}
}

func TestRedisCache_Defaults(t *testing.T) {
	t.Parallel()

	r := NewRedis(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), "", 0)
	defer r.Close()

	if r.prefix != DefaultKeyPrefix {
		t.Errorf("prefix = %q, want %q", r.prefix, DefaultKeyPrefix)
	}
	if r.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", r.ttl, DefaultTTL)
	}
}

func TestNewRedisFromURL_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := NewRedisFromURL("http://not-redis", "", time.Minute); err == nil {
		t.Error("Expected error for non-redis URL scheme")
	}
}
