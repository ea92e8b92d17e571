// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
)

// WarmupCatalog is the part of catalog.Client the warm-up service uses.
type WarmupCatalog interface {
	HasAPIKey() bool
	FetchPopular(ctx context.Context) []catalog.Movie
	FetchByGenre(ctx context.Context, genreID int) []catalog.Movie
}

// WarmupConfig holds configuration for the warm-up service.
type WarmupConfig struct {
	// Interval between warm-up rounds. Zero warms once at startup.
	// It should not exceed the cache TTL.
	Interval time.Duration

	// Timeout bounds one round. Default: 2m
	Timeout time.Duration

	// GenreIDs to prefetch. Default: every supported genre.
	GenreIDs []int
}

// CatalogWarmupService prefetches the fallback candidate lists (popular
// movies and per-genre discovery) so they are cached before the first
// request that has no resolvable favorites.
type CatalogWarmupService struct {
	catalog WarmupCatalog
	config  WarmupConfig
	logger  zerolog.Logger
	name    string
}

// NewCatalogWarmupService creates a new warm-up service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogWarmupService(c WarmupCatalog, cfg WarmupConfig, logger zerolog.Logger) *CatalogWarmupService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	if len(cfg.GenreIDs) == 0 {
		for _, g := range catalog.GenreOptions() {
			cfg.GenreIDs = append(cfg.GenreIDs, g.ID)
		}
	}
	return &CatalogWarmupService{
		catalog: c,
		config:  cfg,
		logger:  logger.With().Str("service", "catalog-warmup").Logger(),
		name:    "catalog-warmup",
	}
}

// Serve implements suture.Service. Without an API key there is nothing to
// warm and the service asks not to be restarted.
func (s *CatalogWarmupService) Serve(ctx context.Context) error {
	if !s.catalog.HasAPIKey() {
		s.logger.Info().Msg("catalog warm-up skipped: no API key")
		return suture.ErrDoNotRestart
	}

	s.logger.Info().
		Dur("interval", s.config.Interval).
		Int("genres", len(s.config.GenreIDs)).
		Msg("catalog warm-up service starting")

	s.warm(ctx)

	if s.config.Interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog warm-up service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.warm(ctx)
		}
	}
}

// warm runs one warm-up round. Every list is fetched upstream and rewritten
// to the cache, so entries cached by an earlier round get a fresh TTL
// instead of expiring between rounds. Catalog lookups degrade to empty
// results, so a round never fails; empty lists are only counted.
func (s *CatalogWarmupService) warm(ctx context.Context) {
	roundCtx, cancel := context.WithTimeout(catalog.ContextWithRefresh(ctx), s.config.Timeout)
	defer cancel()

	start := time.Now()
	movies := len(s.catalog.FetchPopular(roundCtx))
	empty := 0
	if movies == 0 {
		empty++
	}

	for _, id := range s.config.GenreIDs {
		if roundCtx.Err() != nil {
			break
		}
		n := len(s.catalog.FetchByGenre(roundCtx, id))
		if n == 0 {
			empty++
		}
		movies += n
	}

	s.logger.Info().
		Int("movies", movies).
		Int("empty_lists", empty).
		Dur("duration", time.Since(start)).
		Msg("catalog warm-up complete")
}

// String returns the service name for logging.
func (s *CatalogWarmupService) String() string {
	return s.name
}
