// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package recommend

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
)

// ParseFavorites splits a comma-separated list of titles, trimming each
// entry and dropping empty ones.
func ParseFavorites(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, ",")
	favorites := make([]string, 0, len(parts))
	for _, part := range parts {
		if title := strings.TrimSpace(part); title != "" {
			favorites = append(favorites, title)
		}
	}
	return favorites
}

// Aggregator builds the candidate pool for a request.
type Aggregator struct {
	catalog       Catalog
	maxCandidates int
	logger        zerolog.Logger
}

// NewAggregator creates an aggregator that caps pools at maxCandidates.
// A non-positive cap falls back to DefaultMaxCandidates.
func NewAggregator(c Catalog, maxCandidates int, logger zerolog.Logger) *Aggregator {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}
	return &Aggregator{
		catalog:       c,
		maxCandidates: maxCandidates,
		logger:        logger,
	}
}

// Aggregate collects movies similar to each favorite. When that yields
// nothing it falls back to genre discovery (genreID > 0) or the popular
// list. Favorites that do not resolve are skipped.
func (a *Aggregator) Aggregate(ctx context.Context, favorites []string, genreID int) (*Pool, Source) {
	pool := NewPool()
	logger := logging.CtxWith(logging.ContextWithLogger(ctx, a.logger)).Logger()

	for _, title := range favorites {
		if ctx.Err() != nil {
			break
		}
		id, ok := a.catalog.SearchID(ctx, title)
		if !ok {
			logger.Debug().Str("favorite", title).Msg("Favorite did not resolve; skipping")
			continue
		}
		added := pool.AddAll(a.catalog.FetchSimilar(ctx, id))
		logger.Debug().
			Str("favorite", title).
			Int64("movie_id", id).
			Int("added", added).
			Msg("Collected similar movies")
	}

	source := SourceFavorites
	if pool.Len() == 0 {
		if genreID > 0 {
			source = SourceGenre
			pool.AddAll(a.catalog.FetchByGenre(ctx, genreID))
		} else {
			source = SourcePopular
			pool.AddAll(a.catalog.FetchPopular(ctx))
		}
	}

	if pool.Len() == 0 {
		source = SourceNone
	}

	pool.Truncate(a.maxCandidates)
	return pool, source
}
