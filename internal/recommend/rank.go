// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package recommend

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
)

// Ranker enriches, scores and orders candidates.
type Ranker struct {
	catalog     Catalog
	scorer      *Scorer
	topN        int
	enrich      bool
	concurrency int
}

// NewRanker creates a ranker from the engine configuration. A nil catalog
// disables enrichment.
func NewRanker(c Catalog, cfg *Config) *Ranker {
	topN := cfg.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	concurrency := cfg.DetailConcurrency
	if concurrency <= 0 {
		concurrency = DefaultDetailConcurrency
	}
	return &Ranker{
		catalog:     c,
		scorer:      NewScorer(cfg.EffectiveWeights()),
		topN:        topN,
		enrich:      cfg.EnrichDetails && c != nil,
		concurrency: concurrency,
	}
}

// Rank scores every movie and returns at most topN of them sorted by
// descending score. Equal scores keep their input order.
func (r *Ranker) Rank(ctx context.Context, movies []catalog.Movie, moodKeywords []string, genreID int) []ScoredMovie {
	if len(movies) == 0 {
		return nil
	}
	if r.enrich {
		movies = r.enrichAll(ctx, movies)
	}

	scored := make([]ScoredMovie, len(movies))
	for i := range movies {
		scored[i] = r.scorer.Score(movies[i], moodKeywords, genreID)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > r.topN {
		scored = scored[:r.topN]
	}
	return scored
}

// enrichAll merges each movie with its details. Results keep the input order;
// a failed lookup keeps the shallow record.
func (r *Ranker) enrichAll(ctx context.Context, movies []catalog.Movie) []catalog.Movie {
	enriched := make([]catalog.Movie, len(movies))
	copy(enriched, movies)

	if r.concurrency == 1 {
		for i := range enriched {
			if ctx.Err() != nil {
				break
			}
			r.enrichOne(ctx, enriched, i)
		}
		return enriched
	}

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i := range enriched {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			r.enrichOne(ctx, enriched, i)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // workers never return errors

	return enriched
}

func (r *Ranker) enrichOne(ctx context.Context, movies []catalog.Movie, i int) {
	if details, ok := r.catalog.FetchDetails(ctx, movies[i].ID); ok {
		movies[i] = movies[i].Merge(details)
	}
}
