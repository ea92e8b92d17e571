// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package recommend

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/metrics"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/mood"
)

// Engine coordinates mood classification, candidate aggregation and ranking.
// It is safe for concurrent use.
type Engine struct {
	config     *Config
	logger     zerolog.Logger
	classifier MoodClassifier
	aggregator *Aggregator
	ranker     *Ranker
}

// NewEngine creates a recommendation engine.
// A nil config uses DefaultConfig and a nil classifier uses mood.NewClassifier().
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(cfg *Config, c Catalog, classifier MoodClassifier, logger zerolog.Logger) (*Engine, error) {
	if c == nil {
		return nil, errors.New("recommend: catalog is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if classifier == nil {
		classifier = mood.NewClassifier()
	}

	cfg = cfg.Clone()
	logger = logger.With().Str("component", "recommend").Logger()

	return &Engine{
		config:     cfg,
		logger:     logger,
		classifier: classifier,
		aggregator: NewAggregator(c, cfg.MaxCandidates, logger),
		ranker:     NewRanker(c, cfg),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// GetRecommendations returns ranked movies for the given inputs. It never
// fails: any problem yields a shorter or empty list.
func (e *Engine) GetRecommendations(ctx context.Context, moodText, genreLabel, favoritesText string) []Recommendation {
	resp := e.Recommend(ctx, Request{Mood: moodText, Genre: genreLabel, Favorites: favoritesText})
	return resp.Items
}

// Recommend runs the full pipeline and describes how the result was built.
// The returned response is never nil and Items is never nil.
func (e *Engine) Recommend(ctx context.Context, req Request) (resp *Response) {
	start := time.Now()
	ctx, requestID := logging.EnsureRequestID(ctx)
	logger := e.logger.With().Str("request_id", requestID).Logger()

	resp = &Response{
		Items:     []Recommendation{},
		Mood:      mood.Result{Mood: mood.Neutral},
		Favorites: []string{},
		Metadata: ResponseMetadata{
			RequestID:     requestID,
			Source:        SourceNone,
			WeightProfile: e.config.ProfileLabel(),
			Timestamp:     start.UTC(),
		},
	}

	defer func() {
		if r := recover(); r != nil {
			metrics.RecommendPanics.Inc()
			logger.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("Recovered panic in recommendation pipeline")
			resp.Items = []Recommendation{}
			resp.Metadata.Source = SourceNone
		}
		resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
		metrics.RecordRecommendation(string(resp.Metadata.Source), resp.TotalCandidates, len(resp.Items), time.Since(start))
	}()

	if e.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.RequestTimeout)
		defer cancel()
	}

	resp.Mood = e.classifier.Classify(req.Mood)
	keywords := FilmKeywords(resp.Mood.Mood)

	if id, ok := catalog.GenreID(req.Genre); ok {
		resp.Genre = GenreSelection{Label: req.Genre, ID: id}
	}

	if favorites := ParseFavorites(req.Favorites); len(favorites) > 0 {
		resp.Favorites = favorites
	}

	pool, source := e.aggregator.Aggregate(ctx, resp.Favorites, resp.Genre.ID)
	resp.TotalCandidates = pool.Len()
	resp.Metadata.Source = source

	ranked := e.ranker.Rank(ctx, pool.Movies(), keywords, resp.Genre.ID)
	items := make([]Recommendation, 0, len(ranked))
	for i := range ranked {
		items = append(items, toRecommendation(&ranked[i]))
	}
	resp.Items = items

	logger.Info().
		Str("mood", string(resp.Mood.Mood)).
		Bool("keyword_matched", resp.Mood.KeywordMatched).
		Str("genre", resp.Genre.Label).
		Int("favorites", len(resp.Favorites)).
		Str("source", string(source)).
		Int("candidates", resp.TotalCandidates).
		Int("results", len(items)).
		Dur("latency", time.Since(start)).
		Msg("Recommendations generated")

	return resp
}
