// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package main

import (
	"fmt"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/cache"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/config"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/mood"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/recommend"
)

// components is the recommendation stack shared by serve and recommend.
type components struct {
	cache      cache.Cacher
	catalog    *catalog.Client
	classifier *mood.Classifier
	engine     *recommend.Engine
}

// newComponents wires cache, catalog client, classifier and engine from cfg.
// The caller must Close the result.
func newComponents(cfg *config.Config) (*components, error) {
	settings := cfg.CacheSettings()
	cacher, err := cache.NewCacher(settings)
	if err != nil {
		return nil, fmt.Errorf("create %s cache: %w", settings.Type, err)
	}

	opts := []catalog.Option{catalog.WithLogger(logging.WithComponent("catalog"))}
	if cacher != nil {
		opts = append(opts, catalog.WithCache(cacher, string(settings.Type)))
	}
	client := catalog.New(cfg.CatalogClientConfig(), opts...)

	classifier := mood.NewClassifier(cfg.ClassifierOptions()...)

	engine, err := recommend.NewEngine(cfg.EngineConfig(), client, classifier, logging.WithComponent("recommend"))
	if err != nil {
		if cacher != nil {
			_ = cacher.Close()
		}
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	return &components{
		cache:      cacher,
		catalog:    client,
		classifier: classifier,
		engine:     engine,
	}, nil
}

// Close releases the cache.
func (c *components) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Close()
}
