// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

// Package recommend turns a mood, an optional genre and a list of favorite
// titles into a ranked list of movies.
//
// # Pipeline
//
// A request flows through four stages:
//
//  1. Mood classification (package mood) reduces free text to a Mood.
//  2. The genre label is resolved against the fixed catalog genre table.
//  3. The Aggregator builds a candidate Pool from movies similar to the
//     favorites, falling back to genre discovery or the popular list.
//  4. The Ranker enriches each candidate with its catalog details, scores it
//     with a hybrid formula and keeps the best TopN.
//
// # Scoring
//
// The score is additive and never excludes a candidate:
//
//	score = vote_average*Rating + popularity*Popularity
//	      + moodMatches*MoodPerMatch + GenreMatch (when the genre matches)
//
// Weights come from named profiles ("classic", "balanced") or explicit
// configuration overrides.
//
// # Failure Semantics
//
// Engine.GetRecommendations and Engine.Recommend never return errors. Catalog
// failures, a missing API key and empty inputs degrade to the best partial
// result, ultimately an empty list. A panic inside the pipeline is recovered
// and logged.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cfg, catalogClient, classifier, logger)
//	if err != nil {
//		return err
//	}
//	items := engine.GetRecommendations(ctx, "I feel adventurous", "Sci-Fi", "Inception, Interstellar")
package recommend
