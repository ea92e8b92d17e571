// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package recommend

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
)

// Scorer computes the hybrid score of a candidate.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the given weights.
//
//nolint:gocritic // Weights is a small value type
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Weights returns the weights in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score returns the hybrid score of m for the given mood keywords and genre.
// genreID <= 0 means no genre filter.
//
//nolint:gocritic // Movie is passed by value to match catalog lookups
func (s *Scorer) Score(m catalog.Movie, moodKeywords []string, genreID int) ScoredMovie {
	matches := countMoodMatches(&m, moodKeywords)
	genreMatch := genreID > 0 && m.HasGenre(genreID)

	b := Breakdown{
		Rating:      m.VoteAverage * s.weights.Rating,
		Popularity:  m.Popularity * s.weights.Popularity,
		Mood:        float64(matches) * s.weights.MoodPerMatch,
		MoodMatches: matches,
		GenreMatch:  genreMatch,
	}
	if genreMatch {
		b.Genre = s.weights.GenreMatch
	}

	return ScoredMovie{
		Movie:     m,
		Score:     b.Rating + b.Popularity + b.Mood + b.Genre,
		Breakdown: b,
	}
}

// countMoodMatches counts the keywords contained, case-insensitively, in the
// movie's title, overview and keyword tag names.
func countMoodMatches(m *catalog.Movie, keywords []string) int {
	if len(keywords) == 0 {
		return 0
	}

	fields := make([]string, 0, 2)
	if m.Title != "" {
		fields = append(fields, m.Title)
	}
	if m.Overview != "" {
		fields = append(fields, m.Overview)
	}
	fields = append(fields, m.KeywordNames()...)

	fold := cases.Fold()
	haystack := fold.String(strings.Join(fields, " "))

	matches := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, fold.String(kw)) {
			matches++
		}
	}
	return matches
}
