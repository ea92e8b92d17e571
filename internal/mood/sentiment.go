// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package mood

import (
	"sync"

	"github.com/jonreiter/govader"
)

// Sentiment is the full VADER polarity breakdown.
type Sentiment struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// Analyzer scores the sentiment of a text.
type Analyzer interface {
	PolarityScores(text string) Sentiment
}

// AnalyzerFunc adapts a function to the Analyzer interface.
type AnalyzerFunc func(text string) Sentiment

// PolarityScores calls f(text).
func (f AnalyzerFunc) PolarityScores(text string) Sentiment {
	return f(text)
}

// vaderAnalyzer adapts govader to Analyzer.
type vaderAnalyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func (v *vaderAnalyzer) PolarityScores(text string) Sentiment {
	s := v.sia.PolarityScores(text)
	return Sentiment{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}
}

// DefaultAnalyzer returns the process-wide VADER analyzer. The lexicon is
// loaded on first use and shared by every classifier afterwards.
var DefaultAnalyzer = sync.OnceValue(func() Analyzer {
	return &vaderAnalyzer{sia: govader.NewSentimentIntensityAnalyzer()}
})
