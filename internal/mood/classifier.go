// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package mood

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/metrics"
)

// Default compound-score thresholds.
const (
	DefaultHappyThreshold = 0.4
	DefaultSadThreshold   = -0.4
)

// Signals that can decide a classification.
const (
	SignalEmpty     = "empty"
	SignalKeyword   = "keyword"
	SignalSentiment = "sentiment"
)

// Result is the outcome of classifying one mood text.
type Result struct {
	Mood           Mood      `json:"mood"`
	Score          float64   `json:"score"`
	Raw            Sentiment `json:"raw"`
	KeywordMatched bool      `json:"keyword_matched"`
}

// Signal names the pass that decided r.
//
//nolint:gocritic // Result is a small value type
func (r Result) Signal() string {
	switch {
	case r.KeywordMatched:
		return SignalKeyword
	case r.Raw == (Sentiment{}) && r.Score == 0 && r.Mood == Neutral:
		return SignalEmpty
	default:
		return SignalSentiment
	}
}

// Classifier maps free text to a mood.
type Classifier struct {
	analyzer       Analyzer
	table          []KeywordEntry
	happyThreshold float64
	sadThreshold   float64
	fullScan       bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithAnalyzer overrides the sentiment analyzer (default: the shared VADER analyzer).
func WithAnalyzer(a Analyzer) Option {
	return func(c *Classifier) {
		if a != nil {
			c.analyzer = a
		}
	}
}

// WithThresholds overrides the compound-score thresholds for happy and sad.
func WithThresholds(happy, sad float64) Option {
	return func(c *Classifier) {
		c.happyThreshold = happy
		c.sadThreshold = sad
	}
}

// WithFullKeywordScan makes the keyword pass consider every table entry in
// order instead of only the first.
func WithFullKeywordScan(enabled bool) Option {
	return func(c *Classifier) {
		c.fullScan = enabled
	}
}

// NewClassifier creates a classifier. The VADER analyzer is not loaded until
// the first non-empty text is classified.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		table:          keywordTable,
		happyThreshold: DefaultHappyThreshold,
		sadThreshold:   DefaultSadThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the mood of text. Empty or whitespace-only text is
// neutral with score 0 and no sentiment analysis is run.
func (c *Classifier) Classify(text string) Result {
	if strings.TrimSpace(text) == "" {
		result := Result{Mood: Neutral}
		metrics.RecordMoodClassification(string(result.Mood), SignalEmpty)
		return result
	}

	lowered := cases.Lower(language.Und).String(text)

	keywordMood, matched := c.matchKeywords(lowered)

	analyzer := c.analyzer
	if analyzer == nil {
		analyzer = DefaultAnalyzer()
	}
	raw := analyzer.PolarityScores(lowered)

	result := Result{
		Mood:           c.resolve(keywordMood, matched, raw.Compound),
		Score:          raw.Compound,
		Raw:            raw,
		KeywordMatched: matched,
	}
	metrics.RecordMoodClassification(string(result.Mood), result.Signal())
	return result
}

// matchKeywords runs the keyword pass. Without full scanning only the
// leading table entry is consulted, so a miss there yields no keyword mood
// even when a later entry would match.
func (c *Classifier) matchKeywords(lowered string) (Mood, bool) {
	if len(c.table) == 0 {
		return "", false
	}
	if !c.fullScan {
		first := c.table[0]
		if first.matches(lowered) {
			return first.Mood, true
		}
		return "", false
	}
	for _, entry := range c.table {
		if entry.matches(lowered) {
			return entry.Mood, true
		}
	}
	return "", false
}

func (c *Classifier) resolve(keywordMood Mood, matched bool, compound float64) Mood {
	switch {
	case matched:
		return keywordMood
	case compound >= c.happyThreshold:
		return Happy
	case compound <= c.sadThreshold:
		return Sad
	default:
		return Neutral
	}
}
