// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package recommend

import (
	"fmt"
	"sort"
	"time"
)

// Weight profile names.
const (
	ProfileClassic  = "classic"
	ProfileBalanced = "balanced"
)

// Default operational limits.
const (
	DefaultMaxCandidates     = 150
	DefaultTopN              = 15
	DefaultDetailConcurrency = 1
	DefaultRequestTimeout    = 60 * time.Second
)

// Weights are the coefficients of the hybrid score.
type Weights struct {
	Rating       float64 `json:"rating"`
	Popularity   float64 `json:"popularity"`
	MoodPerMatch float64 `json:"mood_per_match"`
	GenreMatch   float64 `json:"genre_match"`
}

// IsZero reports whether no weight is set.
func (w Weights) IsZero() bool {
	return w == Weights{}
}

var weightProfiles = map[string]Weights{
	ProfileClassic:  {Rating: 1.0, Popularity: 5.0, MoodPerMatch: 10.0, GenreMatch: 8.0},
	ProfileBalanced: {Rating: 1.5, Popularity: 0.05, MoodPerMatch: 14.0, GenreMatch: 10.0},
}

// ProfileWeights returns the weights of a named profile.
func ProfileWeights(name string) (Weights, bool) {
	w, ok := weightProfiles[name]
	return w, ok
}

// ProfileNames returns the known profile names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(weightProfiles))
	for name := range weightProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Config contains the configuration for the recommendation engine.
type Config struct {
	// WeightProfile selects a named weight set.
	WeightProfile string `json:"weight_profile"`

	// Weights overrides the profile when any field is non-zero.
	Weights Weights `json:"weights"`

	// MaxCandidates caps the candidate pool before enrichment.
	MaxCandidates int `json:"max_candidates"`

	// TopN is the number of recommendations returned.
	TopN int `json:"top_n"`

	// EnrichDetails fetches full details for each candidate before scoring.
	EnrichDetails bool `json:"enrich_details"`

	// DetailConcurrency bounds parallel detail fetches. 1 is sequential.
	DetailConcurrency int `json:"detail_concurrency"`

	// RequestTimeout bounds one whole recommendation request. Zero disables it.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		WeightProfile:     ProfileClassic,
		MaxCandidates:     DefaultMaxCandidates,
		TopN:              DefaultTopN,
		EnrichDetails:     true,
		DetailConcurrency: DefaultDetailConcurrency,
		RequestTimeout:    DefaultRequestTimeout,
	}
}

// EffectiveWeights returns the explicit weights when set, otherwise the
// weights of the selected profile.
func (c *Config) EffectiveWeights() Weights {
	if !c.Weights.IsZero() {
		return c.Weights
	}
	if w, ok := ProfileWeights(c.WeightProfile); ok {
		return w
	}
	return weightProfiles[ProfileClassic]
}

// ProfileLabel names the weights in effect for reporting.
func (c *Config) ProfileLabel() string {
	if !c.Weights.IsZero() {
		return "custom"
	}
	return c.WeightProfile
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.IsZero() {
		if _, ok := ProfileWeights(c.WeightProfile); !ok {
			return fmt.Errorf("weight_profile %q is unknown (known: %v)", c.WeightProfile, ProfileNames())
		}
	}
	if c.Weights.Rating < 0 || c.Weights.Popularity < 0 || c.Weights.MoodPerMatch < 0 || c.Weights.GenreMatch < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", c.Weights)
	}
	if c.MaxCandidates < 1 {
		return fmt.Errorf("max_candidates must be positive, got %d", c.MaxCandidates)
	}
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.DetailConcurrency < 1 {
		return fmt.Errorf("detail_concurrency must be positive, got %d", c.DetailConcurrency)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative, got %v", c.RequestTimeout)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
