// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package recommend

import (
	"context"
	"time"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/mood"
)

// Catalog is the degrading movie catalog the engine reads from. Every method
// returns an empty value on failure instead of an error.
// catalog.Client implements it.
type Catalog interface {
	SearchID(ctx context.Context, title string) (int64, bool)
	FetchSimilar(ctx context.Context, id int64) []catalog.Movie
	FetchDetails(ctx context.Context, id int64) (catalog.Movie, bool)
	FetchPopular(ctx context.Context) []catalog.Movie
	FetchByGenre(ctx context.Context, genreID int) []catalog.Movie
}

// MoodClassifier reduces free text to a mood. mood.Classifier implements it.
type MoodClassifier interface {
	Classify(text string) mood.Result
}

// Source names where the candidate pool came from.
type Source string

// Candidate sources.
const (
	SourceFavorites Source = "favorites"
	SourceGenre     Source = "genre"
	SourcePopular   Source = "popular"
	SourceNone      Source = "none"
)

// Request is a single recommendation request.
type Request struct {
	// Mood is free text describing how the user feels.
	Mood string `json:"mood"`

	// Genre is a genre label. Unknown labels mean no genre filter.
	Genre string `json:"genre"`

	// Favorites is a comma-separated list of movie titles.
	Favorites string `json:"favorites"`
}

// Breakdown splits a score into its terms.
type Breakdown struct {
	Rating      float64 `json:"rating"`
	Popularity  float64 `json:"popularity"`
	Mood        float64 `json:"mood"`
	Genre       float64 `json:"genre"`
	MoodMatches int     `json:"mood_matches"`
	GenreMatch  bool    `json:"genre_match"`
}

// ScoredMovie is a candidate with its hybrid score.
type ScoredMovie struct {
	Movie     catalog.Movie
	Score     float64
	Breakdown Breakdown
}

// Recommendation is one ranked movie as presented to callers.
type Recommendation struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Overview    string     `json:"overview,omitempty"`
	PosterURL   string     `json:"poster_url,omitempty"`
	ReleaseDate string     `json:"release_date,omitempty"`
	VoteAverage float64    `json:"vote_average"`
	Popularity  float64    `json:"popularity"`
	Score       float64    `json:"score"`
	Breakdown   *Breakdown `json:"breakdown,omitempty"`
}

// GenreSelection is the resolved genre filter of a request.
type GenreSelection struct {
	Label string `json:"label,omitempty"`
	ID    int    `json:"id,omitempty"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID     string    `json:"request_id"`
	Source        Source    `json:"source"`
	WeightProfile string    `json:"weight_profile"`
	LatencyMS     int64     `json:"latency_ms"`
	Timestamp     time.Time `json:"timestamp"`
}

// Response is the full result of a recommendation request.
type Response struct {
	Items           []Recommendation `json:"items"`
	Mood            mood.Result      `json:"mood"`
	Genre           GenreSelection   `json:"genre"`
	Favorites       []string         `json:"favorites"`
	TotalCandidates int              `json:"total_candidates"`
	Metadata        ResponseMetadata `json:"metadata"`
}

// toRecommendation maps a scored candidate to its presented form. The title
// falls back to the original title so it is never empty when either is known.
func toRecommendation(s *ScoredMovie) Recommendation {
	title := s.Movie.Title
	if title == "" {
		title = s.Movie.OriginalTitle
	}
	breakdown := s.Breakdown
	return Recommendation{
		ID:          s.Movie.ID,
		Title:       title,
		Overview:    s.Movie.Overview,
		PosterURL:   s.Movie.PosterURL(),
		ReleaseDate: s.Movie.ReleaseDate,
		VoteAverage: s.Movie.VoteAverage,
		Popularity:  s.Movie.Popularity,
		Score:       s.Score,
		Breakdown:   &breakdown,
	}
}
