// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package api

import (
	"net/url"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/recommend"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 64 << 10

// RecommendationRequest is the query string or JSON body of a
// recommendation request. The bounds only reject abusive input; an unknown
// genre or an unresolvable title is not an error.
//
// Fields:
//   - Mood: free text describing how the user feels (max 500 characters)
//   - Genre: a genre label such as "Sci-Fi" (max 64 characters)
//   - Favorites: comma-separated movie titles (max 20 titles)
type RecommendationRequest struct {
	Mood      string `json:"mood" validate:"max=500"`
	Genre     string `json:"genre" validate:"max=64"`
	Favorites string `json:"favorites" validate:"max=2000,maxtitles=20"`
}

// recommendationRequestFromQuery reads a RecommendationRequest from the
// query string.
func recommendationRequestFromQuery(q url.Values) RecommendationRequest {
	return RecommendationRequest{
		Mood:      q.Get("mood"),
		Genre:     q.Get("genre"),
		Favorites: q.Get("favorites"),
	}
}

// engineRequest converts to the engine's request type.
func (r *RecommendationRequest) engineRequest() recommend.Request {
	return recommend.Request{
		Mood:      r.Mood,
		Genre:     r.Genre,
		Favorites: r.Favorites,
	}
}

// MoodRequest is the query string of GET /api/v1/mood.
type MoodRequest struct {
	Text string `json:"text" validate:"max=500"`
}
