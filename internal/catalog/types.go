// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package catalog

// ImageBaseURL is the TMDB image CDN prefix for w200 posters.
const ImageBaseURL = "https://image.tmdb.org/t/p/w200"

// Genre is a TMDB genre as returned in full movie records.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Keyword is a TMDB keyword tag.
type Keyword struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// KeywordList is the payload appended to movie details by
// append_to_response=keywords.
type KeywordList struct {
	Keywords []Keyword `json:"keywords"`
}

// Movie is a catalog movie record. Search, similar and discover results are
// shallow (GenreIDs only); details are full (Genres and Keywords populated).
type Movie struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	OriginalTitle string       `json:"original_title,omitempty"`
	Overview      string       `json:"overview"`
	Tagline       string       `json:"tagline,omitempty"`
	ReleaseDate   string       `json:"release_date,omitempty"`
	PosterPath    string       `json:"poster_path,omitempty"`
	Runtime       int          `json:"runtime,omitempty"`
	VoteAverage   float64      `json:"vote_average"`
	VoteCount     int64        `json:"vote_count"`
	Popularity    float64      `json:"popularity"`
	GenreIDs      []int        `json:"genre_ids,omitempty"`
	Genres        []Genre      `json:"genres,omitempty"`
	Keywords      *KeywordList `json:"keywords,omitempty"`
}

// Page models the TMDB paginated list response.
type Page struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Merge overlays detail onto m. Fields present (non-zero) in detail take
// precedence; fields absent from detail keep the value from m. The receiver's
// ID is authoritative.
//
//nolint:gocritic // Movie is merged by value
func (m Movie) Merge(detail Movie) Movie {
	out := m
	if out.ID == 0 {
		out.ID = detail.ID
	}
	if detail.Title != "" {
		out.Title = detail.Title
	}
	if detail.OriginalTitle != "" {
		out.OriginalTitle = detail.OriginalTitle
	}
	if detail.Overview != "" {
		out.Overview = detail.Overview
	}
	if detail.Tagline != "" {
		out.Tagline = detail.Tagline
	}
	if detail.ReleaseDate != "" {
		out.ReleaseDate = detail.ReleaseDate
	}
	if detail.PosterPath != "" {
		out.PosterPath = detail.PosterPath
	}
	if detail.Runtime != 0 {
		out.Runtime = detail.Runtime
	}
	if detail.VoteAverage != 0 {
		out.VoteAverage = detail.VoteAverage
	}
	if detail.VoteCount != 0 {
		out.VoteCount = detail.VoteCount
	}
	if detail.Popularity != 0 {
		out.Popularity = detail.Popularity
	}
	if len(detail.GenreIDs) > 0 {
		out.GenreIDs = detail.GenreIDs
	}
	if len(detail.Genres) > 0 {
		out.Genres = detail.Genres
	}
	if detail.Keywords != nil {
		out.Keywords = detail.Keywords
	}
	return out
}

// HasGenre reports whether id appears in either GenreIDs or Genres.
//
//nolint:gocritic // Movie is inspected by value
func (m Movie) HasGenre(id int) bool {
	for _, g := range m.GenreIDs {
		if g == id {
			return true
		}
	}
	for _, g := range m.Genres {
		if g.ID == id {
			return true
		}
	}
	return false
}

// KeywordNames returns the names of the attached keywords, if any.
//
//nolint:gocritic // Movie is inspected by value
func (m Movie) KeywordNames() []string {
	if m.Keywords == nil {
		return nil
	}
	names := make([]string, 0, len(m.Keywords.Keywords))
	for _, k := range m.Keywords.Keywords {
		names = append(names, k.Name)
	}
	return names
}

// PosterURL returns the w200 poster URL, or "" when the movie has no poster.
//
//nolint:gocritic // Movie is inspected by value
func (m Movie) PosterURL() string {
	if m.PosterPath == "" {
		return ""
	}
	return ImageBaseURL + m.PosterPath
}
