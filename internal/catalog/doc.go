// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

// Package catalog is the client for the external movie catalog (TMDB v3).
//
// The client has two layers. The lower layer (SearchMovies, GetSimilar,
// GetMovieDetails, GetPopular, DiscoverByGenre) returns decoded payloads and
// wrapped errors. The lookup layer (SearchID, FetchSimilar, FetchDetails,
// FetchPopular, FetchByGenre) is what the recommender consumes: it never
// returns an error and degrades every failure to an empty result.
//
// Every request passes through the same pipeline:
//
//	api key check -> response cache -> rate limiter -> circuit breaker -> HTTP GET
//
// Successful response bodies are cached by request URL (default TTL 1h), so
// identical lookups within the TTL perform no network I/O. HTTP 429 responses
// are retried with exponential backoff honoring Retry-After.
//
// # Genres
//
// The recommender exposes a fixed set of genre labels mapped to TMDB genre
// IDs. GenreID resolves a label by exact match; anything else means no genre
// filter.
package catalog
