// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package catalog

import (
	"context"
	"errors"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
)

// SearchID returns the ID of the first search result for title.
// It reports false when nothing matched or the lookup failed.
func (c *Client) SearchID(ctx context.Context, title string) (int64, bool) {
	page, err := c.SearchMovies(ctx, title)
	if err != nil {
		c.logFailure(ctx, EndpointSearch, err)
		return 0, false
	}
	if len(page.Results) == 0 {
		return 0, false
	}
	return page.Results[0].ID, true
}

// FetchSimilar returns the similar-movies list for id, or nil on failure.
func (c *Client) FetchSimilar(ctx context.Context, id int64) []Movie {
	page, err := c.GetSimilar(ctx, id)
	if err != nil {
		c.logFailure(ctx, EndpointSimilar, err)
		return nil
	}
	return page.Results
}

// FetchDetails returns the full record for id. It reports false on failure.
func (c *Client) FetchDetails(ctx context.Context, id int64) (Movie, bool) {
	movie, err := c.GetMovieDetails(ctx, id)
	if err != nil {
		c.logFailure(ctx, EndpointDetails, err)
		return Movie{}, false
	}
	return *movie, true
}

// FetchPopular returns the popular-movies list, or nil on failure.
func (c *Client) FetchPopular(ctx context.Context) []Movie {
	page, err := c.GetPopular(ctx)
	if err != nil {
		c.logFailure(ctx, EndpointPopular, err)
		return nil
	}
	return page.Results
}

// FetchByGenre returns popular movies of genreID, or nil on failure.
func (c *Client) FetchByGenre(ctx context.Context, genreID int) []Movie {
	page, err := c.DiscoverByGenre(ctx, genreID)
	if err != nil {
		c.logFailure(ctx, EndpointDiscover, err)
		return nil
	}
	return page.Results
}

// logFailure records a degraded lookup. A missing key is already reported
// once at construction, so it is only logged at debug level here.
func (c *Client) logFailure(ctx context.Context, endpoint string, err error) {
	logger := logging.CtxWith(logging.ContextWithLogger(ctx, c.logger)).Str("endpoint", endpoint).Logger()

	switch {
	case errors.Is(err, ErrMissingAPIKey), errors.Is(err, ErrEmptyQuery), errors.Is(err, ErrInvalidID),
		errors.Is(err, context.Canceled):
		logger.Debug().Err(err).Msg("Catalog lookup skipped")
	case isBreakerRejection(err):
		logger.Debug().Err(err).Msg("Catalog lookup rejected while circuit is open")
	default:
		logger.Warn().Err(err).Msg("Catalog lookup failed; returning empty result")
	}
}
