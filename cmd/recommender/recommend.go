// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/api"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/recommend"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/validation"
)

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var req api.RecommendationRequest
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print recommendations for a mood, genre and favorite titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if verr := validation.ValidateStruct(&req); verr != nil {
				return verr
			}
			if req.Genre != "" {
				if _, ok := catalog.GenreID(req.Genre); !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "warn: unknown genre %q ignored (see 'recommender genres')\n", req.Genre)
				}
			}

			stack, err := newComponents(cfg)
			if err != nil {
				return err
			}
			defer stack.Close()

			resp := stack.engine.Recommend(cmd.Context(), recommend.Request{
				Mood:      req.Mood,
				Genre:     req.Genre,
				Favorites: req.Favorites,
			})
			if jsonOutput {
				return writeJSON(cmd, resp)
			}

			out := cmd.OutOrStdout()
			if !stack.catalog.HasAPIKey() {
				fmt.Fprintln(cmd.ErrOrStderr(), "warn: TMDB_API_KEY is not set; no catalog lookups were made")
			}
			fmt.Fprintf(out, "Mood: %s (%s)  Source: %s  Weights: %s  Candidates: %d\n",
				resp.Mood.Mood, resp.Mood.Signal(), resp.Metadata.Source, resp.Metadata.WeightProfile, resp.TotalCandidates)
			if len(resp.Items) == 0 {
				fmt.Fprintln(out, "No recommendations found.")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Title", "Released", "Rating", "Score"},
				recommendationRows(resp.Items),
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Mood, "mood", "m", "", "How you feel, in your own words")
	cmd.Flags().StringVarP(&req.Genre, "genre", "g", "", "Genre label (see 'recommender genres')")
	cmd.Flags().StringVarP(&req.Favorites, "favorites", "f", "", "Comma-separated favorite titles")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func recommendationRows(items []recommend.Recommendation) [][]string {
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		released := item.ReleaseDate
		if released == "" {
			released = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Title,
			released,
			strconv.FormatFloat(item.VoteAverage, 'f', 1, 64),
			strconv.FormatFloat(item.Score, 'f', 2, 64),
		})
	}
	return rows
}
