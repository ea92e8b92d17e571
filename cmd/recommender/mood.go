// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/api"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/mood"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/recommend"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/validation"
)

func newMoodCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "mood <text>",
		Short: "Classify a free-text mood",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			req := api.MoodRequest{Text: strings.Join(args, " ")}
			if verr := validation.ValidateStruct(&req); verr != nil {
				return verr
			}

			result := mood.NewClassifier(cfg.ClassifierOptions()...).Classify(req.Text)
			out := api.MoodResponse{
				Result:       result,
				Signal:       result.Signal(),
				FilmKeywords: recommend.FilmKeywords(result.Mood),
			}
			if jsonOutput {
				return writeJSON(cmd, out)
			}

			rows := [][]string{
				{"Mood", string(out.Mood)},
				{"Compound", fmt.Sprintf("%.4f", out.Score)},
				{"Decided by", out.Signal},
				{"Film keywords", strings.Join(out.FilmKeywords, ", ")},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
