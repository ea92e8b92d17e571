// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
)

func newGenresCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List the genres accepted by --genre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := catalog.GenreOptions()
			if jsonOutput {
				return writeJSON(cmd, options)
			}

			rows := make([][]string, 0, len(options))
			for _, g := range options {
				rows = append(rows, []string{g.Label, strconv.Itoa(g.ID)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Genre", "TMDB ID"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
