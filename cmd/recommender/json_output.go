// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package main

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
