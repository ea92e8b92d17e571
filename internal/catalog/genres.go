// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package catalog

// GenreOption pairs a user-facing genre label with its TMDB genre ID.
type GenreOption struct {
	Label string `json:"label"`
	ID    int    `json:"id"`
}

// genreTable is in display order.
var genreTable = []GenreOption{
	{Label: "Action", ID: 28},
	{Label: "Comedy", ID: 35},
	{Label: "Drama", ID: 18},
	{Label: "Romance", ID: 10749},
	{Label: "Horror", ID: 27},
	{Label: "Thriller", ID: 53},
	{Label: "Sci-Fi", ID: 878},
	{Label: "Animation", ID: 16},
}

// GenreID resolves a genre label by exact match. Unknown labels report false,
// which callers treat as "no genre filter".
func GenreID(label string) (int, bool) {
	for _, g := range genreTable {
		if g.Label == label {
			return g.ID, true
		}
	}
	return 0, false
}

// GenreOptions returns a copy of the supported genres in display order.
func GenreOptions() []GenreOption {
	out := make([]GenreOption, len(genreTable))
	copy(out, genreTable)
	return out
}

// GenreLabels returns the supported genre labels in display order.
func GenreLabels() []string {
	labels := make([]string, len(genreTable))
	for i, g := range genreTable {
		labels[i] = g.Label
	}
	return labels
}
