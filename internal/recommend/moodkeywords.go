// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package recommend

import "github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/mood"

// filmKeywords maps each mood to the terms looked for in a movie's title,
// overview and keyword tags.
var filmKeywords = map[mood.Mood][]string{
	mood.Happy:       {"feel good", "comedy", "fun", "inspiration"},
	mood.Sad:         {"sad", "loss", "tragedy", "drama"},
	mood.Angry:       {"revenge", "crime", "violence"},
	mood.Relaxed:     {"calm", "romance", "easy"},
	mood.Bored:       {"action", "fast", "thriller"},
	mood.Romantic:    {"love", "romance"},
	mood.Scared:      {"horror", "fear", "supernatural"},
	mood.Adventurous: {"adventure", "journey", "explore"},
	mood.Neutral:     {"drama", "mystery", "fantasy"},
}

// FilmKeywords returns the film keywords for m. Unknown moods use the
// neutral set. The returned slice is a copy.
func FilmKeywords(m mood.Mood) []string {
	words, ok := filmKeywords[m]
	if !ok {
		words = filmKeywords[mood.Neutral]
	}
	return append([]string(nil), words...)
}
