// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

// Package mood turns free-text mood descriptions into a discrete mood label.
//
// Classification runs two independent passes over the lower-cased text: a
// keyword pass against an ordered table of mood words, and a VADER sentiment
// pass that yields a compound polarity score in [-1, 1]. A keyword match wins;
// otherwise the compound score decides between happy, sad and neutral.
//
// The keyword pass consults only the first table entry (happy) unless full
// scanning is enabled with WithFullKeywordScan. Moods such as "angry" are
// therefore reachable only through full scanning.
package mood

// Mood is a discrete mood label.
type Mood string

// The closed set of moods.
const (
	Happy       Mood = "happy"
	Sad         Mood = "sad"
	Angry       Mood = "angry"
	Relaxed     Mood = "relaxed"
	Bored       Mood = "bored"
	Romantic    Mood = "romantic"
	Scared      Mood = "scared"
	Adventurous Mood = "adventurous"
	Neutral     Mood = "neutral"
)

// All returns every mood label, neutral last.
func All() []Mood {
	return []Mood{Happy, Sad, Angry, Relaxed, Bored, Romantic, Scared, Adventurous, Neutral}
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	for _, known := range All() {
		if m == known {
			return true
		}
	}
	return false
}

func (m Mood) String() string {
	return string(m)
}
