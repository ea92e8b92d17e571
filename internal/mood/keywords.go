// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package mood

import "strings"

// KeywordEntry associates a mood with the words that signal it.
type KeywordEntry struct {
	Mood  Mood
	Words []string
}

// matches reports whether any word occurs as a substring of lowered.
func (e KeywordEntry) matches(lowered string) bool {
	for _, w := range e.Words {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}

// keywordTable is ordered; the order decides which entries the keyword pass sees.
var keywordTable = []KeywordEntry{
	{Mood: Happy, Words: []string{"happy", "joyful", "excited", "energetic", "upbeat", "ecstatic"}},
	{Mood: Sad, Words: []string{"sad", "down", "depressed", "heartbroken", "upset"}},
	{Mood: Angry, Words: []string{"angry", "furious", "mad", "annoyed", "irritated"}},
	{Mood: Relaxed, Words: []string{"calm", "chill", "relaxed", "peaceful", "serene"}},
	{Mood: Bored, Words: []string{"bored", "tired", "uninterested", "dull"}},
	{Mood: Romantic, Words: []string{"romantic", "love", "affectionate", "loving"}},
	{Mood: Scared, Words: []string{"scared", "afraid", "anxious", "nervous"}},
	{Mood: Adventurous, Words: []string{"adventurous", "excited", "bold", "daring"}},
}

// KeywordTable returns a copy of the ordered mood keyword table.
func KeywordTable() []KeywordEntry {
	out := make([]KeywordEntry, len(keywordTable))
	for i, e := range keywordTable {
		out[i] = KeywordEntry{Mood: e.Mood, Words: append([]string(nil), e.Words...)}
	}
	return out
}
