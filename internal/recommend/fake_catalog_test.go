// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package recommend

import (
	"context"
	"sync"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/mood"
)

// fakeCatalog implements Catalog from in-memory tables.
type fakeCatalog struct {
	ids     map[string]int64
	similar map[int64][]catalog.Movie
	details map[int64]catalog.Movie
	popular []catalog.Movie
	byGenre map[int][]catalog.Movie

	// panicOn makes SearchID panic for this title.
	panicOn string

	mu    sync.Mutex
	calls map[string]int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		ids:     make(map[string]int64),
		similar: make(map[int64][]catalog.Movie),
		details: make(map[int64]catalog.Movie),
		byGenre: make(map[int][]catalog.Movie),
		calls:   make(map[string]int),
	}
}

func (f *fakeCatalog) record(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeCatalog) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeCatalog) SearchID(_ context.Context, title string) (int64, bool) {
	f.record("search")
	if f.panicOn != "" && title == f.panicOn {
		panic("boom")
	}
	id, ok := f.ids[title]
	return id, ok
}

func (f *fakeCatalog) FetchSimilar(_ context.Context, id int64) []catalog.Movie {
	f.record("similar")
	return f.similar[id]
}

func (f *fakeCatalog) FetchDetails(_ context.Context, id int64) (catalog.Movie, bool) {
	f.record("details")
	m, ok := f.details[id]
	return m, ok
}

func (f *fakeCatalog) FetchPopular(_ context.Context) []catalog.Movie {
	f.record("popular")
	return f.popular
}

func (f *fakeCatalog) FetchByGenre(_ context.Context, genreID int) []catalog.Movie {
	f.record("genre")
	return f.byGenre[genreID]
}

// emptyCatalog behaves like a catalog without an API key.
type emptyCatalog struct{}

func (emptyCatalog) SearchID(context.Context, string) (int64, bool)       { return 0, false }
func (emptyCatalog) FetchSimilar(context.Context, int64) []catalog.Movie { return nil }
func (emptyCatalog) FetchDetails(context.Context, int64) (catalog.Movie, bool) {
	return catalog.Movie{}, false
}
func (emptyCatalog) FetchPopular(context.Context) []catalog.Movie      { return nil }
func (emptyCatalog) FetchByGenre(context.Context, int) []catalog.Movie { return nil }

// stubClassifier returns a fixed mood.
type stubClassifier struct {
	result mood.Result
}

func (s stubClassifier) Classify(string) mood.Result {
	return s.result
}

func movie(id int64, title string, vote, popularity float64) catalog.Movie {
	return catalog.Movie{ID: id, Title: title, VoteAverage: vote, Popularity: popularity}
}

func movieIDs(movies []catalog.Movie) []int64 {
	ids := make([]int64, len(movies))
	for i := range movies {
		ids[i] = movies[i].ID
	}
	return ids
}

func scoredIDs(scored []ScoredMovie) []int64 {
	ids := make([]int64, len(scored))
	for i := range scored {
		ids[i] = scored[i].Movie.ID
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
