// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package recommend

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/mood"
)

func neutralClassifier() *mood.Classifier {
	return mood.NewClassifier(mood.WithAnalyzer(mood.AnalyzerFunc(func(string) mood.Sentiment {
		return mood.Sentiment{Neutral: 1}
	})))
}

func newTestEngine(t *testing.T, c Catalog, cfg *Config) *Engine {
	t.Helper()
	engine, err := NewEngine(cfg, c, neutralClassifier(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func TestNewEngine_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(nil, nil, nil, zerolog.Nop()); err == nil {
		t.Error("expected error for nil catalog")
	}

	cfg := DefaultConfig()
	cfg.TopN = 0
	if _, err := NewEngine(cfg, emptyCatalog{}, nil, zerolog.Nop()); err == nil {
		t.Error("expected error for invalid config")
	}

	engine, err := NewEngine(nil, emptyCatalog{}, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine(nil config) error = %v", err)
	}
	if engine.Config().TopN != DefaultTopN {
		t.Errorf("nil config did not use defaults: %+v", engine.Config())
	}
}

func TestEngine_HappyAdventurousSciFiScenario(t *testing.T) {
	t.Parallel()

	fc := newFakeCatalog()
	fc.ids["Inception"] = 27205
	fc.ids["Interstellar"] = 157336

	plain := movie(1, "Plain", 7, 1)
	scifi := movie(2, "Space", 7, 1)
	funny := movie(3, "Fun Times", 7, 1)
	fc.similar[27205] = []catalog.Movie{plain, scifi}
	fc.similar[157336] = []catalog.Movie{scifi, funny}
	fc.details[2] = catalog.Movie{ID: 2, Genres: []catalog.Genre{{ID: 878, Name: "Science Fiction"}}}

	engine := newTestEngine(t, fc, nil)
	resp := engine.Recommend(context.Background(), Request{
		Mood:      "I feel so happy and adventurous today",
		Genre:     "Sci-Fi",
		Favorites: "Inception, Interstellar",
	})

	if resp.Mood.Mood != mood.Happy || !resp.Mood.KeywordMatched {
		t.Errorf("Mood = %+v, want keyword-matched happy", resp.Mood)
	}
	if resp.Genre.ID != 878 || resp.Genre.Label != "Sci-Fi" {
		t.Errorf("Genre = %+v", resp.Genre)
	}
	if resp.Metadata.Source != SourceFavorites || resp.TotalCandidates != 3 {
		t.Errorf("Source = %q, TotalCandidates = %d", resp.Metadata.Source, resp.TotalCandidates)
	}
	if len(resp.Favorites) != 2 {
		t.Errorf("Favorites = %v", resp.Favorites)
	}

	var order []int64
	for _, item := range resp.Items {
		order = append(order, item.ID)
	}
	// "fun" is a happy film keyword (+10) and beats the genre bonus (+8).
	if !equalIDs(order, []int64{3, 2, 1}) {
		t.Errorf("order = %v, want [3 2 1]", order)
	}
	if resp.Items[1].Score <= resp.Items[2].Score {
		t.Errorf("Sci-Fi candidate did not outscore identical plain candidate: %v vs %v", resp.Items[1].Score, resp.Items[2].Score)
	}
}

func TestEngine_AdventurousKeywordsLiftCandidates(t *testing.T) {
	t.Parallel()

	fc := newFakeCatalog()
	fc.popular = []catalog.Movie{
		movie(1, "Ordinary", 6, 1),
		{ID: 2, Title: "Quest", Overview: "A journey to explore the unknown", VoteAverage: 6, Popularity: 1},
	}

	engine, err := NewEngine(nil, fc, stubClassifier{result: mood.Result{Mood: mood.Adventurous, KeywordMatched: true}}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	items := engine.GetRecommendations(context.Background(), "daring", "", "")
	if len(items) != 2 || items[0].ID != 2 {
		t.Fatalf("items = %+v, want adventurous candidate first", items)
	}
	if items[0].Breakdown == nil || items[0].Breakdown.MoodMatches != 2 {
		t.Errorf("Breakdown = %+v, want two mood matches", items[0].Breakdown)
	}
}

func TestEngine_EmptyMoodHorrorScenario(t *testing.T) {
	t.Parallel()

	fc := newFakeCatalog()
	for id := int64(1); id <= 20; id++ {
		fc.byGenre[27] = append(fc.byGenre[27], movie(id, "Horror", float64(id%10), 1))
	}

	resp := newTestEngine(t, fc, nil).Recommend(context.Background(), Request{Mood: "", Genre: "Horror"})

	if resp.Mood.Mood != mood.Neutral || resp.Mood.Score != 0 {
		t.Errorf("Mood = %+v, want neutral/0", resp.Mood)
	}
	if resp.Metadata.Source != SourceGenre {
		t.Errorf("Source = %q, want genre", resp.Metadata.Source)
	}
	if len(resp.Items) != 15 {
		t.Errorf("len(Items) = %d, want 15", len(resp.Items))
	}
	if fc.callCount("popular") != 0 || fc.callCount("search") != 0 {
		t.Error("unexpected popular or search calls")
	}
}

func TestEngine_UnresolvableFavoritesFallBackToPopular(t *testing.T) {
	t.Parallel()

	fc := newFakeCatalog()
	fc.popular = []catalog.Movie{movie(7, "Crowd Pleaser", 8, 40)}

	items := newTestEngine(t, fc, nil).GetRecommendations(context.Background(), "meh", "Western", "Nope, Nothing")

	if len(items) != 1 || items[0].Title != "Crowd Pleaser" {
		t.Errorf("items = %+v, want popular fallback", items)
	}
	if fc.callCount("search") != 2 || fc.callCount("genre") != 0 {
		t.Errorf("calls = %v", fc.calls)
	}
}

func TestEngine_MissingAPIKeyYieldsEmptyList(t *testing.T) {
	t.Parallel()

	client := catalog.New(catalog.Config{}, catalog.WithLogger(zerolog.Nop()))
	engine := newTestEngine(t, client, nil)

	items := engine.GetRecommendations(context.Background(), "happy", "Action", "Inception, Heat")
	if items == nil || len(items) != 0 {
		t.Errorf("items = %#v, want empty non-nil list", items)
	}
}

func TestEngine_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	fc := newFakeCatalog()
	fc.panicOn = "Boom"

	var buf bytes.Buffer
	engine, err := NewEngine(nil, fc, neutralClassifier(), logging.NewTestLogger(&buf))
	if err != nil {
		t.Fatal(err)
	}

	resp := engine.Recommend(context.Background(), Request{Favorites: "Boom"})
	if resp == nil || resp.Items == nil || len(resp.Items) != 0 {
		t.Fatalf("resp = %+v, want empty items after panic", resp)
	}
	if resp.Metadata.Source != SourceNone {
		t.Errorf("Source = %q, want none", resp.Metadata.Source)
	}
	if !strings.Contains(buf.String(), "Recovered panic") {
		t.Errorf("panic not logged: %s", buf.String())
	}
}

func TestEngine_RequestIDPropagated(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, emptyCatalog{}, nil)

	ctx := logging.ContextWithRequestID(context.Background(), "req-123")
	if resp := engine.Recommend(ctx, Request{}); resp.Metadata.RequestID != "req-123" {
		t.Errorf("RequestID = %q, want req-123", resp.Metadata.RequestID)
	}

	resp := engine.Recommend(context.Background(), Request{})
	if resp.Metadata.RequestID == "" {
		t.Error("expected a generated request ID")
	}
	if resp.Metadata.WeightProfile != ProfileClassic || resp.Metadata.Timestamp.IsZero() {
		t.Errorf("Metadata = %+v", resp.Metadata)
	}
}
