// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/mood"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/recommend"
)

// fakeRecommender records requests and answers with a fixed list.
type fakeRecommender struct {
	mu       sync.Mutex
	requests []recommend.Request
	items    []recommend.Recommendation
	panicMsg string
}

func (f *fakeRecommender) Recommend(ctx context.Context, req recommend.Request) *recommend.Response {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	items := f.items
	if items == nil {
		items = []recommend.Recommendation{}
	}
	return &recommend.Response{
		Items:     items,
		Mood:      mood.Result{Mood: mood.Neutral},
		Favorites: []string{},
		Metadata: recommend.ResponseMetadata{
			RequestID:     logging.RequestIDFromContext(ctx),
			Source:        recommend.SourcePopular,
			WeightProfile: recommend.ProfileClassic,
			LatencyMS:     7,
			Timestamp:     time.Now().UTC(),
		},
	}
}

func (f *fakeRecommender) calls() []recommend.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recommend.Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// fakeStatus is a fixed catalog status.
type fakeStatus struct {
	hasKey bool
	text   string
}

func (s fakeStatus) HasAPIKey() bool    { return s.hasKey }
func (s fakeStatus) StatusText() string { return s.text }

// stubClassifier returns a classifier with a constant neutral analyzer.
func stubClassifier() *mood.Classifier {
	return mood.NewClassifier(mood.WithAnalyzer(mood.AnalyzerFunc(func(string) mood.Sentiment {
		return mood.Sentiment{Neutral: 1}
	})))
}

func testRouterConfig() RouterConfig {
	return RouterConfig{
		CORSOrigins:       []string{"https://movies.example"},
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		Logger:            zerolog.Nop(),
	}
}

func newTestRouter(t *testing.T, engine Recommender, status CatalogStatus) http.Handler {
	t.Helper()
	h, err := NewHandler(engine, stubClassifier(), status)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return NewRouter(h, testRouterConfig())
}

// testEnvelope mirrors APIResponse with a raw data payload.
type testEnvelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata Metadata        `json:"metadata"`
	Error    *APIError       `json:"error"`
}

func serve(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env testEnvelope
	body, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(body) > 0 && rec.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(body, &env); err != nil {
			t.Fatalf("response is not JSON: %v\n%s", err, body)
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env testEnvelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v\n%s", err, env.Data)
	}
}
