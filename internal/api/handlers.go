// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/mood"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/recommend"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/validation"
)

// Recommender produces recommendations. recommend.Engine implements it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) *recommend.Response
}

// CatalogStatus reports catalog readiness. catalog.Client implements it.
type CatalogStatus interface {
	HasAPIKey() bool
	StatusText() string
}

// Handler serves the API endpoints.
type Handler struct {
	engine     Recommender
	classifier recommend.MoodClassifier
	status     CatalogStatus
	startTime  time.Time
}

// NewHandler creates a Handler. A nil classifier uses the default mood
// classifier; a nil status reports the catalog as unconfigured.
func NewHandler(engine Recommender, classifier recommend.MoodClassifier, status CatalogStatus) (*Handler, error) {
	if engine == nil {
		return nil, errors.New("api: recommender is required")
	}
	if classifier == nil {
		classifier = mood.NewClassifier()
	}
	return &Handler{
		engine:     engine,
		classifier: classifier,
		status:     status,
		startTime:  time.Now(),
	}, nil
}

// Recommendations handles GET /api/v1/recommendations
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	req := recommendationRequestFromQuery(r.URL.Query())
	h.serveRecommendations(w, r, &req)
}

// RecommendationsPost handles POST /api/v1/recommendations. An empty body
// is an empty request.
func (h *Handler) RecommendationsPost(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, r, http.StatusBadRequest, &APIError{
			Code:    ErrCodeInvalidJSON,
			Message: "Request body must be a JSON object with mood, genre and favorites",
		}, err)
		return
	}

	h.serveRecommendations(w, r, &req)
}

func (h *Handler) serveRecommendations(w http.ResponseWriter, r *http.Request, req *RecommendationRequest) {
	if verr := validation.ValidateStruct(req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	resp := h.engine.Recommend(r.Context(), req.engineRequest())
	respondSuccess(w, r, resp, resp.Metadata.LatencyMS)
}

// Genres handles GET /api/v1/genres
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, catalog.GenreOptions(), 0)
}

// MoodResponse is the classification of a mood text.
type MoodResponse struct {
	mood.Result
	Signal       string   `json:"signal"`
	FilmKeywords []string `json:"film_keywords"`
}

// Mood handles GET /api/v1/mood?text=
func (h *Handler) Mood(w http.ResponseWriter, r *http.Request) {
	req := MoodRequest{Text: r.URL.Query().Get("text")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	result := h.classifier.Classify(req.Text)
	respondSuccess(w, r, MoodResponse{
		Result:       result,
		Signal:       result.Signal(),
		FilmKeywords: recommend.FilmKeywords(result.Mood),
	}, 0)
}

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status           string  `json:"status"`
	Catalog          string  `json:"catalog,omitempty"`
	APIKeyConfigured bool    `json:"api_key_configured"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
}

// HealthLive handles GET /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, HealthStatus{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthReady handles GET /api/v1/health/ready. A missing API key or an
// open circuit reports "degraded" but stays 200, since recommendation
// requests still answer with empty lists.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:        "degraded",
		Catalog:       "catalog not configured",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	if h.status != nil {
		status.Catalog = h.status.StatusText()
		status.APIKeyConfigured = h.status.HasAPIKey()
		if status.APIKeyConfigured && status.Catalog == catalog.StatusOK {
			status.Status = "ready"
		}
	}
	respondSuccess(w, r, status, 0)
}

func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondError(w, r, http.StatusBadRequest, &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}, nil)
}
