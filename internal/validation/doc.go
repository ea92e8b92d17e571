// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

// Package validation wraps go-playground/validator v10 with a shared
// validator instance, project-specific tags and readable error messages.
//
// Custom tags:
//   - maxtitles=N: a comma-separated string lists at most N non-empty entries
//
// Field names in messages use the json or koanf tag of the field, so errors
// refer to the names clients and operators actually type.
//
//	type RecommendRequest struct {
//	    Mood      string `json:"mood" validate:"max=500"`
//	    Favorites string `json:"favorites" validate:"max=2000,maxtitles=20"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	}
package validation
