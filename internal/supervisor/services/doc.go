// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

// Package services provides suture.Service wrappers for the recommender's
// long-running components: the HTTP server and catalog cache warm-up.
package services
