// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

// Package logging provides centralized zerolog-based structured logging.
//
// A single global zerolog logger is configured once at startup from the
// logging section of the configuration. Components derive child loggers with
// a "component" field, and request-scoped code logs through Ctx or CtxWith so
// that the request and correlation IDs travel with every line.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "auto"})
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Ctx(ctx).Debug().Int("candidates", n).Msg("Candidate pool built")
//
// # Formats
//
//   - json: one JSON object per line (production)
//   - console: human-readable colored output
//   - auto: console when stderr is a terminal, json otherwise
//
// # Suture Integration
//
// NewSlogLogger bridges zerolog to log/slog so that the supervisor tree can
// report service failures through sutureslog.
package logging
