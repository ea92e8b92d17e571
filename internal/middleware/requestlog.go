// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
)

// RequestLogger logs one line per request. logger is stored in the context
// and handlers log through logging.Ctx, which adds request_id and
// correlation_id. Place it after RequestID.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func RequestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := logging.ContextWithLogger(r.Context(), logger)
			reqLogger := logging.Ctx(ctx)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			event := reqLogger.Info()
			switch {
			case status >= http.StatusInternalServerError:
				event = reqLogger.Error()
			case status >= http.StatusBadRequest:
				event = reqLogger.Warn()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", RoutePattern(r)).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Str("remote_ip", r.RemoteAddr).
				Dur("duration", time.Since(start)).
				Msg("HTTP request")
		})
	}
}
