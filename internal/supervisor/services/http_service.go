// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// HTTPServerService runs the API's *http.Server under the supervisor.
//
// Serve binds the listener itself, so a port conflict surfaces as a Serve
// error that suture backs off on, and the bound address (including the port
// picked for ":0") is available from Addr once Ready is closed. On
// cancellation the server is shut down within shutdownTimeout.
//
//	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router}
//	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
type HTTPServerService struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          zerolog.Logger
	name            string

	addr      atomic.Pointer[string]
	ready     chan struct{}
	readyOnce sync.Once
}

// NewHTTPServerService creates the service. A non-positive shutdownTimeout
// defaults to 10 seconds.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPServerService(server *http.Server, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		logger:          logger.With().Str("service", "http-server").Logger(),
		name:            "http-server",
		ready:           make(chan struct{}),
	}
}

// Ready is closed the first time the listener is bound.
func (h *HTTPServerService) Ready() <-chan struct{} {
	return h.ready
}

// Addr returns the bound listen address, or "" before the first bind.
func (h *HTTPServerService) Addr() string {
	if addr := h.addr.Load(); addr != nil {
		return *addr
	}
	return ""
}

// Serve implements suture.Service. It returns ctx.Err() after a graceful
// shutdown and suture.ErrDoNotRestart when the server was closed by
// someone else, since a closed *http.Server cannot serve again.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("http server listen on %q: %w", h.server.Addr, err)
	}

	addr := ln.Addr().String()
	h.addr.Store(&addr)
	h.readyOnce.Do(func() { close(h.ready) })
	h.logger.Info().Str("addr", addr).Msg("HTTP server listening")

	errCh := make(chan error, 1)
	go func() {
		errCh <- h.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			h.logger.Warn().Msg("HTTP server closed outside the supervisor")
			return suture.ErrDoNotRestart
		}
		return fmt.Errorf("http server failed: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("HTTP server shutting down")
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		h.logger.Info().Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// String names the service in suture's log messages.
func (h *HTTPServerService) String() string {
	return h.name
}
