// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/api"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/config"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/logging"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/supervisor"
	"github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/supervisor/services"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}
}

// runServer starts the supervised HTTP API and catalog warm-up and blocks
// until SIGINT, SIGTERM or parent cancellation.
func runServer(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("config", cfg.String()).Msg("Starting recommender")
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin; set CORS_ORIGINS to restrict it")
	}

	stack, err := newComponents(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := stack.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close cache")
		}
	}()

	handler, err := api.NewHandler(stack.engine, stack.classifier, stack.catalog)
	if err != nil {
		return fmt.Errorf("create API handler: %w", err)
	}
	router := api.NewRouter(handler, api.RouterConfig{
		CORSOrigins:       cfg.Server.CORSOrigins,
		RateLimitRequests: cfg.Server.RateLimitRequests,
		RateLimitWindow:   cfg.Server.RateLimitWindow,
		RateLimitDisabled: cfg.Server.RateLimitDisabled,
		Logger:            logging.WithComponent("http"),
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	httpService := services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("supervisor"))
	tree.AddAPIService(httpService)
	if cfg.WarmupActive() {
		tree.AddCatalogService(services.NewCatalogWarmupService(stack.catalog, services.WarmupConfig{
			Interval: cfg.Catalog.WarmupInterval,
		}, logging.WithComponent("supervisor")))
	} else {
		logging.Info().Msg("Catalog warm-up disabled")
	}

	errCh := tree.ServeBackground(ctx)

	select {
	case <-httpService.Ready():
		logging.Info().Str("addr", httpService.Addr()).Msg("Recommender started")
	case <-ctx.Done():
	}

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown requested, waiting for services to stop")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Recommender stopped")
	return nil
}
