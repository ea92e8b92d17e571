// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

/*
Package supervisor runs the long-lived parts of `recommender serve` under a
suture v4 supervisor tree.

	RootSupervisor ("recommender")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogWarmupService (if warm-up is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff; a failure in the
catalog layer does not restart the HTTP server. Supervisor events are
logged through sutureslog into the zerolog-backed slog logger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddCatalogService(services.NewCatalogWarmupService(client, services.WarmupConfig{}, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 15*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tree.Serve(ctx)

Cancelling the context shuts services down in reverse order, bounded by
TreeConfig.ShutdownTimeout.
*/
package supervisor
