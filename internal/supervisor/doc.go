// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

/*
Package supervisor runs the long-lived parts of Shootfolio under a suture v4
supervisor tree.

	RootSupervisor ("shootfolio")
	├── CacheSupervisor ("cache-layer")
	│   └── CacheWarmerService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The layers restart independently: a warmer that keeps failing against the
provider backs off on its own while the API keeps serving the cached shoots.
Supervisor events are logged through sutureslog over the zerolog-backed slog
handler from the logging package.

# Usage

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddCacheService(services.NewCacheWarmerService(manager, cfg.Cache.WarmInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

Services are added before Serve is called. On cancellation every service gets
TreeConfig.ShutdownTimeout to return; UnstoppedServiceReport lists the ones
that did not.
*/
package supervisor
