// Shootfolio - Real Estate Shoot Portfolio API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shootfolio

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/shootfolio/internal/api"
	"github.com/tomtom215/shootfolio/internal/config"
	"github.com/tomtom215/shootfolio/internal/logging"
	"github.com/tomtom215/shootfolio/internal/pipeline"
	"github.com/tomtom215/shootfolio/internal/provider"
	"github.com/tomtom215/shootfolio/internal/shoots"
	"github.com/tomtom215/shootfolio/internal/supervisor"
	"github.com/tomtom215/shootfolio/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// config not available yet, default logger
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("api_base", cfg.Provider.BaseURL).
		Bool("has_token", cfg.Provider.HasToken()).
		Bool("webhook_secret", cfg.Webhook.Secret != "").
		Str("data_dir", cfg.Storage.DataDir).
		Int64("cache_ttl_seconds", cfg.Cache.TTLSeconds).
		Msg("Configuration loaded")
	if !cfg.Provider.HasToken() {
		logging.Warn().Msg("ARYEO_API_KEY is not set; shoot endpoints will answer 503 until it is configured")
	}

	client := provider.NewClient(&cfg.Provider)

	manager := shoots.NewManager(client, shoots.NewSnapshotStore(cfg.Storage.SnapshotPath()), shoots.OptionsFromConfig(cfg))
	if manager.LoadSnapshot() {
		st := manager.Status()
		logging.Info().Str("state", string(st.State)).Msg("Shoot cache seeded from snapshot")
	}

	pipelineLog, err := pipeline.NewLog(cfg.Storage.DataDir, cfg.Storage.PipelineFile)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open pipeline log")
	}

	handler := api.NewHandler(manager, pipelineLog, api.HandlerConfig{
		APIBase:       client.BaseURL(),
		HasToken:      client.HasToken(),
		WebhookSecret: cfg.Webhook.Secret,
	})
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// cold-cache requests wait on a full provider fetch
		WriteTimeout: cfg.Server.Timeout + cfg.Cache.RefreshTimeout,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddCacheService(services.NewCacheWarmerService(manager, cfg.Cache.WarmInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	manager.Close()
	logging.Info().Msg("Shootfolio stopped")
	if len(unstopped) > 0 {
		os.Exit(1)
	}
}
