// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

// Cinelog server - a personal movie log with an insights engine.
//
// Entries are stored in an embedded DuckDB database; insights are computed
// on demand over the full entry snapshot and memoized in an in-memory cache.
// The HTTP server and the database maintenance loop run under a suture
// supervisor tree for automatic restarts and graceful shutdown.
//
// Configuration is read from a YAML file and environment variables; see the
// config package for the full list of settings.
//
// Usage:
//
//	cinelog-server
//
// Docker:
//
//	docker run -d \
//	  -v cinelog-data:/data \
//	  -p 8484:8484 \
//	  ghcr.io/kmoraz/cinelog
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kmoraz/cinelog/internal/api"
	"github.com/kmoraz/cinelog/internal/cache"
	"github.com/kmoraz/cinelog/internal/config"
	"github.com/kmoraz/cinelog/internal/database"
	"github.com/kmoraz/cinelog/internal/insights"
	"github.com/kmoraz/cinelog/internal/logging"
	"github.com/kmoraz/cinelog/internal/settings"
	"github.com/kmoraz/cinelog/internal/supervisor"
	"github.com/kmoraz/cinelog/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", api.Version).Msg("Starting Cinelog")
	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("settings_path", cfg.Settings.Path).
		Dur("insights_ttl", cfg.Cache.InsightsTTL).
		Msg("Configuration loaded")

	// Initialize database
	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	// Open the settings store (persisted UI state such as the last
	// selected insights range)
	settingsStore, err := settings.Open(cfg.Settings.Path)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open settings store")
	}
	defer func() {
		if err := settingsStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing settings store")
		}
	}()

	// Insights service with memoization cache
	insightsCache := cache.New(cfg.Cache.InsightsTTL)
	insightsService := insights.NewService(db, insightsCache)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create structured logger for supervisor using our slog adapter.
	// This bridges zerolog to slog for sutureslog compatibility.
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// HTTP layer
	handler := api.NewHandler(db, insightsService, settingsStore, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.MiddlewareConfigFromSecurity(cfg.Security)))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Data layer services
	tree.AddDataService(services.NewMaintenanceService(db, 15*time.Minute))

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
