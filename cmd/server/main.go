// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

// Package main is the entry point for the film club stats API.
//
// The server reads the scraper's MongoDB database, recomputes per-user
// and per-film statistics, superlatives, pairwise agreement and rating
// predictions, and serves them over a REST API.
//
// Startup order:
//
//  1. Configuration: layered defaults, config.yaml and environment (Koanf v2)
//  2. Logging: global zerolog logger
//  3. MongoDB: connect and ping the scraper's database
//  4. Supervisor: suture tree holding the HTTP server and, when
//     refresh.enabled is set, the periodic stats refresh service
//
// Shutdown is graceful on SIGINT and SIGTERM: in-flight requests get a
// bounded drain window and the MongoDB client is disconnected last.
//
// # Configuration
//
// Everything has a working default except the database URI in
// non-local setups. Common environment overrides:
//
//	export DB_URI=mongodb://mongo:27017
//	export DB_NAME=letterboxd
//	export HTTP_PORT=8039
//	export REFRESH_ENABLED=true
//	export REFRESH_INTERVAL=6h
//	./letterboxd-api
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

	"github.com/LetterBoxd-Stats/letterboxd-api/internal/api"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/cache"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/config"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/logging"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/refresh"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/store"
	"github.com/LetterBoxd-Stats/letterboxd-api/internal/supervisor"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logging.Info().
		Str("version", version).
		Str("database", cfg.Database.Name).
		Msg("Starting letterboxd-api")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := store.New(cfg.Database)
	if err := st.Connect(ctx); err != nil {
		return fmt.Errorf("connecting store: %w", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := st.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing MongoDB client")
		}
	}()

	responseCache := cache.New(cfg.API.CacheTTL)
	defer responseCache.Close()

	runner := refresh.NewRunner(st, cfg.Engine)
	handler := api.NewHandler(st, responseCache, runner, *cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(handler, cfg.API),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	sup := supervisor.New("letterboxd-api", logging.NewSlogLogger(), supervisor.DefaultConfig())
	sup.Add(supervisor.NewHTTPService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server added to supervisor")

	if cfg.Refresh.Enabled {
		sup.Add(refresh.NewService(runner, cfg.Refresh))
		logging.Info().
			Dur("interval", cfg.Refresh.Interval).
			Bool("on_startup", cfg.Refresh.OnStartup).
			Msg("Periodic stats refresh added to supervisor")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := sup.ServeBackground(ctx)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, err := sup.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("Server stopped gracefully")
	return nil
}
