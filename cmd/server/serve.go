// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/handler"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/server"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

func newServeCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:                "serve [config flags]",
		Short:              "Migrate the database and run the web server",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			printBuildInfo(cmd, info)
			return serve(cmd.Context(), args, info)
		},
	}
}

func serve(ctx context.Context, args []string, info models.AppBuildInfo) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == config.DefaultVersion && info.Known() {
		cfg.App.Version = info.BuildVersion()
	}

	log := logger.New(os.Stdout, "task-keeper-server", logger.ParseLevel(cfg.App.LogLevel))
	log.Info().
		Str("address", cfg.Server.HTTPAddress).
		Bool("redis", cfg.Storage.Redis.Address != "").
		Msg("received configs")

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	var revocations store.SessionRevocationStore
	if cfg.Storage.Redis.Address != "" {
		redisStore, err := store.NewRedisRevocationStore(ctx, cfg.Storage.Redis, log)
		if err != nil {
			return fmt.Errorf("error connecting to redis: %w", err)
		}
		defer redisStore.Close()
		revocations = redisStore
	} else {
		log.Warn().Msg("no redis address configured, logout only clears the session cookie")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	storages := store.NewStorages(db, revocations, log)

	services, err := service.NewServices(storages, *cfg, collector, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, collector, registry, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}
	defer handlers.Close()

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
