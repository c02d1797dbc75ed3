// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "migrate [config flags]",
		Short:              "Apply pending database migrations and exit",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore(cmd.Context(), args, "task-keeper-migrate")
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("error migrating database: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (%s)\n", db.Dialect())
			return nil
		},
	}
}

// openStore loads the configuration from args and connects to the database.
func openStore(ctx context.Context, args []string, role string) (*store.DB, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.New(os.Stderr, role, logger.ParseLevel(cfg.App.LogLevel))

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return db, nil
}
