// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

func newRoleCmd() *cobra.Command {
	role := &cobra.Command{
		Use:   "role",
		Short: "Manage user roles",
	}

	role.AddCommand(&cobra.Command{
		Use:                "create <name> [description] [config flags]",
		Short:              "Create a role",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, flags := splitArgs(args)
			if len(positional) < 1 || len(positional) > 2 {
				return fmt.Errorf("expected <name> [description], got %d arguments", len(positional))
			}

			description := ""
			if len(positional) == 2 {
				description = positional[1]
			}

			return withRoleService(cmd.Context(), flags, func(ctx context.Context, roles service.RoleService) error {
				created, err := roles.CreateRole(ctx, positional[0], description)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "role %q created (id %d)\n", created.Name, created.ID)
				return nil
			})
		},
	})

	role.AddCommand(&cobra.Command{
		Use:                "assign <email> <role> [config flags]",
		Short:              "Assign a role to a user",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, flags := splitArgs(args)
			if len(positional) != 2 {
				return fmt.Errorf("expected <email> <role>, got %d arguments", len(positional))
			}

			return withRoleService(cmd.Context(), flags, func(ctx context.Context, roles service.RoleService) error {
				if err := roles.AssignRole(ctx, positional[0], positional[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "role %q assigned to %s\n", positional[1], positional[0])
				return nil
			})
		},
	})

	return role
}

func withRoleService(ctx context.Context, args []string, fn func(context.Context, service.RoleService) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.New(os.Stderr, "task-keeper-admin", logger.ParseLevel(cfg.App.LogLevel))

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	services, err := service.NewServices(store.NewStorages(db, nil, log), *cfg, metrics.NewNopCollector(), log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	return fn(ctx, services.RoleService)
}

// splitArgs separates leading positional arguments from the config flags
// that follow them.
func splitArgs(args []string) (positional, flags []string) {
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return args[:i], args[i:]
		}
	}
	return args, nil
}
