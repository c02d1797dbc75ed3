// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(buildInfo()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the binary without a
// subcommand starts the server.
//
// Configuration flags (-a, -d, -c, ...) are parsed by the config package,
// so cobra's own flag parsing is disabled on every command that loads it.
func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	serve := newServeCmd(info)

	root := &cobra.Command{
		Use:   "task-keeper",
		Short: "Multi-user task list and notebook web application",
		Long: `task-keeper serves a small web application where every user keeps
a private task list and notebook.

Without a subcommand it behaves like "serve".`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE:               serve.RunE,
	}

	root.AddCommand(serve)
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newHealthcheckCmd())
	root.AddCommand(newRoleCmd())
	root.AddCommand(newVersionCmd(info))

	return root
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(cmd *cobra.Command, info models.AppBuildInfo) {
	fmt.Fprint(cmd.OutOrStdout(), info.String())
}

func newVersionCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd, info)
		},
	}
}
