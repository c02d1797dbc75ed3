// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

const healthcheckTimeout = 5 * time.Second

func newHealthcheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "healthcheck [config flags]",
		Short:              "Query /health of a running server, fail unless it answers 200",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetStructuredConfig(args)
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			baseURL, err := healthcheckBaseURL(cfg.Server.HTTPAddress)
			if err != nil {
				return err
			}

			return checkHealth(utils.NewHTTPClient(baseURL, healthcheckTimeout), cmd)
		},
	}
}

func checkHealth(client *utils.HTTPClient, cmd *cobra.Command) error {
	resp, err := client.R().SetContext(cmd.Context()).Get("/health")
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("server is unhealthy: %s", resp.Status())
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.String())
	return nil
}

// healthcheckBaseURL turns a listen address into a URL reachable from the
// same host. Wildcard hosts are replaced by localhost.
func healthcheckBaseURL(address string) (string, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return "", fmt.Errorf("invalid server address %q: %w", address, err)
	}

	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}

	return "http://" + net.JoinHostPort(host, port), nil
}
