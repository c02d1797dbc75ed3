// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// task-keeper server. It is populated by merging values from environment
// variables, command-line flags, an optional config file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, cookie and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and the optional Redis settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address, timeouts and login throttling.
	Server Server `envPrefix:"SERVER_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CONFIG environment variable or -c / -config.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSignKey signs and verifies session tokens. Required.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim of every session token.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is how long a session token stays valid.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// CookieSecure marks the session, flash and CSRF cookies Secure.
	// Env: APP_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is one of zerolog's level names.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN is either a SQLite file path (e.g. "todo.db", ":memory:") or a
	// PostgreSQL URL starting with postgres:// or postgresql://.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds the connection settings of the session revocation store.
// An empty Address disables revocation.
type Redis struct {
	Address  string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"`
}

// Server holds network, timeout and throttling settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address in "[host]:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LoginRatePerMinute is the number of POST /login attempts a single
	// client IP may make per minute.
	// Env: SERVER_LOGIN_RATE_PER_MINUTE
	LoginRatePerMinute int `env:"LOGIN_RATE_PER_MINUTE"`

	// LoginBurst is the token bucket size of the login limiter.
	// Env: SERVER_LOGIN_BURST
	LoginBurst int `env:"LOGIN_BURST"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first non-zero value wins,
// in this order:
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. Config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
