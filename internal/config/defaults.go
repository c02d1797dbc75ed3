// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress        = ":5001"
	DefaultDSN                = "todo.db"
	DefaultSessionIssuer      = "task-keeper"
	DefaultSessionDuration    = 24 * time.Hour
	DefaultRequestTimeout     = 15 * time.Second
	DefaultLoginRatePerMinute = 5
	DefaultLoginBurst         = 5
	DefaultLogLevel           = "info"
	DefaultVersion            = "dev"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:   DefaultSessionIssuer,
			SessionDuration: DefaultSessionDuration,
			Version:         DefaultVersion,
			LogLevel:        DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			LoginRatePerMinute: DefaultLoginRatePerMinute,
			LoginBurst:         DefaultLoginBurst,
		},
	}
}
