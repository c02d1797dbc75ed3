// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of a JSON or YAML config file.
type StructuredFileConfig struct {
	App struct {
		SessionSignKey  string   `json:"session_sign_key" yaml:"session_sign_key"`
		SessionIssuer   string   `json:"session_issuer" yaml:"session_issuer"`
		SessionDuration Duration `json:"session_duration" yaml:"session_duration"`
		CookieSecure    bool     `json:"cookie_secure" yaml:"cookie_secure"`
		Version         string   `json:"version" yaml:"version"`
		LogLevel        string   `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Redis struct {
			Address  string `json:"address" yaml:"address"`
			Password string `json:"password" yaml:"password"`
			DB       int    `json:"db" yaml:"db"`
		} `json:"redis,omitempty" yaml:"redis,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address" yaml:"http_address"`
		RequestTimeout     Duration `json:"request_timeout" yaml:"request_timeout"`
		LoginRatePerMinute int      `json:"login_rate_per_minute" yaml:"login_rate_per_minute"`
		LoginBurst         int      `json:"login_burst" yaml:"login_burst"`
	} `json:"server,omitempty" yaml:"server,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, anything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			SessionSignKey:  fileCfg.App.SessionSignKey,
			SessionIssuer:   fileCfg.App.SessionIssuer,
			SessionDuration: time.Duration(fileCfg.App.SessionDuration),
			CookieSecure:    fileCfg.App.CookieSecure,
			Version:         fileCfg.App.Version,
			LogLevel:        fileCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
			Redis: Redis{
				Address:  fileCfg.Storage.Redis.Address,
				Password: fileCfg.Storage.Redis.Password,
				DB:       fileCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:        fileCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(fileCfg.Server.RequestTimeout),
			LoginRatePerMinute: fileCfg.Server.LoginRatePerMinute,
			LoginBurst:         fileCfg.Server.LoginBurst,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := node.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
