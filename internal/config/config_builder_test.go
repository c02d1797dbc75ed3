// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"CONFIG",
	"APP_SESSION_SIGN_KEY", "APP_SESSION_ISSUER", "APP_SESSION_DURATION",
	"APP_COOKIE_SECURE", "APP_VERSION", "APP_LOG_LEVEL",
	"STORAGE_DB_DATABASE_URI",
	"STORAGE_REDIS_ADDRESS", "STORAGE_REDIS_PASSWORD", "STORAGE_REDIS_DB",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
	"SERVER_LOGIN_RATE_PER_MINUTE", "SERVER_LOGIN_BURST",
}

// clearEnv blanks every variable the config reads so the host environment
// cannot leak into a test. Empty values are treated as unset by caarlos0/env.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range configEnvVars {
		t.Setenv(name, "")
	}
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{SessionSignKey: "first"}},
		&StructuredConfig{App: App{SessionSignKey: "second", SessionIssuer: "from-second"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.App.SessionSignKey)
	assert.Equal(t, "from-second", cfg.App.SessionIssuer)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestGetStructuredConfig_DefaultsApplied(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_SESSION_SIGN_KEY", "env-key")

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.SessionSignKey)
	assert.Equal(t, DefaultSessionIssuer, cfg.App.SessionIssuer)
	assert.Equal(t, DefaultSessionDuration, cfg.App.SessionDuration)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultLoginRatePerMinute, cfg.Server.LoginRatePerMinute)
	assert.Equal(t, DefaultLoginBurst, cfg.Server.LoginBurst)
	assert.Empty(t, cfg.Storage.Redis.Address)
}

func TestGetStructuredConfig_EnvBeatsFlagsBeatsFile(t *testing.T) {
	clearEnv(t)
	path := writeTempFile(t, "config.yaml", `
app:
  session_sign_key: file-key
  session_issuer: file-issuer
  session_duration: 2h
storage:
  db:
    dsn: file.db
`)
	t.Setenv("APP_SESSION_SIGN_KEY", "env-key")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "4s")

	cfg, err := GetStructuredConfig([]string{
		"-c", path,
		"-session-issuer", "flag-issuer",
		"-request-timeout", "9s",
	})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.SessionSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.SessionIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 4*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, path, cfg.ConfigFilePath)
}

func TestGetStructuredConfig_FilePathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeTempFile(t, "config.json", `{"app":{"session_sign_key":"json-key"}}`)
	t.Setenv("CONFIG", path)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.SessionSignKey)
}

func TestGetStructuredConfig_Errors(t *testing.T) {
	t.Run("missing sign key", func(t *testing.T) {
		clearEnv(t)
		_, err := GetStructuredConfig(nil)
		assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	})
	t.Run("bad env duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_SESSION_DURATION", "soon")
		_, err := GetStructuredConfig([]string{"-session-sign-key", "k"})
		require.Error(t, err)
	})
	t.Run("unknown flag", func(t *testing.T) {
		clearEnv(t)
		_, err := GetStructuredConfig([]string{"-session-sign-key", "k", "-nope"})
		require.Error(t, err)
	})
	t.Run("missing config file", func(t *testing.T) {
		clearEnv(t)
		_, err := GetStructuredConfig([]string{"-session-sign-key", "k", "-c", "/does/not/exist.json"})
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaults()
		cfg.App.SessionSignKey = "k"
		return cfg
	}

	require.NoError(t, valid().validate())

	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{"zero duration", func(c *StructuredConfig) { c.App.SessionDuration = 0 }, ErrInvalidAppConfigs},
		{"empty dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"negative redis db", func(c *StructuredConfig) { c.Storage.Redis.DB = -1 }, ErrInvalidStorageConfigs},
		{"empty address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"zero burst", func(c *StructuredConfig) { c.Server.LoginBurst = 0 }, ErrInvalidServerConfigs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}
