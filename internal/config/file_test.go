// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{
		"app": {"session_sign_key": "k", "session_duration": "90m", "cookie_secure": true},
		"storage": {"db": {"dsn": "postgres://u:p@localhost/db"}, "redis": {"address": "r:6379", "db": 2}},
		"server": {"http_address": ":7000", "request_timeout": 5000000000, "login_burst": 9}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.SessionSignKey)
	assert.Equal(t, 90*time.Minute, cfg.App.SessionDuration)
	assert.True(t, cfg.App.CookieSecure)
	assert.Equal(t, "postgres://u:p@localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "r:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.Equal(t, ":7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 9, cfg.Server.LoginBurst)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempFile(t, "config.yml", `
app:
  session_sign_key: yaml-key
  session_issuer: yaml-issuer
  session_duration: 1h
storage:
  db:
    dsn: tasks.db
server:
  http_address: "localhost:5002"
  request_timeout: 20s
  login_rate_per_minute: 7
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml-key", cfg.App.SessionSignKey)
	assert.Equal(t, "yaml-issuer", cfg.App.SessionIssuer)
	assert.Equal(t, time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, "tasks.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:5002", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 7, cfg.Server.LoginRatePerMinute)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})
	t.Run("malformed json", func(t *testing.T) {
		_, err := parseFile(writeTempFile(t, "bad.json", `{"app":`))
		require.Error(t, err)
	})
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := parseFile(writeTempFile(t, "bad.yaml", "app: [unclosed"))
		require.Error(t, err)
	})
	t.Run("bad duration", func(t *testing.T) {
		_, err := parseFile(writeTempFile(t, "dur.json", `{"app":{"session_duration":"forever"}}`))
		require.Error(t, err)
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
