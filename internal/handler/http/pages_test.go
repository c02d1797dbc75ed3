// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

func TestUserPage_EchoesName(t *testing.T) {
	env := newTestEnv(t)
	env.expectSession(alice)

	rr := env.serve(withSession(httptest.NewRequest(http.MethodGet, "/user/Ola", nil)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Hello, Ola!")
}

func TestForm(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantFlash string
		wantBody  string
		notInBody string
	}{
		{"submitted", "Ola", app.MsgFormSubmitted, "Hello, Ola!", app.MsgFormNameRequired},
		{"blank name", "  ", app.MsgFormNameRequired, "What is your name?", "Hello,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.expectSession(alice)

			rr := env.serve(withSession(formRequest("/form", url.Values{"name": {tt.value}})))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantFlash)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
			assert.NotContains(t, rr.Body.String(), tt.notInBody)
		})
	}
}

func TestStaticPages(t *testing.T) {
	for _, path := range []string{"/form", "/kot"} {
		t.Run(path, func(t *testing.T) {
			env := newTestEnv(t)
			env.expectSession(alice)

			rr := env.serve(withSession(httptest.NewRequest(http.MethodGet, path, nil)))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), alice.Email)
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := env.serve(httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"healthy", nil, http.StatusOK, `{"status":"ok","version":"1.2.3"}`},
		{"store down", errors.Join(service.ErrStoreUnavailable, errors.New("ping failed")), http.StatusServiceUnavailable, `{"status":"unavailable","version":"1.2.3"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")
			env.health.EXPECT().CheckHealth(gomock.Any()).Return(tt.err)

			rr := env.serve(httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestMetricsEndpoint_ExposesRequestCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	env := newTestEnv(t, withMetrics(metrics.NewCollector(reg), reg))
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")
	env.health.EXPECT().CheckHealth(gomock.Any()).Return(nil)

	env.serve(httptest.NewRequest(http.MethodGet, "/health", nil))
	rr := env.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "task_keeper_http_requests_total")
	assert.True(t, strings.Contains(body, `route="/health"`), body)
}
