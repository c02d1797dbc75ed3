// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	testCSRFToken    = "test-csrf-token"
	testSessionToken = "test-session-token"
	testSignKey      = "test-sign-key"
)

var (
	alice = models.Identity{SubjectID: "alice-subject", Email: "alice@example.com"}
	bob   = models.Identity{SubjectID: "bob-subject", Email: "bob@example.com"}
)

type testEnv struct {
	auth    *mock.MockAuthService
	access  *mock.MockAccessService
	tasks   *mock.MockTaskService
	notes   *mock.MockNoteService
	appInfo *mock.MockAppInfoService
	health  *mock.MockHealthService

	handler *Handler
	router  http.Handler
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			SessionSignKey:  testSignKey,
			SessionIssuer:   "task-keeper",
			SessionDuration: time.Hour,
			Version:         "1.2.3",
		},
		Server: config.Server{
			RequestTimeout:     5 * time.Second,
			LoginRatePerMinute: 600,
			LoginBurst:         100,
		},
	}
}

type envOption func(cfg *config.StructuredConfig, collector *metrics.MetricsCollector, gatherer *prometheus.Gatherer)

func withConfig(fn func(cfg *config.StructuredConfig)) envOption {
	return func(cfg *config.StructuredConfig, _ *metrics.MetricsCollector, _ *prometheus.Gatherer) {
		fn(cfg)
	}
}

func withMetrics(collector metrics.MetricsCollector, gatherer prometheus.Gatherer) envOption {
	return func(_ *config.StructuredConfig, c *metrics.MetricsCollector, g *prometheus.Gatherer) {
		*c = collector
		*g = gatherer
	}
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &testEnv{
		auth:    mock.NewMockAuthService(ctrl),
		access:  mock.NewMockAccessService(ctrl),
		tasks:   mock.NewMockTaskService(ctrl),
		notes:   mock.NewMockNoteService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
	}

	cfg := testConfig()
	var collector metrics.MetricsCollector = metrics.NewNopCollector()
	var gatherer prometheus.Gatherer = prometheus.NewRegistry()
	for _, opt := range opts {
		opt(&cfg, &collector, &gatherer)
	}

	services := &service.Services{
		AuthService:    env.auth,
		AccessService:  env.access,
		TaskService:    env.tasks,
		NoteService:    env.notes,
		RoleService:    mock.NewMockRoleService(ctrl),
		AppInfoService: env.appInfo,
		HealthService:  env.health,
	}

	h, err := NewHandler(services, cfg, collector, gatherer, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(h.Close)

	env.handler = h
	env.router = h.Init()
	return env
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) expectSession(identity models.Identity) {
	e.access.EXPECT().Resolve(gomock.Any(), testSessionToken).Return(identity, nil)
}

// formRequest builds a form POST that passes the CSRF check.
func formRequest(target string, form url.Values) *http.Request {
	if form == nil {
		form = url.Values{}
	}
	form.Set(csrfFormField, testCSRFToken)

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: testCSRFToken})
	return req
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionToken})
	return req
}

func responseCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
