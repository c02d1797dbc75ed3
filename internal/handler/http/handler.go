// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	pages   *pages
	cookies cookieSettings
	limiter *loginLimiter

	metrics  metrics.MetricsCollector
	gatherer prometheus.Gatherer

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler parses the embedded page templates and prepares the login
// limiter. Call Close when the handler is no longer used.
func NewHandler(services *service.Services, cfg config.StructuredConfig, collector metrics.MetricsCollector, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingTemplates, err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		pages:    pages,
		cookies: cookieSettings{
			secure:        cfg.App.CookieSecure,
			signKey:       cfg.App.SessionSignKey,
			sessionMaxAge: cfg.App.SessionDuration,
		},
		limiter:        newLoginLimiter(cfg.Server.LoginRatePerMinute, cfg.Server.LoginBurst, loginLimiterCleanupInterval),
		metrics:        collector,
		gatherer:       gatherer,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}, nil
}

// Close stops the background cleanup of the login limiter.
func (h *Handler) Close() {
	h.limiter.stop()
}
