// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

type healthService struct {
	checkers []store.HealthChecker

	logger *logger.Logger
}

// NewHealthService checks every given backend on CheckHealth. Nil checkers
// are ignored.
func NewHealthService(logger *logger.Logger, checkers ...store.HealthChecker) HealthService {
	nonNil := make([]store.HealthChecker, 0, len(checkers))
	for _, c := range checkers {
		if c != nil {
			nonNil = append(nonNil, c)
		}
	}

	return &healthService{checkers: nonNil, logger: logger}
}

func (s *healthService) CheckHealth(ctx context.Context) error {
	for _, c := range s.checkers {
		if err := c.Ping(ctx); err != nil {
			logger.FromContext(ctx).Err(err).Msg("health check failed")
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	return nil
}
