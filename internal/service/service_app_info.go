// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// appInfoService reports static facts about the running build.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService fails when no version is configured; serve fills it from
// build info before wiring, so an empty value means a broken config.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: version,
		logger:  log,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	logger.FromContext(ctx).Debug().
		Str("func", "appInfoService.GetAppVersion").
		Str("version", s.version).
		Msg("version requested")

	return s.version
}
