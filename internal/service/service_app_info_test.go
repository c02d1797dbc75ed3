// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_TrimsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: " 2.0.1\n"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "2.0.1", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_BlankVersion_ReturnsError(t *testing.T) {
	_, err := NewAppInfoService(config.App{Version: "   "}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
