// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
)

func TestHealthService_CheckHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockHealthChecker(ctrl)
	redis := mock.NewMockHealthChecker(ctrl)
	svc := NewHealthService(logger.Nop(), db, nil, redis)

	db.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)
	redis.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, svc.CheckHealth(context.Background()))

	redis.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	assert.ErrorIs(t, svc.CheckHealth(context.Background()), ErrStoreUnavailable)
}
