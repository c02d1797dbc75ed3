// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var testAppConfig = config.App{
	SessionSignKey:  "test-sign-key",
	SessionIssuer:   "task-keeper-test",
	SessionDuration: time.Hour,
	Version:         "1.2.3",
}

var (
	alice = models.Identity{SubjectID: "alice-subject", Email: "alice@example.com"}
	bob   = models.Identity{SubjectID: "bob-subject", Email: "bob@example.com"}
)

func strPtr(s string) *string {
	return &s
}

type authMocks struct {
	users       *mock.MockUserRepository
	revocations *mock.MockSessionRevocationStore
	ids         *mock.MockIDGenerator
}

// newTestAuthSvc builds an authService over gomock repositories with a
// real validator, a fixed clock and the cheapest bcrypt cost.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, authMocks) {
	t.Helper()
	m := authMocks{
		users:       mock.NewMockUserRepository(ctrl),
		revocations: mock.NewMockSessionRevocationStore(ctrl),
		ids:         mock.NewMockIDGenerator(ctrl),
	}

	svc := NewAuthService(m.users, m.revocations, validators.NewTaskKeeperValidator(), m.ids, testAppConfig, logger.Nop()).(*authService)
	svc.hashCost = bcrypt.MinCost
	svc.now = func() time.Time { return fixedNow }

	return svc, m
}
