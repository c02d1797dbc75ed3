// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

func newTestAccessSvc(ctrl *gomock.Controller) (AccessService, *mock.MockAuthService, *mock.MockUserRepository, *mock.MockRoleRepository) {
	auth := mock.NewMockAuthService(ctrl)
	users := mock.NewMockUserRepository(ctrl)
	roles := mock.NewMockRoleRepository(ctrl)

	return NewAccessService(auth, users, roles, logger.Nop()), auth, users, roles
}

func TestAccessService_Resolve_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, auth, users, roles := newTestAccessSvc(ctrl)
	ctx := context.Background()

	auth.EXPECT().ParseSessionToken(ctx, "raw").Return(models.SessionToken{SubjectID: "subject-1"}, nil)
	users.EXPECT().FindUserBySubjectID(ctx, "subject-1").Return(models.User{ID: 5, Email: "ann@example.com", Active: true, SubjectID: "subject-1"}, nil)
	roles.EXPECT().ListUserRoles(ctx, int64(5)).Return([]models.Role{{ID: 1, Name: "admin"}}, nil)

	identity, err := svc.Resolve(ctx, "raw")

	require.NoError(t, err)
	assert.Equal(t, "subject-1", identity.SubjectID)
	assert.Equal(t, "ann@example.com", identity.Email)
	assert.True(t, identity.HasRole("admin"))
	assert.False(t, identity.HasRole("editor"))
}

func TestAccessService_Resolve_EmptyTokenTouchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAccessSvc(ctrl)

	_, err := svc.Resolve(context.Background(), "")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAccessService_Resolve_Unauthenticated(t *testing.T) {
	tests := []struct {
		name  string
		setup func(auth *mock.MockAuthService, users *mock.MockUserRepository)
	}{
		{
			name: "invalid token",
			setup: func(auth *mock.MockAuthService, _ *mock.MockUserRepository) {
				auth.EXPECT().ParseSessionToken(gomock.Any(), "raw").Return(models.SessionToken{}, ErrTokenIsExpiredOrInvalid)
			},
		},
		{
			name: "revoked token",
			setup: func(auth *mock.MockAuthService, _ *mock.MockUserRepository) {
				auth.EXPECT().ParseSessionToken(gomock.Any(), "raw").Return(models.SessionToken{}, ErrTokenIsRevoked)
			},
		},
		{
			name: "deleted user",
			setup: func(auth *mock.MockAuthService, users *mock.MockUserRepository) {
				auth.EXPECT().ParseSessionToken(gomock.Any(), "raw").Return(models.SessionToken{SubjectID: "s"}, nil)
				users.EXPECT().FindUserBySubjectID(gomock.Any(), "s").Return(models.User{}, store.ErrNoUserWasFound)
			},
		},
		{
			name: "inactive user",
			setup: func(auth *mock.MockAuthService, users *mock.MockUserRepository) {
				auth.EXPECT().ParseSessionToken(gomock.Any(), "raw").Return(models.SessionToken{SubjectID: "s"}, nil)
				users.EXPECT().FindUserBySubjectID(gomock.Any(), "s").Return(models.User{ID: 1, SubjectID: "s", Active: false}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, auth, users, _ := newTestAccessSvc(ctrl)
			tt.setup(auth, users)

			identity, err := svc.Resolve(context.Background(), "raw")

			assert.ErrorIs(t, err, ErrUnauthenticated)
			assert.True(t, identity.IsZero())
		})
	}
}

func TestAccessService_Resolve_StoreFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, auth, users, roles := newTestAccessSvc(ctrl)
	dbErr := errors.New("db gone")

	auth.EXPECT().ParseSessionToken(gomock.Any(), "raw").Return(models.SessionToken{SubjectID: "s"}, nil)
	users.EXPECT().FindUserBySubjectID(gomock.Any(), "s").Return(models.User{ID: 1, SubjectID: "s", Active: true}, nil)
	roles.EXPECT().ListUserRoles(gomock.Any(), int64(1)).Return(nil, dbErr)

	_, err := svc.Resolve(context.Background(), "raw")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}
