// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

// accessService resolves the caller of a request. It is built once at
// startup and handed to the session middleware, which calls Resolve for
// every protected request.
type accessService struct {
	authService    AuthService
	userRepository store.UserRepository
	roleRepository store.RoleRepository

	logger *logger.Logger
}

func NewAccessService(authService AuthService, userRepository store.UserRepository, roleRepository store.RoleRepository, logger *logger.Logger) AccessService {
	return &accessService{
		authService:    authService,
		userRepository: userRepository,
		roleRepository: roleRepository,
		logger:         logger,
	}
}

// Resolve returns the identity behind rawToken together with its roles.
//
// A missing, invalid, expired or revoked token, a token of a user that no
// longer exists and an inactive user all yield ErrUnauthenticated. Store
// failures are returned wrapped.
func (s *accessService) Resolve(ctx context.Context, rawToken string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if rawToken == "" {
		return models.Identity{}, ErrUnauthenticated
	}

	token, err := s.authService.ParseSessionToken(ctx, rawToken)
	if errors.Is(err, ErrTokenIsExpiredOrInvalid) || errors.Is(err, ErrTokenIsRevoked) {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("session token parsing failed: %w", err)
	}

	user, err := s.userRepository.FindUserBySubjectID(ctx, token.SubjectID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("subject_id", token.SubjectID).Msg("session of a deleted user")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrUserNotFound)
	}
	if err != nil {
		log.Err(err).Str("subject_id", token.SubjectID).Msg("user search by subject id failed")
		return models.Identity{}, fmt.Errorf("user search by subject id failed: %w", err)
	}

	if !user.Active {
		log.Warn().Int64("id", user.ID).Msg("session of an inactive user")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrUserInactive)
	}

	roles, err := s.roleRepository.ListUserRoles(ctx, user.ID)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("listing user roles failed")
		return models.Identity{}, fmt.Errorf("listing user roles failed: %w", err)
	}
	user.Roles = roles

	return models.NewIdentity(user), nil
}
