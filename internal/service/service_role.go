// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

type roleService struct {
	userRepository store.UserRepository
	roleRepository store.RoleRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewRoleService(userRepository store.UserRepository, roleRepository store.RoleRepository, validator validators.Validator, logger *logger.Logger) RoleService {
	return &roleService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateRole stores a new role. The name is trimmed before validation.
func (s *roleService) CreateRole(ctx context.Context, name, description string) (models.Role, error) {
	log := logger.FromContext(ctx)

	role := models.Role{
		Name:        models.RoleName(strings.TrimSpace(name)),
		Description: strings.TrimSpace(description),
	}
	if err := s.validator.Validate(ctx, role); err != nil {
		log.Warn().Err(err).Str("name", name).Msg("invalid role")
		return models.Role{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.roleRepository.CreateRole(ctx, role)
	if errors.Is(err, store.ErrRoleAlreadyExists) {
		return models.Role{}, fmt.Errorf("%w: %w", ErrRoleAlreadyExists, err)
	}
	if err != nil {
		log.Err(err).Str("name", string(role.Name)).Msg("role creation failed")
		return models.Role{}, fmt.Errorf("role creation failed: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("name", string(created.Name)).Msg("role created")
	return created, nil
}

// AssignRole grants the named role to the user with the given email.
// Granting a role the user already holds succeeds.
func (s *roleService) AssignRole(ctx context.Context, email, roleName string) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	role, err := s.roleRepository.FindRoleByName(ctx, models.RoleName(strings.TrimSpace(roleName)))
	if errors.Is(err, store.ErrRoleNotFound) {
		return fmt.Errorf("%w: %w", ErrRoleNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("role", roleName).Msg("role search by name failed")
		return fmt.Errorf("role search by name failed: %w", err)
	}

	if err = s.roleRepository.AssignRole(ctx, user.ID, role.ID); err != nil {
		log.Err(err).Int64("user_id", user.ID).Int64("role_id", role.ID).Msg("role assignment failed")
		return fmt.Errorf("role assignment failed: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Str("role", string(role.Name)).Msg("role assigned")
	return nil
}
