// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type roleRepository struct {
	*DB
	logger *logger.Logger
}

// NewRoleRepository constructs a [RoleRepository] backed by db.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *roleRepository) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRoleQuery(r.builder(), role)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.CreateRole").Msg("failed to build query")
		return models.Role{}, err
	}

	if err = r.QueryRowxContext(ctx, query, args...).Scan(&role.ID); err != nil {
		if r.errorClassifier.IsUniqueViolation(err) {
			return models.Role{}, ErrRoleAlreadyExists
		}

		log.Err(err).Str("func", "*roleRepository.CreateRole").Msg("error inserting role")
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return role, nil
}

func (r *roleRepository) FindRoleByName(ctx context.Context, name models.RoleName) (models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRoleByNameQuery(r.builder(), name)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.FindRoleByName").Msg("failed to build query")
		return models.Role{}, err
	}

	var role models.Role
	if err = r.GetContext(ctx, &role, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrRoleNotFound
		}

		log.Err(err).Str("func", "*roleRepository.FindRoleByName").Msg("error selecting role")
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return role, nil
}

func (r *roleRepository) AssignRole(ctx context.Context, userID, roleID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRoleUserQuery(r.builder(), userID, roleID)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.AssignRole").Msg("failed to build query")
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		// already assigned
		if r.errorClassifier.IsUniqueViolation(err) {
			return nil
		}

		log.Err(err).Str("func", "*roleRepository.AssignRole").
			Int64("user_id", userID).
			Int64("role_id", roleID).
			Msg("error assigning role")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *roleRepository) ListUserRoles(ctx context.Context, userID int64) ([]models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserRolesQuery(r.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.ListUserRoles").Msg("failed to build query")
		return nil, err
	}

	roles := make([]models.Role, 0)
	if err = r.SelectContext(ctx, &roles, query, args...); err != nil {
		log.Err(err).Str("func", "*roleRepository.ListUserRoles").Int64("user_id", userID).Msg("error selecting roles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return roles, nil
}
