// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	AccessService  AccessService
	TaskService    TaskService
	NoteService    NoteService
	RoleService    RoleService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, collector metrics.MetricsCollector, logger *logger.Logger) (*Services, error) {
	validator := validators.NewTaskKeeperValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	checkers := []store.HealthChecker{storages.HealthChecker}
	if redisChecker, ok := storages.SessionRevocationStore.(store.HealthChecker); ok {
		checkers = append(checkers, redisChecker)
	}

	authService := NewAuthService(storages.UserRepository, storages.SessionRevocationStore, validator, utils.NewUUIDGenerator(), cfg.App, logger)

	return &Services{
		AuthService:    authService,
		AccessService:  NewAccessService(authService, storages.UserRepository, storages.RoleRepository, logger),
		TaskService:    NewTaskService(storages.TaskRepository, validator, collector, logger),
		NoteService:    NewNoteService(storages.NoteRepository, validator, collector, logger),
		RoleService:    NewRoleService(storages.UserRepository, storages.RoleRepository, validator, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(logger, checkers...),
	}, nil
}
