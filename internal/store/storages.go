// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-task-keeper/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository         UserRepository
	RoleRepository         RoleRepository
	TaskRepository         TaskRepository
	NoteRepository         NoteRepository
	SessionRevocationStore SessionRevocationStore
	HealthChecker          HealthChecker
}

// NewStorages builds the SQL repositories on top of db. A nil revocations
// store is replaced by [NewNopRevocationStore].
func NewStorages(db *DB, revocations SessionRevocationStore, log *logger.Logger) *Storages {
	if revocations == nil {
		revocations = NewNopRevocationStore()
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		RoleRepository:         NewRoleRepository(db, log),
		TaskRepository:         NewTaskRepository(db, log),
		NoteRepository:         NewNoteRepository(db, log),
		SessionRevocationStore: revocations,
		HealthChecker:          db,
	}
}
