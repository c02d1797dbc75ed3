// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserBySubjectID(ctx context.Context, subjectID string) (models.User, error)
}

// RoleRepository persists roles and their assignment to users.
type RoleRepository interface {
	CreateRole(ctx context.Context, role models.Role) (models.Role, error)
	FindRoleByName(ctx context.Context, name models.RoleName) (models.Role, error)
	// AssignRole links a user to a role. Assigning an already held role is
	// not an error.
	AssignRole(ctx context.Context, userID, roleID int64) error
	ListUserRoles(ctx context.Context, userID int64) ([]models.Role, error)
}

// TaskRepository persists tasks. Writes take the owner subject id and only
// touch a row whose id and owner both match.
type TaskRepository interface {
	ListTasks(ctx context.Context, ownerID string) ([]models.Task, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	SetCompleted(ctx context.Context, id int64, ownerID string, completed bool) error
	DeleteTask(ctx context.Context, id int64, ownerID string) error
}

// NoteRepository persists notes with the same ownership rules as tasks.
type NoteRepository interface {
	ListNotes(ctx context.Context, ownerID string) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, id int64) (models.Note, error)
	DeleteNote(ctx context.Context, id int64, ownerID string) error
}

// SessionRevocationStore remembers session token ids invalidated by logout
// until the tokens would have expired anyway.
type SessionRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
