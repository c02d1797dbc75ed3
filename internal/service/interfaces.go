// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks their credentials and manages the
// session tokens placed in the session cookie.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateSessionToken(ctx context.Context, user models.User) (models.SessionToken, error)
	ParseSessionToken(ctx context.Context, rawToken string) (models.SessionToken, error)
	Logout(ctx context.Context, token models.SessionToken) error
}

// AccessService turns a raw session credential into the caller [models.Identity].
type AccessService interface {
	Resolve(ctx context.Context, rawToken string) (models.Identity, error)
}

// TaskService manages the tasks of the calling identity.
//
// ToggleTask and DeleteTask return ErrTaskNotFound when no task has the
// given id. When the task exists but belongs to someone else they change
// nothing and return nil.
type TaskService interface {
	ListTasks(ctx context.Context, identity models.Identity) ([]models.Task, error)
	ListTasksPartitioned(ctx context.Context, identity models.Identity) (models.TaskList, error)
	AddTask(ctx context.Context, identity models.Identity, title *string) (models.Task, error)
	ToggleTask(ctx context.Context, identity models.Identity, taskID int64, completed bool) error
	DeleteTask(ctx context.Context, identity models.Identity, taskID int64) error
}

// NoteService manages the notes of the calling identity with the same
// ownership rules as [TaskService].
type NoteService interface {
	ListNotes(ctx context.Context, identity models.Identity) ([]models.Note, error)
	AddNote(ctx context.Context, identity models.Identity, content string) (models.Note, error)
	DeleteNote(ctx context.Context, identity models.Identity, noteID int64) error
}

// RoleService is the administrative role management used by the CLI.
type RoleService interface {
	CreateRole(ctx context.Context, name, description string) (models.Role, error)
	AssignRole(ctx context.Context, email, roleName string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	CheckHealth(ctx context.Context) error
}

// IDGenerator produces unique opaque ids for subject and token ids.
type IDGenerator interface {
	Generate() string
}
