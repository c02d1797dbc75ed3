// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldOwnerID targets the owner subject id of a task or note.
	FieldOwnerID = "owner_id"

	// FieldTitle targets the task title: non-empty, at most
	// [models.TaskTitleMaxLength] characters.
	FieldTitle = "title"

	// FieldContent targets the note content: non-blank.
	FieldContent = "content"

	// FieldRoleName targets the role name: non-blank, at most
	// [models.RoleNameMaxLength] characters.
	FieldRoleName = "role_name"

	// FieldRoleDescription targets the optional role description.
	FieldRoleDescription = "role_description"

	// FieldEmail targets a bare email address.
	FieldEmail = "email"

	// FieldPassword targets a plaintext password before hashing.
	FieldPassword = "password"
)

const (
	EmailMaxLength    = 255
	PasswordMinLength = 8
	// bcrypt ignores input past 72 bytes
	PasswordMaxBytes = 72
)

// TaskKeeperValidator implements [Validator] for tasks, notes, roles and
// credentials. Both value and pointer forms are accepted.
type TaskKeeperValidator struct{}

// NewTaskKeeperValidator constructs a new TaskKeeperValidator and returns it
// as the Validator interface.
func NewTaskKeeperValidator() Validator {
	return &TaskKeeperValidator{}
}

// Validate dispatches on the dynamic type of obj. When no fields are given,
// every field of the type is validated.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *TaskKeeperValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Task:
		return v.validateTask(ctx, value, fields...)
	case *models.Task:
		return v.validateTask(ctx, *value, fields...)

	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.Role:
		return v.validateRole(ctx, value, fields...)
	case *models.Role:
		return v.validateRole(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateTask checks a task. The title is checked as given: surrounding
// whitespace counts toward its length and a whitespace-only title is
// accepted.
func (v *TaskKeeperValidator) validateTask(_ context.Context, task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if task.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldTitle:
			if task.Title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(task.Title) > models.TaskTitleMaxLength {
				return ErrTitleTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskKeeperValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if note.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldContent:
			if strings.TrimSpace(note.Content) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskKeeperValidator) validateRole(_ context.Context, role models.Role, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRoleName, FieldRoleDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldRoleName:
			name := string(role.Name)
			if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > models.RoleNameMaxLength {
				return ErrInvalidRoleName
			}
		case FieldRoleDescription:
			if utf8.RuneCountInString(role.Description) > models.RoleDescriptionMaxLength {
				return ErrDescriptionTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskKeeperValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(credentials.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrMissingField
			}
			if utf8.RuneCountInString(credentials.Password) < PasswordMinLength {
				return ErrPasswordTooShort
			}
			if len(credentials.Password) > PasswordMaxBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail accepts a bare RFC 5322 address without display name.
func isValidEmail(email string) bool {
	if email == "" || len(email) > EmailMaxLength {
		return false
	}

	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
