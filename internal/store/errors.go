// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a user whose email
	// is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup produces an empty
	// result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRoleAlreadyExists is returned when creating a role whose name is
	// already taken.
	ErrRoleAlreadyExists = errors.New("role already exists")

	// ErrRoleNotFound is returned when a role lookup by name finds nothing.
	ErrRoleNotFound = errors.New("role was not found")

	// ErrTaskNotFound is returned when no task row matches the requested id
	// (and owner, for writes).
	ErrTaskNotFound = errors.New("task was not found")

	// ErrNoteNotFound is returned when no note row matches the requested id
	// (and owner, for writes).
	ErrNoteNotFound = errors.New("note was not found")
)

// Low-level database operation errors. These are wrapped together with the
// driver error so callers can match either.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnsupportedDSN is returned when the DSN selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
