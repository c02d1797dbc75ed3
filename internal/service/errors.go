// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong email or password")
	ErrUserInactive        = errors.New("user is inactive")
	ErrEmailAlreadyTaken   = errors.New("email is already registered")
	ErrUserNotFound        = errors.New("user not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenIsRevoked          = errors.New("token is revoked")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStoreUnavailable      = errors.New("store is unavailable")

	ErrTaskNotFound      = errors.New("task not found")
	ErrNoteNotFound      = errors.New("note not found")
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleAlreadyExists = errors.New("role already exists")
)

// Validation errors. Every one of them is returned wrapped together with
// ErrValidation.
var (
	ErrValidation = errors.New("validation failed")

	ErrTitleMissing     = errors.New("title field is missing")
	ErrTitleEmpty       = validators.ErrEmptyTitle
	ErrTitleTooLong     = validators.ErrTitleTooLong
	ErrNoteContentEmpty = validators.ErrEmptyContent
	ErrInvalidEmail     = validators.ErrInvalidEmail
	ErrPasswordTooShort = validators.ErrPasswordTooShort
	ErrPasswordTooLong  = validators.ErrPasswordTooLong
)
