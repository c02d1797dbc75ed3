// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and ownership.
//
// Owned records (tasks, notes) reference SubjectID rather than the numeric
// row ID, so the value carried in the session is the same value used as the
// join key.
type User struct {
	// ID is the internal numeric row identifier.
	ID int64 `db:"id" json:"-"`

	// Email is the unique login identifier, compared case-sensitively.
	Email string `db:"email" json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is never a plaintext value and is never exposed via JSON.
	Password string `db:"password" json:"-"`

	// Active reports whether the account may sign in.
	Active bool `db:"active" json:"active"`

	// ConfirmedAt is the time the account was confirmed, nil when unconfirmed.
	ConfirmedAt *time.Time `db:"confirmed_at" json:"confirmed_at,omitempty"`

	// SubjectID is a stable opaque identifier assigned once at creation.
	// It is immutable and unique across all users.
	SubjectID string `db:"subject_id" json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Roles lists the roles assigned to the user. Order is irrelevant.
	Roles []Role `db:"-" json:"roles,omitempty"`
}

// NewUser builds a new active, unconfirmed [User].
//
// The subject id is assigned here, at construction time, and never
// regenerated afterwards.
func NewUser(email, passwordHash, subjectID string, now time.Time) User {
	return User{
		Email:     email,
		Password:  passwordHash,
		Active:    true,
		SubjectID: subjectID,
		CreatedAt: now.UTC(),
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the email/password pair submitted on login or registration.
type Credentials struct {
	Email    string
	Password string
}
