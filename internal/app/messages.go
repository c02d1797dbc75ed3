// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shown by the web
// pages as flash messages.
//
// Keeping them in one place keeps the wording consistent between handlers
// and lets tests assert on the same constants.
package app

const (
	// MsgNoteSaved confirms that a note was stored.
	MsgNoteSaved = "Note saved!"

	// MsgNoteContentEmpty is shown when a note is submitted blank or with
	// whitespace only.
	MsgNoteContentEmpty = "Note content cannot be empty!"

	MsgFormSubmitted    = "Form Submitted Successfully"
	MsgFormNameRequired = "Name is required!"

	// MsgLoggedOut is shown on the login page after logout.
	MsgLoggedOut = "You have been logged out."

	MsgInvalidLoginPassword = "Invalid email or password."
	MsgUserInactive         = "This account is disabled."
	MsgEmailAlreadyTaken    = "An account with this email already exists."
	MsgInvalidEmail         = "Please enter a valid email address."
	MsgPasswordTooShort     = "Password must be at least 8 characters long."
	MsgPasswordTooLong      = "Password is too long."
	MsgCredentialsRequired  = "Email and password are required."
)
