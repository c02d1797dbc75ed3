// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrParsingTemplates is returned by NewHandler when the embedded page
	// templates fail to parse.
	ErrParsingTemplates = errors.New("error parsing page templates")

	// ErrInvalidID is returned for a path id that is not a positive integer.
	// It is reported as 404, like an id that does not exist.
	ErrInvalidID = errors.New("invalid id in path")

	// ErrCSRFTokenMismatch is returned when a state-changing request carries
	// no CSRF token or one that differs from the cookie.
	ErrCSRFTokenMismatch = errors.New("csrf token validation failed")

	ErrInvalidForm = errors.New("invalid form data")
)
