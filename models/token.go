// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken wraps a signed JWT that identifies a logged-in user.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access. The "sub" claim
// carries the user's subject id and the "jti" claim a unique token id used
// for revocation on logout.
type SessionToken struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation placed in the session
	// cookie.
	SignedString string `json:"-"`

	// SubjectID is a parsed copy of the "sub" claim.
	SubjectID string `json:"-"`
}

// GetSubjectID extracts the user's subject id from the "sub" claim.
//
// Returns an error if the claim is missing or empty.
func (t *SessionToken) GetSubjectID() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting subject from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("empty subject in token")
	}

	return subject, nil
}

// ExpiresIn returns the remaining lifetime of the token relative to now.
// A token without an expiry, or an already expired one, returns zero.
func (t *SessionToken) ExpiresIn(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}

	left := t.ExpiresAt.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *SessionToken) String() string {
	return t.SignedString
}
