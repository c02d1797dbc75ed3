// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, HMAC
// signing, HTTP response writing, an HTTP client, session token generation
// and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the session middleware stores the
// resolved [models.Identity] of the caller.
var IdentityCtxKey = contextKey("identity")

// CSRFTokenCtxKey holds the CSRF token of the current request so that
// rendered forms can embed it.
var CSRFTokenCtxKey = contextKey("csrfToken")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the caller identity from the context.
//
// ok is false when no identity was stored or the stored one is zero.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.IsZero() {
		return models.Identity{}, false
	}
	return identity, true
}

// WithCSRFToken returns a copy of ctx carrying the CSRF token.
func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CSRFTokenCtxKey, token)
}

// GetCSRFTokenFromContext returns the CSRF token stored by [WithCSRFToken],
// or an empty string.
func GetCSRFTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(CSRFTokenCtxKey).(string)
	return token
}
