// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-task-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "identity", IdentityCtxKey.String())
	assert.Equal(t, "csrfToken", CSRFTokenCtxKey.String())
}

func TestIdentityRoundTrip(t *testing.T) {
	identity := models.Identity{SubjectID: "sub-1", Email: "a@b.c"}
	ctx := WithIdentity(context.Background(), identity)

	got, ok := GetIdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetIdentityFromContext_ZeroIdentity(t *testing.T) {
	ctx := WithIdentity(context.Background(), models.Identity{})
	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "sub-1")
	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}

func TestCSRFTokenRoundTrip(t *testing.T) {
	assert.Equal(t, "tok", GetCSRFTokenFromContext(WithCSRFToken(context.Background(), "tok")))
	assert.Empty(t, GetCSRFTokenFromContext(context.Background()))
}
