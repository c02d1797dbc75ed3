// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	now := time.Now()
	token, err := GenerateJWTToken("task-keeper", "sub-1", "jti-1", time.Hour, "secret", now)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, "sub-1", token.SubjectID)
	assert.Equal(t, "jti-1", token.ID)
	assert.Equal(t, "task-keeper", token.Issuer)
	assert.WithinDuration(t, now.Add(time.Hour), token.ExpiresAt.Time, time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		tokenID  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "s", "j", time.Hour, "key"},
		{"empty subject", "iss", "", "j", time.Hour, "key"},
		{"empty token id", "iss", "s", "", time.Hour, "key"},
		{"zero duration", "iss", "s", "j", 0, "key"},
		{"empty key", "iss", "s", "j", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.tokenID, tt.duration, tt.key, time.Now())
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken("task-keeper", "sub-1", "jti-1", time.Hour, "secret", time.Now())
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "task-keeper")
	require.NoError(t, err)
	assert.Equal(t, "sub-1", parsed.SubjectID)
	assert.Equal(t, "jti-1", parsed.ID)
	assert.True(t, parsed.Valid)
	assert.Positive(t, parsed.ExpiresIn(time.Now()))
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("task-keeper", "sub-1", "jti-1", time.Hour, "secret", time.Now())
	require.NoError(t, err)
	expired, err := GenerateJWTToken("task-keeper", "sub-1", "jti-1", time.Minute, "secret", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	noJTI := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "task-keeper",
		Subject:   "sub-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noJTIString, err := noJTI.SignedString([]byte("secret"))
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer: "task-keeper", Subject: "sub-1", ID: "j",
	})
	noExpString, err := noExp.SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"garbage", "not-a-token", "secret", "task-keeper"},
		{"wrong key", valid.SignedString, "other", "task-keeper"},
		{"wrong issuer", valid.SignedString, "secret", "someone-else"},
		{"expired", expired.SignedString, "secret", "task-keeper"},
		{"missing jti", noJTIString, "secret", "task-keeper"},
		{"missing exp", noExpString, "secret", "task-keeper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			require.Error(t, err)
		})
	}
}
