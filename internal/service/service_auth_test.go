// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	m.ids.EXPECT().Generate().Return("subject-1")
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "ann@example.com", user.Email)
			assert.Equal(t, "subject-1", user.SubjectID)
			assert.True(t, user.Active)
			assert.Nil(t, user.ConfirmedAt)
			assert.Equal(t, fixedNow, user.CreatedAt)
			assert.NotEqual(t, "password123", user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
			user.ID = 7
			return user, nil
		})

	user, err := svc.RegisterUser(ctx, models.Credentials{Email: "  ann@example.com ", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestAuthService_RegisterUser_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	tests := []struct {
		name  string
		creds models.Credentials
		want  error
	}{
		{"bad email", models.Credentials{Email: "not-an-email", Password: "password123"}, validators.ErrInvalidEmail},
		{"short password", models.Credentials{Email: "ann@example.com", Password: "short"}, validators.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.creds)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)

	m.ids.EXPECT().Generate().Return("subject-1")
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "ann@example.com", Password: "password123"})

	assert.ErrorIs(t, err, ErrEmailAlreadyTaken)
}

func TestAuthService_RegisterUser_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)
	dbErr := errors.New("disk full")

	m.ids.EXPECT().Generate().Return("subject-1")
	m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "ann@example.com", Password: "password123"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrEmailAlreadyTaken)
}

// ── Login ────────────────────────────────────────────────────────────────────

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)
	stored := models.User{ID: 3, Email: "ann@example.com", Password: hashed(t, "password123"), Active: true, SubjectID: "s"}

	m.users.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)

	user, err := svc.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)
	stored := models.User{ID: 3, Email: "ann@example.com", Password: hashed(t, "password123"), Active: true}

	m.users.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "password124"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)

	m.users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "ghost@example.com", Password: "password123"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)
	stored := models.User{ID: 3, Email: "ann@example.com", Password: hashed(t, "password123"), Active: false}

	m.users.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "password123"})

	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{Email: " ", Password: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(context.Background(), models.Credentials{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Session tokens ───────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseSessionToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)
	svc.now = time.Now
	ctx := context.Background()

	m.ids.EXPECT().Generate().Return("token-1")
	m.revocations.EXPECT().IsRevoked(ctx, "token-1").Return(false, nil)

	token, err := svc.CreateSessionToken(ctx, models.User{ID: 1, SubjectID: "subject-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseSessionToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "subject-1", parsed.SubjectID)
	assert.Equal(t, "token-1", parsed.ID)
	assert.Equal(t, testAppConfig.SessionIssuer, parsed.Issuer)
}

func TestAuthService_CreateSessionToken_NoSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)

	m.ids.EXPECT().Generate().Return("token-1")

	_, err := svc.CreateSessionToken(context.Background(), models.User{ID: 1})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseSessionToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken(testAppConfig.SessionIssuer, "s", "t", time.Minute, testAppConfig.SessionSignKey, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	otherKey, err := utils.GenerateJWTToken(testAppConfig.SessionIssuer, "s", "t", time.Hour, "other-key", time.Now())
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", "s", "t", time.Hour, testAppConfig.SessionSignKey, time.Now())
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"empty":        "",
		"garbage":      "not.a.token",
		"expired":      expired.SignedString,
		"other key":    otherKey.SignedString,
		"other issuer": otherIssuer.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseSessionToken(ctx, raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseSessionToken_Revoked(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)
	token, err := utils.GenerateJWTToken(testAppConfig.SessionIssuer, "s", "jti-9", time.Hour, testAppConfig.SessionSignKey, time.Now())
	require.NoError(t, err)

	m.revocations.EXPECT().IsRevoked(gomock.Any(), "jti-9").Return(true, nil)

	_, err = svc.ParseSessionToken(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsRevoked)
}

func TestAuthService_ParseSessionToken_RevocationStoreDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)
	token, err := utils.GenerateJWTToken(testAppConfig.SessionIssuer, "s", "jti-9", time.Hour, testAppConfig.SessionSignKey, time.Now())
	require.NoError(t, err)
	redisErr := errors.New("connection refused")

	m.revocations.EXPECT().IsRevoked(gomock.Any(), "jti-9").Return(false, redisErr)

	_, err = svc.ParseSessionToken(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, redisErr)
	assert.NotErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)
	expiry := fixedNow.Add(30 * time.Minute)
	token := models.SessionToken{RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1", ExpiresAt: jwt.NewNumericDate(expiry)}}

	m.revocations.EXPECT().Revoke(gomock.Any(), "jti-1", expiry).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), token))
}

func TestAuthService_Logout_WithoutTokenID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	assert.NoError(t, svc.Logout(context.Background(), models.SessionToken{}))
}

func TestAuthService_Logout_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl)
	token := models.SessionToken{RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1"}}

	m.revocations.EXPECT().Revoke(gomock.Any(), "jti-1", fixedNow.Add(testAppConfig.SessionDuration)).Return(errors.New("redis down"))

	assert.Error(t, svc.Logout(context.Background(), token))
}
