// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification with bcrypt, and
// the session token lifecycle, including revocation on logout.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// revocations remembers token ids invalidated by Logout.
	revocations store.SessionRevocationStore

	validator validators.Validator

	// ids generates subject ids for new users and token ids for sessions.
	ids IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// hashCost is the bcrypt cost used at registration.
	hashCost int

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with session
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	revocations store.SessionRevocationStore,
	validator validators.Validator,
	ids IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		revocations:    revocations,
		validator:      validator,
		ids:            ids,
		tokenSignKey:   cfg.SessionSignKey,
		tokenIssuer:    cfg.SessionIssuer,
		tokenDuration:  cfg.SessionDuration,
		hashCost:       bcrypt.DefaultCost,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new active user account.
//
// The email is trimmed, both credentials are validated, the password is
// hashed with bcrypt and the user gets a fresh subject id through
// [models.NewUser].
//
// Returns the persisted user or:
//   - ErrValidation wrapping the validator error for bad credentials.
//   - ErrEmailAlreadyTaken if the email is registered already.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Email = strings.TrimSpace(credentials.Email)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Warn().Err(err).Str("email", credentials.Email).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.NewUser(credentials.Email, string(hash), a.ids.Generate(), a.now())

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Warn().Str("email", user.Email).Msg("email already registered")
		return models.User{}, fmt.Errorf("%w: %w", ErrEmailAlreadyTaken, err)
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Unknown emails and wrong passwords both yield ErrWrongPassword. A correct
// password on a deactivated account yields ErrUserInactive.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials.Email = strings.TrimSpace(credentials.Email)
	if credentials.Email == "" || credentials.Password == "" {
		log.Warn().Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, ErrInvalidDataProvided)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", credentials.Email).Msg("login for unknown email")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(credentials.Password)); err != nil {
		log.Warn().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	if !foundUser.Active {
		log.Warn().Int64("id", foundUser.ID).Msg("inactive user tried to log in")
		return models.User{}, ErrUserInactive
	}

	return foundUser, nil
}

// CreateSessionToken issues a signed session token for the given user.
//
// The token subject is the user's subject id and its jti a fresh id, so a
// single session can be revoked without touching the others.
func (a *authService) CreateSessionToken(ctx context.Context, user models.User) (models.SessionToken, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.SubjectID, a.ids.Generate(), a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("session token creation failed")
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseSessionToken validates a raw session token.
//
// Any signature, issuer, expiry or claim failure is normalised to
// ErrTokenIsExpiredOrInvalid. A token revoked by Logout yields
// ErrTokenIsRevoked. Failing to reach the revocation store is returned as
// is.
func (a *authService) ParseSessionToken(ctx context.Context, rawToken string) (models.SessionToken, error) {
	log := logger.FromContext(ctx)

	if rawToken == "" {
		return models.SessionToken{}, ErrTokenIsExpiredOrInvalid
	}

	token, err := utils.ValidateAndParseJWTToken(rawToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.SessionToken{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.revocations.IsRevoked(ctx, token.ID)
	if err != nil {
		log.Err(err).Str("jti", token.ID).Msg("revocation check failed")
		return models.SessionToken{}, fmt.Errorf("revocation check failed: %w", err)
	}
	if revoked {
		log.Info().Str("jti", token.ID).Msg("revoked session token used")
		return models.SessionToken{}, ErrTokenIsRevoked
	}

	return token, nil
}

// Logout revokes the token until its own expiry. Without a configured
// revocation store this does nothing and the caller only clears the cookie.
func (a *authService) Logout(ctx context.Context, token models.SessionToken) error {
	if token.ID == "" {
		return nil
	}

	until := a.now().Add(a.tokenDuration)
	if token.ExpiresAt != nil {
		until = token.ExpiresAt.Time
	}

	if err := a.revocations.Revoke(ctx, token.ID, until); err != nil {
		logger.FromContext(ctx).Err(err).Str("jti", token.ID).Msg("session revocation failed")
		return fmt.Errorf("session revocation failed: %w", err)
	}

	return nil
}
