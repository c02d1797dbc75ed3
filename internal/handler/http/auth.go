// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	formEmail    = "email"
	formPassword = "password"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageLogin, "")
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageRegister, "")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := credentialsFromForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.metrics.RecordLoginAttempt(metrics.LoginFailed)
		h.rejectCredentials(w, r, pageLogin, credentials.Email, err)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	h.metrics.RecordLoginAttempt(metrics.LoginSucceeded)
	log.Info().Str("subject_id", user.SubjectID).Msg("user logged in")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := credentialsFromForm(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		h.rejectCredentials(w, r, pageRegister, credentials.Email, err)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	log.Info().Str("subject_id", user.SubjectID).Msg("user registered")
	http.Redirect(w, r, "/", http.StatusFound)
}

// logout revokes the current session token and clears the cookie. A token
// that no longer parses has nothing left to revoke.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if raw := sessionFromRequest(r); raw != "" {
		token, err := h.services.AuthService.ParseSessionToken(ctx, raw)
		switch {
		case err == nil:
			if err = h.services.AuthService.Logout(ctx, token); err != nil {
				h.fail(w, r, err)
				return
			}
		case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrTokenIsRevoked):
			log.Debug().Err(err).Msg("logout with unusable token")
		default:
			h.fail(w, r, err)
			return
		}
	}

	h.cookies.clearSession(w)
	h.cookies.setFlashes(w, r, models.Flash{Category: models.FlashInfo, Message: app.MsgLoggedOut})
	http.Redirect(w, r, loginPath, http.StatusFound)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) bool {
	token, err := h.services.AuthService.CreateSessionToken(r.Context(), user)
	if err != nil {
		h.fail(w, r, err)
		return false
	}

	h.cookies.setSession(w, token)
	return true
}

// rejectCredentials re-renders the login or registration page with a flash
// describing err. Server-side failures go through fail.
func (h *Handler) rejectCredentials(w http.ResponseWriter, r *http.Request, page, email string, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		h.fail(w, r, err)
		return
	}

	logger.FromRequest(r).Warn().Err(err).Int("status", status).Str("page", page).Msg("credentials rejected")
	h.render(w, r, status, page, email, models.Flash{Category: models.FlashDanger, Message: credentialsMessage(err)})
}

func credentialsMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return app.MsgInvalidLoginPassword
	case errors.Is(err, service.ErrUserInactive):
		return app.MsgUserInactive
	case errors.Is(err, service.ErrEmailAlreadyTaken):
		return app.MsgEmailAlreadyTaken
	case errors.Is(err, service.ErrInvalidEmail):
		return app.MsgInvalidEmail
	case errors.Is(err, service.ErrPasswordTooShort):
		return app.MsgPasswordTooShort
	case errors.Is(err, service.ErrPasswordTooLong):
		return app.MsgPasswordTooLong
	default:
		return app.MsgCredentialsRequired
	}
}

func credentialsFromForm(r *http.Request) (models.Credentials, error) {
	if err := r.ParseForm(); err != nil {
		return models.Credentials{}, errors.Join(ErrInvalidForm, err)
	}

	return models.Credentials{
		Email:    strings.TrimSpace(r.PostForm.Get(formEmail)),
		Password: r.PostForm.Get(formPassword),
	}, nil
}
