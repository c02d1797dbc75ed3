// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

const (
	csrfCookieName = "csrf_token"
	csrfFormField  = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"

	csrfTokenBytes = 32
)

// csrf implements the double-submit cookie check.
//
// Safe methods get a token cookie when they have none. State-changing
// methods must echo the cookie value in the csrf_token form field or the
// X-CSRF-Token header, otherwise they are answered with 403. The token of
// the request is put into the context for the page templates.
func (h *Handler) csrf(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookieToken := ""
		if cookie, err := r.Cookie(csrfCookieName); err == nil {
			cookieToken = cookie.Value
		}

		if isSafeMethod(r.Method) {
			if cookieToken == "" {
				token, err := generateCSRFToken()
				if err != nil {
					h.fail(w, r, err)
					return
				}
				cookieToken = token
				h.setCSRFCookie(w, token)
			}
			next.ServeHTTP(w, r.WithContext(utils.WithCSRFToken(r.Context(), cookieToken)))
			return
		}

		submitted := r.Header.Get(csrfHeaderName)
		if submitted == "" {
			submitted = r.PostFormValue(csrfFormField)
		}

		if cookieToken == "" || subtle.ConstantTimeCompare([]byte(cookieToken), []byte(submitted)) != 1 {
			log.Warn().Str("method", r.Method).Str("path", r.URL.Path).Msg("csrf validation failed")
			h.fail(w, r, ErrCSRFTokenMismatch)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCSRFToken(r.Context(), cookieToken)))
	})
}

// The token cookie is readable by scripts so that they can send the header.
func (h *Handler) setCSRFCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: false,
		Secure:   h.cookies.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating csrf token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
