// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	sessionCookieName = "session"
	flashCookieName   = "flash"
)

var marshalFlashes = json.Marshal

type cookieSettings struct {
	secure        bool
	signKey       string
	sessionMaxAge time.Duration
}

func (c cookieSettings) setSession(w http.ResponseWriter, token models.SessionToken) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(c.sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c cookieSettings) clearSession(w http.ResponseWriter) {
	c.expire(w, sessionCookieName, true)
}

func sessionFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setFlashes stores flashes for the next rendered page. The cookie value is
// the base64 JSON payload and its HMAC signature joined by a dot. Flashes
// that cannot be encoded are dropped with a warning.
func (c cookieSettings) setFlashes(w http.ResponseWriter, r *http.Request, flashes ...models.Flash) {
	payload, err := marshalFlashes(flashes)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).
			Str("func", "cookieSettings.setFlashes").
			Int("flashes", len(flashes)).
			Msg("flash messages dropped")
		return
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded + "." + utils.HashString(encoded, c.signKey),
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes returns the flashes left by the previous response and clears
// the cookie. Tampered or malformed cookies yield nothing.
func (c cookieSettings) popFlashes(w http.ResponseWriter, r *http.Request) []models.Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	c.expire(w, flashCookieName, true)

	encoded, signature, ok := strings.Cut(cookie.Value, ".")
	if !ok || !utils.VerifyHashString(encoded, signature, c.signKey) {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var flashes []models.Flash
	if err = json.Unmarshal(payload, &flashes); err != nil {
		return nil
	}
	return flashes
}

func (c cookieSettings) expire(w http.ResponseWriter, name string, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: httpOnly,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
