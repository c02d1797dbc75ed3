// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

const loginPath = "/login"

// session resolves the caller from the session cookie through
// [service.AccessService] and stores the identity in the request context.
//
// Requests without a valid session are redirected to the login page before
// any handler runs; a stale cookie is cleared on the way. Failures of the
// backing stores are answered with 500.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		rawToken := sessionFromRequest(r)
		identity, err := h.services.AccessService.Resolve(r.Context(), rawToken)
		if errors.Is(err, service.ErrUnauthenticated) {
			if rawToken != "" {
				log.Info().Err(err).Msg("session rejected")
				h.cookies.clearSession(w)
			}
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}
		if err != nil {
			h.fail(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}
