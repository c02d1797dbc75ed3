// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

// errorStatuses is checked in order; the first match wins. Errors may wrap
// several sentinels (ErrUnauthenticated wraps ErrUserInactive), so the
// order matters.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{ErrInvalidForm, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrUserInactive, http.StatusForbidden},
	{ErrCSRFTokenMismatch, http.StatusForbidden},
	{service.ErrTaskNotFound, http.StatusNotFound},
	{service.ErrNoteNotFound, http.StatusNotFound},
	{ErrInvalidID, http.StatusNotFound},
	{service.ErrEmailAlreadyTaken, http.StatusConflict},
	{service.ErrStoreUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// fail logs err and writes the matching status. Unauthenticated callers are
// sent to the login page instead.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	switch {
	case status == http.StatusUnauthorized:
		log.Info().Err(err).Msg("unauthenticated request")
		http.Redirect(w, r, loginPath, http.StatusFound)
		return
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
	default:
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, http.StatusText(status), status)
}
