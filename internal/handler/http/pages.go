// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/models"
)

const formName = "name"

func (h *Handler) userPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageUser, chi.URLParam(r, "name"))
}

func (h *Handler) formPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageForm, "")
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, errors.Join(ErrInvalidForm, err))
		return
	}

	name := strings.TrimSpace(r.PostForm.Get(formName))
	if name == "" {
		h.render(w, r, http.StatusOK, pageForm, "", models.Flash{Category: models.FlashDanger, Message: app.MsgFormNameRequired})
		return
	}

	h.render(w, r, http.StatusOK, pageForm, name, models.Flash{Category: models.FlashSuccess, Message: app.MsgFormSubmitted})
}

func (h *Handler) kotPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageKot, nil)
}
