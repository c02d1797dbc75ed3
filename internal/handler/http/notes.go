// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	notesPath = "/notatnik"

	formNoteContent = "content"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	h.renderNotes(w, r)
}

// addNote saves a note and re-renders the notebook with a flash. Blank
// content is reported the same way instead of an error status.
func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		h.fail(w, r, errors.Join(ErrInvalidForm, err))
		return
	}

	_, err := h.services.NoteService.AddNote(ctx, identity, r.PostForm.Get(formNoteContent))
	switch {
	case errors.Is(err, service.ErrValidation):
		h.renderNotes(w, r, models.Flash{Category: models.FlashDanger, Message: app.MsgNoteContentEmpty})
	case err != nil:
		h.fail(w, r, err)
	default:
		h.renderNotes(w, r, models.Flash{Category: models.FlashSuccess, Message: app.MsgNoteSaved})
	}
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	noteID, err := parseID(r, "noteID")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err = h.services.NoteService.DeleteNote(ctx, identity, noteID); err != nil {
		h.fail(w, r, err)
		return
	}

	http.Redirect(w, r, notesPath, http.StatusFound)
}

func (h *Handler) renderNotes(w http.ResponseWriter, r *http.Request, flashes ...models.Flash) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	notes, err := h.services.NoteService.ListNotes(ctx, identity)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, pageNotes, notes, flashes...)
}
