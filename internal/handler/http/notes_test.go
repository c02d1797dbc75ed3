// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
)

func TestListNotes(t *testing.T) {
	env := newTestEnv(t)
	env.expectSession(alice)
	env.notes.EXPECT().ListNotes(gomock.Any(), alice).Return([]models.Note{{ID: 4, Content: "<b>remember</b>"}}, nil)

	rr := env.serve(withSession(httptest.NewRequest(http.MethodGet, "/notatnik", nil)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "&lt;b&gt;remember&lt;/b&gt;")
	assert.Contains(t, rr.Body.String(), `action="/delete-note/4"`)
}

func TestAddNote(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		addErr    error
		wantFlash string
	}{
		{
			name:      "saved",
			content:   "hello",
			wantFlash: app.MsgNoteSaved,
		},
		{
			name:      "blank content",
			content:   "   ",
			addErr:    fmt.Errorf("%w: %w", service.ErrValidation, service.ErrNoteContentEmpty),
			wantFlash: app.MsgNoteContentEmpty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.expectSession(alice)
			env.notes.EXPECT().AddNote(gomock.Any(), alice, tt.content).Return(models.Note{}, tt.addErr)
			env.notes.EXPECT().ListNotes(gomock.Any(), alice).Return(nil, nil)

			rr := env.serve(withSession(formRequest("/notatnik", url.Values{"content": {tt.content}})))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantFlash)
		})
	}
}

func TestDeleteNote(t *testing.T) {
	t.Run("redirects to the notebook", func(t *testing.T) {
		env := newTestEnv(t)
		env.expectSession(bob)
		env.notes.EXPECT().DeleteNote(gomock.Any(), bob, int64(9)).Return(nil)

		rr := env.serve(withSession(formRequest("/delete-note/9", nil)))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/notatnik", rr.Header().Get("Location"))
	})

	t.Run("missing note is 404", func(t *testing.T) {
		env := newTestEnv(t)
		env.expectSession(bob)
		env.notes.EXPECT().DeleteNote(gomock.Any(), bob, int64(9)).Return(service.ErrNoteNotFound)

		rr := env.serve(withSession(formRequest("/delete-note/9", nil)))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
