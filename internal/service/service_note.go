// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator
	guard          ownershipGuard

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, validator validators.Validator, collector metrics.MetricsCollector, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validator,
		guard:          ownershipGuard{metrics: collector},
		logger:         logger,
	}
}

func (s *noteService) ListNotes(ctx context.Context, identity models.Identity) ([]models.Note, error) {
	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	notes, err := s.noteRepository.ListNotes(ctx, identity.SubjectID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("subject_id", identity.SubjectID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

// AddNote stores the trimmed content. Blank content is rejected with
// ErrNoteContentEmpty wrapped in ErrValidation and nothing is stored.
func (s *noteService) AddNote(ctx context.Context, identity models.Identity, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if identity.IsZero() {
		return models.Note{}, ErrUnauthenticated
	}

	note := models.Note{Content: strings.TrimSpace(content), OwnerID: identity.SubjectID}
	if err := s.validator.Validate(ctx, note); err != nil {
		log.Warn().Err(err).Msg("invalid note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("subject_id", identity.SubjectID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return created, nil
}

// DeleteNote removes a note owned by the caller. ErrNoteNotFound when the
// id does not exist, silent nil when the note belongs to someone else.
func (s *noteService) DeleteNote(ctx context.Context, identity models.Identity, noteID int64) error {
	log := logger.FromContext(ctx)

	if identity.IsZero() {
		return ErrUnauthenticated
	}

	note, err := s.noteRepository.GetNote(ctx, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	}
	if err != nil {
		log.Err(err).Int64("id", noteID).Msg("note lookup failed")
		return fmt.Errorf("note lookup failed: %w", err)
	}

	if !s.guard.permits(ctx, identity, note.OwnerID, metrics.ResourceNote, metrics.ActionDelete, noteID) {
		return nil
	}

	err = s.noteRepository.DeleteNote(ctx, noteID, identity.SubjectID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	}
	if err != nil {
		log.Err(err).Int64("id", noteID).Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}
