// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

type taskService struct {
	taskRepository store.TaskRepository
	validator      validators.Validator
	guard          ownershipGuard

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, validator validators.Validator, collector metrics.MetricsCollector, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		validator:      validator,
		guard:          ownershipGuard{metrics: collector},
		logger:         logger,
	}
}

// ListTasks returns the caller's tasks in insertion order.
func (s *taskService) ListTasks(ctx context.Context, identity models.Identity) ([]models.Task, error) {
	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	tasks, err := s.taskRepository.ListTasks(ctx, identity.SubjectID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("subject_id", identity.SubjectID).Msg("listing tasks failed")
		return nil, fmt.Errorf("listing tasks failed: %w", err)
	}

	return tasks, nil
}

// ListTasksPartitioned returns the caller's tasks split into incomplete and
// completed ones.
func (s *taskService) ListTasksPartitioned(ctx context.Context, identity models.Identity) (models.TaskList, error) {
	tasks, err := s.ListTasks(ctx, identity)
	if err != nil {
		return models.TaskList{}, err
	}

	return models.PartitionTasks(tasks), nil
}

// AddTask creates an incomplete task with the title exactly as submitted.
//
// A nil title means the form field was absent and yields ErrTitleMissing.
// An empty or too long title yields ErrTitleEmpty or ErrTitleTooLong. All
// three come wrapped with ErrValidation.
func (s *taskService) AddTask(ctx context.Context, identity models.Identity, title *string) (models.Task, error) {
	log := logger.FromContext(ctx)

	if identity.IsZero() {
		return models.Task{}, ErrUnauthenticated
	}
	if title == nil {
		log.Warn().Msg("task title is missing")
		return models.Task{}, fmt.Errorf("%w: %w", ErrValidation, ErrTitleMissing)
	}

	task := models.Task{Title: *title, OwnerID: identity.SubjectID}
	if err := s.validator.Validate(ctx, task); err != nil {
		log.Warn().Err(err).Msg("invalid task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Str("subject_id", identity.SubjectID).Msg("task creation failed")
		return models.Task{}, fmt.Errorf("task creation failed: %w", err)
	}

	return created, nil
}

// ToggleTask sets the completed flag of a task owned by the caller.
func (s *taskService) ToggleTask(ctx context.Context, identity models.Identity, taskID int64, completed bool) error {
	task, err := s.ownedTask(ctx, identity, taskID)
	if err != nil {
		return err
	}
	if !s.guard.permits(ctx, identity, task.OwnerID, metrics.ResourceTask, metrics.ActionToggle, taskID) {
		return nil
	}

	err = s.taskRepository.SetCompleted(ctx, taskID, identity.SubjectID, completed)
	return s.mutationResult(ctx, err, taskID, "task toggle failed")
}

// DeleteTask removes a task owned by the caller.
func (s *taskService) DeleteTask(ctx context.Context, identity models.Identity, taskID int64) error {
	task, err := s.ownedTask(ctx, identity, taskID)
	if err != nil {
		return err
	}
	if !s.guard.permits(ctx, identity, task.OwnerID, metrics.ResourceTask, metrics.ActionDelete, taskID) {
		return nil
	}

	err = s.taskRepository.DeleteTask(ctx, taskID, identity.SubjectID)
	return s.mutationResult(ctx, err, taskID, "task deletion failed")
}

// ownedTask loads the task regardless of its owner. The ownership decision
// is left to the caller.
func (s *taskService) ownedTask(ctx context.Context, identity models.Identity, taskID int64) (models.Task, error) {
	if identity.IsZero() {
		return models.Task{}, ErrUnauthenticated
	}

	task, err := s.taskRepository.GetTask(ctx, taskID)
	if errors.Is(err, store.ErrTaskNotFound) {
		return models.Task{}, fmt.Errorf("%w: %w", ErrTaskNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", taskID).Msg("task lookup failed")
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}

	return task, nil
}

// mutationResult maps the outcome of a guarded write. The write finds no
// row when the task was deleted after the lookup.
func (s *taskService) mutationResult(ctx context.Context, err error, taskID int64, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrTaskNotFound) {
		return fmt.Errorf("%w: %w", ErrTaskNotFound, err)
	}

	logger.FromContext(ctx).Err(err).Int64("id", taskID).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
