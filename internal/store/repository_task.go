// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository is the SQL implementation of [TaskRepository] over the
// "tasks" table.
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// ListTasks returns every task owned by ownerID in ascending id order.
func (t *taskRepository) ListTasks(ctx context.Context, ownerID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTasksQuery(t.builder(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("failed to build query")
		return nil, err
	}

	tasks := make([]models.Task, 0)
	if err = t.SelectContext(ctx, &tasks, query, args...); err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error selecting tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tasks, nil
}

// CreateTask inserts task and returns it with the generated ID.
func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTaskQuery(t.builder(), task)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("failed to build query")
		return models.Task{}, err
	}

	if err = t.QueryRowxContext(ctx, query, args...).Scan(&task.ID); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error inserting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return task, nil
}

// GetTask returns the task with the given id regardless of its owner, or
// [ErrTaskNotFound].
func (t *taskRepository) GetTask(ctx context.Context, id int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTaskQuery(t.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("failed to build query")
		return models.Task{}, err
	}

	var task models.Task
	if err = t.GetContext(ctx, &task, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", "*taskRepository.GetTask").Int64("task_id", id).Msg("error selecting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// SetCompleted sets the completion flag of task id owned by ownerID.
// Returns [ErrTaskNotFound] if no such row exists at write time.
func (t *taskRepository) SetCompleted(ctx context.Context, id int64, ownerID string, completed bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskCompletedQuery(t.builder(), id, ownerID, completed)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.SetCompleted").Msg("failed to build query")
		return err
	}

	return t.execAffectingOne(ctx, "*taskRepository.SetCompleted", ErrTaskNotFound, query, args...)
}

// DeleteTask removes task id owned by ownerID.
// Returns [ErrTaskNotFound] if no such row exists at write time.
func (t *taskRepository) DeleteTask(ctx context.Context, id int64, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTaskQuery(t.builder(), id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("failed to build query")
		return err
	}

	return t.execAffectingOne(ctx, "*taskRepository.DeleteTask", ErrTaskNotFound, query, args...)
}
