// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

const (
	taskListPath = "/"

	formTaskTitle     = "item_text"
	formTaskCompleted = "completed"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	list, err := h.services.TaskService.ListTasksPartitioned(ctx, identity)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, pageTasks, list)
}

// addTask creates a task from the item_text form field. A request without
// the field at all is a validation error, an empty value is passed on as is.
func (h *Handler) addTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	if err := r.ParseForm(); err != nil {
		h.fail(w, r, errors.Join(ErrInvalidForm, err))
		return
	}

	var title *string
	if r.PostForm.Has(formTaskTitle) {
		value := r.PostForm.Get(formTaskTitle)
		title = &value
	}

	if _, err := h.services.TaskService.AddTask(ctx, identity, title); err != nil {
		h.fail(w, r, err)
		return
	}

	http.Redirect(w, r, taskListPath, http.StatusFound)
}

// toggleTask sets the completion flag to the presence of the completed
// form field.
func (h *Handler) toggleTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	taskID, err := parseID(r, "taskID")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err = r.ParseForm(); err != nil {
		h.fail(w, r, errors.Join(ErrInvalidForm, err))
		return
	}

	if err = h.services.TaskService.ToggleTask(ctx, identity, taskID, r.PostForm.Has(formTaskCompleted)); err != nil {
		h.fail(w, r, err)
		return
	}

	http.Redirect(w, r, taskListPath, http.StatusFound)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	taskID, err := parseID(r, "taskID")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err = h.services.TaskService.DeleteTask(ctx, identity, taskID); err != nil {
		h.fail(w, r, err)
		return
	}

	http.Redirect(w, r, taskListPath, http.StatusFound)
}

// parseID reads a positive integer path parameter.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
