// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-task-keeper/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withSecurityHeaders)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.csrf)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Method("GET", "/metrics", metrics.Handler(h.gatherer))

		r.Get(loginPath, h.loginPage)
		r.With(h.limitLogin).Post(loginPath, h.login)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Get("/", h.listTasks)
		r.Get("/lista", h.listTasks)
		r.Post("/add-task", h.addTask)
		r.Post("/toggle-status/{taskID}", h.toggleTask)
		r.Post("/delete-task/{taskID}", h.deleteTask)

		r.Get(notesPath, h.listNotes)
		r.Post(notesPath, h.addNote)
		r.Post("/delete-note/{noteID}", h.deleteNote)

		r.Get("/logout", h.logout)
		r.Get("/user/{name}", h.userPage)
		r.Get("/form", h.formPage)
		r.Post("/form", h.submitForm)
		r.Get("/kot", h.kotPage)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
