// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names. Each one is parsed together with the shared layout.
const (
	pageLogin    = "login"
	pageRegister = "register"
	pageTasks    = "tasks"
	pageNotes    = "notes"
	pageUser     = "user"
	pageForm     = "form"
	pageKot      = "kot"
)

var pageNames = []string{pageLogin, pageRegister, pageTasks, pageNotes, pageUser, pageForm, pageKot}

type pages struct {
	templates map[string]*template.Template
}

func parsePages() (*pages, error) {
	p := &pages{templates: make(map[string]*template.Template, len(pageNames))}

	for _, name := range pageNames {
		t, err := template.New("layout.html").ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", name, err)
		}
		p.templates[name] = t
	}

	return p, nil
}

// view is the data every page template receives.
type view struct {
	Identity      models.Identity
	Authenticated bool
	CSRFToken     string
	Flashes       []models.Flash
	Data          any
}

// render executes page into a buffer first so that a template failure can
// still produce a clean 500. Pending cookie flashes are consumed and shown
// before the flashes passed in.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any, flashes ...models.Flash) {
	log := logger.FromRequest(r)

	t, ok := h.pages.templates[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, authenticated := utils.GetIdentityFromContext(r.Context())
	v := view{
		Identity:      identity,
		Authenticated: authenticated,
		CSRFToken:     utils.GetCSRFTokenFromContext(r.Context()),
		Flashes:       append(h.cookies.popFlashes(w, r), flashes...),
		Data:          data,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, v); err != nil {
		log.Err(err).Str("page", page).Msg("template execution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
