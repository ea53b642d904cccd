// Package ui serves the embedded dashboard shell and its static assets.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"family-brief-service/internal/logging"
	"family-brief-service/internal/timeutil"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Renderer renders the dashboard shell. The sections themselves are filled
// in client-side from the JSON API.
type Renderer struct {
	templates *template.Template
	title     string
	loc       *time.Location
	logger    *slog.Logger
	now       func() time.Time
}

// NewRenderer parses the embedded templates. Generated-at times render in loc.
func NewRenderer(title string, loc *time.Location, logger *slog.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{
		templates: tmpl,
		title:     title,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Dashboard serves the dashboard page.
func (rd *Renderer) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title":     rd.title,
		"Generated": timeutil.FormatDisplayDateTime(rd.now().In(rd.loc)),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rd.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		logging.Error(rd.logger, "failed to render dashboard", err)
	}
}

// Static serves the embedded assets mounted under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return http.NotFoundHandler()
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
