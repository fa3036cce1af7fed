// Package web holds the page templates, static assets and the view models they render.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

// ExecuteTemplateFunc renders the named template into wr.
type ExecuteTemplateFunc func(wr io.Writer, name string, data any) error

// Template names.
const (
	TmplPage           = "page"
	TmplHub            = "hub"
	TmplSuggestionForm = "suggestion_form"
	TmplAdminList      = "admin_list"
	TmplNotify         = "notify"
	TmplSubscribe      = "subscribe"
)

// Templates parses the embedded templates.
func Templates() (ExecuteTemplateFunc, error) {
	tmpl, err := template.New("").ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl.ExecuteTemplate, nil
}

// Assets serves the embedded static files rooted at static/.
func Assets() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
