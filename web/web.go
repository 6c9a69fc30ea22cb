// Package web holds the single-page UI: the index template and its static assets.
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
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageData is rendered into the index template.
type PageData struct {
	Title   string
	Version string
}

// Pages renders the HTML pages of the UI.
type Pages struct {
	index *template.Template
}

// NewPages parses the embedded templates.
func NewPages() (*Pages, error) {
	index, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	return &Pages{index: index}, nil
}

// RenderIndex writes the index page to w.
func (p *Pages) RenderIndex(w io.Writer, data PageData) error {
	return p.index.Execute(w, data)
}

// StaticHandler serves the embedded assets. Mount it under /static/ with the prefix stripped.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
