// Package web renders the server-side pages of the curator client.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/newscurator/curator-web/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer implements echo.Renderer over the embedded page templates.
// Each page is parsed together with the layout so pages can share block names.
type Renderer struct {
	pages map[string]*template.Template
	log   zerolog.Logger
}

// NewRenderer parses every embedded page.
func NewRenderer(log zerolog.Logger) (*Renderer, error) {
	return newRenderer(templateFS, log)
}

func newRenderer(fsys fs.FS, log zerolog.Logger) (*Renderer, error) {
	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files)), log: log}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(f), ".html")
		tpl, err := template.New(name).Funcs(funcs).ParseFS(fsys, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tpl
		log.Debug().Str("template", name).Msg("template registered")
	}
	return r, nil
}

// Render executes the layout with the named page's content block.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("web: unknown template %q", name)
	}
	if err := tpl.ExecuteTemplate(w, "layout", data); err != nil {
		r.log.Error().Err(err).Str("template", name).Msg("render failed")
		return err
	}
	return nil
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

var funcs = template.FuncMap{
	"roleBadge": roleBadge,
}

func roleBadge(role string) string {
	switch role {
	case domain.RoleSuperuser:
		return "bg-purple-100 text-purple-800"
	case domain.RoleAdministrator:
		return "bg-blue-100 text-blue-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}
