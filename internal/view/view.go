// Package view renders the HTML pages from templates embedded in the
// binary.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/pasko-evg/superlists/internal/model"
	"github.com/pasko-evg/superlists/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Level   string
	Message string
}

// Page carries everything the templates need. Handlers fill in only the
// fields their page uses.
type Page struct {
	Title       string
	CurrentUser string
	Flashes     []Flash

	// Item form state: the submitted text is re-displayed alongside its
	// validation errors; nothing is saved on a failed submit.
	FormText   string
	TextErrors []string

	// View-list page
	List  *model.List
	Items []model.Item

	// My-lists page
	Owner *model.User
	Lists []service.ListSummary
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
