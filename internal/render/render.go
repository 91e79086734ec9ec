// Package render serves the HTML views. Templates are embedded in the
// binary and exposed to handlers through Echo's Renderer interface, so a
// handler renders a view with c.Render(status, name, data).
package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Quantities is the fixed quantity-selection range offered on every view.
var Quantities = []int{0, 1, 2, 3, 4, 5}

// QuantitiesDescending is the same range in reverse, used by the
// single-order view's quantity selector.
var QuantitiesDescending = []int{5, 4, 3, 2, 1, 0}

// Renderer implements echo.Renderer over the embedded view templates.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates. A parse failure is a build defect,
// so callers treat an error here as fatal.
func New() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template into w.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
