// Package view renders the server-side HTML pages from embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS exposes the embedded assets rooted at the static directory, for
// mounting under /static.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")

	return sub, errors.Wrap(err, "static assets")
}

// Renderer implements echo.Renderer on top of the embedded template set.
// Each page is parsed together with the shared layout and partials so pages
// can override the layout's blocks.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"vnd": func(amount float64) string {
		// 1234567.0 -> "1.234.567₫"
		s := strconv.FormatFloat(amount, 'f', 0, 64)
		var b strings.Builder
		for i, r := range s {
			if i > 0 && (len(s)-i)%3 == 0 && r != '-' {
				b.WriteByte('.')
			}
			b.WriteRune(r)
		}

		return b.String() + "₫"
	},
	"add": func(a, b int) int { return a + b },
	"mulf": func(price float64, quantity int) float64 {
		return price * float64(quantity)
	},
	"sub": func(a, b int) int { return a - b },
	"seq": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}

		return out
	},
}

// NewRenderer parses every page under templates/pages against the layout.
func NewRenderer() (*Renderer, error) {
	pageFiles, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "glob page templates")
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, pageFile := range pageFiles {
		name := strings.TrimSuffix(path.Base(pageFile), ".html")
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			pageFile,
		)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %q", name)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render writes the named page. Data is the handler-provided view model.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}

	return errors.Wrapf(tmpl.ExecuteTemplate(w, "layout.html", data), "render page %q", name)
}
