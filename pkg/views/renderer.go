// Package views renders the browser's HTML pages. It implements echo's
// Renderer so handlers can call c.Render with one of the template names
// below.
package views

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/dirview/dirview/pkg/models"
	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	IndexTemplate    = "index.html"
	FileListTemplate = "file-list.html"
	ErrorTemplate    = "error.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"humanSize": func(size uint64) string {
		return humanize.Bytes(size)
	},
	"formatTime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05")
	},
	"relativeTime": func(t time.Time) string {
		return humanize.Time(t)
	},
	"deleteURL": func(e models.Entry) string {
		return fileURL("/delete", e)
	},
	"downloadURL": func(e models.Entry) string {
		return fileURL("/download", e)
	},
}

type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template. Echo buffers the output, so a failing
// template never produces a partial response.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return errors.WithStack(r.templates.ExecuteTemplate(w, name, data))
}
