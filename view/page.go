// Package view renders the catalog screen. It holds no state: every render is a pure
// function of the controller's snapshot.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/emzola/catalog/service"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the stylesheet and script served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Page is the whole catalog screen.
type Page struct {
	Loading bool
	List    ListView
	Form    *FormView
	Alerts  []string
	Confirm *Confirm
}

// Confirm is a yes/no prompt answered by posting to Action.
type Confirm struct {
	Prompt string
	Action string
}

// ErrorPage is shown when a browser request cannot be served.
type ErrorPage struct {
	Status  int
	Message string
}

// NewPage builds the screen for st. alerts are shown as a blocking dialog.
func NewPage(st service.State, alerts []string) Page {
	p := Page{
		Loading: st.Loading,
		List:    NewListView(st.Books),
		Alerts:  alerts,
	}
	if st.FormOpen && st.Draft != nil {
		fv := NewFormView(*st.Draft, st.Selected != nil)
		if st.Selected != nil {
			fv.BookID = st.Selected.ID
		}
		p.Form = &fv
	}
	return p
}

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template into a buffer first, so that a template error
// never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	buf := new(bytes.Buffer)
	if err := r.tmpl.ExecuteTemplate(buf, name, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
