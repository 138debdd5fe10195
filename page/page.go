// package page composes the single self-contained HTML page: shell, styles, the embedded documents and the script that browses them.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"gitlab.com/efronlicht/docbundle/docs"
	"gitlab.com/efronlicht/docbundle/render"
	"gitlab.com/efronlicht/docbundle/viewer"
)

//go:embed assets/page.html assets/style.css assets/client.js
var assets embed.FS

var tmpl = template.Must(template.New("page.html").ParseFS(assets, "assets/page.html", "assets/style.css", "assets/client.js"))

const (
	// Title is the <title> of every generated page.
	Title = "Wikipedia - Documentación Técnica"
	// Placeholder is shown in the title area until a document is rendered; with no documents, it stays.
	Placeholder = "Cargando..."
	// ISOFormat is the machine-readable generation timestamp, in the <time datetime> attribute.
	ISOFormat = time.RFC3339
	// DisplayFormat is the human-readable generation timestamp.
	DisplayFormat = "2006-01-02 15:04 MST"
)

// Data is everything the page template needs.
type Data struct {
	// Docs is the output of docs.Marshal. It is trusted as-is: Marshal guarantees it can't escape the script.
	Docs      template.JS
	Ext       string
	Markers   []string
	Generated time.Time
	BuildID   string
	// Fallback, if non-empty, is shown to readers without javascript.
	Fallback []Section
}

// Section is one document rendered ahead of time.
type Section struct {
	ID, Title string
	HTML      template.HTML
}

func (Data) Title() string         { return Title }
func (Data) Placeholder() string   { return Placeholder }
func (Data) ISOFormat() string     { return ISOFormat }
func (Data) DisplayFormat() string { return DisplayFormat }

// Compose writes the page to w.
func Compose(w io.Writer, d Data) error {
	if d.Docs == "" {
		d.Docs = "{}"
	}
	if d.Markers == nil {
		d.Markers = []string{}
	}
	if err := tmpl.Execute(w, d); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

// Sections renders every document in m with r, in navigation order.
func Sections(m docs.Map, ext string, r render.Renderer) ([]Section, error) {
	names := viewer.Order(m)
	sections := make([]Section, len(names))
	for i, name := range names {
		b, err := r.Render([]byte(m[name]))
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		sections[i] = Section{
			ID:    fmt.Sprintf("doc-%d", i),
			Title: viewer.DisplayName(name, ext),
			HTML:  template.HTML(b),
		}
	}
	return sections, nil
}
