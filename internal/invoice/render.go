package invoice

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer writes invoice documents as A4-paged HTML.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"upper": strings.ToUpper,
	}
	tmpl, err := template.New("invoice.html.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/invoice.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing invoice template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, doc Document) error {
	if err := r.tmpl.Execute(w, doc); err != nil {
		return fmt.Errorf("rendering invoice %s: %w", doc.OrderNumber, err)
	}
	return nil
}
