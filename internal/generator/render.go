package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"text/template"

	"github.com/example/genrepo/internal/config"
	"github.com/example/genrepo/internal/templates"
)

// RenderContext carries everything a repository template may reference.
type RenderContext struct {
	ModelName          string
	ModelModule        string
	ModelClass         string
	IDField            string
	IDType             string
	Methods            []config.Method
	PersonalizeMethods []string
	ORM                string
	Async              bool
	CommitStrategy     string
	BaseModule         string
	BaseClassName      string
}

// Has reports whether the method set includes name.
func (c RenderContext) Has(name string) bool {
	for _, m := range c.Methods {
		if string(m) == name {
			return true
		}
	}
	return false
}

// Commit reports whether write-method bodies should commit the session.
func (c RenderContext) Commit() bool {
	return c.CommitStrategy == config.CommitStrategyCommit
}

// Flush reports whether write-method bodies should flush the session.
func (c RenderContext) Flush() bool {
	return c.CommitStrategy == config.CommitStrategyFlush
}

// Renderer renders the packaged repository templates, or a user-supplied
// override directory substituting the packaged set 1:1 by identifier.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the template set. An empty overrideDir selects the
// packaged templates.
func NewRenderer(overrideDir string) (*Renderer, error) {
	var fsys fs.FS
	if overrideDir != "" {
		fsys = os.DirFS(overrideDir)
	} else {
		var err error
		fsys, err = templates.Repository()
		if err != nil {
			return nil, fmt.Errorf("failed to locate packaged templates: %w", err)
		}
	}
	tmpl, err := template.New("repository").ParseFS(fsys, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes one template by identifier.
func (r *Renderer) Render(name string, ctx RenderContext) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, ctx); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
