// Package render hosts the view engine and output writer contracts the
// publisher talks to. The engine resolves named views to text/template
// instances with cross-reference helpers; markup semantics beyond template
// execution are out of scope.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	serrors "git.home.luguber.info/inful/symdoc/internal/errors"
	"git.home.luguber.info/inful/symdoc/internal/linkmap"
)

//go:embed views/*.tmpl
var builtinViews embed.FS

// Renderer renders a named view with the given data.
type Renderer interface {
	Render(viewName string, data any) (string, error)
}

// Engine is a text/template-backed Renderer. Views are parsed once at
// construction; rendering is read-only and safe for concurrent use.
type Engine struct {
	templates map[string]*template.Template
}

// NewEngine parses the built-in views plus any *.tmpl overrides found in
// templatesDir (overrides win by view name).
func NewEngine(templatesDir string, reg *linkmap.Registry) (*Engine, error) {
	funcs := template.FuncMap{
		"linkTo":     reg.LinkTo,
		"escape":     html.EscapeString,
		"lower":      strings.ToLower,
		"replaceAll": strings.ReplaceAll,
	}

	e := &Engine{templates: make(map[string]*template.Template)}
	if err := e.parseFS(builtinViews, "views", funcs); err != nil {
		return nil, fmt.Errorf("parse built-in views: %w", err)
	}
	if templatesDir != "" {
		if _, err := os.Stat(templatesDir); err != nil {
			return nil, serrors.Wrap(err, serrors.CategoryConfig, serrors.SeverityFatal,
				"templates directory not readable")
		}
		if err := e.parseFS(os.DirFS(templatesDir), ".", funcs); err != nil {
			return nil, fmt.Errorf("parse template overrides: %w", err)
		}
	}
	return e, nil
}

func (e *Engine) parseFS(fsys fs.FS, root string, funcs template.FuncMap) error {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		raw, err := fs.ReadFile(fsys, filepath.Join(root, entry.Name()))
		if err != nil {
			return fmt.Errorf("read view %s: %w", entry.Name(), err)
		}
		tpl, err := template.New(name).Funcs(funcs).Parse(string(raw))
		if err != nil {
			return fmt.Errorf("parse view %s: %w", name, err)
		}
		e.templates[name] = tpl
	}
	return nil
}

// Views returns the known view names.
func (e *Engine) Views() []string {
	out := make([]string, 0, len(e.templates))
	for name := range e.templates {
		out = append(out, name)
	}
	return out
}

// Render executes the named view. An unknown view name returns empty output
// with a render-category error; the caller logs it and continues, so one bad
// view costs one page, not the run.
func (e *Engine) Render(viewName string, data any) (string, error) {
	tpl, ok := e.templates[viewName]
	if !ok {
		return "", serrors.New(serrors.CategoryRender, serrors.SeverityError,
			fmt.Sprintf("unknown view %q", viewName))
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", serrors.Wrap(err, serrors.CategoryRender, serrors.SeverityError,
			fmt.Sprintf("render view %q", viewName))
	}
	return buf.String(), nil
}
