package summary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// pongoEngine satisfies TemplateRenderer over a pongo2 set. Without a
// loader it renders string templates only; with one, names resolve to
// template files and parsed templates are cached.
type pongoEngine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	loadable  bool
}

var _ TemplateRenderer = (*pongoEngine)(nil)

func newPongoEngine() *pongoEngine {
	return &pongoEngine{set: pongo2.NewSet("summary")}
}

func newPongoEngineFS(fsys fs.FS) *pongoEngine {
	return &pongoEngine{
		set:       pongo2.NewSet("summary", pongo2.NewFSLoader(fsys)),
		templates: make(map[string]*pongo2.Template),
		loadable:  true,
	}
}

func (e *pongoEngine) Render(name string, data any, out ...io.Writer) (string, error) {
	if isTemplateContent(name) {
		return e.RenderString(name, data, out...)
	}
	if e == nil || !e.loadable {
		return "", fmt.Errorf("summary: no template named %q", name)
	}

	tmpl, err := e.template(name)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, data, out...)
}

func (e *pongoEngine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("summary: engine is nil")
	}

	tmpl, err := e.set.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("summary: parse template: %w", err)
	}
	return e.execute(tmpl, data, out...)
}

func (e *pongoEngine) execute(tmpl *pongo2.Template, data any, out ...io.Writer) (string, error) {
	ctx, err := templateContext(data)
	if err != nil {
		return "", fmt.Errorf("summary: convert data: %w", err)
	}

	var buf bytes.Buffer

	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()

	if err != nil {
		return "", fmt.Errorf("summary: execute template: %w", err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := w.Write([]byte(rendered)); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *pongoEngine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("summary: load template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}

// RegisterFilter wires a plain filter function into pongo2's process-wide
// filter table. Names already taken are rejected.
func (e *pongoEngine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("summary: filter name and function required")
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "summary_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}

	if pongo2.FilterExists(name) {
		return fmt.Errorf("summary: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, filter)
}

func isTemplateContent(s string) bool {
	return strings.Contains(s, "{{") || strings.Contains(s, "{%")
}

func templateContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	default:
		m, err := jsonToMap(v)
		if err != nil {
			return nil, err
		}
		return pongo2.Context(m), nil
	}
}

func jsonToMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
