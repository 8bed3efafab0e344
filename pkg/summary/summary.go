// Package summary renders a completed run's results as a text receipt. The
// template engine sits behind a seam so callers can swap pongo2 out; the
// built-in template prints the form title and one "label: answer" row per
// recorded result.
package summary

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	gotemplate "github.com/goliatone/go-template"

	"github.com/goliatone/go-formwiz/pkg/forms"
)

// TemplateRenderer is the engine contract receipts render through.
type TemplateRenderer interface {
	// Render resolves name as inline template content when it looks like
	// one, otherwise as a named template if the engine supports those.
	Render(name string, data any, out ...io.Writer) (string, error)

	// RenderString parses and executes inline template content.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)

	// RegisterFilter adds a named value filter usable from templates.
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
}

// DefaultTemplate is the receipt used when no override is configured.
const DefaultTemplate = "{{ title }}\n{% for row in rows %}{{ row.label }}: {{ row.value }}\n{% endfor %}"

// Option configures a Summary.
type Option func(*Summary)

// WithEngine swaps the template engine.
func WithEngine(engine TemplateRenderer) Option {
	return func(s *Summary) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithTemplate overrides the built-in receipt template.
func WithTemplate(src string) Option {
	return func(s *Summary) {
		if strings.TrimSpace(src) != "" {
			s.template = src
		}
	}
}

// WithTemplateFS renders the named template file from fsys instead of the
// built-in receipt.
func WithTemplateFS(fsys fs.FS, name string) Option {
	return func(s *Summary) {
		if fsys == nil || strings.TrimSpace(name) == "" {
			return
		}
		s.engine = newPongoEngineFS(fsys)
		s.template = name
	}
}

// WithGoTemplateOptions exists for compatibility with callers sharing
// template-adapter configuration across libraries. The options carry no
// meaning for receipts and are ignored.
func WithGoTemplateOptions(_ ...gotemplate.Option) Option {
	return func(*Summary) {}
}

// Summary renders receipts for completed forms.
type Summary struct {
	engine   TemplateRenderer
	template string
}

// New constructs a Summary with the pongo2 engine and built-in template.
func New(opts ...Option) *Summary {
	s := &Summary{
		engine:   newPongoEngine(),
		template: DefaultTemplate,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// RegisterFilter adds a named filter to the underlying engine.
func (s *Summary) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	return s.engine.RegisterFilter(name, fn)
}

// Render produces the receipt for a run. Labels come from the form's
// question titles; answers are formatted for terminal output. The template
// context carries title, description and rows (id, label, value per row).
func (s *Summary) Render(form *forms.Form, results forms.ResultSet) (string, error) {
	if form == nil {
		return "", errors.New("summary: form is nil")
	}

	rows := make([]map[string]any, 0, results.Len())
	for _, r := range results.Results() {
		label := r.QuestionID()
		if q, ok := form.Question(r.QuestionID()); ok && q.Title() != "" {
			label = q.Title()
		}
		rows = append(rows, map[string]any{
			"id":    r.QuestionID(),
			"label": label,
			"value": formatValue(r.Value()),
		})
	}

	data := map[string]any{
		"title":       form.Title(),
		"description": form.Description(),
		"rows":        rows,
	}
	return s.engine.Render(s.template, data)
}

func formatValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		if value {
			return "yes"
		}
		return "no"
	case []string:
		return strings.Join(value, ", ")
	default:
		return fmt.Sprintf("%v", value)
	}
}
