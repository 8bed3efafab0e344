// Package formwiz runs page-sequenced question wizards in the terminal.
// The subpackages carry the machinery (forms, console input, renderers,
// declarative definitions, the run coordinator); this package re-exports
// the pieces small hosts need so they can import one path.
package formwiz

import (
	"context"

	"github.com/goliatone/go-formwiz/pkg/forms"
	"github.com/goliatone/go-formwiz/pkg/render"
	"github.com/goliatone/go-formwiz/pkg/renderers/cli"
	"github.com/goliatone/go-formwiz/pkg/renderers/prompt"
	"github.com/goliatone/go-formwiz/pkg/schema"
	"github.com/goliatone/go-formwiz/pkg/wizard"
)

// Core model aliases so hosts rarely import the subpackages directly.
type (
	Form       = forms.Form
	Question   = forms.Question
	Result     = forms.Result
	ResultSet  = forms.ResultSet
	Registry   = render.Registry
	Renderer   = render.Renderer
	Options    = render.Options
	Definition = schema.Definition
	Wizard     = wizard.Wizard
	Request    = wizard.Request
)

// ErrAborted reports a run the user canceled. Matches through errors.Is on
// any renderer's cancellation error.
var ErrAborted = render.ErrAborted

// New builds a form from questions in asking order.
func New(title, description string, questions []forms.Question, opts ...forms.Option) *Form {
	return forms.New(title, description, questions, opts...)
}

// NewText builds a free-text question.
func NewText(id, title, description string, opts ...forms.TextOption) *forms.Text {
	return forms.NewText(id, title, description, opts...)
}

// NewInteger builds a whole-number question.
func NewInteger(id, title, description string, opts ...forms.IntegerOption) *forms.Integer {
	return forms.NewInteger(id, title, description, opts...)
}

// NewBoolean builds a yes/no question with a default.
func NewBoolean(id, title, description string, defaultChoice bool) *forms.Boolean {
	return forms.NewBoolean(id, title, description, defaultChoice)
}

// NewChoice builds a pick-one question.
func NewChoice(id, title, description string, choices ...string) *forms.Choice {
	return forms.NewChoice(id, title, description, choices...)
}

// NewCheckboxes builds a pick-any question.
func NewCheckboxes(id, title, description string, choices ...string) *forms.Checkboxes {
	return forms.NewCheckboxes(id, title, description, choices...)
}

// WithCharacterLimit caps a text question's input length.
func WithCharacterLimit(n int) forms.TextOption { return forms.WithCharacterLimit(n) }

// WithRange bounds an integer question.
func WithRange(min, max int64) forms.IntegerOption { return forms.WithRange(min, max) }

// WithAccent sets the form's accent color as #rrggbb.
func WithAccent(hex string) forms.Option { return forms.WithAccent(hex) }

// WithCallback registers a completion callback fired once per run.
func WithCallback(fn func(forms.ResultSet)) forms.Option { return forms.WithCallback(fn) }

// NewCLIRenderer builds the raw-terminal renderer.
func NewCLIRenderer(opts ...cli.Option) *cli.Renderer { return cli.New(opts...) }

// NewPromptRenderer builds the line-prompt renderer.
func NewPromptRenderer(opts ...prompt.Option) *prompt.Renderer { return prompt.New(opts...) }

// DefaultRegistry returns a registry with both built-in renderers.
func DefaultRegistry() *Registry {
	registry := render.NewRegistry()
	registry.MustRegister(cli.New())
	registry.MustRegister(prompt.New())
	return registry
}

// NewWizard constructs the run coordinator.
func NewWizard(opts ...wizard.Option) *Wizard { return wizard.New(opts...) }

// Run drives a form through the default wizard on the raw terminal. It is
// the simplest entry point for hosts that just want answers.
func Run(ctx context.Context, form *Form) (ResultSet, error) {
	return wizard.New().Run(ctx, wizard.Request{Form: form})
}
