// Package wizard coordinates a complete run: it resolves the form from
// whichever input the request carries, resolves the theme selection, picks
// a renderer from the registry and drives it to completion.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwiz/pkg/forms"
	"github.com/goliatone/go-formwiz/pkg/openapi"
	"github.com/goliatone/go-formwiz/pkg/render"
	"github.com/goliatone/go-formwiz/pkg/renderers/cli"
	"github.com/goliatone/go-formwiz/pkg/renderers/prompt"
	"github.com/goliatone/go-formwiz/pkg/schema"
)

const defaultRendererName = "cli"

// Option customises the wizard configuration.
type Option func(*Wizard)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(w *Wizard) {
		w.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(w *Wizard) {
		w.defaultRenderer = name
	}
}

// WithThemeSelector passes a go-theme selector through so theme/variant
// choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(w *Wizard) {
		w.selector = selector
	}
}

// WithTheme sets the theme and variant used when a request does not name
// its own.
func WithTheme(name, variant string) Option {
	return func(w *Wizard) {
		w.themeName = name
		w.themeVariant = variant
	}
}

// WithTranslator localizes question titles and descriptions during
// rendering. The locale comes from each request.
func WithTranslator(translator render.Translator) Option {
	return func(w *Wizard) {
		w.translator = translator
	}
}

// Wizard runs forms end to end. It applies sensible defaults (both built-in
// renderers registered, raw terminal renderer preferred) while remaining
// open to dependency injection.
type Wizard struct {
	registry        *render.Registry
	defaultRenderer string
	selector        theme.ThemeSelector
	themeName       string
	themeVariant    string
	translator      render.Translator
	defaultsApplied bool
}

// New constructs a Wizard applying any provided options. A missing registry
// is initialised with the built-in renderers so callers can start with a
// single constructor call.
func New(options ...Option) *Wizard {
	w := &Wizard{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	w.applyDefaults()
	return w
}

// Request describes one run. Exactly one form source is used: an explicit
// Form wins, then a declarative Definition, then an OpenAPI document with
// an operation id.
type Request struct {
	// Form runs as-is.
	Form *forms.Form

	// Definition builds the form from a declarative document. It is
	// validated before use.
	Definition *schema.Definition

	// OpenAPIDoc plus OperationID derive the form from an OpenAPI
	// operation's request body. Skipped-property details are available via
	// openapi.Build for callers that need them.
	OpenAPIDoc  *openapi3.T
	OperationID string

	// Renderer names the renderer to use. If empty, the wizard falls back
	// to the configured default.
	Renderer string

	// ThemeName and ThemeVariant select a theme for this run; empty values
	// fall back to the construction-time defaults.
	ThemeName    string
	ThemeVariant string

	// Locale selects the locale for the configured translator.
	Locale string

	// Values pre-populates question input by question identifier.
	Values map[string]any
}

// Run resolves the request and drives the renderer to completion, returning
// the aggregate results of the run.
func (w *Wizard) Run(ctx context.Context, req Request) (forms.ResultSet, error) {
	if ctx == nil {
		return forms.ResultSet{}, errors.New("wizard: context is required")
	}
	if err := ctx.Err(); err != nil {
		return forms.ResultSet{}, err
	}
	if !w.defaultsApplied {
		w.applyDefaults()
	}

	form, err := w.resolveForm(req)
	if err != nil {
		return forms.ResultSet{}, err
	}

	renderer, err := w.rendererFor(req.Renderer)
	if err != nil {
		return forms.ResultSet{}, err
	}

	opts := render.Options{
		Values:     req.Values,
		Theme:      w.resolveTheme(req),
		Locale:     req.Locale,
		Translator: w.translator,
	}

	results, err := renderer.Render(ctx, form, opts)
	if err != nil {
		return forms.ResultSet{}, fmt.Errorf("wizard: render form: %w", err)
	}
	return results, nil
}

func (w *Wizard) resolveForm(req Request) (*forms.Form, error) {
	switch {
	case req.Form != nil:
		return req.Form, nil
	case req.Definition != nil:
		if err := req.Definition.Validate(); err != nil {
			return nil, fmt.Errorf("wizard: definition: %w", err)
		}
		return req.Definition.Form(), nil
	case req.OpenAPIDoc != nil:
		if req.OperationID == "" {
			return nil, errors.New("wizard: operation id is required")
		}
		form, _, err := openapi.Build(req.OpenAPIDoc, req.OperationID)
		if err != nil {
			return nil, fmt.Errorf("wizard: build form: %w", err)
		}
		return form, nil
	}
	return nil, errors.New("wizard: form, definition, or openapi document is required")
}

func (w *Wizard) rendererFor(name string) (render.Renderer, error) {
	if w.registry == nil {
		return nil, errors.New("wizard: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = w.defaultRenderer
	}

	if target != "" {
		renderer, err := w.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("wizard: renderer %q: %w", name, err)
		}
	}

	names := w.registry.List()
	if len(names) == 0 {
		return nil, errors.New("wizard: no renderers registered")
	}

	renderer, err := w.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("wizard: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

// resolveTheme turns the requested theme into renderer configuration.
// Resolution failures degrade to unthemed rendering rather than failing
// the run.
func (w *Wizard) resolveTheme(req Request) *theme.RendererConfig {
	name := req.ThemeName
	if name == "" {
		name = w.themeName
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = w.themeVariant
	}
	if w.selector == nil || name == "" {
		return nil
	}

	selection, err := w.selector.Select(name, variant)
	if err != nil || selection == nil {
		return nil
	}
	return themeConfig(selection)
}

// themeConfig flattens a selection into renderer configuration: variant
// tokens override the manifest's base tokens.
func themeConfig(selection *theme.Selection) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	if len(tokens) > 0 {
		cfg.Tokens = tokens
	}
	return cfg
}

func (w *Wizard) applyDefaults() {
	if w.defaultsApplied {
		return
	}

	if w.registry == nil {
		w.registry = render.NewRegistry()
		w.registry.MustRegister(cli.New())
		w.registry.MustRegister(prompt.New())
	}
	if w.defaultRenderer == "" {
		w.defaultRenderer = defaultRendererName
	}

	w.defaultsApplied = true
}
