package render

import theme "github.com/goliatone/go-theme"

// Options carry per-run data renderers can use without mutating the form
// they were handed.
type Options struct {
	// Values pre-populates question input by question identifier before the
	// run starts. Prefilled questions still render; the user can edit the
	// seeded input. Values that violate a question's bounds abort the run.
	Values map[string]any

	// Theme carries resolved theme tokens. Renderers read the accent token
	// for chrome color; a form's own accent setting wins when present.
	Theme *theme.RendererConfig

	// Locale and Translator localize question titles and descriptions by
	// simple string substitution. Best-effort: with no translator, or on a
	// missing key, the original string is used.
	Locale     string
	Translator Translator
}

// Translator resolves a localized string for a key. Ok reports whether the
// key was found.
type Translator interface {
	Translate(locale, key string) (string, bool)
}

// Localize substitutes s through the configured translator, falling back to
// s itself.
func (o Options) Localize(s string) string {
	if o.Translator == nil || s == "" {
		return s
	}
	if out, ok := o.Translator.Translate(o.Locale, s); ok {
		return out
	}
	return s
}
