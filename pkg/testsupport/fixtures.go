package testsupport

import (
	"context"

	"github.com/goliatone/go-formwiz/pkg/forms"
	"github.com/goliatone/go-formwiz/pkg/render"
)

// SampleForm builds a five-variant signup form covering every question
// kind. Question ids: name, age, subscribe, color, toppings.
func SampleForm(opts ...forms.Option) *forms.Form {
	return forms.New(
		"Signup",
		"A short signup wizard used across renderer tests.",
		[]forms.Question{
			forms.NewText("name", "Name", "What should we call you?"),
			forms.NewInteger("age", "Age", "Your age in years.", forms.WithRange(0, 120)),
			forms.NewBoolean("subscribe", "Subscribe", "Receive the newsletter?", true),
			forms.NewChoice("color", "Color", "Pick a favorite.", "Red", "Green", "Blue"),
			forms.NewCheckboxes("toppings", "Toppings", "Pick any.", "A", "B", "C"),
		},
		opts...,
	)
}

// StubRenderer satisfies render.Renderer, recording the last invocation and
// replying with a canned result.
type StubRenderer struct {
	RendererName string
	Result       forms.ResultSet
	Err          error

	Calls       int
	LastForm    *forms.Form
	LastOptions render.Options
}

func (s *StubRenderer) Name() string {
	if s.RendererName == "" {
		return "stub"
	}
	return s.RendererName
}

func (s *StubRenderer) Render(_ context.Context, form *forms.Form, options render.Options) (forms.ResultSet, error) {
	s.Calls++
	s.LastForm = form
	s.LastOptions = options
	return s.Result, s.Err
}

var _ render.Renderer = (*StubRenderer)(nil)
