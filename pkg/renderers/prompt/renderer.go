// Package prompt renders forms as a sequence of line-editing prompts built
// on survey. It trades the raw-terminal wizard's keystroke control for
// familiar readline-style input, which also works over dumb terminals and
// ssh sessions.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formwiz/pkg/forms"
	"github.com/goliatone/go-formwiz/pkg/render"
)

// Renderer drives a form through a PromptDriver.
type Renderer struct {
	driver   PromptDriver
	pageSize int
}

var _ render.Renderer = (*Renderer)(nil)

// Option configures the renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the survey-backed default driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithPageSize bounds how many options list prompts show at once.
func WithPageSize(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.pageSize = n
		}
	}
}

// New builds a prompt renderer with the survey driver as default.
func New(opts ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "prompt"
}

// Render walks the form one prompt per question, auto-skipping questions
// whose requirement is unmet. Cancellation inside the driver surfaces as
// render.ErrAborted.
func (r *Renderer) Render(ctx context.Context, form *forms.Form, options render.Options) (forms.ResultSet, error) {
	if form == nil {
		return forms.ResultSet{}, render.ErrNilForm
	}
	if form.Submitted() {
		return form.Results(), nil
	}

	if err := seedValues(form, options.Values); err != nil {
		return forms.ResultSet{}, err
	}

	if form.Page() == forms.IntroPage {
		if err := r.intro(ctx, form, options); err != nil {
			return forms.ResultSet{}, err
		}
		form.Advance()
	}

	for !form.Submitted() {
		q, err := form.Current()
		if err != nil {
			form.Advance()
			continue
		}
		if q.Submitted() || skippable(form, q) {
			form.Advance()
			continue
		}
		if err := r.ask(ctx, q, options); err != nil {
			return forms.ResultSet{}, err
		}
		form.Advance()
	}
	return form.Results(), nil
}

func (r *Renderer) intro(ctx context.Context, form *forms.Form, options render.Options) error {
	if title := options.Localize(form.Title()); title != "" {
		if err := r.driver.Info(ctx, "=== "+title+" ==="); err != nil {
			return fmt.Errorf("prompt: intro: %w", err)
		}
	}
	if description := options.Localize(form.Description()); description != "" {
		if err := r.driver.Info(ctx, description); err != nil {
			return fmt.Errorf("prompt: intro: %w", err)
		}
	}
	return nil
}

func (r *Renderer) ask(ctx context.Context, q forms.Question, options render.Options) error {
	title := options.Localize(q.Title())
	description := options.Localize(q.Description())

	var err error
	switch q := q.(type) {
	case *forms.Text:
		err = r.askText(ctx, q, title, description)
	case *forms.Integer:
		err = r.askInteger(ctx, q, title, description)
	case *forms.Boolean:
		err = r.askBoolean(ctx, q, title, description)
	case *forms.Choice:
		err = r.askChoice(ctx, q, title, description)
	case *forms.Checkboxes:
		err = r.askCheckboxes(ctx, q, title, description)
	default:
		err = fmt.Errorf("unsupported question type %T", q)
	}
	if err != nil {
		return fmt.Errorf("prompt: question %q: %w", q.ID(), err)
	}
	return nil
}

func (r *Renderer) askText(ctx context.Context, q *forms.Text, title, description string) error {
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: title,
		Default: q.Value(),
		Help:    description,
		Validator: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("input must not be blank")
			}
			if n := utf8.RuneCountInString(s); n > q.Limit() {
				return fmt.Errorf("input exceeds the limit of %d characters", q.Limit())
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	if err := q.SetInput(answer); err != nil {
		return err
	}
	return q.Submit()
}

func (r *Renderer) askInteger(ctx context.Context, q *forms.Integer, title, description string) error {
	var def string
	if q.Value() != 0 || q.Negative() {
		def = strconv.FormatInt(q.Value(), 10)
	}
	answer, err := r.driver.Input(ctx, InputConfig{
		Message: title,
		Default: def,
		Help:    joinHelp(description, rangeHint(q)),
		Validator: func(s string) error {
			v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return errors.New("enter a whole number")
			}
			if v == math.MinInt64 {
				return errors.New("number is too small")
			}
			if hint := rangeHint(q); hint != "" && (v < q.Min() || v > q.Max()) {
				return errors.New("enter a whole number " + hint)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(answer), 10, 64)
	if err != nil {
		return fmt.Errorf("parse %q: %w", answer, err)
	}
	if err := q.SetInput(v); err != nil {
		return err
	}
	return q.Submit()
}

func (r *Renderer) askBoolean(ctx context.Context, q *forms.Boolean, title, description string) error {
	answer, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: title,
		Default: q.Value(),
		Help:    description,
	})
	if err != nil {
		return err
	}
	if err := q.SetChoice(answer); err != nil {
		return err
	}
	return q.Submit()
}

func (r *Renderer) askChoice(ctx context.Context, q *forms.Choice, title, description string) error {
	labels := q.Choices()
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      title,
		Options:      labels,
		DefaultIndex: q.Cursor(),
		Help:         description,
		PageSize:     r.pageSize,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(labels) {
		return fmt.Errorf("driver picked option %d of %d", idx, len(labels))
	}
	if err := q.Select(labels[idx]); err != nil {
		return err
	}
	return q.Submit()
}

func (r *Renderer) askCheckboxes(ctx context.Context, q *forms.Checkboxes, title, description string) error {
	labels := q.Choices()
	picked, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  title,
		Options:  labels,
		Defaults: checkedIndices(q),
		Help:     description,
		PageSize: r.pageSize,
	})
	if err != nil {
		return err
	}
	want := make(map[int]bool, len(picked))
	for _, idx := range picked {
		if idx < 0 || idx >= len(labels) {
			return fmt.Errorf("driver picked option %d of %d", idx, len(labels))
		}
		want[idx] = true
	}
	for i, label := range labels {
		if q.Checked(label) == want[i] {
			continue
		}
		if err := q.Toggle(label); err != nil {
			return err
		}
	}
	return q.Submit()
}

func checkedIndices(q *forms.Checkboxes) []int {
	var out []int
	for i, label := range q.Choices() {
		if q.Checked(label) {
			out = append(out, i)
		}
	}
	return out
}

// rangeHint phrases an integer question's bounds, or "" when unbounded.
func rangeHint(q *forms.Integer) string {
	var parts []string
	if q.Min() != math.MinInt64 {
		parts = append(parts, fmt.Sprintf("from %d", q.Min()))
	}
	if q.Max() != math.MaxInt64 {
		parts = append(parts, fmt.Sprintf("to %d", q.Max()))
	}
	return strings.Join(parts, " ")
}

func joinHelp(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// skippable reports whether the renderer advances past q without input: an
// unmet requirement, or a single-choice question with nothing to pick.
func skippable(form *forms.Form, q forms.Question) bool {
	if !form.MeetsRequirement(q) {
		return true
	}
	if c, ok := q.(*forms.Choice); ok && len(c.Choices()) == 0 {
		return true
	}
	return false
}

func seedValues(form *forms.Form, values map[string]any) error {
	for id, value := range values {
		q, ok := form.Question(id)
		if !ok {
			continue
		}
		if err := forms.Seed(q, value); err != nil {
			return fmt.Errorf("prompt: seed %q: %w", id, err)
		}
	}
	return nil
}
