// Package forms holds the form model: a page-sequenced list of typed
// questions, their per-keystroke input state, and the aggregate result a
// completed run produces. Rendering lives elsewhere; everything in this
// package is plain in-memory state intended for a single owning goroutine.
package forms

// Question is one prompt within a form. Five variants implement it: Text,
// Integer, Boolean, Choice and Checkboxes. Configuration (id, title, bounds,
// choices) is fixed at construction; the accumulated input mutates during
// rendering and freezes once the question is submitted.
type Question interface {
	ID() string
	Title() string
	Description() string
	Kind() Kind

	// Reset clears accumulated input back to construction-time defaults.
	// Configuration is untouched. Ignored once submitted.
	Reset()

	// Submit validates the variant's completion criteria and freezes the
	// question. Fails with a *QuestionError on double submission or on
	// invalid/unset input, leaving stored state unchanged.
	Submit() error

	Submitted() bool

	// Input returns the current, possibly unsubmitted value in the
	// variant's native shape: string, int64, bool, string or []string.
	Input() any

	// Result converts the question into its result record. Only meaningful
	// after submission; errors with a *QuestionError before.
	Result() (Result, error)

	// Require makes this question conditional on another question's answer.
	// A question whose requirement is unmet is skipped by the renderer.
	Require(questionID string, want any)

	// Requirement exposes the configured dependency, if any.
	Requirement() (questionID string, want any, ok bool)
}

type requirement struct {
	questionID string
	want       any
}

// base carries the configuration and lifecycle state shared by every
// question variant.
type base struct {
	id          string
	title       string
	description string
	submitted   bool
	req         *requirement
}

func (b *base) ID() string          { return b.id }
func (b *base) Title() string       { return b.title }
func (b *base) Description() string { return b.description }
func (b *base) Submitted() bool     { return b.submitted }

func (b *base) Require(questionID string, want any) {
	b.req = &requirement{questionID: questionID, want: want}
}

func (b *base) Requirement() (string, any, bool) {
	if b.req == nil {
		return "", nil, false
	}
	return b.req.questionID, b.req.want, true
}
