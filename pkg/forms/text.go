package forms

import (
	"strings"
	"unicode/utf8"
)

// DefaultCharacterLimit caps text input when no explicit limit is configured.
const DefaultCharacterLimit = 128

// Text asks for a free-form line of text. Typed input accepts printable
// ASCII; pasted input may carry anything but is truncated to the limit.
type Text struct {
	base
	limit int
	input string
}

// TextOption configures a Text question.
type TextOption func(*Text)

// WithCharacterLimit overrides DefaultCharacterLimit. Non-positive values
// are ignored.
func WithCharacterLimit(n int) TextOption {
	return func(t *Text) {
		if n > 0 {
			t.limit = n
		}
	}
}

// NewText builds a text question.
func NewText(id, title, description string, opts ...TextOption) *Text {
	t := &Text{
		base:  base{id: id, title: title, description: description},
		limit: DefaultCharacterLimit,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ Question = (*Text)(nil)

func (t *Text) Kind() Kind { return KindText }

// Limit returns the configured character limit.
func (t *Text) Limit() int { return t.limit }

// Value returns the accumulated input.
func (t *Text) Value() string { return t.input }

func (t *Text) Input() any { return t.input }

// Type appends one printable ASCII character (32..126). Anything else, or
// input past the limit, is ignored.
func (t *Text) Type(r rune) {
	if t.submitted || r < 32 || r > 126 {
		return
	}
	if utf8.RuneCountInString(t.input) >= t.limit {
		return
	}
	t.input += string(r)
}

// Backspace removes the last character.
func (t *Text) Backspace() {
	if t.submitted || t.input == "" {
		return
	}
	runes := []rune(t.input)
	t.input = string(runes[:len(runes)-1])
}

// Paste appends s truncated so the total input stays within the limit.
func (t *Text) Paste(s string) {
	if t.submitted {
		return
	}
	room := t.limit - utf8.RuneCountInString(t.input)
	if room <= 0 {
		return
	}
	runes := []rune(s)
	if len(runes) > room {
		runes = runes[:room]
	}
	t.input += string(runes)
}

// SetInput replaces the accumulated input.
func (t *Text) SetInput(s string) error {
	if t.submitted {
		return questionErr(KindText, "set input", "already submitted")
	}
	if n := utf8.RuneCountInString(s); n > t.limit {
		return questionErrf(KindText, "set input", "%d characters exceeds the limit of %d", n, t.limit)
	}
	t.input = s
	return nil
}

func (t *Text) Reset() {
	if t.submitted {
		return
	}
	t.input = ""
}

func (t *Text) Submit() error {
	if t.submitted {
		return questionErr(KindText, "submit", "already submitted")
	}
	if strings.TrimSpace(t.input) == "" {
		return questionErr(KindText, "submit", "input is blank")
	}
	if utf8.RuneCountInString(t.input) > t.limit {
		return questionErrf(KindText, "submit", "input exceeds the limit of %d characters", t.limit)
	}
	t.submitted = true
	return nil
}

func (t *Text) Result() (Result, error) {
	if !t.submitted {
		return nil, questionErr(KindText, "result", "not submitted")
	}
	return TextResult{ID: t.id, Text: t.input}, nil
}
