package forms

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Letter sets for interpreting typed yes/no answers. They span the common
// European affirmations (true/yes/si/ja/kyllä) so a first-letter match works
// across locales.
var (
	TrueLetters  = []rune{'t', 'y', 's', 'j', 'k'}
	FalseLetters = []rune{'f', 'n'}
)

// Boolean asks a yes/no question with a default that blank input accepts.
type Boolean struct {
	base
	def    bool
	choice bool
}

// NewBoolean builds a boolean question whose blank-input answer is
// defaultChoice.
func NewBoolean(id, title, description string, defaultChoice bool) *Boolean {
	return &Boolean{
		base:   base{id: id, title: title, description: description},
		def:    defaultChoice,
		choice: defaultChoice,
	}
}

var _ Question = (*Boolean)(nil)

func (q *Boolean) Kind() Kind { return KindBoolean }

// Default returns the choice blank input falls back to.
func (q *Boolean) Default() bool { return q.def }

// Value returns the current choice.
func (q *Boolean) Value() bool { return q.choice }

func (q *Boolean) Input() any { return q.choice }

// Decide interprets one line of typed input: blank accepts the default,
// otherwise the line's first character is matched case-insensitively against
// TrueLetters and FalseLetters. Unrecognized input is an error so the
// renderer can re-prompt.
func (q *Boolean) Decide(line string) (bool, error) {
	if strings.TrimSpace(line) == "" {
		return q.def, nil
	}
	first, _ := utf8.DecodeRuneInString(line)
	first = unicode.ToLower(first)
	for _, r := range TrueLetters {
		if first == r {
			return true, nil
		}
	}
	for _, r := range FalseLetters {
		if first == r {
			return false, nil
		}
	}
	return false, questionErrf(KindBoolean, "decide", "unrecognized input %q", strings.TrimSpace(line))
}

// SetChoice sets the answer directly.
func (q *Boolean) SetChoice(v bool) error {
	if q.submitted {
		return questionErr(KindBoolean, "set choice", "already submitted")
	}
	q.choice = v
	return nil
}

func (q *Boolean) Reset() {
	if q.submitted {
		return
	}
	q.choice = q.def
}

func (q *Boolean) Submit() error {
	if q.submitted {
		return questionErr(KindBoolean, "submit", "already submitted")
	}
	q.submitted = true
	return nil
}

func (q *Boolean) Result() (Result, error) {
	if !q.submitted {
		return nil, questionErr(KindBoolean, "result", "not submitted")
	}
	return BooleanResult{ID: q.id, Flag: q.choice}, nil
}
