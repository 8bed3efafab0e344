package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formwiz/pkg/console"
	"github.com/goliatone/go-formwiz/pkg/forms"
)

// askText accepts printable ASCII, backspace and clipboard paste until a
// submit keystroke lands on non-blank input.
func (r *Renderer) askText(ctx context.Context, s *screen, q *forms.Text, kb Keyboard, title, description, where string) error {
	for {
		s.clear()
		s.header(title, description)
		s.legend(legendSubmit)
		input := q.Value()
		fmt.Fprint(s.w, s.gray(fmt.Sprintf("Enter Text (%d/%d): %s", utf8.RuneCountInString(input), q.Limit(), input)))

		code, err := readKey(ctx, kb)
		if err != nil {
			return keyErr(err, where)
		}
		switch {
		case code == console.EndOfInput:
			return inputClosed(where)
		case code == 22:
			r.paste(q)
		case code == 8 || code == 127:
			q.Backspace()
		case code == 10 || code == 13:
			if err := q.Submit(); err == nil {
				return nil
			}
		case code >= 32 && code <= 126:
			q.Type(rune(code))
		}
	}
}

// paste appends clipboard text. Read failures leave the input untouched
// and the panel redraws unchanged.
func (r *Renderer) paste(q *forms.Text) {
	if r.clipboard == nil {
		return
	}
	text, err := r.clipboard()
	if err != nil {
		return
	}
	q.Paste(text)
}

// askInteger accumulates digits and a leading sign, showing the value red
// while it sits outside the configured bounds.
func (r *Renderer) askInteger(ctx context.Context, s *screen, q *forms.Integer, kb Keyboard, title, description, where string) error {
	for {
		s.clear()
		s.header(title, description)
		s.legend(legendSubmit)
		fmt.Fprint(s.w, s.gray(integerPrompt(s, q)))

		code, err := readKey(ctx, kb)
		if err != nil {
			return keyErr(err, where)
		}
		switch {
		case code == console.EndOfInput:
			return inputClosed(where)
		case code >= '0' && code <= '9':
			q.Digit(code - '0')
		case code == '-':
			q.Minus()
		case code == 8 || code == 127:
			q.Backspace()
		case code == 10 || code == 13:
			if err := q.Submit(); err == nil {
				return nil
			}
		}
	}
}

func integerPrompt(s *screen, q *forms.Integer) string {
	var sb strings.Builder
	sb.WriteString("Enter a number")
	if q.Min() != math.MinInt64 {
		fmt.Fprintf(&sb, " from %d", q.Min())
	}
	if q.Max() != math.MaxInt64 {
		fmt.Fprintf(&sb, " to %d", q.Max())
	}
	sb.WriteString(": ")

	sign := " "
	magnitude := q.Value()
	if q.Negative() {
		sign = "-"
		magnitude = -magnitude
	}
	value := fmt.Sprintf("%s%d", sign, magnitude)
	if !q.InBounds() {
		value = s.red(value)
	}
	return sb.String() + value
}

// askBoolean drops to cooked line input: blank accepts the default (the
// capital letter in the prompt), anything else matches by first letter.
func (r *Renderer) askBoolean(ctx context.Context, s *screen, q *forms.Boolean, kb Keyboard, title, description, where string) error {
	invalid := false
	for {
		if err := ctx.Err(); err != nil {
			return keyErr(err, where)
		}
		s.clear()
		s.header(title, description)
		s.legend(legendSubmit)
		if invalid {
			fmt.Fprintln(s.w, s.red("Invalid Input! Try again:"))
		}
		prompt := "Choice [y|N]: "
		if q.Default() {
			prompt = "Choice [Y|n]: "
		}
		fmt.Fprint(s.w, prompt)

		line, err := kb.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return inputClosed(where)
			}
			return keyErr(err, where)
		}
		choice, err := q.Decide(line)
		if err != nil {
			invalid = true
			continue
		}
		if err := q.SetChoice(choice); err != nil {
			return err
		}
		return q.Submit()
	}
}

// askChoice moves a cursor over the labels; submit picks the cursor line.
func (r *Renderer) askChoice(ctx context.Context, s *screen, q *forms.Choice, kb Keyboard, title, description, where string) error {
	labels := q.Choices()
	for {
		s.clear()
		s.header(title, description)
		s.legend(legendChoice)
		for i, label := range labels {
			fmt.Fprintln(s.w, "-> "+s.highlight(label, i == q.Cursor()))
		}

		code, err := readKey(ctx, kb)
		if err != nil {
			return keyErr(err, where)
		}
		if code == console.EndOfInput {
			return inputClosed(where)
		}
		switch console.ButtonFor(code) {
		case console.ButtonUp:
			q.Up()
		case console.ButtonDown:
			q.Down()
		case console.ButtonSubmit:
			if err := q.Select(labels[q.Cursor()]); err != nil {
				return err
			}
			return q.Submit()
		}
	}
}

// askCheckboxes moves a cursor over the labels, toggling marks with space.
func (r *Renderer) askCheckboxes(ctx context.Context, s *screen, q *forms.Checkboxes, kb Keyboard, title, description, where string) error {
	labels := q.Choices()
	for {
		s.clear()
		s.header(title, description)
		s.legend(legendCheckbox)
		for i, label := range labels {
			mark := "[ ] "
			if q.Checked(label) {
				mark = "[x] "
			}
			fmt.Fprintln(s.w, mark+s.highlight(label, i == q.Cursor()))
		}

		code, err := readKey(ctx, kb)
		if err != nil {
			return keyErr(err, where)
		}
		if code == console.EndOfInput {
			return inputClosed(where)
		}
		switch console.ButtonFor(code) {
		case console.ButtonUp:
			q.Up()
		case console.ButtonDown:
			q.Down()
		case console.ButtonToggle:
			if len(labels) > 0 {
				if err := q.Toggle(labels[q.Cursor()]); err != nil {
					return err
				}
			}
		case console.ButtonSubmit:
			return q.Submit()
		}
	}
}
