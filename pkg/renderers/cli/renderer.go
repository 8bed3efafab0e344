// Package cli renders forms as a raw-terminal wizard: one screen per
// question, driven keystroke by keystroke with no line buffering or echo.
// It realizes the form walk for interactive terminal sessions; the form
// itself owns sequencing and result aggregation.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/goliatone/go-formwiz/internal/ansi"
	"github.com/goliatone/go-formwiz/pkg/console"
	"github.com/goliatone/go-formwiz/pkg/forms"
	"github.com/goliatone/go-formwiz/pkg/render"
)

// Renderer drives a form over a raw terminal.
type Renderer struct {
	out       io.Writer
	keyboard  Keyboard
	color     *bool
	clipboard func() (string, error)
}

var (
	_ render.Renderer = (*Renderer)(nil)
	_ Keyboard        = (*console.Console)(nil)
)

// Option configures the renderer.
type Option func(*Renderer)

// WithOutput writes panels to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithKeyboard reads keystrokes from kb instead of opening the process
// terminal. The caller keeps ownership; Render only restores the mode on
// the way out.
func WithKeyboard(kb Keyboard) Option {
	return func(r *Renderer) { r.keyboard = kb }
}

// WithColor forces ANSI styling on or off instead of detecting it.
func WithColor(enabled bool) Option {
	return func(r *Renderer) { r.color = &enabled }
}

// WithClipboard overrides the paste source. A nil reader disables pasting.
func WithClipboard(read func() (string, error)) Option {
	return func(r *Renderer) { r.clipboard = read }
}

// New builds a terminal renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		out:       os.Stdout,
		clipboard: clipboard.ReadAll,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "cli"
}

// Render walks the form page by page: intro screen, one panel per
// question, auto-skipping questions whose requirement is unmet. It blocks
// until the form completes or the run dies; the terminal is restored on
// every exit path. Interrupt keystrokes and context cancellation surface
// as render.ErrAborted.
func (r *Renderer) Render(ctx context.Context, form *forms.Form, options render.Options) (forms.ResultSet, error) {
	if form == nil {
		return forms.ResultSet{}, render.ErrNilForm
	}
	if form.Submitted() {
		return form.Results(), nil
	}

	kb := r.keyboard
	if kb == nil {
		c, err := console.Open()
		if err != nil {
			return forms.ResultSet{}, fmt.Errorf("cli: open console: %w", err)
		}
		defer c.Close()
		kb = c
	} else {
		defer kb.Restore()
	}

	if err := seedValues(form, options.Values); err != nil {
		return forms.ResultSet{}, err
	}

	s := r.newScreen(form, options)
	if form.Page() == forms.IntroPage {
		if err := r.introPage(ctx, s, form, options, kb); err != nil {
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
		if err := r.ask(ctx, s, q, options, kb); err != nil {
			return forms.ResultSet{}, err
		}
		form.Advance()
	}
	return form.Results(), nil
}

func (r *Renderer) introPage(ctx context.Context, s *screen, form *forms.Form, options render.Options, kb Keyboard) error {
	s.intro(options.Localize(form.Title()), options.Localize(form.Description()))
	code, err := readKey(ctx, kb)
	if err != nil {
		return keyErr(err, "the intro page")
	}
	if code == console.EndOfInput {
		return inputClosed("the intro page")
	}
	return nil
}

func (r *Renderer) ask(ctx context.Context, s *screen, q forms.Question, options render.Options, kb Keyboard) error {
	title := options.Localize(q.Title())
	description := options.Localize(q.Description())
	where := fmt.Sprintf("question %q", q.ID())

	switch q := q.(type) {
	case *forms.Text:
		return r.askText(ctx, s, q, kb, title, description, where)
	case *forms.Integer:
		return r.askInteger(ctx, s, q, kb, title, description, where)
	case *forms.Boolean:
		return r.askBoolean(ctx, s, q, kb, title, description, where)
	case *forms.Choice:
		return r.askChoice(ctx, s, q, kb, title, description, where)
	case *forms.Checkboxes:
		return r.askCheckboxes(ctx, s, q, kb, title, description, where)
	}
	return fmt.Errorf("cli: unsupported question type %T", q)
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

// seedValues pre-populates question input from the per-run value map.
// Unknown ids are ignored; a value a question cannot hold fails the run
// before the first panel draws.
func seedValues(form *forms.Form, values map[string]any) error {
	for id, value := range values {
		q, ok := form.Question(id)
		if !ok {
			continue
		}
		if err := forms.Seed(q, value); err != nil {
			return fmt.Errorf("cli: seed %q: %w", id, err)
		}
	}
	return nil
}

// readKey guards a blocking keystroke read with the run's context.
func readKey(ctx context.Context, kb Keyboard) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return kb.Read(true)
}

func keyErr(err error, where string) error {
	switch {
	case errors.Is(err, console.ErrInterrupted):
		return fmt.Errorf("cli: interrupted at %s: %w", where, render.ErrAborted)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("cli: %w at %s: %w", err, where, render.ErrAborted)
	}
	return fmt.Errorf("cli: read at %s: %w", where, err)
}

func inputClosed(where string) error {
	return fmt.Errorf("cli: input closed at %s: %w", where, io.ErrUnexpectedEOF)
}

func (r *Renderer) newScreen(form *forms.Form, options render.Options) *screen {
	return &screen{
		w:      r.out,
		color:  r.colorEnabled(),
		accent: accentSequence(form, options),
		width:  r.terminalWidth(),
	}
}

func (r *Renderer) colorEnabled() bool {
	if r.color != nil {
		return *r.color
	}
	f, ok := r.out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return false
	}
	return platformANSI(runtime.GOOS, os.Getenv("TERM"))
}

// platformANSI reports whether the platform's terminal understands ANSI
// escapes: POSIX terminals always, Windows consoles only under an
// xterm-compatible TERM.
func platformANSI(goos, termName string) bool {
	if goos != "windows" {
		return true
	}
	return strings.Contains(termName, "xterm")
}

func (r *Renderer) terminalWidth() int {
	f, ok := r.out.(*os.File)
	if !ok {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return 0
	}
	return w
}

// accentSequence resolves the chrome color: the form's own accent wins,
// then the theme's accent token ("brand" in older manifests), then bright
// white.
func accentSequence(form *forms.Form, options render.Options) string {
	if hex := form.Accent(); hex != "" {
		if seq, err := ansi.FromHex(hex); err == nil {
			return seq
		}
	}
	if options.Theme != nil {
		for _, key := range []string{"accent", "brand"} {
			hex := options.Theme.Tokens[key]
			if hex == "" {
				continue
			}
			if seq, err := ansi.FromHex(hex); err == nil {
				return seq
			}
		}
	}
	return ansi.FgBrightWhite
}
