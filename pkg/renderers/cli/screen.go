package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"

	"github.com/goliatone/go-formwiz/internal/ansi"
)

// Key legends, one per panel shape.
const (
	legendSubmit   = "|| [ENTER]: Submit ||"
	legendChoice   = "|| [W]: Up || [S]: Down || [ENTER]: Submit ||"
	legendCheckbox = "|| [W]: Up || [S]: Down || [SPACE]: Toggle || [ENTER]: Submit ||"
)

// screen writes panels, gating every escape sequence on one color flag so a
// dumb terminal gets plain text and real newlines instead of codes.
type screen struct {
	w      io.Writer
	color  bool
	accent string
	width  int
}

func (s *screen) clear() {
	if s.color {
		fmt.Fprint(s.w, "\033[H\033[2J")
		return
	}
	fmt.Fprint(s.w, strings.Repeat("\n", 100))
}

// intro draws the form's title page.
func (s *screen) intro(title, description string) {
	s.clear()
	fmt.Fprintln(s.w, s.styled("=== "+title+" ===", s.accent, ansi.Bold))
	s.describe(title, description)
	fmt.Fprintln(s.w, s.gray("\nPress any key to continue!"))
}

// header draws a question's title and wrapped description.
func (s *screen) header(title, description string) {
	fmt.Fprintln(s.w, s.styled("-> "+title+" <-", s.accent, ansi.Bold))
	s.describe(title, description)
}

func (s *screen) describe(title, description string) {
	for _, line := range s.wrap(description, title) {
		fmt.Fprintln(s.w, s.styled("|", s.accent)+" "+line)
	}
}

func (s *screen) legend(keys string) {
	fmt.Fprintln(s.w, s.gray("\n"+keys+"\n"))
}

// wrap word-wraps text to twice the title's width, floored at 50 columns
// and capped at the terminal width.
func (s *screen) wrap(text, title string) []string {
	if text == "" {
		return nil
	}
	limit := 2 * utf8.RuneCountInString(title)
	if limit < 50 {
		limit = 50
	}
	if s.width > 0 && s.width < limit {
		limit = s.width
	}
	return strings.Split(wordwrap.String(text, limit), "\n")
}

func (s *screen) styled(text string, styles ...string) string {
	if !s.color {
		return text
	}
	return ansi.Format(text, styles...)
}

func (s *screen) gray(text string) string {
	if !s.color {
		return text
	}
	return ansi.Gray(text)
}

func (s *screen) red(text string) string {
	if !s.color {
		return text
	}
	return ansi.Red(text)
}

// highlight marks the cursor line in inverse video.
func (s *screen) highlight(text string, on bool) string {
	if !s.color || !on {
		return text
	}
	return ansi.Format(text, ansi.Inverse)
}
