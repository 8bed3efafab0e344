// Package ansi builds SGR escape sequences for the terminal renderer.
// Construction only; nothing here touches the terminal.
package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Italic    = "\033[3m"
	Underline = "\033[4m"

	// Inverse renders black on white and marks the cursor line in lists.
	Inverse = "\033[30m\033[47m"

	FgBlack    = "\033[30m"
	FgRed      = "\033[31m"
	FgGreen    = "\033[32m"
	FgYellow   = "\033[33m"
	FgBlue     = "\033[34m"
	FgMagenta  = "\033[35m"
	FgCyan     = "\033[36m"
	FgWhite    = "\033[37m"
	FgDarkGray = "\033[90m"

	FgBrightRed    = "\033[91m"
	FgBrightGreen  = "\033[92m"
	FgBrightYellow = "\033[93m"
	FgBrightWhite  = "\033[97m"
)

// RGB returns a 24-bit foreground color sequence.
func RGB(r, g, b uint8) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// FromHex parses "#rrggbb" (or "rrggbb") into a 24-bit foreground sequence.
func FromHex(hex string) (string, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return "", fmt.Errorf("ansi: malformed hex color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return "", fmt.Errorf("ansi: malformed hex color %q", hex)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Format wraps text in the given styles followed by a reset.
func Format(text string, styles ...string) string {
	if len(styles) == 0 {
		return text
	}
	var sb strings.Builder
	for _, style := range styles {
		sb.WriteString(style)
	}
	sb.WriteString(text)
	sb.WriteString(Reset)
	return sb.String()
}

// Gray colors secondary text. Dark gray on purpose; several consoles
// render plain gray as white.
func Gray(text string) string {
	return Format(text, FgDarkGray)
}

// Red colors error text.
func Red(text string) string {
	return Format(text, FgBrightRed)
}

// Strip removes CSI escape sequences, leaving printable content.
func Strip(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
