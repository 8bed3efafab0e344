// Package testsupport holds shared fakes and fixtures for exercising
// renderers and orchestration without a real terminal.
package testsupport

import (
	"io"

	"github.com/goliatone/go-formwiz/pkg/console"
)

// Key codes for building keystroke scripts.
const (
	KeyEnter     = 10
	KeyBackspace = 127
	KeySpace     = int(' ')
	KeyUp        = int('w')
	KeyDown      = int('s')
	KeyPaste     = 22
	KeyInterrupt = 3
)

// Keyboard replays scripted keystrokes and lines. An exhausted keystroke
// queue reads as end of input; an exhausted line queue reads as io.EOF.
type Keyboard struct {
	Keys  []int
	Lines []string

	// Restores counts how often the terminal was released.
	Restores int
}

// NewKeyboard scripts raw keystroke codes.
func NewKeyboard(keys ...int) *Keyboard {
	return &Keyboard{Keys: keys}
}

// Type appends one keystroke per byte of s.
func (k *Keyboard) Type(s string) {
	for _, b := range []byte(s) {
		k.Keys = append(k.Keys, int(b))
	}
}

// Press appends raw keystroke codes.
func (k *Keyboard) Press(codes ...int) {
	k.Keys = append(k.Keys, codes...)
}

// Line queues lines for ReadLine.
func (k *Keyboard) Line(lines ...string) {
	k.Lines = append(k.Lines, lines...)
}

// Read pops the next scripted keystroke. Interrupt codes carry
// console.ErrInterrupted, mirroring the real console.
func (k *Keyboard) Read(wait bool) (int, error) {
	if len(k.Keys) == 0 {
		return console.EndOfInput, nil
	}
	code := k.Keys[0]
	k.Keys = k.Keys[1:]
	if code == 3 || code == 24 {
		return code, console.ErrInterrupted
	}
	return code, nil
}

// ReadLine pops the next scripted line.
func (k *Keyboard) ReadLine() (string, error) {
	if len(k.Lines) == 0 {
		return "", io.EOF
	}
	line := k.Lines[0]
	k.Lines = k.Lines[1:]
	return line, nil
}

// Restore records the release.
func (k *Keyboard) Restore() error {
	k.Restores++
	return nil
}
