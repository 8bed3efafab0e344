// Package console reads single keystrokes from the controlling terminal
// without the platform's line buffering or echo. The terminal's original
// mode is captured when the console opens and restored by Close (or Restore)
// so callers hold the terminal as a scoped resource: acquire, drive a form,
// release on every exit path.
//
// On POSIX systems the mode dance edits termios local flags; on Windows it
// edits console input modes. A process with no controlling terminal falls
// back to buffered byte reads with no mode switching.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Sentinel read outcomes. Read reports them instead of byte codes.
const (
	EndOfInput = -1
	NoData     = -2
)

var (
	// ErrInterrupted accompanies the interrupt keystrokes (Ctrl-C, Ctrl-X).
	// The console never terminates the process; the caller decides what
	// cancellation means.
	ErrInterrupted = errors.New("console: interrupted")

	// ErrClosed is returned by reads after Close.
	ErrClosed = errors.New("console: closed")

	errRawUnsupported = errors.New("console: raw mode unsupported on this platform")
)

// Console delivers keystrokes from one input stream. Single-owner, no
// internal locking.
type Console struct {
	in     *os.File
	term   *sysTerminal
	reader *bufio.Reader
	closed bool
}

// Option configures Open.
type Option func(*Console)

// WithInput reads from f instead of os.Stdin.
func WithInput(f *os.File) Option {
	return func(c *Console) { c.in = f }
}

// Open captures the terminal state and prepares keystroke reads. The caller
// owns the returned console and must Close it to restore the terminal.
func Open(opts ...Option) (*Console, error) {
	c := &Console{in: os.Stdin}
	for _, opt := range opts {
		opt(c)
	}
	if isatty.IsTerminal(c.in.Fd()) {
		t, err := newSysTerminal(c.in)
		switch {
		case err == nil:
			c.term = t
		case errors.Is(err, errRawUnsupported):
			// no raw mode here, buffered reads below
		default:
			return nil, err
		}
	}
	if c.term == nil {
		c.reader = bufio.NewReader(c.in)
	}
	return c, nil
}

// IsTerminal reports whether keystrokes arrive raw from a real terminal.
func (c *Console) IsTerminal() bool { return c.term != nil }

// Read returns the next input byte. With wait=false it returns NoData
// immediately when nothing is pending; with wait=true it blocks. End of
// input returns EndOfInput with a nil error. Interrupt keystrokes return
// their code alongside ErrInterrupted.
//
// On a buffered (non-terminal) stream wait has no effect; reads block until
// data or end of input.
func (c *Console) Read(wait bool) (int, error) {
	if c.closed {
		return EndOfInput, ErrClosed
	}
	code, err := c.read(wait)
	if err != nil {
		return code, err
	}
	if code == 3 || code == 24 {
		return code, ErrInterrupted
	}
	return code, nil
}

func (c *Console) read(wait bool) (int, error) {
	if c.term == nil {
		b, err := c.reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return EndOfInput, nil
			}
			return EndOfInput, fmt.Errorf("console: read: %w", err)
		}
		return int(b), nil
	}
	if err := c.term.enterRaw(); err != nil {
		return EndOfInput, err
	}
	defer c.term.park()
	if !wait {
		n, err := c.term.pending()
		if err != nil {
			return EndOfInput, err
		}
		if n == 0 {
			return NoData, nil
		}
	}
	return c.term.readByte()
}

// ReadLine restores cooked mode and reads one full line, echo on. The next
// Read flips the terminal raw again. Trailing CR/LF is stripped.
func (c *Console) ReadLine() (string, error) {
	if c.closed {
		return "", ErrClosed
	}
	if c.term != nil {
		if err := c.term.restore(); err != nil {
			return "", err
		}
	}
	if c.reader == nil {
		c.reader = bufio.NewReader(c.in)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", io.EOF
		}
		return "", fmt.Errorf("console: read line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Restore puts the terminal back into its original mode. Safe to call any
// number of times; reads remain usable afterwards.
func (c *Console) Restore() error {
	if c.term == nil {
		return nil
	}
	return c.term.restore()
}

// Close restores the terminal and retires the console.
func (c *Console) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.term == nil {
		return nil
	}
	return c.term.restore()
}
