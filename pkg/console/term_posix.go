//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// sysTerminal drives termios state for one controlling terminal. Three mode
// snapshots: the original (restored on release), fully raw (during a
// keystroke read), and an intermediate canonical-but-silent mode the
// terminal parks in between reads.
type sysTerminal struct {
	f            *os.File
	fd           int
	original     unix.Termios
	raw          unix.Termios
	intermediate unix.Termios
}

func newSysTerminal(f *os.File) (*sysTerminal, error) {
	fd := int(f.Fd())
	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("console: query terminal mode: %w", err)
	}
	t := &sysTerminal{f: f, fd: fd, original: *orig}

	t.raw = t.original
	t.raw.Lflag &^= unix.ICANON | unix.ECHO | unix.ECHONL | unix.ISIG
	t.raw.Cc[unix.VMIN] = 1
	t.raw.Cc[unix.VTIME] = 0

	// ISIG stays off between reads so an interrupt lands as a byte on the
	// next read instead of a signal.
	t.intermediate = t.raw
	t.intermediate.Lflag |= unix.ICANON

	return t, nil
}

func (t *sysTerminal) enterRaw() error {
	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, &t.raw); err != nil {
		return fmt.Errorf("console: set raw mode: %w", err)
	}
	return nil
}

func (t *sysTerminal) park() {
	_ = unix.IoctlSetTermios(t.fd, ioctlWriteTermios, &t.intermediate)
}

func (t *sysTerminal) restore() error {
	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, &t.original); err != nil {
		return fmt.Errorf("console: restore terminal mode: %w", err)
	}
	return nil
}

func (t *sysTerminal) pending() (int, error) {
	n, err := unix.IoctlGetInt(t.fd, unix.FIONREAD)
	if err != nil {
		return 0, fmt.Errorf("console: query pending input: %w", err)
	}
	return n, nil
}

func (t *sysTerminal) readByte() (int, error) {
	var buf [1]byte
	n, err := t.f.Read(buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return EndOfInput, nil
		}
		return EndOfInput, fmt.Errorf("console: read: %w", err)
	}
	if n == 0 {
		return EndOfInput, nil
	}
	return int(buf[0]), nil
}
