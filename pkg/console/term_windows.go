//go:build windows

package console

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// sysTerminal drives Win32 console input modes. Raw mode clears line input,
// echo and processed input so keys (including Ctrl-C) arrive as bytes; the
// intermediate mode re-enables line input between reads with echo kept off.
type sysTerminal struct {
	f            *os.File
	handle       windows.Handle
	original     uint32
	raw          uint32
	intermediate uint32
}

func newSysTerminal(f *os.File) (*sysTerminal, error) {
	handle := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return nil, fmt.Errorf("console: query console mode: %w", err)
	}
	t := &sysTerminal{f: f, handle: handle, original: mode}
	t.raw = mode &^ (windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT)
	t.intermediate = t.raw | windows.ENABLE_LINE_INPUT
	return t, nil
}

func (t *sysTerminal) enterRaw() error {
	if err := windows.SetConsoleMode(t.handle, t.raw); err != nil {
		return fmt.Errorf("console: set raw mode: %w", err)
	}
	return nil
}

func (t *sysTerminal) park() {
	_ = windows.SetConsoleMode(t.handle, t.intermediate)
}

func (t *sysTerminal) restore() error {
	if err := windows.SetConsoleMode(t.handle, t.original); err != nil {
		return fmt.Errorf("console: restore console mode: %w", err)
	}
	return nil
}

func (t *sysTerminal) pending() (int, error) {
	event, err := windows.WaitForSingleObject(t.handle, 0)
	if err != nil {
		return 0, fmt.Errorf("console: query pending input: %w", err)
	}
	if event == windows.WAIT_OBJECT_0 {
		return 1, nil
	}
	return 0, nil
}

func (t *sysTerminal) readByte() (int, error) {
	var buf [1]byte
	var done uint32
	if err := windows.ReadFile(t.handle, buf[:], &done, nil); err != nil {
		return EndOfInput, fmt.Errorf("console: read: %w", err)
	}
	if done == 0 {
		return EndOfInput, nil
	}
	return int(buf[0]), nil
}
