//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !windows

package console

import "os"

// No raw mode on this platform; Open degrades to buffered reads.
type sysTerminal struct{}

func newSysTerminal(_ *os.File) (*sysTerminal, error) { return nil, errRawUnsupported }

func (t *sysTerminal) enterRaw() error        { return errRawUnsupported }
func (t *sysTerminal) park()                  {}
func (t *sysTerminal) restore() error         { return nil }
func (t *sysTerminal) pending() (int, error)  { return 0, errRawUnsupported }
func (t *sysTerminal) readByte() (int, error) { return EndOfInput, errRawUnsupported }
