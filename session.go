package weave

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("not a terminal")

// Session holds the terminal in raw mode until Close. Close restores the
// original mode and screen on every exit path, including after a panic
// recovered by the caller.
type Session struct {
	fd        int
	out       io.Writer
	state     *term.State
	altScreen bool
	closed    bool
}

// OpenSession puts in into raw mode and prepares out for drawing:
// optionally the alternate screen, a cleared display and a hidden cursor.
func OpenSession(in *os.File, out io.Writer, altScreen bool) (*Session, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, &Error{Op: "weave.OpenSession", Kind: KindTerminal, Err: errNotTerminal}
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, &Error{Op: "weave.OpenSession", Kind: KindTerminal, Err: err}
	}

	s := &Session{fd: fd, out: out, state: state, altScreen: altScreen}
	if altScreen {
		io.WriteString(out, ansi.SetAltScreenSaveCursorMode)
	}
	io.WriteString(out, ansi.EraseEntireScreen+ansi.CursorHomePosition+ansi.HideCursor)
	log.Infof("session opened on fd %d", fd)
	return s, nil
}

// Close restores the terminal. It is safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	io.WriteString(s.out, ansi.ResetStyle+ansi.ShowCursor)
	if s.altScreen {
		io.WriteString(s.out, ansi.ResetAltScreenSaveCursorMode)
	}
	if err := term.Restore(s.fd, s.state); err != nil {
		return &Error{Op: "weave.Session.Close", Kind: KindTerminal, Err: err}
	}
	log.Infof("session closed")
	return nil
}
