package weave

import (
	"bytes"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
)

// Screen manages a terminal display with double buffering and diff-based
// updates. Views draw into the back buffer through Surface; Flush sends
// only the cells that changed since the previous frame.
type Screen struct {
	front   *Buffer // what's currently displayed
	back    *Buffer // what we're drawing to
	surface *BufferSurface
	writer  io.Writer
	fd      int

	resizeChan chan Size
	sigChan    chan os.Signal

	lastStyle Style
	buf       bytes.Buffer

	mu mutex // protects buffers during resize
}

// NewScreen creates a screen writing to w, sized from the terminal on
// fd. An unknown size falls back to 80x24.
func NewScreen(w io.Writer, fd int) *Screen {
	size, err := terminalSize(fd)
	if err != nil {
		size = Size{Width: 80, Height: 24}
	}
	s := NewScreenSize(w, size)
	s.fd = fd
	return s
}

// NewScreenSize creates a screen of a fixed size that is not attached to
// a terminal.
func NewScreenSize(w io.Writer, size Size) *Screen {
	back := NewBuffer(size.Width, size.Height)
	return &Screen{
		front:      NewBuffer(size.Width, size.Height),
		back:       back,
		surface:    NewBufferSurface(back),
		writer:     w,
		fd:         -1,
		resizeChan: make(chan Size, 1),
		sigChan:    make(chan os.Signal, 1),
	}
}

func terminalSize(fd int) (Size, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: int(ws.Col), Height: int(ws.Row)}, nil
}

// Size returns the current screen dimensions.
func (s *Screen) Size() Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.back.Size()
}

// Buffer returns the back buffer.
func (s *Screen) Buffer() *Buffer {
	return s.back
}

// Surface returns a drawing surface over the whole back buffer.
func (s *Screen) Surface() *BufferSurface {
	s.surface.Reset()
	return s.surface
}

// Clear blanks the back buffer.
func (s *Screen) Clear() {
	s.back.Clear()
}

// ResizeChan receives the terminal size after each SIGWINCH. The
// buffers are not touched; the render loop applies the size with Resize
// between frames.
func (s *Screen) ResizeChan() <-chan Size {
	return s.resizeChan
}

// WatchResize starts listening for SIGWINCH.
func (s *Screen) WatchResize() {
	signal.Notify(s.sigChan, syscall.SIGWINCH)
	go s.handleSignals()
}

// StopResize stops listening for SIGWINCH.
func (s *Screen) StopResize() {
	signal.Stop(s.sigChan)
	close(s.sigChan)
}

func (s *Screen) handleSignals() {
	for range s.sigChan {
		size, err := terminalSize(s.fd)
		if err != nil {
			continue
		}
		s.notifyResize(size)
	}
}

// notifyResize queues size for the render loop, replacing any size not
// yet received.
func (s *Screen) notifyResize(size Size) {
	for {
		select {
		case s.resizeChan <- size:
			return
		default:
		}
		select {
		case <-s.resizeChan:
		default:
		}
	}
}

// Resize changes both buffers to size and clears the terminal so the
// next Flush redraws everything. It reports whether the size changed.
// Call it from the goroutine that draws.
func (s *Screen) Resize(size Size) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size == s.back.Size() {
		return false
	}
	s.front.Resize(size.Width, size.Height)
	s.back.Resize(size.Width, size.Height)
	s.front.Clear()
	s.back.Clear()
	io.WriteString(s.writer, ansi.EraseEntireScreen)
	log.Debugf("screen resized to %v", size)
	return true
}

// Flush writes the cells that differ between the back and front buffers.
// Rows not written since the last flush are skipped.
func (s *Screen) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	changed := false
	cursorX, cursorY := -1, -1
	width, height := s.back.Width(), s.back.Height()

	for y := 0; y < height; y++ {
		if !s.back.RowDirty(y) {
			continue
		}
		for x := 0; x < width; x++ {
			cell := s.back.Get(x, y)
			if cell == s.front.Get(x, y) {
				continue
			}
			s.front.Set(x, y, cell)
			// trailing half of a wide rune
			if cell.Rune == 0 {
				continue
			}
			changed = true
			if cursorX != x || cursorY != y {
				s.buf.WriteString(ansi.CursorPosition(x+1, y+1))
			}
			s.writeCell(cell)
			cursorX, cursorY = x+max(runewidth.RuneWidth(cell.Rune), 1), y
		}
	}

	if changed {
		s.buf.WriteString(ansi.ResetStyle)
		s.lastStyle = Style{}
	}
	s.back.ClearDirtyFlags()
	s.front.ClearDirtyFlags()

	if s.buf.Len() == 0 {
		return nil
	}
	_, err := s.writer.Write(s.buf.Bytes())
	return err
}

// writeCell emits a style change when needed, then the rune.
func (s *Screen) writeCell(cell Cell) {
	if cell.Style != s.lastStyle {
		s.buf.WriteString(ansi.ResetStyle)
		if !cell.Style.IsDefault() {
			s.buf.WriteString(sgr(cell.Style))
		}
		s.lastStyle = cell.Style
	}
	s.buf.WriteRune(cell.Rune)
}
