package weave

import (
	"bufio"
	"io"

	"github.com/charmbracelet/x/ansi"
)

// StreamSurface writes cursor-positioned text to an escape-sequence
// stream. Output is buffered until Flush.
type StreamSurface struct {
	region
	w   *bufio.Writer
	err error
}

// NewStreamSurface returns a surface of the given size writing to w.
func NewStreamSurface(w io.Writer, size Size) *StreamSurface {
	return &StreamSurface{region: region{size: size}, w: bufio.NewWriter(w)}
}

func (s *StreamSurface) Write(at XY, text string) {
	s.WriteStyled(at, text, Style{})
}

func (s *StreamSurface) WriteStyled(at XY, text string, style Style) {
	p, line, ok := s.clip(at, text)
	if !ok || s.err != nil {
		return
	}
	if _, err := s.w.WriteString(ansi.CursorPosition(p.X+1, p.Y+1)); err != nil {
		s.err = err
		return
	}
	if _, err := s.w.WriteString(styled(line, style)); err != nil {
		s.err = err
	}
}

func (s *StreamSurface) Shrink(topLeft XY, size Size, f func(DrawSurface)) {
	defer s.narrow(topLeft, size)()
	f(s)
}

// Flush writes buffered output and returns the first write error seen.
func (s *StreamSurface) Flush() error {
	if s.err != nil {
		return s.err
	}
	s.err = s.w.Flush()
	return s.err
}
