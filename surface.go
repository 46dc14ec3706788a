package weave

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DrawSurface is a rectangular character sink. Positions are relative to
// the surface's current region; anything outside the region is clipped.
type DrawSurface interface {
	// Size returns the dimensions of the current region.
	Size() Size
	// Write puts the first line of text at the given position.
	Write(at XY, text string)
	// WriteStyled is Write with a style applied to the written cells.
	WriteStyled(at XY, text string, style Style)
	// Shrink narrows the region to size at topLeft for the duration of f.
	// The previous region is restored when f returns or panics.
	Shrink(topLeft XY, size Size, f func(DrawSurface))
}

// ShrinkCentered runs f with the region narrowed to size, centered in the
// current region. Odd leftovers put the extra cell after the content.
func ShrinkCentered(s DrawSurface, size Size, f func(DrawSurface)) {
	s.Shrink(CenterOffset(s.Size(), size), size, f)
}

// CenterOffset returns the top-left position that centers inner in outer.
func CenterOffset(outer, inner Size) XY {
	return XY{
		X: floorDiv(outer.Width-inner.Width, 2),
		Y: floorDiv(outer.Height-inner.Height, 2),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// region tracks the absolute origin and size of the area a sink is
// currently drawing into. Sinks embed it and share its clipping rules.
type region struct {
	origin XY
	size   Size
}

// Size returns the current region dimensions.
func (r *region) Size() Size {
	return r.size
}

// narrow moves the region to the sub-rectangle and returns a func that
// restores the previous one.
func (r *region) narrow(topLeft XY, size Size) func() {
	checkShrink(topLeft, size, r.size)
	saved := *r
	r.origin = r.origin.Add(topLeft)
	r.size = size
	return func() { *r = saved }
}

// clip returns the absolute position and visible part of text written at
// at. It reports false when nothing would be visible.
func (r *region) clip(at XY, text string) (XY, string, bool) {
	if at.X < 0 || at.Y < 0 || at.Y >= r.size.Height || at.X >= r.size.Width {
		return XY{}, "", false
	}
	line, _, _ := strings.Cut(text, "\n")
	line = strings.TrimSuffix(line, "\r")
	line = runewidth.Truncate(line, r.size.Width-at.X, "")
	if line == "" {
		return XY{}, "", false
	}
	return r.origin.Add(at), line, true
}

// BufferSurface draws into a cell Buffer.
type BufferSurface struct {
	region
	buf *Buffer
}

// NewBufferSurface returns a surface covering all of buf.
func NewBufferSurface(buf *Buffer) *BufferSurface {
	return &BufferSurface{region: region{size: buf.Size()}, buf: buf}
}

// Buffer returns the underlying buffer.
func (s *BufferSurface) Buffer() *Buffer {
	return s.buf
}

// Reset makes the region cover the whole buffer again, e.g. after a resize.
func (s *BufferSurface) Reset() {
	s.region = region{size: s.buf.Size()}
}

func (s *BufferSurface) Write(at XY, text string) {
	s.WriteStyled(at, text, Style{})
}

func (s *BufferSurface) WriteStyled(at XY, text string, style Style) {
	p, line, ok := s.clip(at, text)
	if !ok {
		return
	}
	s.buf.WriteString(p.X, p.Y, line, style, s.size.Width-at.X)
}

func (s *BufferSurface) Shrink(topLeft XY, size Size, f func(DrawSurface)) {
	defer s.narrow(topLeft, size)()
	f(s)
}
