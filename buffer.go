package weave

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is a 2D grid of cells. Rows written since the last
// ClearDirtyFlags are tracked so screens can skip unchanged rows.
type Buffer struct {
	cells  []Cell
	width  int
	height int
	dirty  []bool
}

// NewBuffer creates a blank buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() Size {
	return Size{Width: b.width, Height: b.height}
}

// InBounds returns true if x,y is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at x,y, or an empty cell when out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// Set sets the cell at x,y. Out of bounds writes are ignored.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
	b.dirty[y] = true
}

// Fill sets every cell to c.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
	for y := range b.dirty {
		b.dirty[y] = true
	}
}

// Clear resets the buffer to empty cells.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// WriteString writes s at x,y, stopping at the right edge or after
// maxWidth cells. Wide runes take two cells; the second holds a zero rune.
// Returns the number of cells used.
func (b *Buffer) WriteString(x, y int, s string, style Style, maxWidth int) int {
	if y < 0 || y >= b.height {
		return 0
	}
	limit := b.width - x
	if maxWidth < limit {
		limit = maxWidth
	}
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > limit {
			break
		}
		b.Set(x+used, y, Cell{Rune: r, Style: style})
		if w == 2 {
			b.Set(x+used+1, y, Cell{Style: style})
		}
		used += w
	}
	return used
}

// RowDirty reports whether row y changed since the last ClearDirtyFlags.
func (b *Buffer) RowDirty(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	return b.dirty[y]
}

// ClearDirtyFlags marks every row clean.
func (b *Buffer) ClearDirtyFlags() {
	for y := range b.dirty {
		b.dirty[y] = false
	}
}

// GetLine returns row y with trailing spaces removed.
func (b *Buffer) GetLine(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		r := b.cells[b.index(x, y)].Rune
		if r == 0 {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns the buffer contents, one row per line, trailing spaces kept.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if r := b.cells[b.index(x, y)].Rune; r != 0 {
				sb.WriteRune(r)
			}
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the contents with trailing spaces and trailing
// empty rows removed.
func (b *Buffer) StringTrimmed() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.GetLine(y)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Resize changes the dimensions, keeping content that still fits.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height && b.cells != nil {
		return
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = EmptyCell()
	}
	for y := 0; y < min(height, b.height); y++ {
		for x := 0; x < min(width, b.width); x++ {
			cells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.cells = cells
	b.width = width
	b.height = height
	b.dirty = make([]bool, height)
	for y := range b.dirty {
		b.dirty[y] = true
	}
}
