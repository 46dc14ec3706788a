// Package weave is a retained-mode widget toolkit for character-grid
// surfaces. Views are laid out under width/height limits, painted into a
// clipped drawing surface, and re-derived when reactive signals change.
package weave

import "fmt"

// Size is a width/height pair measured in cells.
type Size struct {
	Width  int
	Height int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Cmp orders sizes by area. Sizes with the same area but different
// aspect ratios compare equal; use Limits.Contains for per-axis checks.
func (s Size) Cmp(other Size) int {
	a, b := s.Area(), other.Area()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// StrictLimits returns limits whose minimum and maximum are both s.
func (s Size) StrictLimits() Limits {
	return Limits{
		MinWidth:  s.Width,
		MaxWidth:  s.Width,
		MinHeight: s.Height,
		MaxHeight: s.Height,
	}
}

// Fits reports whether s fits inside outer on both axes.
func (s Size) Fits(outer Size) bool {
	return s.Width <= outer.Width && s.Height <= outer.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Limits bounds the size a node may report from Layout.
// Callers keep MinWidth <= MaxWidth and MinHeight <= MaxHeight.
type Limits struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Strict returns limits that admit exactly width x height.
func Strict(width, height int) Limits {
	return Size{Width: width, Height: height}.StrictLimits()
}

// Between returns limits spanning min to max.
func Between(min, max Size) Limits {
	return Limits{
		MinWidth:  min.Width,
		MaxWidth:  max.Width,
		MinHeight: min.Height,
		MaxHeight: max.Height,
	}
}

// MaxSize returns the largest admissible size.
func (l Limits) MaxSize() Size {
	return Size{Width: l.MaxWidth, Height: l.MaxHeight}
}

// MinSize returns the smallest admissible size.
func (l Limits) MinSize() Size {
	return Size{Width: l.MinWidth, Height: l.MinHeight}
}

// Contains reports whether size lies within the limits on each axis.
func (l Limits) Contains(size Size) bool {
	return size.Width >= l.MinWidth && size.Width <= l.MaxWidth &&
		size.Height >= l.MinHeight && size.Height <= l.MaxHeight
}

// Loosen drops both minimums to zero.
func (l Limits) Loosen() Limits {
	l.MinWidth = 0
	l.MinHeight = 0
	return l
}

// Constrain clamps size into the limits on each axis.
func (l Limits) Constrain(size Size) Size {
	return Size{
		Width:  clamp(size.Width, l.MinWidth, l.MaxWidth),
		Height: clamp(size.Height, l.MinHeight, l.MaxHeight),
	}
}

func (l Limits) String() string {
	return fmt.Sprintf("{w %d..%d, h %d..%d}", l.MinWidth, l.MaxWidth, l.MinHeight, l.MaxHeight)
}

// XY is a cell position relative to the current drawing region.
type XY struct {
	X int
	Y int
}

// Add returns the component-wise sum.
func (p XY) Add(o XY) XY {
	return XY{X: p.X + o.X, Y: p.Y + o.Y}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
