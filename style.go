package weave

// Attribute is a set of text attributes.
type Attribute uint8

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrStrikethrough
)

// Has returns true if the set contains attr.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns the set with attr added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// ColorMode says how a Color value is interpreted.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // terminal default
	Color16                       // basic 16 colors (0-15)
	Color256                      // 256 color palette
	ColorRGB                      // 24-bit true color
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	Mode    ColorMode
	R, G, B uint8
	Index   uint8
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{Mode: ColorDefault}
}

// BasicColor returns one of the 16 basic terminal colors.
func BasicColor(index uint8) Color {
	return Color{Mode: Color16, Index: index}
}

// PaletteColor returns one of the 256 palette colors.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)
)

// Style combines foreground, background and attributes.
// The zero value draws with the terminal defaults.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{}
}

// Foreground returns a copy with the foreground set.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a copy with the background set.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Bold returns a copy with bold enabled.
func (s Style) Bold() Style {
	s.Attr = s.Attr.With(AttrBold)
	return s
}

// Dim returns a copy with dim enabled.
func (s Style) Dim() Style {
	s.Attr = s.Attr.With(AttrDim)
	return s
}

// Italic returns a copy with italic enabled.
func (s Style) Italic() Style {
	s.Attr = s.Attr.With(AttrItalic)
	return s
}

// Underline returns a copy with underline enabled.
func (s Style) Underline() Style {
	s.Attr = s.Attr.With(AttrUnderline)
	return s
}

// Inverse returns a copy with inverse enabled.
func (s Style) Inverse() Style {
	s.Attr = s.Attr.With(AttrInverse)
	return s
}

// IsDefault reports whether the style changes nothing.
func (s Style) IsDefault() bool {
	return s == Style{}
}

// Cell is a single character cell. A zero Rune marks the trailing half
// of a wide character.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}
