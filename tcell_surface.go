package weave

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TcellSurface draws into a tcell screen. Call Show on the screen to
// make the frame visible.
type TcellSurface struct {
	region
	screen tcell.Screen
}

// NewTcellSurface returns a surface covering the whole screen.
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	s := &TcellSurface{screen: screen}
	s.Reset()
	return s
}

// Reset re-reads the screen size and makes the region cover all of it.
func (s *TcellSurface) Reset() {
	w, h := s.screen.Size()
	s.region = region{size: Size{Width: w, Height: h}}
}

func (s *TcellSurface) Write(at XY, text string) {
	s.WriteStyled(at, text, Style{})
}

func (s *TcellSurface) WriteStyled(at XY, text string, style Style) {
	p, line, ok := s.clip(at, text)
	if !ok {
		return
	}
	st := tcellStyle(style)
	x := p.X
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.screen.SetContent(x, p.Y, r, nil, st)
		x += w
	}
}

func (s *TcellSurface) Shrink(topLeft XY, size Size, f func(DrawSurface)) {
	defer s.narrow(topLeft, size)()
	f(s)
}

func tcellStyle(style Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcellColor(style.FG)).
		Background(tcellColor(style.BG))
	a := style.Attr
	return st.
		Bold(a.Has(AttrBold)).
		Dim(a.Has(AttrDim)).
		Italic(a.Has(AttrItalic)).
		Underline(a.Has(AttrUnderline)).
		Blink(a.Has(AttrBlink)).
		Reverse(a.Has(AttrInverse)).
		StrikeThrough(a.Has(AttrStrikethrough))
}

func tcellColor(c Color) tcell.Color {
	switch c.Mode {
	case Color16, Color256:
		return tcell.PaletteColor(int(c.Index))
	case ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}
