package weave

import (
	"fmt"

	"github.com/kungfusheep/weave/reactive"
)

// Text is a block of word-wrapped text.
type Text struct {
	content string
	style   Style

	// set by Layout
	lines []string
	size  Size
}

// NewText returns a text node showing s.
func NewText(s string) Text {
	return Text{content: s}
}

// Textf returns a text node showing the formatted string.
func Textf(format string, args ...any) Text {
	return NewText(fmt.Sprintf(format, args...))
}

// Styled returns a copy drawn with style.
func (t Text) Styled(style Style) Text {
	t.style = style
	return t
}

// Content returns the unwrapped string.
func (t Text) Content() string {
	return t.content
}

// Name implements Widget.
func (t *Text) Name() string {
	return "Text"
}

// Layout wraps the text to the maximum width. The height is the number
// of wrapped lines, capped at the maximum height; both axes are raised to
// the minimums.
func (t *Text) Layout(limits Limits) Size {
	lines := wrapText(t.content, limits.MaxWidth)
	if len(lines) > limits.MaxHeight {
		lines = lines[:max(limits.MaxHeight, 0)]
	}
	t.lines = lines
	t.size = Size{
		Width:  max(lineWidth(lines), limits.MinWidth),
		Height: max(len(lines), limits.MinHeight),
	}
	return t.size
}

// Draw writes each wrapped line on its own row.
func (t *Text) Draw(s DrawSurface) {
	for i, line := range t.lines {
		if line == "" {
			continue
		}
		s.WriteStyled(XY{Y: i}, line, t.style)
	}
}

// IntoView implements Viewable.
func (t Text) IntoView(*reactive.Scope) View {
	return View{kind: kindText, text: t, site: callerSite(1)}
}

// MeasureText returns the extent a block of text claims when it fills
// its row: the full maximum width by the wrapped line count when the
// lines fit, otherwise the maximum size.
func MeasureText(limits Limits, text string) Size {
	lines := wrapText(text, limits.MaxWidth)
	if len(lines) > limits.MaxHeight {
		return limits.MaxSize()
	}
	return Size{Width: limits.MaxWidth, Height: max(len(lines), limits.MinHeight)}
}
