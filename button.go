package weave

import (
	"github.com/mattn/go-runewidth"

	"github.com/kungfusheep/weave/reactive"
)

// Button draws a one-line label between angle brackets. A focused
// button is drawn bold on red.
type Button struct {
	label   string
	focused bool

	// set by Layout
	formatted string
}

// NewButton returns an unfocused button.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// Focus sets whether the button is drawn focused.
func (b *Button) Focus(focused bool) *Button {
	b.focused = focused
	return b
}

// Name implements Widget.
func (b *Button) Name() string {
	return "Button"
}

// Layout fits the first wrapped line of the label inside the brackets.
func (b *Button) Layout(limits Limits) Size {
	switch w := limits.MaxWidth; {
	case w <= 0:
		b.formatted = ""
	case w == 1:
		b.formatted = "<"
	case w == 2:
		b.formatted = "<>"
	default:
		first := ""
		if lines := wrapText(b.label, w-2); len(lines) > 0 {
			first = lines[0]
		}
		b.formatted = "<" + runewidth.Truncate(first, w-2, "") + ">"
	}

	height := 1
	switch {
	case limits.MaxHeight == 0:
		height = 0
	case limits.MinHeight > 1:
		height = limits.MinHeight
	}
	return Size{
		Width:  max(runewidth.StringWidth(b.formatted), limits.MinWidth),
		Height: height,
	}
}

// Draw implements Widget.
func (b *Button) Draw(s DrawSurface) {
	if !b.focused {
		s.Write(XY{}, b.formatted)
		return
	}
	s.WriteStyled(XY{}, b.formatted, DefaultStyle().Background(Red).Bold())
}

// IntoView implements Viewable.
func (b *Button) IntoView(*reactive.Scope) View {
	return share(b, callerSite(1))
}
