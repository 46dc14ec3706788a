package weave

import (
	"iter"
	"strings"

	"github.com/kungfusheep/weave/reactive"
)

// Column stacks its children top to bottom.
type Column struct {
	children []View
	gap      int

	// set by Layout
	sizes []Size
}

// NewColumn returns a column of the given views.
func NewColumn(children ...View) *Column {
	return &Column{children: children}
}

// VStack builds a column from anything IntoView accepts. An
// iter.Seq[View] item contributes each view it yields.
func VStack(cx *reactive.Scope, items ...any) *Column {
	c := &Column{children: make([]View, 0, len(items))}
	site := callerSite(1)
	for _, item := range items {
		switch v := item.(type) {
		case iter.Seq[View]:
			for child := range v {
				c.children = append(c.children, child)
			}
		default:
			c.children = append(c.children, intoView(cx, item, site))
		}
	}
	return c
}

// Gap sets the number of blank rows between children.
func (c *Column) Gap(rows int) *Column {
	c.gap = max(rows, 0)
	return c
}

// Children returns the column's views.
func (c *Column) Children() []View {
	return c.children
}

// Name implements Widget.
func (c *Column) Name() string {
	return "Column"
}

// Layout gives each child the full width and whatever height is left,
// then reports the widest child by the total height.
func (c *Column) Layout(limits Limits) Size {
	c.sizes = c.sizes[:0]
	width, height := 0, 0
	for i := range c.children {
		if i > 0 {
			height = min(height+c.gap, limits.MaxHeight)
		}
		child := c.children[i].Layout(Limits{
			MaxWidth:  limits.MaxWidth,
			MaxHeight: limits.MaxHeight - height,
		})
		c.sizes = append(c.sizes, child)
		width = max(width, child.Width)
		height += child.Height
	}
	return Size{
		Width:  max(width, limits.MinWidth),
		Height: max(height, limits.MinHeight),
	}
}

// Draw draws each child in its own row band.
func (c *Column) Draw(s DrawSurface) {
	y := 0
	for i := range c.children {
		if i >= len(c.sizes) {
			return
		}
		if i > 0 {
			y += c.gap
		}
		size := c.sizes[i]
		if y+size.Height > s.Size().Height || size.Width > s.Size().Width {
			return
		}
		s.Shrink(XY{Y: y}, size, c.children[i].Draw)
		y += size.Height
	}
}

func (c *Column) String() string {
	var sb strings.Builder
	sb.WriteString("<Column>\n")
	for _, child := range c.children {
		child.writeTree(&sb)
	}
	sb.WriteString("</Column>\n")
	return sb.String()
}

// IntoView implements Viewable.
func (c *Column) IntoView(*reactive.Scope) View {
	return share(c, callerSite(1))
}
