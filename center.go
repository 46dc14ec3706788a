package weave

import "github.com/kungfusheep/weave/reactive"

// Center takes all the space it is offered and draws its child in the
// middle of it.
type Center struct {
	child     View
	childSize Size
}

// NewCenter returns a Center with an empty child.
func NewCenter() *Center {
	return &Center{}
}

// Child sets the centered view.
func (c *Center) Child(v View) *Center {
	c.child = v
	return c
}

// Name implements Widget.
func (c *Center) Name() string {
	return "Center"
}

// Layout lets the child pick any size up to the maximum, then reports
// the maximum size.
func (c *Center) Layout(limits Limits) Size {
	c.childSize = c.child.Layout(limits.Loosen())
	return limits.MaxSize()
}

// Draw draws the child centered in the surface.
func (c *Center) Draw(s DrawSurface) {
	ShrinkCentered(s, c.childSize, c.child.Draw)
}

func (c *Center) String() string {
	return "<Center>\n" + c.child.String() + "</Center>\n"
}

// IntoView implements Viewable.
func (c *Center) IntoView(*reactive.Scope) View {
	return share(c, callerSite(1))
}
