package weave

import "github.com/kungfusheep/weave/reactive"

// Empty occupies the minimum space it is allowed and draws nothing.
type Empty struct{}

// Name implements Widget.
func (Empty) Name() string { return "Empty" }

// Layout implements Widget.
func (Empty) Layout(limits Limits) Size { return limits.MinSize() }

// Draw implements Widget.
func (Empty) Draw(DrawSurface) {}

// IntoView implements Viewable.
func (Empty) IntoView(*reactive.Scope) View { return View{} }
