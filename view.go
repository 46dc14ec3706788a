package weave

import (
	"fmt"
	"strings"

	"github.com/kungfusheep/weave/reactive"
)

// Widget is anything that can size itself under limits and draw itself.
// Layout may cache what Draw needs; Draw uses the most recent layout.
type Widget interface {
	Name() string
	Layout(limits Limits) Size
	Draw(s DrawSurface)
}

// Viewable converts itself into a View owned by cx.
type Viewable interface {
	IntoView(cx *reactive.Scope) View
}

type viewKind uint8

const (
	kindEmpty viewKind = iota
	kindText
	kindDyn
	kindWidget
)

// View is a node in the view tree. Built-in nodes are stored inline;
// any other Widget is stored behind a lock and may be shared between
// views. The zero View is an empty node.
type View struct {
	kind   viewKind
	text   Text
	dyn    dynNode
	shared *SharedWidget
	site   string
}

// Name returns the node's display name.
func (v *View) Name() string {
	switch v.kind {
	case kindText:
		return v.text.Name()
	case kindDyn:
		return "DynChild"
	case kindWidget:
		return v.shared.Name()
	}
	return "Empty"
}

// Layout sizes the node. In debug builds a result outside limits panics
// with a *LayoutError naming the node and where it was built.
func (v *View) Layout(limits Limits) Size {
	var size Size
	switch v.kind {
	case kindEmpty:
		size = Empty{}.Layout(limits)
	case kindText:
		size = v.text.Layout(limits)
	case kindDyn:
		size = v.dyn.Layout(limits)
	case kindWidget:
		size = v.shared.Layout(limits)
	}
	checkLayout(v.Name, v.site, limits, size)
	return size
}

// Draw paints the node using its last layout.
func (v *View) Draw(s DrawSurface) {
	switch v.kind {
	case kindText:
		v.text.Draw(s)
	case kindDyn:
		v.dyn.Draw(s)
	case kindWidget:
		v.shared.Draw(s)
	}
}

// IsEmpty reports whether the view is the empty node.
func (v *View) IsEmpty() bool {
	return v.kind == kindEmpty
}

// Shared returns the shared widget behind the view, or nil for
// built-in nodes.
func (v *View) Shared() *SharedWidget {
	return v.shared
}

// String dumps the tree below v, one tag or text block per line.
func (v View) String() string {
	var sb strings.Builder
	v.writeTree(&sb)
	return sb.String()
}

func (v View) writeTree(sb *strings.Builder) {
	switch v.kind {
	case kindEmpty:
		sb.WriteString("<Empty />\n")
	case kindText:
		sb.WriteString(v.text.content)
		sb.WriteByte('\n')
	case kindDyn:
		sb.WriteString("<DynChild>\n")
		v.dyn.writeTree(sb)
		sb.WriteString("</DynChild>\n")
	case kindWidget:
		sb.WriteString(v.shared.String())
	}
}

// IntoView implements Viewable.
func (v View) IntoView(*reactive.Scope) View {
	return v
}

// IntoView converts x into a View. It accepts nil, View, *View,
// Viewable, string, Widget, and zero-argument funcs returning any of
// those; funcs become reactive nodes that re-derive when the signals
// they read change. Anything else panics.
func IntoView(cx *reactive.Scope, x any) View {
	return intoView(cx, x, callerSite(1))
}

// intoView is IntoView with the construction site supplied by the caller.
func intoView(cx *reactive.Scope, x any, site string) View {
	switch v := x.(type) {
	case nil:
		return View{}
	case View:
		return v
	case *View:
		if v == nil {
			return View{}
		}
		return *v
	case DynChild:
		return v.IntoView(cx)
	case Viewable:
		view := v.IntoView(cx)
		view.site = site
		return view
	case string:
		return View{kind: kindText, text: NewText(v), site: site}
	case Widget:
		return share(v, site)
	case func() View:
		return dyn(v, site).IntoView(cx)
	case func() string:
		return dyn(v, site).IntoView(cx)
	case func() any:
		return dyn(v, site).IntoView(cx)
	}
	panic(fmt.Sprintf("weave: cannot make a view from %T", x))
}

// Share wraps w so it can be placed in a view tree. Every View built from
// the returned value refers to the same widget.
func Share(w Widget) View {
	return share(w, callerSite(1))
}

func share(w Widget, site string) View {
	if sw, ok := w.(*SharedWidget); ok {
		return View{kind: kindWidget, shared: sw, site: site}
	}
	return View{kind: kindWidget, shared: &SharedWidget{w: w}, site: site}
}

// SharedWidget guards a widget with a mutex so one layout or draw runs
// at a time.
type SharedWidget struct {
	mu mutex
	w  Widget
}

// Name implements Widget.
func (s *SharedWidget) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Name()
}

// String returns the widget's own dump when it implements fmt.Stringer,
// else a self-closing tag with its name.
func (s *SharedWidget) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.w.(fmt.Stringer); ok {
		return st.String()
	}
	return "<" + s.w.Name() + " />\n"
}

// Layout implements Widget.
func (s *SharedWidget) Layout(limits Limits) Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Layout(limits)
}

// Draw implements Widget.
func (s *SharedWidget) Draw(ds DrawSurface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Draw(ds)
}

// Update runs fn with exclusive access to the widget.
func (s *SharedWidget) Update(fn func(w Widget)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.w)
}
