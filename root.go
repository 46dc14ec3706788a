package weave

import (
	"time"

	"github.com/kungfusheep/weave/reactive"
)

// RenderView lays v out to exactly fill s and draws it.
func RenderView(s DrawSurface, v *View) Size {
	size := v.Layout(s.Size().StrictLimits())
	v.Draw(s)
	return size
}

// Root is a mounted view tree and the scope that owns it.
type Root struct {
	rt   *reactive.Runtime
	cx   *reactive.Scope
	view View

	mu mutex // serializes renders
}

// Mount builds a tree from fn inside a new root scope of rt. fn may
// return anything IntoView accepts.
func Mount(rt *reactive.Runtime, fn func(cx *reactive.Scope) any) *Root {
	r := &Root{rt: rt, cx: rt.NewRoot()}
	r.view = IntoView(r.cx, fn(r.cx))
	return r
}

// Runtime returns the runtime the tree was mounted on.
func (r *Root) Runtime() *reactive.Runtime {
	return r.rt
}

// View returns the root node.
func (r *Root) View() *View {
	return &r.view
}

// Render draws the tree into s.
func (r *Root) Render(s DrawSurface) Size {
	r.mu.Lock()
	defer r.mu.Unlock()
	start := time.Now()
	size := RenderView(s, &r.view)
	log.Debugf("rendered %v in %s", size, time.Since(start))
	return size
}

// Dispose tears down every effect in the tree.
func (r *Root) Dispose() {
	r.cx.Dispose()
}
