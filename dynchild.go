package weave

import (
	"strings"

	"github.com/kungfusheep/weave/reactive"
)

// DynChild is a node whose child is re-derived whenever the signals read
// by its derivation change. Build one with Dyn and place it in a tree
// through IntoView.
type DynChild struct {
	derive func(cx *reactive.Scope) View
	site   string
}

// Dyn returns a reactive node deriving its child from fn. fn may return
// anything IntoView accepts.
func Dyn[T any](fn func() T) DynChild {
	return dyn(fn, callerSite(1))
}

func dyn[T any](fn func() T, site string) DynChild {
	return DynChild{
		derive: func(cx *reactive.Scope) View {
			return intoView(cx, fn(), site)
		},
		site: site,
	}
}

// IntoView registers the effect that keeps the child current and returns
// the bound node. The first derivation runs before IntoView returns.
func (d DynChild) IntoView(cx *reactive.Scope) View {
	n := dynNode{slot: &dynSlot{}, site: d.site}
	reactive.CreateEffect(cx, func(run *reactive.Scope) {
		child := d.derive(run)
		n.slot.mu.Lock()
		n.slot.child = child
		n.slot.mu.Unlock()
	})
	return View{kind: kindDyn, dyn: n, site: d.site}
}

// dynSlot holds the current child. The effect swaps child while layout
// and draw read it, each under the lock. laidOut is the child as of the
// last Layout; Draw paints it so a swap between the two calls shows up on
// the next pass instead of drawing a child that was never laid out.
type dynSlot struct {
	mu      mutex
	child   View
	laidOut View
}

type dynNode struct {
	slot *dynSlot
	site string
}

func (n *dynNode) Layout(limits Limits) Size {
	n.slot.mu.Lock()
	defer n.slot.mu.Unlock()
	size := n.slot.child.Layout(limits)
	checkLayout(n.slot.child.Name, n.site, limits, size)
	n.slot.laidOut = n.slot.child
	return size
}

func (n *dynNode) Draw(s DrawSurface) {
	n.slot.mu.Lock()
	defer n.slot.mu.Unlock()
	n.slot.laidOut.Draw(s)
}

func (n *dynNode) writeTree(sb *strings.Builder) {
	n.slot.mu.Lock()
	defer n.slot.mu.Unlock()
	n.slot.child.writeTree(sb)
}
