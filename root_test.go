package weave

import (
	"testing"

	"github.com/kungfusheep/weave/reactive"
)

func TestRoot(t *testing.T) {
	t.Run("RendersMountedTree", func(t *testing.T) {
		root := Mount(reactive.NewRuntime(), func(cx *reactive.Scope) any {
			return NewCenter().Child(IntoView(cx, "hi"))
		})
		defer root.Dispose()

		buf := NewBuffer(6, 3)
		if size := root.Render(NewBufferSurface(buf)); size != (Size{6, 3}) {
			t.Errorf("size = %v", size)
		}
		if got := buf.StringTrimmed(); got != "\n  hi" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("FlushRequestsRender", func(t *testing.T) {
		rt := reactive.NewRuntime()
		var count *reactive.Signal[int]
		root := Mount(rt, func(cx *reactive.Scope) any {
			count = reactive.CreateSignal(cx, 0)
			return Dyn(func() any { return Textf("n=%d", count.Get()) })
		})
		defer root.Dispose()

		renders := newRenderRequests()
		defer rt.AfterFlush(renders.request)()

		count.Set(5)
		select {
		case <-renders:
		default:
			t.Fatal("expected a render request after Set")
		}

		buf := NewBuffer(5, 1)
		root.Render(NewBufferSurface(buf))
		if got := buf.GetLine(0); got != "n=5" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("DisposeStopsUpdates", func(t *testing.T) {
		rt := reactive.NewRuntime()
		var label *reactive.Signal[string]
		root := Mount(rt, func(cx *reactive.Scope) any {
			label = reactive.CreateSignal(cx, "before")
			return Dyn(label.Get)
		})
		root.Dispose()
		label.Set("after")

		buf := NewBuffer(10, 1)
		root.Render(NewBufferSurface(buf))
		if got := buf.GetLine(0); got != "before" {
			t.Errorf("got %q, want the last derived child", got)
		}
	})
}
