package weave

import "testing"

func TestCenter(t *testing.T) {
	t.Run("ChildLimitsAreLoosened", func(t *testing.T) {
		spy := &spyWidget{size: Size{2, 1}}
		c := NewCenter().Child(Share(spy))
		size := c.Layout(Between(Size{4, 4}, Size{10, 6}))
		if size != (Size{10, 6}) {
			t.Errorf("size = %v, want the maximum 10x6", size)
		}
		want := Between(Size{}, Size{10, 6})
		if len(spy.limits) != 1 || spy.limits[0] != want {
			t.Errorf("child limits = %v, want %v", spy.limits, want)
		}
	})

	t.Run("DrawsInTheMiddle", func(t *testing.T) {
		spy := &spyWidget{size: Size{2, 1}}
		v := NewCenter().Child(Share(spy)).IntoView(newScope())
		buf := NewBuffer(7, 3)
		RenderView(NewBufferSurface(buf), &v)
		if len(spy.drawn) != 1 || spy.drawn[0] != (Size{2, 1}) {
			t.Errorf("child drawn with %v, want 2x1", spy.drawn)
		}
		if got := buf.GetLine(1); got != "  #" {
			t.Errorf("row 1 = %q, want %q", got, "  #")
		}
	})

	t.Run("CentersText", func(t *testing.T) {
		cx := newScope()
		v := NewCenter().Child(IntoView(cx, "hello")).IntoView(cx)
		buf := NewBuffer(9, 3)
		if size := RenderView(NewBufferSurface(buf), &v); size != (Size{9, 3}) {
			t.Errorf("size = %v", size)
		}
		want := "\n  hello"
		if got := buf.StringTrimmed(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("EmptyChild", func(t *testing.T) {
		v := NewCenter().IntoView(newScope())
		buf := NewBuffer(3, 3)
		RenderView(NewBufferSurface(buf), &v)
		if got := buf.StringTrimmed(); got != "" {
			t.Errorf("got %q", got)
		}
	})
}
