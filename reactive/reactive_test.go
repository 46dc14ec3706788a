package reactive

import (
	"sync"
	"testing"
)

func TestSignal(t *testing.T) {
	t.Run("GetSetPeek", func(t *testing.T) {
		cx := NewRuntime().NewRoot()
		s := CreateSignal(cx, 1)
		if s.Get() != 1 {
			t.Errorf("expected 1, got %d", s.Get())
		}
		s.Set(2)
		if s.Peek() != 2 {
			t.Errorf("expected 2, got %d", s.Peek())
		}
		s.Update(func(v int) int { return v * 10 })
		if s.Peek() != 20 {
			t.Errorf("expected 20, got %d", s.Peek())
		}
	})
}

func TestEffect(t *testing.T) {
	t.Run("RunsImmediatelyAndOnChange", func(t *testing.T) {
		cx := NewRuntime().NewRoot()
		s := CreateSignal(cx, "a")
		var seen []string
		CreateEffect(cx, func(*Scope) {
			seen = append(seen, s.Get())
		})
		s.Set("b")
		s.Set("c")
		if len(seen) != 3 || seen[0] != "a" || seen[1] != "b" || seen[2] != "c" {
			t.Errorf("got %v, want [a b c]", seen)
		}
	})

	t.Run("PeekDoesNotTrack", func(t *testing.T) {
		cx := NewRuntime().NewRoot()
		s := CreateSignal(cx, 0)
		runs := 0
		CreateEffect(cx, func(*Scope) {
			runs++
			_ = s.Peek()
		})
		s.Set(1)
		if runs != 1 {
			t.Errorf("expected 1 run, got %d", runs)
		}
	})

	t.Run("UntrackDoesNotTrack", func(t *testing.T) {
		rt := NewRuntime()
		cx := rt.NewRoot()
		s := CreateSignal(cx, 0)
		runs := 0
		CreateEffect(cx, func(*Scope) {
			runs++
			rt.Untrack(func() { _ = s.Get() })
		})
		s.Set(1)
		if runs != 1 {
			t.Errorf("expected 1 run, got %d", runs)
		}
	})

	t.Run("DynamicDependencies", func(t *testing.T) {
		cx := NewRuntime().NewRoot()
		useA := CreateSignal(cx, true)
		a := CreateSignal(cx, 0)
		b := CreateSignal(cx, 0)
		runs := 0
		CreateEffect(cx, func(*Scope) {
			runs++
			if useA.Get() {
				a.Get()
			} else {
				b.Get()
			}
		})
		useA.Set(false)
		a.Set(1)
		if runs != 2 {
			t.Errorf("write to dropped dependency re-ran effect: %d runs", runs)
		}
		b.Set(1)
		if runs != 3 {
			t.Errorf("expected 3 runs, got %d", runs)
		}
	})

	t.Run("PerRunScopeDisposed", func(t *testing.T) {
		cx := NewRuntime().NewRoot()
		s := CreateSignal(cx, 0)
		cleanups := 0
		var scopes []*Scope
		CreateEffect(cx, func(run *Scope) {
			s.Get()
			scopes = append(scopes, run)
			run.OnCleanup(func() { cleanups++ })
		})
		s.Set(1)
		if cleanups != 1 {
			t.Errorf("expected previous run cleaned up once, got %d", cleanups)
		}
		if !scopes[0].Disposed() || scopes[1].Disposed() {
			t.Error("expected only the first run's scope disposed")
		}
	})

	t.Run("StopsWhenOwnerDisposed", func(t *testing.T) {
		cx := NewRuntime().NewRoot()
		s := CreateSignal(cx, 0)
		owner := cx.Child()
		runs := 0
		CreateEffect(owner, func(*Scope) {
			runs++
			s.Get()
		})
		owner.Dispose()
		s.Set(1)
		if runs != 1 {
			t.Errorf("expected 1 run, got %d", runs)
		}
	})

	t.Run("NestedEffectsReplaced", func(t *testing.T) {
		cx := NewRuntime().NewRoot()
		outer := CreateSignal(cx, 0)
		inner := CreateSignal(cx, 0)
		innerRuns := 0
		CreateEffect(cx, func(run *Scope) {
			outer.Get()
			CreateEffect(run, func(*Scope) {
				innerRuns++
				inner.Get()
			})
		})
		outer.Set(1)
		innerRuns = 0
		inner.Set(1)
		if innerRuns != 1 {
			t.Errorf("stale inner effect still subscribed: %d runs", innerRuns)
		}
	})

	t.Run("SetInsideEffectIsQueued", func(t *testing.T) {
		cx := NewRuntime().NewRoot()
		a := CreateSignal(cx, 0)
		b := CreateSignal(cx, 0)
		var got int
		CreateEffect(cx, func(*Scope) {
			b.Set(a.Get() * 2)
		})
		CreateEffect(cx, func(*Scope) {
			got = b.Get()
		})
		a.Set(5)
		if got != 10 {
			t.Errorf("expected 10, got %d", got)
		}
	})
}

func TestAfterFlush(t *testing.T) {
	rt := NewRuntime()
	cx := rt.NewRoot()
	s := CreateSignal(cx, 0)
	CreateEffect(cx, func(*Scope) { s.Get() })

	flushes := 0
	remove := rt.AfterFlush(func() { flushes++ })

	rt.Batch(func() {
		s.Set(1)
		s.Set(2)
	})
	if flushes != 1 {
		t.Errorf("expected one flush for the batch, got %d", flushes)
	}

	other := CreateSignal(cx, 0)
	other.Set(1)
	if flushes != 1 {
		t.Errorf("write with no subscribers should not flush, got %d", flushes)
	}

	remove()
	s.Set(3)
	if flushes != 1 {
		t.Errorf("removed hook still called")
	}
}

func TestConcurrentWrites(t *testing.T) {
	cx := NewRuntime().NewRoot()
	s := CreateSignal(cx, 0)
	var mu sync.Mutex
	last := 0
	CreateEffect(cx, func(*Scope) {
		v := s.Get()
		mu.Lock()
		last = v
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if last != s.Peek() {
		t.Errorf("effect saw %d, signal holds %d", last, s.Peek())
	}
}

func TestScopeDispose(t *testing.T) {
	cx := NewRuntime().NewRoot()
	var order []string
	child := cx.Child()
	child.OnCleanup(func() { order = append(order, "child") })
	cx.OnCleanup(func() { order = append(order, "first") })
	cx.OnCleanup(func() { order = append(order, "second") })

	cx.Dispose()
	cx.Dispose()

	want := []string{"child", "second", "first"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}

	ran := false
	cx.OnCleanup(func() { ran = true })
	if !ran {
		t.Error("cleanup on disposed scope should run immediately")
	}
}
