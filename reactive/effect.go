package reactive

// source is anything an effect can depend on.
type source interface {
	unsubscribe(e *effect)
}

type effect struct {
	rt    *Runtime
	owner *Scope
	fn    func(*Scope)

	// scope and deps belong to the goroutine holding rt.exec. queued is
	// guarded by rt.mu; disposed is written holding both.
	scope    *Scope
	deps     []source
	queued   bool
	disposed bool
}

// CreateEffect runs fn immediately and again whenever a signal it read
// during its last run changes. Each run gets a fresh child scope of cx;
// the previous run's scope is disposed first. The effect stops when cx
// is disposed.
func CreateEffect(cx *Scope, fn func(cx *Scope)) {
	e := &effect{rt: cx.rt, owner: cx, fn: fn}
	cx.OnCleanup(e.dispose)
	cx.rt.Batch(e.run)
}

func (e *effect) track(s source) {
	for _, d := range e.deps {
		if d == s {
			return
		}
	}
	e.deps = append(e.deps, s)
}

func (e *effect) clear() {
	for _, d := range e.deps {
		d.unsubscribe(e)
	}
	e.deps = nil
	if e.scope != nil {
		e.scope.Dispose()
		e.scope = nil
	}
}

func (e *effect) run() {
	if e.disposed {
		return
	}
	e.clear()
	e.scope = e.owner.Child()

	prev := e.rt.swapCurrent(e)
	defer e.rt.swapCurrent(prev)
	e.fn(e.scope)
}

func (e *effect) dispose() {
	e.rt.Batch(func() {
		e.rt.mu.Lock()
		e.disposed = true
		e.rt.mu.Unlock()
		e.clear()
	})
}
