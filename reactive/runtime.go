package reactive

import "github.com/petermattis/goid"

// Runtime schedules effects. All signals and scopes created from a
// runtime share its queue.
type Runtime struct {
	exec mutex // held by the goroutine running effects

	mu      mutex
	holder  int64
	depth   int
	current *effect
	queue   []*effect
	ran     bool
	hooks   []func()
}

// NewRuntime returns an empty runtime.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// NewRoot returns a fresh root scope.
func (rt *Runtime) NewRoot() *Scope {
	return &Scope{rt: rt}
}

// AfterFlush registers fn to run each time a batch that ran at least one
// effect completes. It returns a func that removes the hook.
func (rt *Runtime) AfterFlush(fn func()) func() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	idx := len(rt.hooks)
	rt.hooks = append(rt.hooks, fn)
	return func() {
		rt.mu.Lock()
		rt.hooks[idx] = nil
		rt.mu.Unlock()
	}
}

// Batch runs fn and then every effect it scheduled, as one flush.
func (rt *Runtime) Batch(fn func()) {
	if rt.enter() {
		defer rt.leave()
		fn()
		return
	}
	defer rt.leave()
	fn()
	rt.drain()
}

// enter acquires the execution lock, reentrantly for the goroutine
// already holding it. It reports whether the call is nested.
func (rt *Runtime) enter() bool {
	id := goid.Get()
	rt.mu.Lock()
	if rt.depth > 0 && rt.holder == id {
		rt.depth++
		rt.mu.Unlock()
		return true
	}
	rt.mu.Unlock()

	rt.exec.Lock()
	rt.mu.Lock()
	rt.holder = id
	rt.depth = 1
	rt.mu.Unlock()
	return false
}

func (rt *Runtime) leave() {
	rt.mu.Lock()
	rt.depth--
	if rt.depth > 0 {
		rt.mu.Unlock()
		return
	}
	rt.holder = 0
	rt.mu.Unlock()
	rt.exec.Unlock()
}

// drain runs queued effects until the queue is empty, then fires the
// after-flush hooks. Hooks may write signals; their effects are drained
// before returning. Called only by the outermost batch.
func (rt *Runtime) drain() {
	for {
		for e := rt.next(); e != nil; e = rt.next() {
			e.run()
		}

		rt.mu.Lock()
		ran := rt.ran
		rt.ran = false
		hooks := append([]func(){}, rt.hooks...)
		rt.mu.Unlock()
		if !ran {
			return
		}
		for _, fn := range hooks {
			if fn != nil {
				fn()
			}
		}
	}
}

func (rt *Runtime) next() *effect {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if len(rt.queue) == 0 {
		return nil
	}
	e := rt.queue[0]
	rt.queue = rt.queue[1:]
	e.queued = false
	return e
}

func (rt *Runtime) schedule(effects []*effect) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	for _, e := range effects {
		if e.queued || e.disposed {
			continue
		}
		e.queued = true
		rt.queue = append(rt.queue, e)
	}
}

// observer returns the effect currently running on the calling
// goroutine, if any.
func (rt *Runtime) observer() *effect {
	id := goid.Get()
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.depth == 0 || rt.holder != id {
		return nil
	}
	return rt.current
}

func (rt *Runtime) swapCurrent(e *effect) *effect {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	prev := rt.current
	rt.current = e
	if e != nil {
		rt.ran = true
	}
	return prev
}

// Untrack runs fn without registering the signals it reads as
// dependencies of the running effect.
func (rt *Runtime) Untrack(fn func()) {
	prev := rt.swapCurrent(nil)
	defer rt.swapCurrent(prev)
	fn()
}
