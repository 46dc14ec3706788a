package reactive

// Scope owns effects, child scopes and cleanup functions. Disposing a
// scope disposes its children first, then runs its cleanups in reverse
// registration order.
type Scope struct {
	rt     *Runtime
	parent *Scope

	mu       mutex
	children []*Scope
	cleanups []func()
	disposed bool
}

// Runtime returns the runtime the scope belongs to.
func (s *Scope) Runtime() *Runtime {
	return s.rt
}

// Child returns a new scope owned by s.
func (s *Scope) Child() *Scope {
	c := &Scope{rt: s.rt, parent: s}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		c.disposed = true
		return c
	}
	s.children = append(s.children, c)
	return c
}

// OnCleanup registers fn to run when the scope is disposed. On an
// already disposed scope fn runs immediately.
func (s *Scope) OnCleanup(fn func()) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
	s.mu.Unlock()
}

// Disposed reports whether Dispose has been called.
func (s *Scope) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Dispose tears down the scope and everything it owns. It is safe to
// call more than once.
func (s *Scope) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	children := s.children
	cleanups := s.cleanups
	s.children = nil
	s.cleanups = nil
	s.mu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	if s.parent != nil {
		s.parent.forget(s)
	}
}

func (s *Scope) forget(child *Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}
