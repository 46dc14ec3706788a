package reactive

// Signal holds a value and notifies the effects that read it.
type Signal[T any] struct {
	rt *Runtime

	mu    mutex
	value T
	subs  []*effect
}

// CreateSignal returns a signal owned by cx holding initial.
func CreateSignal[T any](cx *Scope, initial T) *Signal[T] {
	return &Signal[T]{rt: cx.rt, value: initial}
}

// Get returns the value and, inside an effect, subscribes the effect to
// future changes.
func (s *Signal[T]) Get() T {
	if e := s.rt.observer(); e != nil {
		s.subscribe(e)
		e.track(s)
	}
	return s.Peek()
}

// Peek returns the value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and runs the subscribed effects.
func (s *Signal[T]) Set(v T) {
	s.rt.Batch(func() {
		s.mu.Lock()
		s.value = v
		subs := append([]*effect(nil), s.subs...)
		s.mu.Unlock()
		s.rt.schedule(subs)
	})
}

// Update replaces the value with fn(current).
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.Peek()))
}

func (s *Signal[T]) subscribe(e *effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if sub == e {
			return
		}
	}
	s.subs = append(s.subs, e)
}

func (s *Signal[T]) unsubscribe(e *effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub == e {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
