package task

import "sync"

// Set is the controller's live task set. It preserves registration order
// (the race loop's tie-break order for simultaneously completed tasks) and
// is safe for concurrent insertion while the controller drains snapshots:
// callbacks running inside a race may register new tasks at any time.
//
// The wake channel is level-triggered: it is signalled on every insertion
// and every task completion, and consumers must re-check the state they are
// waiting for after each wake.
type Set struct {
	mu    sync.Mutex
	tasks []*Task
	wake  chan struct{}
}

// NewSet constructs an empty task set.
func NewSet() *Set {
	return &Set{wake: make(chan struct{}, 1)}
}

// Add inserts t preserving registration order and wakes any waiter.
func (s *Set) Add(t *Task) {
	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	s.Notify()
}

// Remove deletes t from the set, keeping the relative order of the rest.
func (s *Set) Remove(t *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.tasks {
		if cur == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Snapshot returns the live tasks in registration order. The returned slice
// is a copy; concurrent Add/Remove does not affect it.
func (s *Set) Snapshot() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// TakeScoped removes and returns every ScopedToScreen task, in registration
// order. Persistent tasks stay in the set.
func (s *Set) TakeScoped() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var scoped, rest []*Task
	for _, t := range s.tasks {
		if t.Lifetime() == ScopedToScreen {
			scoped = append(scoped, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.tasks = rest
	return scoped
}

// TakeAll removes and returns every task of both lifetimes.
func (s *Set) TakeAll() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.tasks
	s.tasks = nil
	return out
}

// Len returns the number of live tasks.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Wake returns the notification channel signalled on insertions and
// completions.
func (s *Set) Wake() <-chan struct{} { return s.wake }

// Notify signals the wake channel without blocking. Lost signals are fine:
// a pending signal already guarantees the consumer will re-check.
func (s *Set) Notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
