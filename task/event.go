package task

import (
	"context"
	"sync"

	"github.com/hupe1980/flowmesh/core"
)

// Event is an externally resolvable completion: host code obtains one from
// the controller, hands Set to whatever out-of-band machinery eventually
// produces a Result (a webhook, a timer, another subsystem) and the
// controller races the event like any other task.
//
// An Event resolves at most once; later Set calls are ignored.
type Event struct {
	mu  sync.Mutex
	ch  chan core.Result
	set bool
}

// NewEvent constructs an unresolved event.
func NewEvent() *Event {
	return &Event{ch: make(chan core.Result, 1)}
}

// Set resolves the event with r. It reports whether this call resolved the
// event; false means the event was already resolved and r was discarded.
func (e *Event) Set(r core.Result) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set {
		return false
	}
	e.set = true
	e.ch <- r
	return true
}

// IsSet reports whether the event has been resolved.
func (e *Event) IsSet() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.set
}

// Operation returns the task operation that waits for the event to resolve
// or for its scope to be cancelled.
func (e *Event) Operation() Operation {
	return func(ctx context.Context) (core.Result, error) {
		select {
		case r := <-e.ch:
			return r, nil
		case <-ctx.Done():
			return core.Result{}, ctx.Err()
		}
	}
}
