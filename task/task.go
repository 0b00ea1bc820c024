package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hupe1980/flowmesh/core"
)

// Lifetime controls whether a task survives a screen transition.
type Lifetime int

const (
	// Persistent tasks survive screen transitions and are only cancelled
	// when the whole flow ends.
	Persistent Lifetime = iota
	// ScopedToScreen tasks are cancelled when the screen they were
	// registered on is superseded.
	ScopedToScreen
)

// String returns the name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Persistent:
		return "persistent"
	case ScopedToScreen:
		return "scoped"
	default:
		return "unknown"
	}
}

// Operation is the unit of asynchronous work a Task wraps. It must observe
// ctx cancellation and unwind promptly when signalled.
type Operation func(ctx context.Context) (core.Result, error)

// Task is the handle for one in-flight asynchronous operation tracked by the
// controller's race loop. A Task is created via New, runs immediately in its
// own goroutine and completes exactly once: with a Result, with an error, or
// cancelled.
type Task struct {
	id       string
	name     string
	lifetime Lifetime
	cancel   context.CancelFunc
	done     chan struct{}

	// result / err are written once by the run goroutine before done is
	// closed; readers must check Done first.
	result core.Result
	err    error
}

// New starts op in its own goroutine and returns its handle. The operation's
// context derives from parent, so cancelling parent cancels the task; Cancel
// additionally allows cancelling this task alone. onDone, if non-nil, runs
// after the operation unwound (used by the controller to wake the race loop).
func New(parent context.Context, name string, lifetime Lifetime, op Operation, onDone func(*Task)) *Task {
	ctx, cancel := context.WithCancel(parent)
	t := &Task{
		id:       uuid.NewString(),
		name:     name,
		lifetime: lifetime,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go t.run(ctx, op, onDone)

	return t
}

func (t *Task) run(ctx context.Context, op Operation, onDone func(*Task)) {
	defer func() {
		if r := recover(); r != nil {
			// A panicking operation is a programming error, not an
			// application-level failure.
			t.err = core.Fatal(fmt.Errorf("task %s panicked: %v", t.name, r))
		}
		t.cancel()
		close(t.done)
		if onDone != nil {
			onDone(t)
		}
	}()

	t.result, t.err = op(ctx)
}

// ID returns the unique identifier of the task.
func (t *Task) ID() string { return t.id }

// Name returns the human-readable task name.
func (t *Task) Name() string { return t.name }

// Lifetime returns the task's lifetime class.
func (t *Task) Lifetime() Lifetime { return t.lifetime }

// Done reports whether the operation has completed and unwound.
func (t *Task) Done() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Err returns the operation's error. Only valid after Done reports true.
func (t *Task) Err() error { return t.err }

// Result returns the operation's result. Only valid after Done reports true
// and Err returns nil.
func (t *Task) Result() core.Result { return t.result }

// Cancel signals cooperative cancellation to the operation. It does not wait
// for the operation to unwind; pair with Await.
func (t *Task) Cancel() { t.cancel() }

// Await blocks until the operation has unwound, whether it completed,
// failed or was cancelled.
func (t *Task) Await() { <-t.done }

// CancelAndAwait cancels every task and blocks until each one has unwound.
// It is the controller's scope-exit sweep primitive: after it returns no
// work from the given tasks is still running.
func CancelAndAwait(tasks []*Task) {
	for _, t := range tasks {
		t.Cancel()
	}
	for _, t := range tasks {
		t.Await()
	}
}
