package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoActiveController is returned when a task registration or dispatch is
// attempted outside a running flow (before Invoke started or after it
// returned).
var ErrNoActiveController = errors.New("flowmesh: no active controller")

// ErrSurfaceFinished is returned by Dispatch when an activation arrives for a
// surface that has already finished (stale interaction).
var ErrSurfaceFinished = errors.New("flowmesh: interactive surface already finished")

// UnconsumedContextError reports a callback contract violation: a callback
// returned ContinueFlow or FinishFlow without having replied through the
// Presenter, leaving the inbound interaction unacknowledged.
type UnconsumedContextError struct {
	// Kind is the result kind the offending callback returned.
	Kind ResultKind
}

// Error implements the error interface.
func (e *UnconsumedContextError) Error() string {
	return fmt.Sprintf("flowmesh: callback returned %s without consuming its origin context", e.Kind)
}

// FatalError marks a task failure as non-recoverable. The controller
// propagates fatal failures out of Invoke immediately (after a best-effort
// cancellation sweep) instead of forwarding them to the error hook.
type FatalError struct {
	Err error
}

// Error implements the error interface.
func (e *FatalError) Error() string { return fmt.Sprintf("flowmesh: fatal task error: %v", e.Err) }

// Unwrap returns the wrapped cause.
func (e *FatalError) Unwrap() error { return e.Err }

// Fatal wraps err so the controller treats the failure as non-recoverable.
// A nil err returns nil.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether err is (or wraps) a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

// TaskErrors aggregates the recoverable task failures of one race iteration.
// It is handed to the controller's error hook; the default hook logs and
// continues.
type TaskErrors struct {
	Errors []error
}

// Error implements the error interface.
func (e *TaskErrors) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("flowmesh: task failed: %v", e.Errors[0])
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("flowmesh: %d tasks failed: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the aggregated errors to errors.Is / errors.As.
func (e *TaskErrors) Unwrap() []error { return e.Errors }
