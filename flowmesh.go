// Package flowmesh provides a high-level façade over the controller engine
// and its supporting abstractions (screens, tasks, state & logging) enabling
// rapid construction of message-based conversation flows. Most applications
// interact with this package by:
//  1. Creating a Flow via New() with the initial screen and a presenter
//  2. Running it with Run(), which blocks until the flow ends
//  3. Bridging remote activations into Dispatch() and long-running work into
//     RegisterTask()/RegisterEvent()
//
// The façade delegates orchestration to controller.Controller while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a durable
// state store and a structured logger.
package flowmesh

import (
	"context"

	"github.com/hupe1980/flowmesh/controller"
	"github.com/hupe1980/flowmesh/core"
	"github.com/hupe1980/flowmesh/logging"
	"github.com/hupe1980/flowmesh/state"
	"github.com/hupe1980/flowmesh/task"
)

// Options configures the Flow instance.
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// State is the shared per-flow key/value store (defaults to an in-memory
	// implementation if not provided).
	State state.Store

	// OnTaskError receives the aggregated recoverable failures of one race
	// iteration. Defaults to logging and continuing.
	OnTaskError func(err error)
}

// Flow is the high-level façade aggregating the underlying controller.
type Flow struct {
	opts       Options
	controller *controller.Controller
}

// New creates a new Flow for the given initial screen and presenter with
// optional overrides. Any unset service is initialized with an in-memory or
// no-op implementation.
func New(initial core.Screen, presenter core.Presenter, optFns ...func(o *Options)) *Flow {
	opts := Options{
		Logger: logging.NoOpLogger{},
		State:  state.NewInMemoryStore(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	c := controller.New(initial, presenter, func(o *controller.Options) {
		o.Logger = opts.Logger
		o.State = opts.State
		o.OnTaskError = opts.OnTaskError
	})

	return &Flow{opts: opts, controller: c}
}

// Controller exposes the underlying controller for advanced wiring.
func (f *Flow) Controller() *controller.Controller { return f.controller }

// State returns the shared per-flow state store.
func (f *Flow) State() state.Store { return f.controller.State() }

// Finished reports whether a terminal finish ended the flow.
func (f *Flow) Finished() bool { return f.controller.Finished() }

// Run drives the flow against target and blocks until it ends. On return
// every registered task has been cancelled and awaited.
func (f *Flow) Run(ctx context.Context, target core.Target, optFns ...func(o *controller.InvokeOptions)) error {
	return f.controller.Invoke(ctx, target, optFns...)
}

// Dispatch routes one remote activation into the running flow.
func (f *Flow) Dispatch(ctx context.Context, act core.Activation) error {
	return f.controller.Dispatch(ctx, act)
}

// RegisterTask starts op as an external task raced alongside interaction
// waits. It fails with core.ErrNoActiveController when the flow is not
// running.
func (f *Flow) RegisterTask(op task.Operation, optFns ...func(o *controller.TaskOptions)) (*task.Task, error) {
	return f.controller.RegisterTask(op, optFns...)
}

// RegisterEvent registers an externally resolvable completion and returns the
// Event used to resolve it.
func (f *Flow) RegisterEvent(optFns ...func(o *controller.TaskOptions)) (*task.Event, *task.Task, error) {
	return f.controller.RegisterEvent(optFns...)
}
