package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hupe1980/flowmesh/core"
	"github.com/hupe1980/flowmesh/logging"
	"github.com/hupe1980/flowmesh/state"
	"github.com/hupe1980/flowmesh/task"
)

// ErrAlreadyRunning is returned by Invoke when the controller is already
// driving a flow. Use Copy to run the same initial screen concurrently.
var ErrAlreadyRunning = errors.New("flowmesh: controller already running")

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Logger receives controller observability output. Defaults to NoOp.
	Logger logging.Logger

	// State is the shared per-flow key/value store reachable from screens
	// via Controller.State. Defaults to an in-memory store.
	State state.Store

	// OnTaskError receives the aggregated recoverable task failures of one
	// race iteration. The default hook logs and continues; it must not
	// block the race loop for long.
	OnTaskError func(err error)

	// ActivationBuffer sets the buffer of the per-screen activation result
	// channel. Defaults to 16.
	ActivationBuffer int
}

// TaskOptions configures one task registration.
type TaskOptions struct {
	// Name is a human-readable task label used in logs. Defaults to
	// "external-task".
	Name string

	// Lifetime controls whether the task survives screen transitions.
	// Defaults to Persistent.
	Lifetime task.Lifetime
}

// InvokeOptions configures one Invoke run.
type InvokeOptions struct {
	// EditTarget is the handle of a previously sent render the first screen
	// may edit in place (RenderSpec.EditInPlace).
	EditTarget core.Handle
}

// transition is the outcome of one screen: the next screen plus the target
// its first render goes to and the handle available for edit-in-place.
type transition struct {
	next   core.Screen
	target core.Target
	handle core.Handle
}

// Controller drives one conversation flow: it owns the current screen, the
// live external-task set and the race/apply/cleanup loop. Public methods are
// safe for concurrent use; RegisterTask and Dispatch may be called from
// callbacks running inside the race.
type Controller struct {
	id        string
	initial   core.Screen
	presenter core.Presenter
	logger    logging.Logger
	store     state.Store

	onTaskError      func(err error)
	activationBuffer int

	tasks *task.Set

	mu        sync.Mutex
	running   bool
	finished  bool
	invokeCtx context.Context
	surface   *surface
}

// New constructs a Controller for the given initial screen and presenter
// with optional overrides.
func New(initial core.Screen, presenter core.Presenter, optFns ...func(o *Options)) *Controller {
	opts := Options{
		Logger:           logging.NoOpLogger{},
		State:            state.NewInMemoryStore(),
		ActivationBuffer: 16,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Controller{
		id:               uuid.NewString(),
		initial:          initial,
		presenter:        presenter,
		logger:           opts.Logger,
		store:            opts.State,
		activationBuffer: opts.ActivationBuffer,
		tasks:            task.NewSet(),
	}

	c.onTaskError = opts.OnTaskError
	if c.onTaskError == nil {
		// Mirrors the default error hook contract: recoverable task
		// failures are silent to the end user, only logged.
		c.onTaskError = func(err error) {
			c.logger.Error("Ignoring recoverable task errors", "error", err)
		}
	}

	return c
}

// ID returns the unique identifier of this controller.
func (c *Controller) ID() string { return c.id }

// State returns the shared per-flow state store.
func (c *Controller) State() state.Store { return c.store }

// Copy returns a fresh controller with the same initial screen, presenter,
// configuration and shared state store, but its own identity, run state and
// task set.
func (c *Controller) Copy() *Controller {
	return New(c.initial, c.presenter, func(o *Options) {
		o.Logger = c.logger
		o.State = c.store
		o.OnTaskError = c.onTaskError
		o.ActivationBuffer = c.activationBuffer
	})
}

// Finished reports whether a terminal FinishFlow result ended the flow.
func (c *Controller) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finished
}

func (c *Controller) markFinished() {
	c.mu.Lock()
	c.finished = true
	c.mu.Unlock()
}

// RegisterTask starts op as an external task tracked by the race loop and
// returns its handle. Registration never blocks and may happen from
// callbacks running inside the race; the loop is woken immediately.
//
// It fails with core.ErrNoActiveController when no flow is running.
func (c *Controller) RegisterTask(op task.Operation, optFns ...func(o *TaskOptions)) (*task.Task, error) {
	opts := TaskOptions{Name: "external-task", Lifetime: task.Persistent}

	for _, fn := range optFns {
		fn(&opts)
	}

	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return nil, core.ErrNoActiveController
	}
	parent := c.invokeCtx
	c.mu.Unlock()

	t := task.New(parent, opts.Name, opts.Lifetime, op, func(*task.Task) { c.tasks.Notify() })
	c.tasks.Add(t)

	c.logger.Debug("Task registered", "task", opts.Name, "lifetime", opts.Lifetime.String())

	return t, nil
}

// RegisterEvent registers an externally resolvable completion: the returned
// Event's Set resolves the returned task with a Result. Cancelling the task
// (or its scope ending) abandons the wait.
func (c *Controller) RegisterEvent(optFns ...func(o *TaskOptions)) (*task.Event, *task.Task, error) {
	ev := task.NewEvent()

	t, err := c.RegisterTask(ev.Operation(), append([]func(o *TaskOptions){func(o *TaskOptions) {
		o.Name = "external-event"
	}}, optFns...)...)
	if err != nil {
		return nil, nil, err
	}

	return ev, t, nil
}

// Dispatch is the activation bridge: the presentation layer resolves a
// remote activation to an element index and calls Dispatch, which invokes
// the matching element callback and surfaces its Result into the race loop
// as an interaction-wait completion.
//
// Dispatch returns the callback's own error to the caller (the presentation
// layer decides how to report it); contract violations (no running flow,
// finished surface, disabled or callback-less element) are reported as
// errors as well.
func (c *Controller) Dispatch(ctx context.Context, act core.Activation) error {
	c.mu.Lock()
	surf := c.surface
	running := c.running
	c.mu.Unlock()

	if !running || surf == nil {
		return core.ErrNoActiveController
	}
	if surf.isFinished() {
		return core.ErrSurfaceFinished
	}
	if act.Origin == nil {
		return fmt.Errorf("flowmesh: activation carries no origin")
	}

	el, err := surf.element(act.ElementIndex)
	if err != nil {
		return err
	}
	if core.Disabled(el) {
		return fmt.Errorf("flowmesh: element %d is disabled", act.ElementIndex)
	}

	var res core.Result
	switch e := el.(type) {
	case core.Button:
		if e.OnClick == nil {
			return fmt.Errorf("flowmesh: button %q has no callback", e.Label)
		}
		res, err = e.OnClick(ctx, act.Origin)
	case core.Select:
		if e.OnSelect == nil {
			return fmt.Errorf("flowmesh: select has no callback")
		}
		res, err = e.OnSelect(ctx, act.Origin, act.Values)
	case core.EntitySelect:
		if e.OnSelect == nil {
			return fmt.Errorf("flowmesh: %s select has no callback", e.Kind)
		}
		res, err = e.OnSelect(ctx, act.Origin, act.Values)
	case core.LinkButton:
		return fmt.Errorf("flowmesh: link buttons produce no activation")
	default:
		return fmt.Errorf("flowmesh: unsupported element type %T", el)
	}
	if err != nil {
		return fmt.Errorf("element callback failed: %w", err)
	}

	if res.Origin() == nil {
		res = res.WithOrigin(act.Origin)
	}

	return surf.deliver(ctx, res)
}

// Invoke runs the flow: it renders the initial screen to target and loops
// racing tasks and applying transitions until the flow ends. On return,
// normal or fatal, every task of both lifetimes has been cancelled and
// awaited; none leak.
func (c *Controller) Invoke(ctx context.Context, target core.Target, optFns ...func(o *InvokeOptions)) error {
	var iopts InvokeOptions
	for _, fn := range optFns {
		fn(&iopts)
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return ErrAlreadyRunning
	}
	invokeCtx, cancel := context.WithCancel(ctx)
	c.running = true
	c.finished = false
	c.invokeCtx = invokeCtx
	c.mu.Unlock()

	defer func() {
		// Flow-end sweep: cancel and await every remaining task of both
		// lifetimes. This also runs best-effort before a fatal error
		// propagates out.
		task.CancelAndAwait(c.tasks.TakeAll())
		cancel()

		c.mu.Lock()
		c.running = false
		c.surface = nil
		c.invokeCtx = nil
		c.mu.Unlock()
	}()

	c.logger.Info("Flow started", "flow_id", c.id, "target", target.TargetID())

	screen := c.initial
	editTarget := iopts.EditTarget

	for {
		tr, err := c.runScreen(invokeCtx, screen, target, editTarget)
		if err != nil {
			c.logger.Error("Flow aborted", "flow_id", c.id, "error", err)
			return err
		}
		if tr == nil {
			c.logger.Info("Flow finished", "flow_id", c.id)
			return nil
		}

		// A transition strictly happens-before the scoped cancellation
		// sweep, which strictly happens-before the next screen's render.
		if !core.SameScreen(tr.next, screen) {
			task.CancelAndAwait(c.tasks.TakeScoped())
		}

		screen = tr.next
		if tr.target != nil {
			target = tr.target
		}
		editTarget = tr.handle
	}
}

// runScreen drives one screen: lifecycle hooks, render, the interaction wait
// with the task race, and teardown. A nil transition signals flow end.
func (c *Controller) runScreen(ctx context.Context, screen core.Screen, target core.Target, editTarget core.Handle) (*transition, error) {
	if b, ok := screen.(core.BeforeHook); ok {
		if err := b.Before(ctx); err != nil {
			return nil, fmt.Errorf("before hook failed: %w", err)
		}
	}

	spec, err := screen.Render(ctx)
	if err != nil {
		return nil, fmt.Errorf("screen render failed: %w", err)
	}

	// A spec without interactive elements is terminal: send and stop.
	if !spec.HasElements() {
		if _, err := c.sendSpec(ctx, target, spec, editTarget); err != nil {
			return nil, err
		}
		return nil, c.runAfterHook(ctx, screen)
	}

	surf := newSurface(spec, c.activationBuffer)
	c.mu.Lock()
	c.surface = surf
	c.mu.Unlock()

	handle, err := c.sendSpec(ctx, target, spec, editTarget)
	if err != nil {
		return nil, err
	}

	if _, err := c.registerWaitTask(surf); err != nil {
		return nil, err
	}

	tr, raceErr := c.race(ctx, surf, handle)

	// The wait task is cancelled at surface finish regardless of where the
	// flow goes next; a same-screen re-entry builds a fresh surface.
	if wt := surf.currentWaitTask(); wt != nil {
		c.tasks.Remove(wt)
		wt.Cancel()
		wt.Await()
	}

	if raceErr != nil {
		return nil, raceErr
	}

	if spec.DisableAfter && handle != nil {
		disabled := surf.lastRendered()
		disabled.Elements = core.DisableAll(surf.snapshotElements())
		if _, err := c.presenter.Edit(ctx, handle, disabled); err != nil {
			c.logger.Warn("Corrective disable render failed", "error", err)
		}
	}

	if err := c.runAfterHook(ctx, screen); err != nil {
		return nil, err
	}

	if tr != nil {
		tr.handle = handle
	}

	return tr, nil
}

func (c *Controller) runAfterHook(ctx context.Context, screen core.Screen) error {
	if a, ok := screen.(core.AfterHook); ok {
		if err := a.After(ctx); err != nil {
			return fmt.Errorf("after hook failed: %w", err)
		}
	}
	return nil
}

// registerWaitTask registers the implicit interaction-wait task for surf.
// The race loop re-registers it after consuming each of its completions
// unless the surface already finished.
func (c *Controller) registerWaitTask(surf *surface) (*task.Task, error) {
	t, err := c.RegisterTask(surf.awaitActivation, func(o *TaskOptions) {
		o.Name = "interaction-wait"
		o.Lifetime = task.ScopedToScreen
	})
	if err != nil {
		return nil, err
	}
	surf.setWaitTask(t)
	return t, nil
}

// sendSpec dispatches one render: edit-in-place when requested and possible,
// fresh send otherwise. Successful origin-consuming edits acknowledge the
// origin on behalf of the presenter.
func (c *Controller) sendSpec(ctx context.Context, target core.Target, spec core.RenderSpec, editTarget core.Handle) (core.Handle, error) {
	if spec.EditInPlace && editTarget != nil {
		h, err := c.presenter.Edit(ctx, editTarget, spec)
		if err != nil {
			return nil, fmt.Errorf("edit render failed: %w", err)
		}
		acknowledge(target)
		return h, nil
	}

	h, err := c.presenter.Send(ctx, target, spec)
	if err != nil {
		return nil, fmt.Errorf("send render failed: %w", err)
	}
	return h, nil
}

func acknowledge(target core.Target) {
	if o, ok := target.(core.Origin); ok && !o.Acknowledged() {
		if a, ok := target.(core.Acknowledger); ok {
			a.Acknowledge()
		}
	}
}
