package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/flowmesh/core"
	"github.com/hupe1980/flowmesh/task"
)

// surface is the interactive surface of one screen: the currently active
// element set plus its finished flag. It is mutated only by the controller
// loop and by Dispatch; element callbacks communicate intent exclusively via
// the Result values they return.
type surface struct {
	mu       sync.Mutex
	elements []core.Element
	rendered core.RenderSpec
	finished bool
	waitTask *task.Task

	// results carries callback Results from Dispatch into the implicit
	// interaction-wait task.
	results chan core.Result
}

func newSurface(spec core.RenderSpec, buffer int) *surface {
	if buffer <= 0 {
		buffer = 16
	}
	els := make([]core.Element, len(spec.Elements))
	copy(els, spec.Elements)
	return &surface{elements: els, rendered: spec, results: make(chan core.Result, buffer)}
}

// setRendered records the latest dispatched render and replaces the active
// element set (ShowMessage routing).
func (s *surface) setRendered(spec core.RenderSpec) {
	els := make([]core.Element, len(spec.Elements))
	copy(els, spec.Elements)
	s.mu.Lock()
	s.rendered = spec
	s.elements = els
	s.mu.Unlock()
}

// lastRendered returns the spec of the latest dispatched render. Corrective
// re-renders build on this, not on the screen's original spec, so content
// updated by a ShowMessage edit is preserved.
func (s *surface) lastRendered() core.RenderSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rendered
}

// snapshotElements returns a copy of the active element set.
func (s *surface) snapshotElements() []core.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// element returns the element at index i.
func (s *surface) element(i int) (core.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.elements) {
		return nil, fmt.Errorf("flowmesh: no element at index %d", i)
	}
	return s.elements[i], nil
}

// finish marks the surface finished. Idempotent.
func (s *surface) finish() {
	s.mu.Lock()
	s.finished = true
	s.mu.Unlock()
}

func (s *surface) isFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

func (s *surface) setWaitTask(t *task.Task) {
	s.mu.Lock()
	s.waitTask = t
	s.mu.Unlock()
}

func (s *surface) currentWaitTask() *task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waitTask
}

// deliver hands a callback Result to the interaction-wait task. It blocks
// when the buffer is full so no acknowledged interaction result is ever
// dropped; ctx bounds the wait.
func (s *surface) deliver(ctx context.Context, r core.Result) error {
	select {
	case s.results <- r:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// awaitActivation is the operation of the implicit interaction-wait task: it
// suspends until Dispatch delivers the next callback Result or the task's
// scope is cancelled.
func (s *surface) awaitActivation(ctx context.Context) (core.Result, error) {
	select {
	case r := <-s.results:
		return r, nil
	case <-ctx.Done():
		return core.Result{}, ctx.Err()
	}
}
