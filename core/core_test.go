package core

import (
	"context"
	"sync"
)

// stubOrigin is a minimal Origin + Acknowledger used across the package tests.
type stubOrigin struct {
	id string

	mu    sync.Mutex
	acked bool
}

func (o *stubOrigin) TargetID() string { return o.id }

func (o *stubOrigin) Acknowledged() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.acked
}

func (o *stubOrigin) Acknowledge() {
	o.mu.Lock()
	o.acked = true
	o.mu.Unlock()
}

// stubScreen renders a fixed spec.
type stubScreen struct {
	spec RenderSpec
}

func (s *stubScreen) Render(context.Context) (RenderSpec, error) { return s.spec, nil }
