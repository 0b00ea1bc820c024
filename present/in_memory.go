package present

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/flowmesh/core"
)

// Channel is a plain render destination identified by a string.
type Channel struct {
	ID string
}

// NewChannel constructs a channel target.
func NewChannel(id string) *Channel { return &Channel{ID: id} }

// TargetID implements core.Target.
func (c *Channel) TargetID() string { return c.ID }

// Interaction is an in-memory activation context tracking its single
// acknowledgement. It is a valid send target: replying to it acknowledges it.
type Interaction struct {
	ID     string
	Parent core.Target

	mu    sync.Mutex
	acked bool
}

// NewInteraction constructs an unacknowledged interaction originating from
// parent.
func NewInteraction(id string, parent core.Target) *Interaction {
	return &Interaction{ID: id, Parent: parent}
}

// TargetID implements core.Target.
func (i *Interaction) TargetID() string { return i.ID }

// Acknowledged implements core.Origin.
func (i *Interaction) Acknowledged() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.acked
}

// Acknowledge implements core.Acknowledger.
func (i *Interaction) Acknowledge() {
	i.mu.Lock()
	i.acked = true
	i.mu.Unlock()
}

// Message is the editable handle the in-memory presenter returns from Send.
type Message struct {
	ID   string
	To   core.Target
	Spec core.RenderSpec
}

// HandleID implements core.Handle.
func (m *Message) HandleID() string { return m.ID }

// Target implements core.Handle.
func (m *Message) Target() core.Target { return m.To }

// Render records one Send or Edit observed by the in-memory presenter.
type Render struct {
	Handle *Message
	Target core.Target
	Spec   core.RenderSpec
	Edited bool
}

// InMemoryPresenter is a core.Presenter that records every render instead of
// delivering it anywhere. It is safe for concurrent use and acknowledges
// origins it sends to, mirroring platform presenter behavior.
type InMemoryPresenter struct {
	mu      sync.Mutex
	renders []Render
	nextID  int
}

// NewInMemoryPresenter constructs an empty recording presenter.
func NewInMemoryPresenter() *InMemoryPresenter {
	return &InMemoryPresenter{}
}

// Send implements core.Presenter. Sending to an Origin acknowledges it.
func (p *InMemoryPresenter) Send(_ context.Context, target core.Target, spec core.RenderSpec) (core.Handle, error) {
	p.mu.Lock()
	p.nextID++
	msg := &Message{ID: fmt.Sprintf("msg-%d", p.nextID), To: target, Spec: spec}
	p.renders = append(p.renders, Render{Handle: msg, Target: target, Spec: spec})
	p.mu.Unlock()

	if a, ok := target.(core.Acknowledger); ok {
		a.Acknowledge()
	}

	return msg, nil
}

// Edit implements core.Presenter.
func (p *InMemoryPresenter) Edit(_ context.Context, handle core.Handle, spec core.RenderSpec) (core.Handle, error) {
	msg, ok := handle.(*Message)
	if !ok {
		return nil, fmt.Errorf("present: unknown handle type %T", handle)
	}

	p.mu.Lock()
	msg.Spec = spec
	p.renders = append(p.renders, Render{Handle: msg, Target: msg.To, Spec: spec, Edited: true})
	p.mu.Unlock()

	return msg, nil
}

// Renders returns a copy of every recorded render in dispatch order.
func (p *InMemoryPresenter) Renders() []Render {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Render, len(p.renders))
	copy(out, p.renders)
	return out
}

// Sends returns only the fresh sends (no edits).
func (p *InMemoryPresenter) Sends() []Render {
	var out []Render
	for _, r := range p.Renders() {
		if !r.Edited {
			out = append(out, r)
		}
	}
	return out
}

// Edits returns only the edit renders.
func (p *InMemoryPresenter) Edits() []Render {
	var out []Render
	for _, r := range p.Renders() {
		if r.Edited {
			out = append(out, r)
		}
	}
	return out
}

// Last returns the most recent render, or false when nothing was rendered.
func (p *InMemoryPresenter) Last() (Render, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.renders) == 0 {
		return Render{}, false
	}
	return p.renders[len(p.renders)-1], true
}
