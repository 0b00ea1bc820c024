package present

import (
	"context"
	"testing"

	"github.com/hupe1980/flowmesh/core"
	"github.com/stretchr/testify/assert"
)

var (
	_ core.Target       = (*Channel)(nil)
	_ core.Origin       = (*Interaction)(nil)
	_ core.Acknowledger = (*Interaction)(nil)
	_ core.Handle       = (*Message)(nil)
	_ core.Presenter    = (*InMemoryPresenter)(nil)
)

func TestInMemoryPresenter_SendRecordsAndReturnsHandle(t *testing.T) {
	p := NewInMemoryPresenter()
	ch := NewChannel("general")

	h, err := p.Send(context.Background(), ch, core.RenderSpec{Content: "hello"})
	assert.NoError(t, err)
	assert.Equal(t, "msg-1", h.HandleID())
	assert.Same(t, ch, h.Target().(*Channel))

	sends := p.Sends()
	assert.Len(t, sends, 1)
	assert.Equal(t, "hello", sends[0].Spec.Content)
	assert.Empty(t, p.Edits())
}

func TestInMemoryPresenter_SendAcknowledgesOrigin(t *testing.T) {
	p := NewInMemoryPresenter()
	origin := NewInteraction("i-1", NewChannel("general"))
	assert.False(t, origin.Acknowledged())

	_, err := p.Send(context.Background(), origin, core.RenderSpec{Content: "reply"})
	assert.NoError(t, err)
	assert.True(t, origin.Acknowledged())
}

func TestInMemoryPresenter_EditUpdatesMessage(t *testing.T) {
	p := NewInMemoryPresenter()
	ch := NewChannel("general")

	h, err := p.Send(context.Background(), ch, core.RenderSpec{Content: "v1"})
	assert.NoError(t, err)

	h2, err := p.Edit(context.Background(), h, core.RenderSpec{Content: "v2"})
	assert.NoError(t, err)
	assert.Equal(t, h.HandleID(), h2.HandleID())

	edits := p.Edits()
	assert.Len(t, edits, 1)
	assert.Equal(t, "v2", edits[0].Spec.Content)

	last, ok := p.Last()
	assert.True(t, ok)
	assert.True(t, last.Edited)
	assert.Equal(t, "v2", last.Handle.Spec.Content)
}

func TestInMemoryPresenter_EditRejectsForeignHandle(t *testing.T) {
	p := NewInMemoryPresenter()

	type foreignHandle struct{ core.Handle }
	_, err := p.Edit(context.Background(), foreignHandle{}, core.RenderSpec{})
	assert.Error(t, err)
}
