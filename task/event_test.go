package task

import (
	"context"
	"testing"
	"time"

	"github.com/hupe1980/flowmesh/core"
	"github.com/stretchr/testify/assert"
)

func TestEvent_SetResolvesOnce(t *testing.T) {
	ev := NewEvent()
	assert.False(t, ev.IsSet())

	assert.True(t, ev.Set(core.FinishFlow(false)))
	assert.True(t, ev.IsSet())

	// Later resolutions are discarded.
	assert.False(t, ev.Set(core.ContinueFlow()))
}

func TestEvent_OperationReceivesResult(t *testing.T) {
	ev := NewEvent()
	ev.Set(core.FinishFlow(true))

	r, err := ev.Operation()(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, core.KindFinish, r.Kind())
	assert.True(t, r.Terminal())
}

func TestEvent_OperationObservesCancellation(t *testing.T) {
	ev := NewEvent()
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := ev.Operation()(ctx)
		errCh <- err
	}()

	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("operation did not unwind on cancellation")
	}
}
