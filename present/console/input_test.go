package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hupe1980/flowmesh/core"
	"github.com/stretchr/testify/assert"
)

type recordingDispatcher struct {
	acts []core.Activation
	errs []error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, act core.Activation) error {
	d.acts = append(d.acts, act)
	if len(d.errs) > 0 {
		err := d.errs[0]
		d.errs = d.errs[1:]
		return err
	}
	return nil
}

func TestRunInput_ParsesActivations(t *testing.T) {
	d := &recordingDispatcher{}
	var errOut bytes.Buffer

	in := strings.NewReader("1\n2 red blue\n\nnope\n")
	err := RunInput(context.Background(), d, in, &errOut)
	assert.NoError(t, err)

	assert.Len(t, d.acts, 2)
	assert.Equal(t, 0, d.acts[0].ElementIndex)
	assert.Empty(t, d.acts[0].Values)
	assert.Equal(t, 1, d.acts[1].ElementIndex)
	assert.Equal(t, []string{"red", "blue"}, d.acts[1].Values)
	assert.NotNil(t, d.acts[0].Origin)

	// The unparseable line is reported, not fatal.
	assert.Contains(t, errOut.String(), "not an element number")
}

func TestRunInput_StopsWhenFlowEnded(t *testing.T) {
	d := &recordingDispatcher{errs: []error{core.ErrNoActiveController}}
	var errOut bytes.Buffer

	in := strings.NewReader("1\n2\n3\n")
	err := RunInput(context.Background(), d, in, &errOut)
	assert.NoError(t, err)

	// Reading stopped after the flow reported it was gone.
	assert.Len(t, d.acts, 1)
}

func TestRunInput_SkipsStaleActivations(t *testing.T) {
	d := &recordingDispatcher{errs: []error{core.ErrSurfaceFinished}}
	var errOut bytes.Buffer

	in := strings.NewReader("1\n2\n")
	err := RunInput(context.Background(), d, in, &errOut)
	assert.NoError(t, err)

	// The stale activation is dropped but reading continues.
	assert.Len(t, d.acts, 2)
	assert.Contains(t, errOut.String(), "too late")
}

func TestRunInput_ReportsDispatchErrors(t *testing.T) {
	d := &recordingDispatcher{errs: []error{assert.AnError}}
	var errOut bytes.Buffer

	in := strings.NewReader("1\n2\n")
	err := RunInput(context.Background(), d, in, &errOut)
	assert.NoError(t, err)

	assert.Len(t, d.acts, 2)
	assert.Contains(t, errOut.String(), "activation failed")
}
