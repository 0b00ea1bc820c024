package screen

import (
	"context"
	"testing"

	"github.com/hupe1980/flowmesh/core"
	"github.com/stretchr/testify/assert"
)

var _ core.Screen = (*MenuScreen)(nil)

type fakeOrigin struct{ acked bool }

func (o *fakeOrigin) TargetID() string   { return "fake" }
func (o *fakeOrigin) Acknowledged() bool { return o.acked }

func TestMenuScreen_EntriesTransition(t *testing.T) {
	leaf := &TemplateScreen{Content: "leaf"}
	m := &MenuScreen{Title: "Main", Entries: []MenuEntry{{Label: "Leaf", Next: leaf}}}

	spec, err := m.Render(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Main", spec.Content)
	assert.Len(t, spec.Elements, 1)

	btn := spec.Elements[0].(core.Button)
	assert.Equal(t, "Leaf", btn.Label)

	origin := &fakeOrigin{}
	r, err := btn.OnClick(context.Background(), origin)
	assert.NoError(t, err)
	assert.Equal(t, core.KindTransition, r.Kind())
	assert.Same(t, leaf, r.Next().(*TemplateScreen))
}

func TestMenuScreen_BackButton(t *testing.T) {
	parent := &MenuScreen{Title: "Main"}
	child := &MenuScreen{Title: "Sub", Back: parent}

	spec, err := child.Render(context.Background())
	assert.NoError(t, err)
	assert.Len(t, spec.Elements, 1)

	btn := spec.Elements[0].(core.Button)
	assert.Equal(t, "Back", btn.Label)

	r, err := btn.OnClick(context.Background(), &fakeOrigin{})
	assert.NoError(t, err)
	assert.Same(t, parent, r.Next().(*MenuScreen))
}

func TestMenuScreen_ExitEndsWithTerminalRender(t *testing.T) {
	m := &MenuScreen{Title: "Main", ExitLabel: "Quit"}

	spec, err := m.Render(context.Background())
	assert.NoError(t, err)
	assert.Len(t, spec.Elements, 1)

	btn := spec.Elements[0].(core.Button)
	assert.Equal(t, "Quit", btn.Label)

	r, err := btn.OnClick(context.Background(), &fakeOrigin{})
	assert.NoError(t, err)
	assert.Equal(t, core.KindShowMessage, r.Kind())
	assert.Equal(t, "Done.", r.Spec().Content)
	assert.False(t, r.Spec().HasElements())
}
