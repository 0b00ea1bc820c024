package screen

import (
	"context"
	"testing"

	"github.com/hupe1980/flowmesh/core"
	"github.com/hupe1980/flowmesh/state"
	"github.com/stretchr/testify/assert"
)

var _ core.Screen = (*TemplateScreen)(nil)

func TestTemplateScreen_RendersState(t *testing.T) {
	st := state.NewInMemoryStore()
	st.Set("name", "Alice")

	s := NewTemplateScreen("Hello {{.name}}", st, core.Button{Label: "Hi"})

	spec, err := s.Render(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Hello Alice", spec.Content)
	assert.Len(t, spec.Elements, 1)
}

func TestTemplateScreen_PlainContentNeedsNoState(t *testing.T) {
	s := NewTemplateScreen("static text", nil)

	spec, err := s.Render(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "static text", spec.Content)
	assert.False(t, spec.HasElements())
}

func TestTemplateScreen_BadTemplateFails(t *testing.T) {
	s := NewTemplateScreen("{{.name", state.NewInMemoryStore())

	_, err := s.Render(context.Background())
	assert.Error(t, err)
}

func TestTemplateScreen_CopiesFlags(t *testing.T) {
	s := &TemplateScreen{Content: "x", EditInPlace: true, DisableAfter: true}

	spec, err := s.Render(context.Background())
	assert.NoError(t, err)
	assert.True(t, spec.EditInPlace)
	assert.True(t, spec.DisableAfter)
}
