package screen

import (
	"context"
	"fmt"

	"github.com/hupe1980/flowmesh/core"
	"github.com/hupe1980/flowmesh/internal/util"
	"github.com/hupe1980/flowmesh/state"
)

// TemplateScreen renders a content template against the flow's state
// snapshot. Template syntax is text/template with the default/upper/lower/
// join helpers, e.g. "Hello {{.name}}".
type TemplateScreen struct {
	// Content is the template source.
	Content string

	// State resolves template variables. Required when Content contains
	// template markers.
	State state.Store

	// Elements are exposed as-is; an empty set makes the screen terminal.
	Elements []core.Element

	// EditInPlace and DisableAfter are copied into the produced spec.
	EditInPlace  bool
	DisableAfter bool
}

// NewTemplateScreen constructs a template screen bound to st.
func NewTemplateScreen(content string, st state.Store, elements ...core.Element) *TemplateScreen {
	return &TemplateScreen{Content: content, State: st, Elements: elements}
}

// Render implements core.Screen.
func (s *TemplateScreen) Render(_ context.Context) (core.RenderSpec, error) {
	var snapshot map[string]any
	if s.State != nil {
		snapshot = s.State.Snapshot()
	}

	body, err := util.RenderContent(s.Content, snapshot)
	if err != nil {
		return core.RenderSpec{}, fmt.Errorf("screen template failed: %w", err)
	}

	return core.RenderSpec{
		Content:      body,
		Elements:     s.Elements,
		EditInPlace:  s.EditInPlace,
		DisableAfter: s.DisableAfter,
	}, nil
}
