package testutil

import "github.com/hupe1980/flowmesh/core"

// SpecBuilder provides a fluent helper for constructing render specs in tests.
// Example:
//
//	spec := NewSpecBuilder("pick one").Button("Go", onGo).DisableAfter().Build()
type SpecBuilder struct {
	spec core.RenderSpec
}

// NewSpecBuilder creates a builder for a spec with the given content.
func NewSpecBuilder(content string) *SpecBuilder {
	return &SpecBuilder{spec: core.RenderSpec{Content: content}}
}

// Button appends a button element with the given callback (chainable).
func (b *SpecBuilder) Button(label string, fn core.ButtonFunc) *SpecBuilder {
	b.spec.Elements = append(b.spec.Elements, core.Button{Label: label, OnClick: fn})
	return b
}

// DisabledButton appends a disabled button element (chainable).
func (b *SpecBuilder) DisabledButton(label string, fn core.ButtonFunc) *SpecBuilder {
	b.spec.Elements = append(b.spec.Elements, core.Button{Label: label, Disabled: true, OnClick: fn})
	return b
}

// Link appends a link button element (chainable).
func (b *SpecBuilder) Link(label, url string) *SpecBuilder {
	b.spec.Elements = append(b.spec.Elements, core.LinkButton{Label: label, URL: url})
	return b
}

// Select appends a select element built from value strings (chainable).
func (b *SpecBuilder) Select(placeholder string, fn core.SelectFunc, values ...string) *SpecBuilder {
	options := make([]core.SelectOption, len(values))
	for i, v := range values {
		options[i] = core.SelectOption{Label: v, Value: v}
	}
	b.spec.Elements = append(b.spec.Elements, core.Select{Placeholder: placeholder, Options: options, OnSelect: fn})
	return b
}

// EditInPlace marks the spec for edit-in-place rendering (chainable).
func (b *SpecBuilder) EditInPlace() *SpecBuilder {
	b.spec.EditInPlace = true
	return b
}

// DisableAfter requests the corrective disable render (chainable).
func (b *SpecBuilder) DisableAfter() *SpecBuilder {
	b.spec.DisableAfter = true
	return b
}

// Build returns the assembled spec.
func (b *SpecBuilder) Build() core.RenderSpec { return b.spec }
