package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameScreen(t *testing.T) {
	a := &stubScreen{}
	b := &stubScreen{}

	assert.True(t, SameScreen(a, a))
	assert.False(t, SameScreen(a, b))
	assert.False(t, SameScreen(a, nil))
	assert.False(t, SameScreen(nil, a))
}

type valueScreen struct{}

func (valueScreen) Render(ctx context.Context) (RenderSpec, error) { return RenderSpec{}, nil }

func TestSameScreen_ValueTypesAreDistinct(t *testing.T) {
	// Value-typed screens never compare as the same instance, so a
	// self-transition to one still sweeps scoped tasks.
	s := valueScreen{}
	assert.False(t, SameScreen(s, s))
}
