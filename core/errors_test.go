package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFatal(t *testing.T) {
	assert.Nil(t, Fatal(nil))

	cause := errors.New("boom")
	err := Fatal(cause)

	assert.True(t, IsFatal(err))
	assert.ErrorIs(t, err, cause)

	// Fatality survives further wrapping.
	wrapped := fmt.Errorf("task x: %w", err)
	assert.True(t, IsFatal(wrapped))

	assert.False(t, IsFatal(cause))
	assert.False(t, IsFatal(nil))
}

func TestTaskErrors_Unwrap(t *testing.T) {
	e1 := errors.New("one")
	e2 := errors.New("two")
	agg := &TaskErrors{Errors: []error{e1, e2}}

	assert.ErrorIs(t, agg, e1)
	assert.ErrorIs(t, agg, e2)
	assert.Contains(t, agg.Error(), "2 tasks failed")

	single := &TaskErrors{Errors: []error{e1}}
	assert.Contains(t, single.Error(), "task failed")
}

func TestUnconsumedContextError(t *testing.T) {
	err := &UnconsumedContextError{Kind: KindContinue}
	assert.Contains(t, err.Error(), "continue")

	var target *UnconsumedContextError
	assert.True(t, errors.As(fmt.Errorf("apply: %w", err), &target))
	assert.Equal(t, KindContinue, target.Kind)
}
