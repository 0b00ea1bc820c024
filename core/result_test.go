package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Constructors(t *testing.T) {
	origin := &stubOrigin{id: "i-1"}
	next := &stubScreen{}

	show := ShowMessage(RenderSpec{Content: "hi"}, origin)
	assert.Equal(t, KindShowMessage, show.Kind())
	assert.NotNil(t, show.Spec())
	assert.Equal(t, "hi", show.Spec().Content)
	assert.Same(t, origin, show.Origin().(*stubOrigin))

	tr := TransitionScreen(next, origin)
	assert.Equal(t, KindTransition, tr.Kind())
	assert.Same(t, next, tr.Next().(*stubScreen))
	assert.Nil(t, tr.Spec())

	cont := ContinueFlow()
	assert.Equal(t, KindContinue, cont.Kind())
	assert.Nil(t, cont.Origin())

	fin := FinishFlow(false)
	assert.Equal(t, KindFinish, fin.Kind())
	assert.False(t, fin.Terminal())

	assert.True(t, FinishFlow(true).Terminal())
}

func TestResult_WithOrigin(t *testing.T) {
	origin := &stubOrigin{id: "i-2"}

	r := ContinueFlow().WithOrigin(origin)
	assert.Same(t, origin, r.Origin().(*stubOrigin))

	// The receiver is unchanged; WithOrigin returns a copy.
	base := FinishFlow(false)
	_ = base.WithOrigin(origin)
	assert.Nil(t, base.Origin())
}

func TestResultKind_String(t *testing.T) {
	assert.Equal(t, "show_message", KindShowMessage.String())
	assert.Equal(t, "transition", KindTransition.String())
	assert.Equal(t, "continue", KindContinue.String())
	assert.Equal(t, "finish", KindFinish.String())
	assert.Equal(t, "unknown", ResultKind(0).String())
}
