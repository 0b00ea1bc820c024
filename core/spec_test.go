package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSpec_HasElements(t *testing.T) {
	assert.False(t, RenderSpec{Content: "done"}.HasElements())
	assert.True(t, RenderSpec{Elements: []Element{Button{Label: "Go"}}}.HasElements())
}

func TestDisable_CopiesElement(t *testing.T) {
	btn := Button{Label: "Go"}

	disabled := Disable(btn)
	assert.True(t, Disabled(disabled))
	assert.False(t, btn.Disabled, "original element must stay untouched")
}

func TestDisableAll(t *testing.T) {
	elements := []Element{
		Button{Label: "A"},
		LinkButton{Label: "Docs", URL: "https://example.com"},
		Select{Placeholder: "pick"},
		EntitySelect{Kind: EntityRole},
	}

	disabled := DisableAll(elements)
	assert.Len(t, disabled, len(elements))
	for _, e := range disabled {
		assert.True(t, Disabled(e))
	}
	for _, e := range elements {
		assert.False(t, Disabled(e))
	}
}

func TestEntityKind_String(t *testing.T) {
	assert.Equal(t, "user", EntityUser.String())
	assert.Equal(t, "role", EntityRole.String())
	assert.Equal(t, "mentionable", EntityMentionable.String())
	assert.Equal(t, "channel", EntityChannel.String())
}
