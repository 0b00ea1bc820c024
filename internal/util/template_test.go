package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderContent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		state    map[string]any
		expected string
	}{
		{name: "plain text passthrough", text: "no markers here", state: nil, expected: "no markers here"},
		{name: "variable substitution", text: "Hi {{.user}}", state: map[string]any{"user": "bob"}, expected: "Hi bob"},
		{name: "upper helper", text: "{{upper .code}}", state: map[string]any{"code": "abc"}, expected: "ABC"},
		{name: "default helper", text: `{{default "guest" .user}}`, state: map[string]any{}, expected: "guest"},
		{name: "join helper", text: `{{join ", " .items}}`, state: map[string]any{"items": []any{"a", "b"}}, expected: "a, b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderContent(tt.text, tt.state)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderContent_ParseError(t *testing.T) {
	_, err := RenderContent("{{.unclosed", nil)
	assert.Error(t, err)
}
