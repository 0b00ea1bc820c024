package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ Store = (*InMemoryStore)(nil)

func TestInMemoryStore_GetSetDelete(t *testing.T) {
	s := NewInMemoryStore()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("name", "alice")
	v, ok := s.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "alice", v)

	s.Delete("name")
	_, ok = s.Get("name")
	assert.False(t, ok)
}

func TestInMemoryStore_ApplyDelta(t *testing.T) {
	s := NewInMemoryStore()
	s.Set("a", 1)

	s.ApplyDelta(map[string]any{"a": 2, "b": "x"})

	a, _ := s.Get("a")
	b, _ := s.Get("b")
	assert.Equal(t, 2, a)
	assert.Equal(t, "x", b)
}

func TestInMemoryStore_SnapshotIsDefensive(t *testing.T) {
	s := NewInMemoryStore()
	s.Set("k", "v")

	snap := s.Snapshot()
	snap["k"] = "mutated"
	snap["extra"] = true

	v, _ := s.Get("k")
	assert.Equal(t, "v", v)
	_, ok := s.Get("extra")
	assert.False(t, ok)
}
