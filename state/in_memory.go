package state

import "sync"

// InMemoryStore is a volatile Store implementation backed by a process local
// map. It is safe for concurrent access and is the controller's default.
type InMemoryStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewInMemoryStore constructs an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{values: make(map[string]any)}
}

// Get returns the value and existence flag for a key.
func (s *InMemoryStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores a key/value pair.
func (s *InMemoryStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Delete removes a key.
func (s *InMemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// ApplyDelta merges the provided key/value pairs into the store.
func (s *InMemoryStore) ApplyDelta(delta map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range delta {
		s.values[k] = v
	}
}

// Snapshot returns a copy of the full state map to prevent callers from
// mutating internal state.
func (s *InMemoryStore) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
