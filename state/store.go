package state

// Store tracks mutable key/value state shared by the screens of one flow.
// Implementations must be safe for concurrent access: element callbacks and
// background tasks may read and write state while the controller loop runs.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)

	// ApplyDelta merges the provided key/value pairs into the store.
	ApplyDelta(delta map[string]any)

	// Snapshot returns a defensive copy of the full state map; mutating the
	// returned map does not affect the store.
	Snapshot() map[string]any
}
