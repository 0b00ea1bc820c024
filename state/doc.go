// Package state provides the shared per-flow key/value store screens use to
// pass data across transitions. Stores are in-memory by design: the flow
// controller does not persist state across process restarts.
package state
