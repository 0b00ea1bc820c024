// Package present contains presentation-layer building blocks: an in-memory
// recording presenter plus target/origin/handle implementations. The
// in-memory variants are best suited for tests and ephemeral demos; real
// deployments implement core.Presenter against their messaging platform.
package present
