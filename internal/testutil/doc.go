// Package testutil provides fluent helpers for constructing render specs and
// activations in tests. Chain only the parts you need; sensible defaults are
// applied.
package testutil
