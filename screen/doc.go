// Package screen provides reusable core.Screen implementations for the
// recurring flow shapes: templated content screens bound to flow state and
// menu screens for tree-style navigation. Application code with bespoke
// rendering implements core.Screen directly instead.
package screen
