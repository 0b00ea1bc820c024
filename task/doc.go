// Package task implements the external-task machinery of FlowMesh: handles
// wrapping one asynchronous operation each, the registration-ordered live set
// the controller races over, and externally resolvable events.
//
// Concurrency model:
//   - Every Task runs its operation in its own goroutine with a derived,
//     individually cancellable context.
//   - Cancellation is cooperative and always awaited: Cancel signals the
//     operation, Await blocks until it actually unwinds, so no dangling work
//     survives a scope exit.
//   - The Set is safe for concurrent insertion while the controller iterates
//     snapshots; a level-triggered wake channel signals both new registrations
//     and completions, and consumers re-check state after every wake.
package task
