// Package controller implements the FlowMesh scheduling core: the Controller
// owns the current screen, the live external-task set and the race/apply/
// cleanup loop that drives a flow from its first render to termination.
//
// Execution model:
//   - One logical flow per Controller; Invoke runs the outer screen loop.
//   - Each screen with interactive elements gets an interactive surface and
//     an implicit "wait for the next interaction" task, raced alongside any
//     registered external tasks.
//   - The first successful completion decides what happens next (re-render,
//     transition, keep waiting, finish); ties are broken by registration
//     order.
//   - Scope exits (screen change, flow end) cancel their tasks cooperatively
//     and await full unwind, so no dangling work survives.
//
// Error model: recoverable task failures are aggregated per race iteration
// and handed to an overridable hook (default: log and continue); fatal
// failures abort Invoke after a best-effort cancellation sweep.
package controller
