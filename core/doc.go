// Package core provides the foundational domain types and interfaces used by
// FlowMesh. It defines the core abstractions for:
//
//   - Screens (units of conversation state producing one render each)
//   - RenderSpecs and interactive elements (buttons, selects)
//   - Results (the tagged decision values callbacks and tasks produce)
//   - Origins (inbound activation contexts that must be replied to once)
//   - The Presenter contract bridging the controller to the remote platform
//
// The package intentionally keeps implementation concerns (task scheduling,
// the controller race loop, concrete presenters) out of scope, exposing small
// interfaces so hosts can plug any messaging platform behind the Presenter.
package core
