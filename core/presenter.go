package core

import "context"

// Presenter is the presentation-layer contract consumed by the controller.
// Implementations bridge renders to a concrete platform (chat service,
// terminal, test recorder). The controller calls Send/Edit at most once per
// routing decision, so implementations need not deduplicate.
//
// Sending to a Target that is also an Origin acknowledges the underlying
// interaction; implementations must mark the origin acknowledged on success.
type Presenter interface {
	// Send delivers a fresh render to target and returns an editable handle.
	Send(ctx context.Context, target Target, spec RenderSpec) (Handle, error)

	// Edit replaces the render referenced by handle and returns the (possibly
	// new) editable handle.
	Edit(ctx context.Context, handle Handle, spec RenderSpec) (Handle, error)
}
