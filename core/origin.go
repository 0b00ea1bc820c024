package core

// Target identifies a destination the Presenter can deliver a render to,
// for example a channel, a direct-message thread or an inbound interaction.
// The controller treats targets as opaque; only the Presenter interprets them.
type Target interface {
	// TargetID returns a stable identifier for the destination, used for
	// logging and correlation only.
	TargetID() string
}

// Origin is the inbound activation context that authorizes exactly one reply.
// Every Origin is also a valid Target: replying to it acknowledges the
// underlying interaction on the remote platform.
//
// Contract:
//   - The platform requires exactly one acknowledgement per activation.
//   - A callback returning ContinueFlow or FinishFlow must have consumed its
//     origin (replied through the Presenter) before returning; the router
//     surfaces an UnconsumedContextError otherwise.
type Origin interface {
	Target

	// Acknowledged reports whether a reply has been dispatched for this
	// activation.
	Acknowledged() bool
}

// Acknowledger is implemented by origins whose acknowledgement bookkeeping is
// driven from outside the presenter, for example when an edit-in-place render
// consumes the triggering interaction without the presenter ever seeing the
// origin. Presenters mark origins acknowledged on Send; the controller calls
// Acknowledge after origin-consuming edits.
type Acknowledger interface {
	Acknowledge()
}

// Handle references a previously sent render so it can be edited in place.
// Concrete presenters return their own handle implementations from Send/Edit.
type Handle interface {
	// HandleID returns a stable identifier for the sent render.
	HandleID() string

	// Target returns the destination the render was delivered to, used as a
	// fallback send target for follow-up renders.
	Target() Target
}

// Activation describes one remote activation of an interactive element,
// resolved by the presentation layer and fed into the controller via
// Controller.Dispatch.
type Activation struct {
	// ElementIndex addresses the activated element within the currently
	// rendered spec's element sequence.
	ElementIndex int

	// Origin is the inbound interaction context. Required.
	Origin Origin

	// Values carries the selection values for select-style elements. Empty
	// for buttons.
	Values []string
}
