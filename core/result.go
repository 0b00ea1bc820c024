package core

// ResultKind discriminates the Result union.
type ResultKind int

const (
	// KindShowMessage replaces the interactive surface with a new render
	// while staying on the current screen.
	KindShowMessage ResultKind = iota + 1
	// KindTransition hands control to a new screen.
	KindTransition
	// KindContinue keeps waiting; the producing callback already replied.
	KindContinue
	// KindFinish ends the interaction wait (and, if terminal, the flow).
	KindFinish
)

// String returns the name of the result kind.
func (k ResultKind) String() string {
	switch k {
	case KindShowMessage:
		return "show_message"
	case KindTransition:
		return "transition"
	case KindContinue:
		return "continue"
	case KindFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Result is the tagged decision value produced by element callbacks and
// external tasks. Construct values via ShowMessage, TransitionScreen,
// ContinueFlow or FinishFlow; the zero Result is invalid.
type Result struct {
	kind     ResultKind
	spec     *RenderSpec
	next     Screen
	origin   Origin
	terminal bool
}

// ShowMessage replaces the interactive surface with spec and dispatches a
// render without leaving the current screen. If spec has no elements the
// surface is finished after the render.
func ShowMessage(spec RenderSpec, origin Origin) Result {
	return Result{kind: KindShowMessage, spec: &spec, origin: origin}
}

// TransitionScreen finishes the current surface and hands control to next.
// The origin becomes the send target for next's first render.
func TransitionScreen(next Screen, origin Origin) Result {
	return Result{kind: KindTransition, next: next, origin: origin}
}

// ContinueFlow keeps the controller waiting for the next interaction. The
// producing callback must already have replied through the Presenter;
// returning ContinueFlow with an unacknowledged origin is a programming
// error surfaced as UnconsumedContextError.
func ContinueFlow() Result {
	return Result{kind: KindContinue}
}

// FinishFlow finishes the current surface. If terminal is true the whole
// flow ends, not just the current screen's interaction wait. The same
// acknowledgement contract as ContinueFlow applies.
func FinishFlow(terminal bool) Result {
	return Result{kind: KindFinish, terminal: terminal}
}

// Kind returns the discriminator of the union.
func (r Result) Kind() ResultKind { return r.kind }

// Spec returns the render spec carried by a ShowMessage result, nil otherwise.
func (r Result) Spec() *RenderSpec { return r.spec }

// Next returns the transition target carried by a TransitionScreen result,
// nil otherwise.
func (r Result) Next() Screen { return r.next }

// Origin returns the inbound context the result replies to. May be nil for
// ContinueFlow/FinishFlow, or before the dispatch bridge fills it in.
func (r Result) Origin() Origin { return r.origin }

// Terminal reports whether a FinishFlow result ends the whole flow.
func (r Result) Terminal() bool { return r.terminal }

// WithOrigin returns a copy of the result carrying origin. The dispatch
// bridge uses this to attach the activation's origin when the callback did
// not supply one.
func (r Result) WithOrigin(origin Origin) Result {
	r.origin = origin
	return r
}
