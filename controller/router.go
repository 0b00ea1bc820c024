package controller

import (
	"context"
	"fmt"

	"github.com/hupe1980/flowmesh/core"
)

// applyResult is the result router: the pure decision step mapping one
// Result plus the current interactive surface to what happens next.
//
//   - ShowMessage: replace the surface's elements with the new spec's and
//     dispatch a render; a spec without elements finishes the surface. No
//     screen transition is produced.
//   - TransitionScreen: finish the surface; the origin becomes the next
//     screen's send target.
//   - Continue: no observable side effect; the producing callback must have
//     consumed its origin already.
//   - Finish: finish the surface; terminal finishes end the whole flow.
func (c *Controller) applyResult(ctx context.Context, surf *surface, handle core.Handle, r core.Result) (*transition, error) {
	switch r.Kind() {
	case core.KindShowMessage:
		origin := r.Origin()
		if origin == nil {
			return nil, fmt.Errorf("flowmesh: show_message result carries no origin")
		}

		spec := *r.Spec()
		surf.setRendered(spec)

		if spec.EditInPlace && handle != nil {
			if _, err := c.presenter.Edit(ctx, handle, spec); err != nil {
				return nil, fmt.Errorf("edit render failed: %w", err)
			}
			acknowledge(origin)
		} else {
			if _, err := c.presenter.Send(ctx, origin, spec); err != nil {
				return nil, fmt.Errorf("send render failed: %w", err)
			}
		}

		if !spec.HasElements() {
			surf.finish()
		}

		return nil, nil

	case core.KindTransition:
		origin := r.Origin()
		if origin == nil {
			return nil, fmt.Errorf("flowmesh: transition result carries no origin")
		}
		if r.Next() == nil {
			return nil, fmt.Errorf("flowmesh: transition result carries no screen")
		}

		surf.finish()

		return &transition{next: r.Next(), target: origin}, nil

	case core.KindContinue:
		if o := r.Origin(); o != nil && !o.Acknowledged() {
			return nil, &core.UnconsumedContextError{Kind: r.Kind()}
		}
		return nil, nil

	case core.KindFinish:
		if o := r.Origin(); o != nil && !o.Acknowledged() {
			return nil, &core.UnconsumedContextError{Kind: r.Kind()}
		}

		surf.finish()
		if r.Terminal() {
			c.markFinished()
		}

		return nil, nil

	default:
		return nil, fmt.Errorf("flowmesh: invalid result kind %d", int(r.Kind()))
	}
}
