package core

import (
	"context"
	"reflect"
)

// Screen is a unit of conversation state producing one render and reacting to
// exactly one resulting transition. Implementations are typically pointer
// types; the controller compares screens by pointer identity to decide
// whether a transition actually changed the active screen (see SameScreen).
//
// Render must be pure with respect to controller state: calling it twice
// without an intervening mutation must yield an equivalent spec.
type Screen interface {
	Render(ctx context.Context) (RenderSpec, error)
}

// BeforeHook is implemented by screens that need to run side effects prior to
// rendering, for example registering background tasks.
type BeforeHook interface {
	Before(ctx context.Context) error
}

// AfterHook is implemented by screens that need teardown once interaction
// waiting for the screen has ended, for example stopping owned sub-dialogs.
type AfterHook interface {
	After(ctx context.Context) error
}

// SameScreen reports whether a and b are the same screen instance. Screens
// are compared by pointer identity; non-pointer screens are always treated as
// distinct so a transition to a value-typed screen triggers the scoped
// cancellation sweep.
func SameScreen(a, b Screen) bool {
	if a == nil || b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || vb.Kind() != reflect.Pointer {
		return false
	}
	return va.Pointer() == vb.Pointer()
}
