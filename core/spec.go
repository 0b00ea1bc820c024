package core

import (
	"context"
	"time"
)

// ButtonStyle selects the visual treatment of a Button on the remote platform.
type ButtonStyle int

const (
	// ButtonSecondary is the neutral default style.
	ButtonSecondary ButtonStyle = iota
	// ButtonPrimary highlights the suggested action.
	ButtonPrimary
	// ButtonSuccess marks a confirming action.
	ButtonSuccess
	// ButtonDanger marks a destructive action.
	ButtonDanger
)

// EntityKind selects which platform entity an EntitySelect offers.
type EntityKind int

const (
	// EntityUser offers users/members.
	EntityUser EntityKind = iota
	// EntityRole offers roles.
	EntityRole
	// EntityMentionable offers users and roles.
	EntityMentionable
	// EntityChannel offers channels.
	EntityChannel
)

// String returns the lowercase name of the entity kind.
func (k EntityKind) String() string {
	switch k {
	case EntityUser:
		return "user"
	case EntityRole:
		return "role"
	case EntityMentionable:
		return "mentionable"
	case EntityChannel:
		return "channel"
	default:
		return "unknown"
	}
}

// ButtonFunc is the callback invoked when a button is activated.
type ButtonFunc func(ctx context.Context, origin Origin) (Result, error)

// SelectFunc is the callback invoked when a select-style element is
// activated. values carries the chosen option values (or entity ids).
type SelectFunc func(ctx context.Context, origin Origin, values []string) (Result, error)

// Element represents one interactive element of a RenderSpec. Concrete
// element types implement the unexported isElement marker enabling a closed
// set; the controller dispatches activations via type switch.
type Element interface{ isElement() }

// Button is a clickable element owning a callback.
type Button struct {
	Label    string
	Style    ButtonStyle
	Emoji    string
	Disabled bool
	OnClick  ButtonFunc
}

// isElement implements the Element interface for Button.
func (Button) isElement() {}

// LinkButton is a navigation-only element. It owns no callback; activating it
// never produces a Result.
type LinkButton struct {
	Label    string
	URL      string
	Disabled bool
}

// isElement implements the Element interface for LinkButton.
func (LinkButton) isElement() {}

// SelectOption is one choosable entry of a Select.
type SelectOption struct {
	Label       string
	Value       string
	Description string
}

// Select is a string-option selection element owning a callback.
type Select struct {
	Placeholder string
	Options     []SelectOption
	MinValues   int
	MaxValues   int
	Disabled    bool
	OnSelect    SelectFunc
}

// isElement implements the Element interface for Select.
func (Select) isElement() {}

// EntitySelect is a platform-entity selection element (user, role,
// mentionable or channel) owning a callback. Selected entity ids are passed
// to OnSelect as strings.
type EntitySelect struct {
	Kind        EntityKind
	Placeholder string
	MinValues   int
	MaxValues   int
	Disabled    bool
	OnSelect    SelectFunc
}

// isElement implements the Element interface for EntitySelect.
func (EntitySelect) isElement() {}

// RenderSpec describes one render of a screen: the content to show plus the
// interactive elements to expose.
//
// Contract:
//   - If Elements is empty the screen is terminal: the controller sends the
//     render and does not wait for interaction afterwards.
//   - EditInPlace requests editing the previous render instead of sending a
//     fresh one when an editable handle is available.
//   - DisableAfter requests one corrective re-render with all elements
//     disabled once interaction-waiting for the screen has ended.
type RenderSpec struct {
	Content      string
	Elements     []Element
	EditInPlace  bool
	DisableAfter bool
	Ephemeral    bool
	TTL          time.Duration
}

// HasElements reports whether the spec exposes any interactive elements.
func (s RenderSpec) HasElements() bool { return len(s.Elements) > 0 }

// Disabled returns whether the element is marked disabled.
func Disabled(e Element) bool {
	switch el := e.(type) {
	case Button:
		return el.Disabled
	case LinkButton:
		return el.Disabled
	case Select:
		return el.Disabled
	case EntitySelect:
		return el.Disabled
	default:
		return false
	}
}

// Disable returns a copy of the element with its Disabled flag set. Used by
// the controller for the DisableAfter corrective render.
func Disable(e Element) Element {
	switch el := e.(type) {
	case Button:
		el.Disabled = true
		return el
	case LinkButton:
		el.Disabled = true
		return el
	case Select:
		el.Disabled = true
		return el
	case EntitySelect:
		el.Disabled = true
		return el
	default:
		return e
	}
}

// DisableAll returns a copy of the element slice with every element disabled.
func DisableAll(elements []Element) []Element {
	out := make([]Element, len(elements))
	for i, e := range elements {
		out[i] = Disable(e)
	}
	return out
}
