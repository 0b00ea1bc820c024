package screen

import (
	"context"

	"github.com/hupe1980/flowmesh/core"
)

// MenuEntry is one selectable branch of a MenuScreen.
type MenuEntry struct {
	Label string
	Next  core.Screen
}

// MenuScreen renders one button per entry and transitions to the chosen
// branch. Menus nest naturally: point an entry's Next at another MenuScreen
// and set Back on the child to return.
type MenuScreen struct {
	Title   string
	Entries []MenuEntry

	// Back, when set, adds a button transitioning to the given screen
	// (typically the parent menu).
	Back core.Screen

	// ExitLabel, when non-empty, adds a button that ends the flow with a
	// terminal render.
	ExitLabel string

	// ExitContent is the content of the terminal render. Defaults to
	// "Done.".
	ExitContent string
}

// Render implements core.Screen.
func (m *MenuScreen) Render(_ context.Context) (core.RenderSpec, error) {
	elements := make([]core.Element, 0, len(m.Entries)+2)

	for _, entry := range m.Entries {
		next := entry.Next
		elements = append(elements, core.Button{
			Label: entry.Label,
			Style: core.ButtonPrimary,
			OnClick: func(_ context.Context, origin core.Origin) (core.Result, error) {
				return core.TransitionScreen(next, origin), nil
			},
		})
	}

	if m.Back != nil {
		back := m.Back
		elements = append(elements, core.Button{
			Label: "Back",
			OnClick: func(_ context.Context, origin core.Origin) (core.Result, error) {
				return core.TransitionScreen(back, origin), nil
			},
		})
	}

	if m.ExitLabel != "" {
		content := m.ExitContent
		if content == "" {
			content = "Done."
		}
		elements = append(elements, core.Button{
			Label: m.ExitLabel,
			Style: core.ButtonDanger,
			OnClick: func(_ context.Context, origin core.Origin) (core.Result, error) {
				return core.ShowMessage(core.RenderSpec{Content: content}, origin), nil
			},
		})
	}

	return core.RenderSpec{Content: m.Title, Elements: elements}, nil
}
