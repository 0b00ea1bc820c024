// Package console provides a line-oriented terminal presenter for FlowMesh
// flows: renders are printed with lipgloss styling and element activations
// are read as numbered input lines. It exists for local development and the
// runnable examples; it is not a production presentation layer.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/hupe1980/flowmesh/core"
	"github.com/hupe1980/flowmesh/present"
)

// Options configures a console Presenter.
type Options struct {
	// Output receives rendered screens. Defaults to os.Stdout.
	Output io.Writer
}

// Presenter renders specs as styled terminal output. Edits re-print the
// render with an edited marker since a terminal cannot mutate history.
type Presenter struct {
	mu     sync.Mutex
	out    io.Writer
	nextID int

	content  lipgloss.Style
	edited   lipgloss.Style
	disabled lipgloss.Style
	styles   map[core.ButtonStyle]lipgloss.Style
}

// New constructs a console presenter with optional overrides.
func New(optFns ...func(o *Options)) *Presenter {
	opts := Options{Output: os.Stdout}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Presenter{
		out:      opts.Output,
		content:  lipgloss.NewStyle().Bold(true),
		edited:   lipgloss.NewStyle().Faint(true),
		disabled: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		styles: map[core.ButtonStyle]lipgloss.Style{
			core.ButtonPrimary:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			core.ButtonSecondary: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			core.ButtonSuccess:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			core.ButtonDanger:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		},
	}
}

// Send implements core.Presenter.
func (p *Presenter) Send(_ context.Context, target core.Target, spec core.RenderSpec) (core.Handle, error) {
	p.mu.Lock()
	p.nextID++
	msg := &present.Message{ID: fmt.Sprintf("console-%d", p.nextID), To: target, Spec: spec}
	p.mu.Unlock()

	p.print(spec, false)

	if a, ok := target.(core.Acknowledger); ok {
		a.Acknowledge()
	}

	return msg, nil
}

// Edit implements core.Presenter.
func (p *Presenter) Edit(_ context.Context, handle core.Handle, spec core.RenderSpec) (core.Handle, error) {
	msg, ok := handle.(*present.Message)
	if !ok {
		return nil, fmt.Errorf("console: unknown handle type %T", handle)
	}

	p.mu.Lock()
	msg.Spec = spec
	p.mu.Unlock()

	p.print(spec, true)

	return msg, nil
}

func (p *Presenter) print(spec core.RenderSpec, edited bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var b strings.Builder
	b.WriteString(p.content.Render(spec.Content))
	if edited {
		b.WriteString(" " + p.edited.Render("(edited)"))
	}
	b.WriteString("\n")

	for i, el := range spec.Elements {
		b.WriteString(fmt.Sprintf("  [%d] %s\n", i+1, p.renderElement(el)))
	}

	fmt.Fprint(p.out, b.String())
}

func (p *Presenter) renderElement(el core.Element) string {
	var label string
	switch e := el.(type) {
	case core.Button:
		label = p.styles[e.Style].Render(e.Label)
	case core.LinkButton:
		label = fmt.Sprintf("%s <%s>", e.Label, e.URL)
	case core.Select:
		values := make([]string, len(e.Options))
		for i, o := range e.Options {
			values[i] = o.Value
		}
		label = fmt.Sprintf("%s (%s)", e.Placeholder, strings.Join(values, "|"))
	case core.EntitySelect:
		label = fmt.Sprintf("%s select: %s", e.Kind, e.Placeholder)
	default:
		label = fmt.Sprintf("%T", el)
	}

	if core.Disabled(el) {
		return p.disabled.Render(label)
	}
	return label
}
