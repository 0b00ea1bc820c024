package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/flowmesh/core"
	"github.com/hupe1980/flowmesh/present"
)

// Dispatcher is the activation entry point of a running controller.
type Dispatcher interface {
	Dispatch(ctx context.Context, act core.Activation) error
}

// RunInput is the console activation bridge: it reads lines of the form
// "<element number> [value ...]" from in and dispatches them as activations
// until in is exhausted, ctx is cancelled or the flow ends. Run it in its
// own goroutine alongside Controller.Invoke.
func RunInput(ctx context.Context, d Dispatcher, in io.Reader, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	seq := 0

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			fmt.Fprintf(errOut, "not an element number: %s\n", fields[0])
			continue
		}

		seq++
		act := core.Activation{
			ElementIndex: idx - 1,
			Origin:       present.NewInteraction(fmt.Sprintf("console-input-%d", seq), nil),
			Values:       fields[1:],
		}

		switch err := d.Dispatch(ctx, act); {
		case err == nil:
		case errors.Is(err, core.ErrNoActiveController):
			return nil
		case errors.Is(err, core.ErrSurfaceFinished):
			// Stale input that raced a screen change; drop it.
			fmt.Fprintln(errOut, "activation arrived too late, ignored")
		default:
			fmt.Fprintf(errOut, "activation failed: %v\n", err)
		}
	}

	return scanner.Err()
}
