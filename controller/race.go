package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/flowmesh/task"

	"github.com/hupe1980/flowmesh/core"
)

// race is the inner loop of one screen's Waiting state. Each iteration
// snapshots the live task set, suspends until at least one snapshotted task
// completed, partitions the completions and applies successful Results in
// registration order until one of them is decisive (transition, finish, or a
// re-render with a terminal spec). Fatal failures short-circuit; recoverable
// failures are aggregated to the error hook and dropped.
func (c *Controller) race(ctx context.Context, surf *surface, handle core.Handle) (*transition, error) {
	for !surf.isFinished() {
		snapshot := c.tasks.Snapshot()

		// A task may be registered during the wait, e.g. a callback
		// spawning a background job; block on the wake signal and retry.
		if len(snapshot) == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-c.tasks.Wake():
			}
			continue
		}

		done := completedTasks(snapshot)
		for len(done) == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-c.tasks.Wake():
			}
			done = completedTasks(snapshot)
		}

		var succeeded []*task.Task
		var recoverable, fatal []error

		for _, t := range done {
			err := t.Err()
			if err == nil {
				succeeded = append(succeeded, t)
				continue
			}

			c.tasks.Remove(t)

			switch {
			case errors.Is(err, context.Canceled):
				// Deliberate cancellation of an individual task handle is
				// not a failure.
				c.logger.Debug("Task cancelled", "task", t.Name())
			case core.IsFatal(err):
				fatal = append(fatal, fmt.Errorf("task %s: %w", t.Name(), err))
			default:
				recoverable = append(recoverable, fmt.Errorf("task %s: %w", t.Name(), err))
			}
		}

		c.logger.Debug("Race iteration", "live", len(snapshot), "succeeded", len(succeeded), "failed", len(recoverable)+len(fatal))

		if len(fatal) > 0 {
			return nil, errors.Join(fatal...)
		}
		if len(recoverable) > 0 {
			c.onTaskError(&core.TaskErrors{Errors: recoverable})
		}

		// Snapshot order is registration order: the first decisive Result
		// wins and the remaining simultaneous completions are discarded
		// (their side effects already happened and are not undone).
		for _, t := range succeeded {
			c.tasks.Remove(t)
			fromWait := t == surf.currentWaitTask()

			tr, err := c.applyResult(ctx, surf, handle, t.Result())
			if err != nil {
				return nil, err
			}

			// Re-register the interaction wait before the next race so no
			// activation arriving in between is lost. The finished check
			// makes the re-registration atomic with respect to teardown:
			// runScreen cancels whatever wait task is current only after
			// race returned.
			if fromWait && !surf.isFinished() {
				if _, err := c.registerWaitTask(surf); err != nil {
					return nil, err
				}
			}

			if tr != nil || surf.isFinished() {
				return tr, nil
			}
		}
	}

	return nil, nil
}

func completedTasks(tasks []*task.Task) []*task.Task {
	var done []*task.Task
	for _, t := range tasks {
		if t.Done() {
			done = append(done, t)
		}
	}
	return done
}
