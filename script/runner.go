package script

import (
	"context"

	"github.com/pkg/errors"

	"github.com/eaugeas/arbor/logs"
)

// Runner applies scripts to trees
type Runner struct {
	Logger logs.Logger

	// Verify validates the tree after every step
	Verify bool
}

// Run applies steps to t in order. It stops at the first step
// that leaves t invalid when Verify is set, or when ctx is done
func (r *Runner) Run(ctx context.Context, t Tree, steps []Step) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "script interrupted before step %d", i)
		}

		missing := r.apply(t, step)

		r.Logger.Debug(ctx, "step applied", logs.MapFields{
			"step":     i,
			"clear":    step.Clear,
			"inserted": len(step.Insert),
			"removed":  len(step.Remove) - len(missing),
			"len":      t.Len(),
		})

		if len(missing) > 0 {
			r.Logger.Warn(ctx, "values to remove not found", logs.MapFields{
				"step":    i,
				"missing": missing,
			})
		}

		if r.Verify {
			if err := t.Validate(); err != nil {
				return ErrInvalidTree{Index: i, Cause: err}
			}
		}
	}

	return nil
}

// apply runs the operations of step and returns the values
// that could not be removed
func (r *Runner) apply(t Tree, step Step) []int {
	if step.Clear {
		t.RemoveAll()
	}

	for _, v := range step.Insert {
		t.Insert(v)
	}

	var missing []int
	for _, v := range step.Remove {
		if !t.Remove(v) {
			missing = append(missing, v)
		}
	}

	return missing
}
