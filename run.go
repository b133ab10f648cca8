package noise

import (
	"fmt"

	"github.com/gogpu/noise/internal/parallel"
)

// Run is the completion barrier of one scheduled evaluation.
// No output is guaranteed to be written before the run completes.
// A nil *Run is treated as complete, so it can be passed as an empty
// dependency.
type Run struct {
	handle  *parallel.Handle
	kind    string
	samples int
}

// Wait blocks until every tile of the run has been evaluated.
func (r *Run) Wait() {
	if r == nil {
		return
	}
	r.handle.Wait()
}

// Done returns a channel that is closed when the run completes.
func (r *Run) Done() <-chan struct{} {
	if r == nil {
		return parallel.Completed().Done()
	}
	return r.handle.Done()
}

// IsComplete reports whether the run has finished without blocking.
func (r *Run) IsComplete() bool {
	return r == nil || r.handle.IsComplete()
}

// Err returns ErrClosed when the run completed without evaluating its
// tiles: it was scheduled on a closed Generator, or its dependency failed.
// It returns nil while the run is pending and after a full evaluation.
func (r *Run) Err() error {
	if r == nil {
		return nil
	}
	if err := r.handle.Err(); err != nil {
		return fmt.Errorf("%w: %s was not evaluated", ErrClosed, r)
	}
	return nil
}

// Samples returns the number of samples the run writes, padding included.
func (r *Run) Samples() int {
	if r == nil {
		return 0
	}
	return r.samples
}

// String describes the run for logs.
func (r *Run) String() string {
	if r == nil {
		return "run(nil)"
	}
	return "run(" + r.kind + ")"
}

func (r *Run) dependency() *parallel.Handle {
	if r == nil {
		return nil
	}
	return r.handle
}
