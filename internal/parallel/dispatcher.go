package parallel

import (
	"sync"
	"sync/atomic"
)

// Handle is the completion barrier of one scheduled run.
// A nil *Handle is treated as already complete.
type Handle struct {
	done     chan struct{}
	finished atomic.Bool
	err      error
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Completed returns a handle that is already complete.
func Completed() *Handle {
	h := newHandle()
	h.complete()
	return h
}

func (h *Handle) complete() {
	h.finish(nil)
}

// finish records err and releases waiters. Only the first call counts.
func (h *Handle) finish(err error) {
	if h.finished.CompareAndSwap(false, true) {
		h.err = err
		close(h.done)
	}
}

// Wait blocks until every tile of the run has finished.
func (h *Handle) Wait() {
	if h == nil {
		return
	}
	<-h.done
}

// Done returns a channel that is closed when the run completes.
func (h *Handle) Done() <-chan struct{} {
	if h == nil {
		return closedChan
	}
	return h.done
}

// IsComplete reports whether the run has finished without blocking.
func (h *Handle) IsComplete() bool {
	return h == nil || h.finished.Load()
}

// Err reports why a completed run did not execute its tiles. It is nil
// while the run is pending and after every tile ran.
func (h *Handle) Err() error {
	if h == nil {
		return nil
	}
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

var closedChan = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// Dispatcher splits runs into tiles and executes them on a WorkerPool.
//
// Runs scheduled behind a dependency wait on their own goroutine. Close
// waits for those before it stops the pool, so every run scheduled before
// Close executes all of its tiles.
type Dispatcher struct {
	pool     *WorkerPool
	tileSize int

	mu      sync.Mutex
	closed  bool
	pending sync.WaitGroup
}

// NewDispatcher creates a dispatcher that cuts runs into tiles of tileSize
// batches. A tileSize below 1 uses DefaultTileSize.
func NewDispatcher(pool *WorkerPool, tileSize int) *Dispatcher {
	if tileSize < 1 {
		tileSize = DefaultTileSize
	}
	return &Dispatcher{pool: pool, tileSize: tileSize}
}

// TileSize returns the number of batches per tile.
func (d *Dispatcher) TileSize() int {
	return d.tileSize
}

// Schedule runs fn over every tile of [0, batches) once dep has completed
// and returns immediately. fn receives the tile's batch range and must only
// write output owned by that range.
//
// The returned handle completes with ErrClosed, without running fn, when the
// dispatcher is already closed. A dep that failed fails the run the same
// way.
func (d *Dispatcher) Schedule(batches int, fn func(start, end int), dep *Handle) *Handle {
	h := newHandle()
	work := d.work(batches, fn)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		h.finish(ErrClosed)
		return h
	}
	if dep.IsComplete() {
		d.start(h, work, dep)
		return h
	}

	d.pending.Add(1)
	go func() {
		defer d.pending.Done()
		dep.Wait()
		d.start(h, work, dep)
	}()
	return h
}

// start queues work once dep is complete.
func (d *Dispatcher) start(h *Handle, work []func(), dep *Handle) {
	if err := dep.Err(); err != nil {
		h.finish(err)
		return
	}
	if err := d.pool.ExecuteAsync(work, h.complete); err != nil {
		h.finish(err)
	}
}

// Close rejects new runs, waits until every run still waiting on a
// dependency has been queued, then closes the pool, which drains the
// queued tiles. Dependencies must belong to this or an already drained
// dispatcher, or Close blocks until they complete.
// Close is safe to call multiple times.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.pending.Wait()
	d.pool.Close()
}

// IsClosed reports whether Close has been called.
func (d *Dispatcher) IsClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Run executes fn over every tile of [0, batches) and waits for all of them.
func (d *Dispatcher) Run(batches int, fn func(start, end int)) {
	d.pool.ExecuteAll(d.work(batches, fn))
}

func (d *Dispatcher) work(batches int, fn func(start, end int)) []func() {
	tiles := Tiles(batches, d.tileSize)
	work := make([]func(), len(tiles))
	for i, t := range tiles {
		work[i] = func() { fn(t.Start, t.End) }
	}
	return work
}
