package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned when work is offered to a closed pool.
var ErrClosed = errors.New("parallel: pool closed")

// WorkerPool is a pool of goroutines that evaluates tiles.
//
// The pool distributes work items across multiple workers, each with their own
// queue. Workers can steal work from other workers when their own queue is empty.
// This balances load when tiles differ in cost, e.g. Voronoi against value noise
// or many octaves against few.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	// Each worker primarily pulls from its own queue but can steal from others.
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// mu orders queueing against Close: work is queued under the read
	// lock, so no item can reach a queue after its worker drained it.
	mu sync.RWMutex

	// queueSize is the buffer size for each worker's queue.
	queueSize int
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// 2-4x workers hides queueing latency.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
		queueSize:  queueSize,
	}

	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			if work != nil {
				work()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// Nothing anywhere, block on own queue.
				select {
				case <-p.done:
					p.drainQueue(myQueue)
					return
				case work := <-myQueue:
					if work != nil {
						work()
					}
				}
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}

		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all to complete.
// If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	var completionWG sync.WaitGroup
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return
	}
	completionWG.Add(len(work))
	p.distribute(work, completionWG.Done)
	p.mu.RUnlock()
	completionWG.Wait()
}

// ExecuteAsync distributes work across workers and returns once every item
// is queued. onDone runs exactly once, after the last item finished: on a
// worker goroutine, or on the caller when work is empty.
// If the pool is closed, nothing runs, onDone is not called and ErrClosed
// is returned.
func (p *WorkerPool) ExecuteAsync(work []func(), onDone func()) error {
	if onDone == nil {
		onDone = func() {}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.running.Load() {
		return ErrClosed
	}
	if len(work) == 0 {
		onDone()
		return nil
	}

	var remaining atomic.Int64
	remaining.Store(int64(len(work)))
	p.distribute(work, func() {
		if remaining.Add(-1) == 0 {
			onDone()
		}
	})
	return nil
}

// distribute queues work round-robin, calling finish after each item.
// Queueing blocks while a worker's queue is full. Caller must hold the
// read lock of a running pool.
func (p *WorkerPool) distribute(work []func(), finish func()) {
	for i, fn := range work {
		p.workQueues[i%p.workers] <- func() {
			defer finish()
			fn()
		}
	}
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

// QueuedWork returns the total number of work items currently queued.
// This is an approximation as queues can change while iterating.
func (p *WorkerPool) QueuedWork() int {
	total := 0
	for _, q := range p.workQueues {
		total += len(q)
	}
	return total
}
