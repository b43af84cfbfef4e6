package workpool

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
)

var (
	// ErrClosed is returned by Run once the pool has been closed.
	ErrClosed = fmt.Errorf("worker pool is closed")

	// ErrInvalidChunk implies a chunk size < 1.
	ErrInvalidChunk = fmt.Errorf("chunk size must be at least 1")
)

// Job is one pass of work over the indices [0, Len()).
// Do is called with disjoint ranges from several goroutines at once, it
// must only write state belonging to its range (or to its worker).
type Job interface {
	Len() int
	Do(worker int, lo, hi int)
}

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger used for pool lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}

// WithCoverage records every claimed chunk into c.
func WithCoverage(c *Coverage) Option {
	return func(p *Pool) {
		p.coverage = c
	}
}

// Pool is a fixed set of worker goroutines that run one Job at a time.
//
// Workers are started once & parked on a start barrier between passes. Run
// publishes the job, releases the start barrier, then waits on the end
// barrier until every worker has finished its share. Workers pull fixed size
// chunks off a shared counter, holding the lock only to read & advance it.
//
// Thread safety: Run & Close may be called from any goroutine, passes are
// serialised.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// chunk is how many indices a worker claims per lock.
	chunk int

	// start releases workers into a pass, end holds the coordinator until
	// they are all done. Both have workers+1 parties.
	start *Barrier
	end   *Barrier

	// counter is the next unclaimed index, guarded by mu.
	mu      sync.Mutex
	counter int

	// job & finished are written by the coordinator before the start
	// barrier & only read by workers after it.
	job      Job
	finished bool

	// runMu serialises Run & Close.
	runMu  sync.Mutex
	closed bool

	wg       sync.WaitGroup
	coverage *Coverage
	log      *slog.Logger
}

// New starts a pool of workers claiming chunk indices at a time.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers, chunk int, opts ...Option) (*Pool, error) {
	if chunk < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidChunk, chunk)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		chunk:   chunk,
		start:   NewBarrier(workers + 1),
		end:     NewBarrier(workers + 1),
		log:     slog.New(discard{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}

	p.log.Debug("workpool: started", "workers", workers, "chunk", chunk)
	return p, nil
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		p.start.Wait()
		if p.finished {
			return
		}

		job := p.job
		n := job.Len()
		for {
			lo, ok := p.claim(n)
			if !ok {
				break
			}
			hi := lo + p.chunk
			if hi > n {
				hi = n
			}
			job.Do(id, lo, hi)
		}

		p.end.Wait()
	}
}

// claim hands out the next chunk start, or false once the pass is drained.
func (p *Pool) claim(n int) (int, bool) {
	p.mu.Lock()
	lo := p.counter
	if lo >= n {
		p.mu.Unlock()
		return 0, false
	}
	p.counter += p.chunk
	p.mu.Unlock()

	if p.coverage != nil {
		p.coverage.claim(lo, lo+p.chunk)
	}
	return lo, true
}

// Run executes job across all workers & returns once every index has been
// processed.
func (p *Pool) Run(job Job) error {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	if p.closed {
		return ErrClosed
	}

	// nb. we hold no lock here; the start barrier publishes these writes
	p.job = job
	p.counter = 0
	if p.coverage != nil {
		p.coverage.Reset(job.Len())
	}

	p.start.Wait()
	p.end.Wait()

	p.job = nil
	return nil
}

// Close stops all workers & waits for them to exit.
// Close is safe to call multiple times.
func (p *Pool) Close() error {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	p.finished = true
	p.start.Wait()
	p.wg.Wait()

	p.log.Debug("workpool: stopped", "workers", p.workers)
	return nil
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// ChunkSize returns how many indices a worker claims at once.
func (p *Pool) ChunkSize() int {
	return p.chunk
}

// discard is a slog.Handler that drops everything.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }
