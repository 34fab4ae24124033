package team

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrTeamSize is returned by New for a non-positive team size.
	ErrTeamSize = errors.New("team: size must be >= 1")

	// ErrWorkerPanic wraps a panic recovered from a worker function.
	ErrWorkerPanic = errors.New("team: worker panicked")
)

// Team is a fixed-size group of workers executing the same function (SPMD).
// A Team may be reused for consecutive Runs but not for concurrent ones.
type Team struct {
	size int
}

// New returns a Team of size workers.
func New(size int) (*Team, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTeamSize, size)
	}

	return &Team{size: size}, nil
}

// DefaultSize is the team size used when a caller asks for "all CPUs".
func DefaultSize() int { return runtime.GOMAXPROCS(0) }

// Size returns the number of workers.
func (t *Team) Size() int { return t.size }

// Run starts Size goroutines, each calling fn with its own Worker, and waits
// for all of them. A fresh Barrier is shared by the workers of this Run.
//
// If any worker returns an error or panics, the barrier is broken so peers
// blocked on it are released instead of deadlocking, and Run returns that
// first failure rather than the peers' ErrBarrierBroken.
func (t *Team) Run(fn func(w *Worker) error) error {
	b := NewBarrier(t.size)
	var g errgroup.Group
	for id := 0; id < t.size; id++ {
		w := &Worker{id: id, barrier: b}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					if e, ok := r.(error); ok && errors.Is(e, ErrBarrierBroken) {
						err = e
						return
					}
					err = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, w.id, r)
					b.Break(err)
				}
			}()
			if err := fn(w); err != nil {
				err = fmt.Errorf("worker %d: %w", w.id, err)
				b.Break(err)
				return err
			}

			return nil
		})
	}
	err := g.Wait()
	if cause := b.Cause(); cause != nil {
		return cause
	}

	return err
}

// Worker is the execution context handed to each team member: its index
// and the shared barrier, whose party count is the team size.
type Worker struct {
	id      int
	barrier *Barrier
}

// ID returns this worker's index in [0, Size).
func (w *Worker) ID() int { return w.id }

// Size returns the team size.
func (w *Worker) Size() int { return w.barrier.Parties() }

// Last reports whether this worker has the highest index.
func (w *Worker) Last() bool { return w.id == w.Size()-1 }

// Barrier blocks until every worker of the team has reached it.
func (w *Worker) Barrier() { w.barrier.Wait() }

// Span returns this worker's contiguous share [lo, hi) of a range of total
// items: [id*total/size, (id+1)*total/size). Shares of consecutive workers
// tile [0, total) exactly and differ in length by at most one.
func (w *Worker) Span(total int) (lo, hi int) {
	return span(w.id, w.Size(), total)
}

func span(id, size, total int) (lo, hi int) {
	lo = int(int64(id) * int64(total) / int64(size))
	hi = int(int64(id+1) * int64(total) / int64(size))

	return lo, hi
}

// Solo returns a single-member Worker with its own barrier, for running a
// per-worker kernel sequentially on the calling goroutine.
func Solo() *Worker {
	return &Worker{id: 0, barrier: NewBarrier(1)}
}
