package frontier

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pargraph/team"
)

// ErrBufferTooSmall is reported when the shared queue or count table is
// undersized for the vertex count or team size.
var ErrBufferTooSmall = errors.New("frontier: buffer too small")

// Observer receives one notification per published merge: the 1-based round
// number and the new frontier size. It is called by exactly one worker (the
// last by index) while the rest of the team waits at the closing barrier, so
// implementations need no extra synchronisation for per-run state.
type Observer interface {
	ObserveRound(round, size int)
}

// Shared is the team-wide state of the merge protocol: the frontier queue
// (the vertices of the current round) and the count table of teamSize+1
// entries whose last cell holds the published frontier size.
//
// Every method taking a *team.Worker is collective: all workers of the team
// must call it, in the same order.
type Shared struct {
	queue    []int32
	counts   []int
	rounds   int
	observer Observer
}

// New allocates a Shared with a queue of capacity vertices and a count table
// for teamSize workers.
func New(capacity, teamSize int) (*Shared, error) {
	if capacity < 0 || teamSize < 1 {
		return nil, fmt.Errorf("%w: capacity=%d teamSize=%d", ErrBufferTooSmall, capacity, teamSize)
	}

	return &Shared{
		queue:  make([]int32, capacity),
		counts: make([]int, teamSize+1),
	}, nil
}

// FromBuffers wraps caller-owned buffers: queue is the round-compaction
// target and counts the per-worker count table. Sizes are checked by Check.
func FromBuffers(queue []int32, counts []int) *Shared {
	return &Shared{queue: queue, counts: counts}
}

// Check verifies the buffers can serve a graph of n vertices on a team of
// teamSize workers.
func (s *Shared) Check(n, teamSize int) error {
	if len(s.queue) < n {
		return fmt.Errorf("%w: queue has %d slots, need %d", ErrBufferTooSmall, len(s.queue), n)
	}
	if len(s.counts) < teamSize+1 {
		return fmt.Errorf("%w: counts has %d slots, need %d", ErrBufferTooSmall, len(s.counts), teamSize+1)
	}

	return nil
}

// SetObserver installs o (nil disables). Must not be called during a run.
func (s *Shared) SetObserver(o Observer) { s.observer = o }

// Size returns the published size of the current frontier. It is stable
// between the closing barrier of one merge and the first barrier of the next.
func (s *Shared) Size() int { return s.counts[len(s.counts)-1] }

// Rounds returns how many merges have been published since the last Seed.
func (s *Shared) Rounds() int { return s.rounds }

// Queue returns the first Size() entries of the frontier queue.
func (s *Shared) Queue() []int32 { return s.queue[:s.Size()] }

// Seed installs vertices as the initial frontier. Worker 0 writes the queue
// and publishes the size; the call ends with a barrier so every worker sees
// the seeded frontier.
func (s *Shared) Seed(w *team.Worker, vertices ...int32) {
	if w.ID() == 0 {
		if len(vertices) > len(s.queue) {
			s.queue = make([]int32, len(vertices))
		}
		copy(s.queue, vertices)
		s.counts[len(s.counts)-1] = len(vertices)
		s.rounds = 0
	}
	w.Barrier()
}

// Slice returns this worker's contiguous share of the current frontier,
// [id*F/T, (id+1)*F/T) for frontier size F and team size T.
func (s *Shared) Slice(w *team.Worker) []int32 {
	lo, hi := w.Span(s.Size())
	return s.queue[lo:hi]
}

// Merge compacts every worker's local discoveries into the shared queue and
// returns the new frontier size (identical on every worker):
//
//  1. publish len(local) into counts[id];
//  2. barrier: all discovery passes (and all reads of the old queue) are done;
//  3. exclusive prefix sum over counts[0:id] gives this worker's offset;
//  4. copy local into queue[offset:offset+len(local)];
//  5. the last worker publishes the total into counts[T];
//  6. barrier: no worker reads a stale size or a half-written queue.
//
// Within one merge the queue holds worker 0's contribution first, then worker
// 1's, and so on; each contribution keeps its local order.
//
// If the total exceeds the queue length, the queue is grown collectively:
// every worker computes the same total redundantly and compares it against
// the old length, a barrier ends those reads, worker 0 reallocates, and a
// second barrier publishes the new queue before compaction.
func (s *Shared) Merge(w *team.Worker, local []int32) int {
	id, size := w.ID(), w.Size()
	s.counts[id] = len(local)
	w.Barrier()

	offset, total := 0, 0
	for i := 0; i < size; i++ {
		if i == id {
			offset = total
		}
		total += s.counts[i]
	}
	if total > len(s.queue) {
		// every worker has read len(s.queue) before worker 0 replaces it
		w.Barrier()
		if id == 0 {
			s.queue = make([]int32, total)
		}
		w.Barrier()
	}

	copy(s.queue[offset:offset+len(local)], local)

	if w.Last() {
		s.counts[size] = total
		s.rounds++
		if s.observer != nil {
			s.observer.ObserveRound(s.rounds, total)
		}
	}
	w.Barrier()

	return total
}
