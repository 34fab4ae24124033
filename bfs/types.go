// Package bfs provides tunable options, shared state and error definitions
// for breadth-first search over a csr.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pargraph/frontier"
	"github.com/katalvlaran/pargraph/team"
)

// Unvisited marks Parent and Distance cells of vertices not (yet) discovered.
const Unvisited int32 = -1

// DefaultHybridRounds is the number of thread-local levels Hybrid runs
// between two frontier merges.
const DefaultHybridRounds = 2

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the root is not in [1, n].
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrInvalidTree is returned by CheckTree for an inconsistent BFS tree.
	ErrInvalidTree = errors.New("bfs: invalid bfs tree")

	// ErrNoPath is returned by PathTo for an unreached destination.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. zero workers), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters for the Parallel and Hybrid wrappers.
type Options struct {
	// Ctx parents the tracing span of a run. The kernels themselves are not
	// cancellable: a run always completes.
	Ctx context.Context

	// Workers is the team size.
	Workers int

	// AtomicClaim makes discovery claim Parent[w] with a compare-and-swap,
	// so every vertex enters the frontier exactly once.
	AtomicClaim bool

	// HybridRounds is the number of local levels between merges (Hybrid only).
	HybridRounds int

	// Observer, if set, is notified of every published merge.
	Observer frontier.Observer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - one worker per GOMAXPROCS
//   - benign-race discovery (no atomic claim)
//   - DefaultHybridRounds local levels per merge
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Workers:      team.DefaultSize(),
		HybridRounds: DefaultHybridRounds,
	}
}

// WithContext sets the context used as parent of the run's span.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the team size; n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithAtomicClaim enables duplicate-free discovery.
func WithAtomicClaim() Option {
	return func(o *Options) {
		o.AtomicClaim = true
	}
}

// WithHybridRounds sets the number of local levels between merges;
// k < 1 is an ErrOptionViolation.
func WithHybridRounds(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: hybrid rounds must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.HybridRounds = k
	}
}

// WithObserver registers a per-merge observer.
func WithObserver(obs frontier.Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// State is the caller-owned shared state of one BFS run: the output arrays
// (length n+1, index 0 unused) and the merge-protocol buffers.
type State struct {
	Parent   []int32
	Distance []int32
	Frontier *frontier.Shared

	// AtomicClaim selects compare-and-swap discovery.
	AtomicClaim bool
}

// NewState allocates a State for a graph of n vertices and a team of
// teamSize workers. All cells start as Unvisited.
func NewState(n, teamSize int) (*State, error) {
	fr, err := frontier.New(n, teamSize)
	if err != nil {
		return nil, err
	}
	st := &State{
		Parent:   make([]int32, n+1),
		Distance: make([]int32, n+1),
		Frontier: fr,
	}
	for i := range st.Parent {
		st.Parent[i] = Unvisited
		st.Distance[i] = Unvisited
	}

	return st, nil
}

// Check verifies that st can serve a graph of n vertices on a team of
// teamSize workers.
func (st *State) Check(n, teamSize int) error {
	if len(st.Parent) < n+1 || len(st.Distance) < n+1 {
		return fmt.Errorf("%w: parent/distance need %d cells", frontier.ErrBufferTooSmall, n+1)
	}
	if st.Frontier == nil {
		return fmt.Errorf("%w: nil frontier", frontier.ErrBufferTooSmall)
	}

	return st.Frontier.Check(n, teamSize)
}

// Result holds the outcome of a BFS run:
//   - Root: the start vertex.
//   - Parent: BFS-tree predecessor per vertex, Parent[Root] == Root.
//   - Distance: hop count from Root per vertex.
//   - Rounds: number of frontier merges (levels for the sequential reference).
//
// Unreached vertices keep Unvisited in both arrays.
type Result struct {
	Root     int32
	Parent   []int32
	Distance []int32
	Rounds   int
}

// PathTo reconstructs the path from the root to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int32) ([]int32, error) {
	if dest < 1 || int(dest) >= len(r.Distance) || r.Distance[dest] == Unvisited {
		return nil, fmt.Errorf("%w: to %d", ErrNoPath, dest)
	}
	path := make([]int32, 0, r.Distance[dest]+1)
	for cur := dest; ; cur = r.Parent[cur] {
		path = append(path, cur)
		if cur == r.Root {
			break
		}
	}
	// reverse to get root → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Reached returns the number of discovered vertices, root included.
func (r *Result) Reached() int {
	cnt := 0
	for v := 1; v < len(r.Distance); v++ {
		if r.Distance[v] != Unvisited {
			cnt++
		}
	}

	return cnt
}

// Eccentricity returns the largest distance from the root.
func (r *Result) Eccentricity() int32 {
	var ecc int32
	for v := 1; v < len(r.Distance); v++ {
		if r.Distance[v] > ecc {
			ecc = r.Distance[v]
		}
	}

	return ecc
}
