package coloring

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/pargraph/frontier"
	"github.com/katalvlaran/pargraph/team"
)

// Uncolored marks a vertex without a color.
const Uncolored int32 = -1

// Sentinel errors for coloring.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")

	// ErrConflict is returned by Validate when an edge joins equal colors.
	ErrConflict = errors.New("coloring: adjacent vertices share a color")

	// ErrUncolored is returned by Validate when a vertex has no color >= 1.
	ErrUncolored = errors.New("coloring: vertex is uncolored")
)

// Option configures the Greedy and Repair wrappers.
type Option func(*Options)

// Options holds parameters for a coloring run.
type Options struct {
	// Ctx parents the tracing span of a run.
	Ctx context.Context

	// Workers is the team size.
	Workers int

	// Observer, if set, is notified of every conflict-list merge.
	Observer frontier.Observer

	err error
}

// DefaultOptions returns one worker per GOMAXPROCS and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: team.DefaultSize(),
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

// WithObserver registers a per-merge observer.
func WithObserver(obs frontier.Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// State is the caller-owned shared state of one coloring run.
type State struct {
	// Color holds one color per vertex, index 0 unused.
	Color []int32

	// Frontier collects the vertices flagged for recoloring.
	Frontier *frontier.Shared

	// conflict is raised by any worker whose recheck finds a bad edge.
	conflict atomic.Bool
}

// NewState allocates a State for n vertices and teamSize workers with every
// vertex Uncolored.
func NewState(n, teamSize int) (*State, error) {
	fr, err := frontier.New(n, teamSize)
	if err != nil {
		return nil, err
	}
	st := &State{Color: make([]int32, n+1), Frontier: fr}
	for i := range st.Color {
		st.Color[i] = Uncolored
	}

	return st, nil
}

// Check verifies that st can serve n vertices on a team of teamSize.
func (st *State) Check(n, teamSize int) error {
	if len(st.Color) < n+1 {
		return fmt.Errorf("%w: color needs %d cells, has %d", frontier.ErrBufferTooSmall, n+1, len(st.Color))
	}
	if st.Frontier == nil {
		return fmt.Errorf("%w: nil frontier", frontier.ErrBufferTooSmall)
	}

	return st.Frontier.Check(n, teamSize)
}

// Result is the outcome of a coloring run.
type Result struct {
	// Color holds one color >= 1 per vertex, index 0 unused.
	Color []int32

	// Colors is the number of distinct colors used.
	Colors int

	// RepairRounds is the number of recoloring passes Phase 2 needed.
	RepairRounds int
}
