package bfs

import (
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pargraph/csr"
	"github.com/katalvlaran/pargraph/team"
)

var tracer = otel.Tracer("pargraph.bfs")

// Parallel runs the fully parallel BFS from root on a fresh team and
// returns its result.
// Returns ErrGraphNil, ErrStartVertexNotFound or ErrOptionViolation for
// invalid input.
func Parallel(g *csr.Graph, root int32, opts ...Option) (*Result, error) {
	return run("bfs.Parallel", g, root, opts, func(w *team.Worker, st *State, _ Options) {
		ParallelWorker(w, g, root, st)
	})
}

// Hybrid runs the hybrid BFS from root, merging every HybridRounds levels.
// Errors as for Parallel.
func Hybrid(g *csr.Graph, root int32, opts ...Option) (*Result, error) {
	return run("bfs.Hybrid", g, root, opts, func(w *team.Worker, st *State, o Options) {
		HybridWorker(w, g, root, o.HybridRounds, st)
	})
}

// kernel is the per-worker body a wrapper launches.
type kernel func(w *team.Worker, st *State, o Options)

func run(name string, g *csr.Graph, root int32, opts []Option, body kernel) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, root)
	}

	_, span := tracer.Start(o.Ctx, name)
	defer span.End()
	span.SetAttributes(
		attribute.Int("vertices", g.VertexCount()),
		attribute.Int("edges", g.EdgeCount()),
		attribute.Int("workers", o.Workers),
		attribute.Int("root", int(root)),
		attribute.Bool("atomic_claim", o.AtomicClaim),
	)

	tm, err := team.New(o.Workers)
	if err != nil {
		return nil, fail(span, fmt.Errorf("%w: %w", ErrOptionViolation, err))
	}
	st, err := NewState(g.VertexCount(), o.Workers)
	if err != nil {
		return nil, fail(span, err)
	}
	st.AtomicClaim = o.AtomicClaim
	st.Frontier.SetObserver(o.Observer)

	start := time.Now()
	if err := tm.Run(func(w *team.Worker) error {
		body(w, st, o)
		return nil
	}); err != nil {
		return nil, fail(span, fmt.Errorf("%s: %w", name, err))
	}

	res := &Result{
		Root:     root,
		Parent:   st.Parent,
		Distance: st.Distance,
		Rounds:   st.Frontier.Rounds(),
	}
	span.SetAttributes(
		attribute.Int("rounds", res.Rounds),
		attribute.Int("reached", res.Reached()),
	)
	span.SetStatus(codes.Ok, "")

	slog.Debug("bfs completed",
		slog.String("algorithm", name),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("workers", o.Workers),
		slog.Int("rounds", res.Rounds),
		slog.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
