package coloring

import (
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pargraph/csr"
	"github.com/katalvlaran/pargraph/frontier"
	"github.com/katalvlaran/pargraph/team"
)

var tracer = otel.Tracer("pargraph.coloring")

// Greedy colors g with the speculative parallel greedy algorithm.
// Every vertex receives a color in [1, MaxDegree+1] and no edge joins two
// equal colors.
func Greedy(g *csr.Graph, opts ...Option) (*Result, error) {
	return run("coloring.Greedy", g, nil, opts, GreedyWorker)
}

// Repair runs only the conflict repair loop over an existing coloring, which
// may contain conflicts and Uncolored vertices. color must have
// g.VertexCount()+1 cells and is not modified.
func Repair(g *csr.Graph, color []int32, opts ...Option) (*Result, error) {
	if g != nil && len(color) != g.VertexCount()+1 {
		return nil, fmt.Errorf("coloring: %w: color has %d cells, need %d",
			frontier.ErrBufferTooSmall, len(color), g.VertexCount()+1)
	}

	return run("coloring.Repair", g, color, opts, RepairWorker)
}

type kernel func(w *team.Worker, g *csr.Graph, st *State) int

func run(name string, g *csr.Graph, initial []int32, opts []Option, body kernel) (*Result, error) {
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

	_, span := tracer.Start(o.Ctx, name)
	defer span.End()
	span.SetAttributes(
		attribute.Int("vertices", g.VertexCount()),
		attribute.Int("edges", g.EdgeCount()),
		attribute.Int("max_degree", g.MaxDegree()),
		attribute.Int("workers", o.Workers),
	)

	tm, err := team.New(o.Workers)
	if err != nil {
		return nil, fail(span, fmt.Errorf("%w: %w", ErrOptionViolation, err))
	}
	st, err := NewState(g.VertexCount(), o.Workers)
	if err != nil {
		return nil, fail(span, err)
	}
	if initial != nil {
		copy(st.Color, initial)
	}
	st.Frontier.SetObserver(o.Observer)

	start := time.Now()
	rounds := make([]int, o.Workers)
	if err := tm.Run(func(w *team.Worker) error {
		rounds[w.ID()] = body(w, g, st)
		return nil
	}); err != nil {
		return nil, fail(span, fmt.Errorf("%s: %w", name, err))
	}

	res := &Result{
		Color:        st.Color,
		Colors:       CountColors(st.Color),
		RepairRounds: rounds[0],
	}
	span.SetAttributes(
		attribute.Int("colors", res.Colors),
		attribute.Int("repair_rounds", res.RepairRounds),
	)
	span.SetStatus(codes.Ok, "")

	slog.Debug("coloring completed",
		slog.String("algorithm", name),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("workers", o.Workers),
		slog.Int("colors", res.Colors),
		slog.Int("repair_rounds", res.RepairRounds),
		slog.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
