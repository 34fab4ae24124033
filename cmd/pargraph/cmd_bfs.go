package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargraph/bfs"
	"github.com/katalvlaran/pargraph/csr"
)

// bfsReport is the result document of the bfs command. Distance and Parent
// are indexed from vertex 1.
type bfsReport struct {
	RunID        string  `yaml:"run_id"`
	Algorithm    string  `yaml:"algorithm"`
	Vertices     int     `yaml:"vertices"`
	Edges        int     `yaml:"edges"`
	Workers      int     `yaml:"workers"`
	Root         int32   `yaml:"root"`
	Reached      int     `yaml:"reached"`
	Eccentricity int32   `yaml:"eccentricity"`
	Rounds       int     `yaml:"rounds"`
	Verified     bool    `yaml:"verified"`
	Distance     []int32 `yaml:"distance,flow"`
	Parent       []int32 `yaml:"parent,flow"`
}

func (a *app) newBFSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bfs FILE",
		Short: "Breadth-first search from a root vertex",
		Long: `Run the fully parallel BFS, or the hybrid BFS with --hybrid, and print
per-vertex distances and parents (-1 for unreached vertices).

FILE is an edge list, or - for stdin.

Examples:
  pargraph bfs graph.txt --root 3
  pargraph bfs graph.txt --hybrid --rounds 4 --claim --verify`,
		Args: cobra.ExactArgs(1),
		RunE: a.runBFS,
	}
	f := cmd.Flags()
	f.Int32Var(&a.flags.BFS.Root, "root", a.flags.BFS.Root, "root vertex (1-based)")
	f.BoolVar(&a.flags.BFS.Hybrid, "hybrid", false, "use the hybrid BFS")
	f.IntVar(&a.flags.BFS.Rounds, "rounds", a.flags.BFS.Rounds, "local levels between merges (hybrid)")
	f.BoolVar(&a.flags.BFS.AtomicClaim, "claim", false, "claim vertices with compare-and-swap")
	f.BoolVar(&a.flags.BFS.Verify, "verify", false, "check the tree and compare with a sequential BFS")

	return cmd
}

func (a *app) runBFS(cmd *cobra.Command, args []string) error {
	g, err := a.readGraph(args[0])
	if err != nil {
		return err
	}
	cfg := a.cfg.BFS

	name, run := "parallel", bfs.Parallel
	if cfg.Hybrid {
		name, run = "hybrid", bfs.Hybrid
	}
	opts := []bfs.Option{
		bfs.WithContext(cmd.Context()),
		bfs.WithWorkers(a.workers()),
		bfs.WithHybridRounds(cfg.Rounds),
		bfs.WithObserver(a.metrics.Observer(name)),
	}
	if cfg.AtomicClaim {
		opts = append(opts, bfs.WithAtomicClaim())
	}

	start := time.Now()
	res, err := run(g, cfg.Root, opts...)
	elapsed := time.Since(start)
	rounds := 0
	if res != nil {
		rounds = res.Rounds
	}
	a.metrics.ObserveRun(name, rounds, elapsed, err)
	if err != nil {
		return err
	}
	a.log.Info("bfs finished",
		slog.String("algorithm", name),
		slog.Int("rounds", res.Rounds),
		slog.Int("reached", res.Reached()),
		slog.Duration("elapsed", elapsed),
	)

	if cfg.Verify {
		if err := verifyBFS(g, res); err != nil {
			return err
		}
	}

	rep := bfsReport{
		RunID:        a.runID,
		Algorithm:    name,
		Vertices:     g.VertexCount(),
		Edges:        g.EdgeCount(),
		Workers:      a.workers(),
		Root:         res.Root,
		Reached:      res.Reached(),
		Eccentricity: res.Eccentricity(),
		Rounds:       res.Rounds,
		Verified:     cfg.Verify,
		Distance:     res.Distance[1:],
		Parent:       res.Parent[1:],
	}
	if err := a.report(rep, rep.writeText); err != nil {
		return err
	}

	return a.dumpMetrics()
}

// verifyBFS checks tree consistency and distances against Sequential.
func verifyBFS(g *csr.Graph, res *bfs.Result) error {
	if err := bfs.CheckTree(g, res); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	want, err := bfs.Sequential(g, res.Root)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if !slices.Equal(want.Distance, res.Distance) {
		return fmt.Errorf("verify: %w: distances differ from sequential bfs", bfs.ErrInvalidTree)
	}

	return nil
}

func (r bfsReport) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"algorithm: %s\nvertices: %d\nedges: %d\nworkers: %d\nroot: %d\nreached: %d\neccentricity: %d\nrounds: %d\n",
		r.Algorithm, r.Vertices, r.Edges, r.Workers, r.Root, r.Reached, r.Eccentricity, r.Rounds)
	if err != nil {
		return err
	}
	if r.Verified {
		if _, err := fmt.Fprintln(w, "verified: ok"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "vertex distance parent"); err != nil {
		return err
	}
	for i := range r.Distance {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", i+1, r.Distance[i], r.Parent[i]); err != nil {
			return err
		}
	}

	return nil
}
