package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargraph/coloring"
)

type colorReport struct {
	RunID        string  `yaml:"run_id"`
	Vertices     int     `yaml:"vertices"`
	Edges        int     `yaml:"edges"`
	MaxDegree    int     `yaml:"max_degree"`
	Workers      int     `yaml:"workers"`
	Colors       int     `yaml:"colors"`
	RepairRounds int     `yaml:"repair_rounds"`
	Verified     bool    `yaml:"verified"`
	Color        []int32 `yaml:"color,flow"`
}

func (a *app) newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color FILE",
		Short: "Parallel greedy vertex coloring",
		Long: `Color every vertex so that no edge joins two equal colors, using at most
max-degree + 1 colors.

FILE is an edge list, or - for stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runColor,
	}
	cmd.Flags().BoolVar(&a.flags.Coloring.Verify, "verify", false, "validate the coloring")

	return cmd
}

func (a *app) runColor(cmd *cobra.Command, args []string) error {
	g, err := a.readGraph(args[0])
	if err != nil {
		return err
	}

	const name = "greedy"
	start := time.Now()
	res, err := coloring.Greedy(g,
		coloring.WithContext(cmd.Context()),
		coloring.WithWorkers(a.workers()),
		coloring.WithObserver(a.metrics.Observer(name)),
	)
	elapsed := time.Since(start)
	rounds := 0
	if res != nil {
		rounds = res.RepairRounds
	}
	a.metrics.ObserveRun(name, rounds, elapsed, err)
	if err != nil {
		return err
	}
	a.log.Info("coloring finished",
		slog.Int("colors", res.Colors),
		slog.Int("repair_rounds", res.RepairRounds),
		slog.Duration("elapsed", elapsed),
	)

	verify := a.cfg.Coloring.Verify
	if verify {
		if err := coloring.Validate(g, res.Color); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
	}

	rep := colorReport{
		RunID:        a.runID,
		Vertices:     g.VertexCount(),
		Edges:        g.EdgeCount(),
		MaxDegree:    g.MaxDegree(),
		Workers:      a.workers(),
		Colors:       res.Colors,
		RepairRounds: res.RepairRounds,
		Verified:     verify,
		Color:        res.Color[1:],
	}
	if err := a.report(rep, rep.writeText); err != nil {
		return err
	}

	return a.dumpMetrics()
}

func (r colorReport) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "vertices: %d\nedges: %d\nmax_degree: %d\nworkers: %d\ncolors: %d\nrepair_rounds: %d\n",
		r.Vertices, r.Edges, r.MaxDegree, r.Workers, r.Colors, r.RepairRounds)
	if err != nil {
		return err
	}
	if r.Verified {
		if _, err := fmt.Fprintln(w, "verified: ok"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "vertex color"); err != nil {
		return err
	}
	for i, c := range r.Color {
		if _, err := fmt.Fprintf(w, "%d %d\n", i+1, c); err != nil {
			return err
		}
	}

	return nil
}
