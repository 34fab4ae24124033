package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pargraph/csr"
	"github.com/katalvlaran/pargraph/internal/config"
	"github.com/katalvlaran/pargraph/internal/edgelist"
	"github.com/katalvlaran/pargraph/internal/logging"
	"github.com/katalvlaran/pargraph/team"
	"github.com/katalvlaran/pargraph/telemetry"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	configPath string
	flags      config.Config // flag targets, applied when changed
	cfg        config.Config

	runID    string
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, flags: config.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "pargraph",
		Short: "Shared-memory parallel BFS and greedy coloring",
		Long: `Run parallel graph kernels on undirected edge-list files.

Edge-list format:
  N M        vertex and edge counts
  U V        M lines, 1-based vertex ids
  # or %     comment lines

Configuration precedence: defaults < --config file < PARGRAPH_* env < flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.IntVarP(&a.flags.Workers, "workers", "w", a.flags.Workers, "team size (0 = GOMAXPROCS)")
	pf.StringVar(&a.flags.Log.Level, "log-level", a.flags.Log.Level, "debug, info, warn or error")
	pf.StringVar(&a.flags.Log.Format, "log-format", a.flags.Log.Format, "auto, text or json")
	pf.StringVarP(&a.flags.Output, "output", "o", a.flags.Output, "result format: text or yaml")
	pf.BoolVar(&a.flags.Metrics, "metrics", a.flags.Metrics, "dump Prometheus metrics to stderr")

	rootCmd.AddCommand(a.newBFSCmd(), a.newColorCmd(), a.newGenCmd())

	return rootCmd
}

// setup resolves configuration and builds the logger and metrics registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.overlay(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(a.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.runID = uuid.NewString()
	a.log = log.With(slog.String("run_id", a.runID))
	slog.SetDefault(a.log)

	a.registry = prometheus.NewRegistry()
	a.metrics = telemetry.NewMetrics(a.registry)

	return nil
}

// overlay copies every flag the user set explicitly onto cfg.
func (a *app) overlay(cmd *cobra.Command, cfg *config.Config) {
	set := func(name string, apply func()) {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("workers", func() { cfg.Workers = a.flags.Workers })
	set("log-level", func() { cfg.Log.Level = a.flags.Log.Level })
	set("log-format", func() { cfg.Log.Format = a.flags.Log.Format })
	set("output", func() { cfg.Output = a.flags.Output })
	set("metrics", func() { cfg.Metrics = a.flags.Metrics })
	set("root", func() { cfg.BFS.Root = a.flags.BFS.Root })
	set("hybrid", func() { cfg.BFS.Hybrid = a.flags.BFS.Hybrid })
	set("rounds", func() { cfg.BFS.Rounds = a.flags.BFS.Rounds })
	set("claim", func() { cfg.BFS.AtomicClaim = a.flags.BFS.AtomicClaim })
	set("verify", func() {
		if cmd.Name() == "color" {
			cfg.Coloring.Verify = a.flags.Coloring.Verify
			return
		}
		cfg.BFS.Verify = a.flags.BFS.Verify
	})
}

func (a *app) workers() int {
	if a.cfg.Workers == 0 {
		return team.DefaultSize()
	}

	return a.cfg.Workers
}

// readGraph loads an edge list from path, or from stdin for "-".
func (a *app) readGraph(path string) (*csr.Graph, error) {
	var r io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open graph: %w", err)
		}
		defer f.Close()
		r = f
	}
	g, err := edgelist.Read(r)
	if err != nil {
		return nil, err
	}
	a.log.Info("graph loaded",
		slog.String("source", path),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("max_degree", g.MaxDegree()),
	)

	return g, nil
}

// report writes v as YAML, or calls text for the text format.
func (a *app) report(v any, text func(w io.Writer) error) error {
	if a.cfg.Output == "yaml" {
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}

	return text(a.stdout)
}

func (a *app) dumpMetrics() error {
	if !a.cfg.Metrics {
		return nil
	}

	return telemetry.WriteText(a.stderr, a.registry)
}
