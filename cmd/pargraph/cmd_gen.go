package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargraph/builder"
	"github.com/katalvlaran/pargraph/internal/edgelist"
)

// generator describes one gen KIND: its argument names and constructor.
type generator struct {
	args  []string
	build func(args []string) (builder.Constructor, error)
}

func intGen(names ...string) func(fn func(v ...int) builder.Constructor) generator {
	return func(fn func(v ...int) builder.Constructor) generator {
		return generator{
			args: names,
			build: func(args []string) (builder.Constructor, error) {
				vals := make([]int, len(args))
				for i, s := range args {
					v, err := strconv.Atoi(s)
					if err != nil {
						return nil, fmt.Errorf("%s: %w", names[i], err)
					}
					vals[i] = v
				}
				return fn(vals...), nil
			},
		}
	}
}

var generators = map[string]generator{
	"path":     intGen("N")(func(v ...int) builder.Constructor { return builder.Path(v[0]) }),
	"star":     intGen("N")(func(v ...int) builder.Constructor { return builder.Star(v[0]) }),
	"cycle":    intGen("N")(func(v ...int) builder.Constructor { return builder.Cycle(v[0]) }),
	"wheel":    intGen("N")(func(v ...int) builder.Constructor { return builder.Wheel(v[0]) }),
	"complete": intGen("N")(func(v ...int) builder.Constructor { return builder.Complete(v[0]) }),
	"grid":     intGen("ROWS", "COLS")(func(v ...int) builder.Constructor { return builder.Grid(v[0], v[1]) }),
	"tree":     intGen("DEPTH")(func(v ...int) builder.Constructor { return builder.BinaryTree(v[0]) }),
	"random": {
		args: []string{"N", "P"},
		build: func(args []string) (builder.Constructor, error) {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("N: %w", err)
			}
			p, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return nil, fmt.Errorf("P: %w", err)
			}
			return builder.RandomSparse(n, p), nil
		},
	},
}

func (a *app) newGenCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "gen KIND ARGS...",
		Short: "Generate an edge list",
		Long: `Write a generated graph to stdout as an edge list.

Kinds:
  path N | star N | cycle N | wheel N | complete N
  grid ROWS COLS | tree DEPTH | random N P`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[args[0]]
			if !ok {
				return fmt.Errorf("gen: unknown kind %q", args[0])
			}
			if len(args)-1 != len(gen.args) {
				return fmt.Errorf("gen %s: want %d arguments %v, got %d", args[0], len(gen.args), gen.args, len(args)-1)
			}
			ctor, err := gen.build(args[1:])
			if err != nil {
				return fmt.Errorf("gen %s: %w", args[0], err)
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, ctor)
			if err != nil {
				return fmt.Errorf("gen %s: %w", args[0], err)
			}
			a.log.Debug("graph generated",
				slog.String("kind", args[0]),
				slog.Int("vertices", g.VertexCount()),
				slog.Int("edges", g.EdgeCount()),
			)

			return edgelist.Write(a.stdout, g)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed (random kind)")

	return cmd
}
