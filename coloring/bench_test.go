package coloring_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pargraph/builder"
	"github.com/katalvlaran/pargraph/coloring"
)

// BenchmarkGreedy measures Greedy on a sparse and a dense random graph.
func BenchmarkGreedy(b *testing.B) {
	graphs := []struct {
		name string
		n    int
		p    float64
	}{
		{"Sparse20k", 20000, 0.0005},
		{"Dense2k", 2000, 0.05},
	}
	for _, gc := range graphs {
		g := mustBuild(b, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(gc.n, gc.p))
		for _, workers := range []int{1, 2, 4, 8} {
			b.Run(fmt.Sprintf("%s/w=%d", gc.name, workers), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
				for i := 0; i < b.N; i++ {
					_, _ = coloring.Greedy(g, coloring.WithWorkers(workers))
				}
			})
		}
	}
}
