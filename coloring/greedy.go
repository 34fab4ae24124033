package coloring

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/pargraph/csr"
	"github.com/katalvlaran/pargraph/team"
)

// GreedyWorker is the per-worker body of the speculative parallel greedy
// coloring. Phase 1 first-fit colors the worker's Span of vertices while
// other workers do the same, so adjacent vertices may end up equal; Phase 2
// (RepairWorker) then removes every such conflict. Returns the number of
// repair rounds, identical on every worker.
//
// Panics if st is undersized.
func GreedyWorker(w *team.Worker, g *csr.Graph, st *State) int {
	n := g.VertexCount()
	mustFit(w, g, st)

	lo, hi := w.Span(n)
	for v := lo + 1; v <= hi; v++ {
		atomic.StoreInt32(&st.Color[v], Uncolored)
	}
	w.Barrier()

	forbidden := newScratch(g)
	for v := int32(lo + 1); int(v) <= hi; v++ {
		atomic.StoreInt32(&st.Color[v], forbidden.firstFit(g, st.Color, v))
	}
	w.Barrier()

	return RepairWorker(w, g, st)
}

// RepairWorker is the per-worker body of the conflict repair loop. Each
// round:
//
//  1. every worker flags the vertices of its Span that are uncolored or
//     share a color with a lower-numbered neighbor;
//  2. the flags are merged into one list; an empty list ends the loop;
//  3. flagged vertices are uncolored, then recolored first-fit against the
//     current colors of their neighbors, split evenly across the team;
//  4. all edges are rechecked and the loop ends if none conflicts.
//
// Flagging only the higher endpoint of a conflicting edge means the lowest
// flagged vertex can never be flagged again, so the loop ends after at most
// n rounds. Running it on a proper coloring is a no-op that returns 0.
//
// Panics if st is undersized.
func RepairWorker(w *team.Worker, g *csr.Graph, st *State) int {
	mustFit(w, g, st)
	lo, hi := w.Span(g.VertexCount())
	forbidden := newScratch(g)
	flagged := make([]int32, 0, g.VertexCount()/w.Size()+1)

	rounds := 0
	for {
		flagged = flagged[:0]
		for v := int32(lo + 1); int(v) <= hi; v++ {
			if conflicted(g, st.Color, v) {
				flagged = append(flagged, v)
			}
		}
		if st.Frontier.Merge(w, flagged) == 0 {
			return rounds
		}
		rounds++

		for _, v := range flagged {
			atomic.StoreInt32(&st.Color[v], Uncolored)
		}
		if w.ID() == 0 {
			st.conflict.Store(false)
		}
		w.Barrier()

		for _, v := range st.Frontier.Slice(w) {
			atomic.StoreInt32(&st.Color[v], forbidden.firstFit(g, st.Color, v))
		}
		w.Barrier()

		for v := int32(lo + 1); int(v) <= hi && !st.conflict.Load(); v++ {
			if conflicted(g, st.Color, v) {
				st.conflict.Store(true)
			}
		}
		w.Barrier()

		if !st.conflict.Load() {
			return rounds
		}
	}
}

func mustFit(w *team.Worker, g *csr.Graph, st *State) {
	if err := st.Check(g.VertexCount(), w.Size()); err != nil {
		panic(fmt.Errorf("coloring: %w", err))
	}
}

// conflicted reports whether v is uncolored or shares its color with a
// lower-numbered neighbor. Self-loops are ignored.
func conflicted(g *csr.Graph, color []int32, v int32) bool {
	c := atomic.LoadInt32(&color[v])
	if c < 1 {
		return true
	}
	for _, u := range g.NeighborsOf(v) {
		if u < v && atomic.LoadInt32(&color[u]) == c {
			return true
		}
	}

	return false
}

// scratch is a worker-private forbidden-color table. A vertex of degree d
// always finds a free color in [1, d+1], so maxDegree+2 cells suffice.
type scratch struct {
	forbidden []bool
	touched   []int32
}

func newScratch(g *csr.Graph) *scratch {
	return &scratch{
		forbidden: make([]bool, g.MaxDegree()+2),
		touched:   make([]int32, 0, g.MaxDegree()),
	}
}

// firstFit returns the smallest color >= 1 not used by a neighbor of v.
// Only the marks it sets are cleared before returning.
func (s *scratch) firstFit(g *csr.Graph, color []int32, v int32) int32 {
	s.touched = s.touched[:0]
	for _, u := range g.NeighborsOf(v) {
		if u == v {
			continue
		}
		c := atomic.LoadInt32(&color[u])
		if c >= 1 && int(c) < len(s.forbidden) && !s.forbidden[c] {
			s.forbidden[c] = true
			s.touched = append(s.touched, c)
		}
	}

	pick := int32(1)
	for int(pick) < len(s.forbidden) && s.forbidden[pick] {
		pick++
	}

	for _, c := range s.touched {
		s.forbidden[c] = false
	}

	return pick
}
