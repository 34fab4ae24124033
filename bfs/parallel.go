package bfs

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/pargraph/csr"
	"github.com/katalvlaran/pargraph/team"
)

// ParallelWorker is the per-worker body of the fully parallel, level-
// synchronous BFS from root. Every worker of the team must call it with the
// same g, root and st. Results land in st.Parent and st.Distance.
//
// Each level, a worker scans the neighbors of its Slice of the frontier and
// collects unvisited ones into a private buffer; the buffers are then merged
// into the next frontier. Without st.AtomicClaim two workers may discover
// the same vertex in one level: both write the same distance and a valid
// parent, and the vertex is expanded twice.
//
// Panics if root is not a vertex of g or st is undersized.
func ParallelWorker(w *team.Worker, g *csr.Graph, root int32, st *State) {
	initialize(w, g, root, st)

	local := make([]int32, 0, g.VertexCount()/w.Size()+1)
	for st.Frontier.Size() != 0 {
		local = expand(g, st, st.Frontier.Slice(w), local[:0])
		st.Frontier.Merge(w, local)
	}
}

// initialize resets the worker's share of the state arrays, installs the
// root and seeds the frontier with it.
func initialize(w *team.Worker, g *csr.Graph, root int32, st *State) {
	n := g.VertexCount()
	if !g.HasVertex(root) {
		panic(fmt.Errorf("%w: %d", ErrStartVertexNotFound, root))
	}
	if err := st.Check(n, w.Size()); err != nil {
		panic(err)
	}

	lo, hi := w.Span(n)
	for v := lo + 1; v <= hi; v++ {
		atomic.StoreInt32(&st.Parent[v], Unvisited)
		atomic.StoreInt32(&st.Distance[v], Unvisited)
	}
	w.Barrier()

	if w.ID() == 0 {
		st.Parent[root] = root
		st.Distance[root] = 0
	}
	st.Frontier.Seed(w, root)
}

// expand discovers the unvisited neighbors of every vertex in level and
// appends them to out.
func expand(g *csr.Graph, st *State, level, out []int32) []int32 {
	for _, v := range level {
		d := atomic.LoadInt32(&st.Distance[v]) + 1
		for _, u := range g.NeighborsOf(v) {
			if st.AtomicClaim {
				if !atomic.CompareAndSwapInt32(&st.Parent[u], Unvisited, v) {
					continue
				}
			} else {
				if atomic.LoadInt32(&st.Parent[u]) != Unvisited {
					continue
				}
				atomic.StoreInt32(&st.Parent[u], v)
			}
			atomic.StoreInt32(&st.Distance[u], d)
			out = append(out, u)
		}
	}

	return out
}
