package bfs

import (
	"fmt"

	"github.com/katalvlaran/pargraph/csr"
	"github.com/katalvlaran/pargraph/team"
)

// HybridWorker is the per-worker body of the hybrid BFS. Vertices a worker
// discovers stay in its private buffer and form its own input for the next
// level; only every k levels are the private frontiers merged and
// redistributed evenly across the team.
//
// Levels stay synchronous: the team meets at a barrier before each local
// level, so every distance is written by the level that owns it. What k
// saves is the prefix sum and compaction, paid once per k levels.
//
// Panics if k < 1, root is not a vertex of g or st is undersized.
func HybridWorker(w *team.Worker, g *csr.Graph, root int32, k int, st *State) {
	if k < 1 {
		panic(fmt.Errorf("%w: hybrid rounds must be >= 1 (%d)", ErrOptionViolation, k))
	}
	initialize(w, g, root, st)

	capacity := g.VertexCount()/w.Size() + 1
	cur := make([]int32, 0, capacity)
	next := make([]int32, 0, capacity)
	for st.Frontier.Size() != 0 {
		cur = append(cur[:0], st.Frontier.Slice(w)...)
		for r := 0; r < k; r++ {
			w.Barrier()
			next = expand(g, st, cur, next[:0])
			cur, next = next, cur
		}
		st.Frontier.Merge(w, cur)
	}
}
