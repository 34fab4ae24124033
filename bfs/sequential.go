package bfs

import (
	"fmt"

	"github.com/katalvlaran/pargraph/csr"
)

// walker encapsulates mutable state of the sequential reference BFS.
type walker struct {
	graph *csr.Graph
	queue []int32
	head  int
	res   *Result
}

// Sequential runs a single-threaded, queue-based BFS from root. It is the
// trusted reference the parallel kernels are tested against, and
// Result.Rounds counts the levels it expanded.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
func Sequential(g *csr.Graph, root int32) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, root)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		queue: make([]int32, 0, n),
		res: &Result{
			Root:     root,
			Parent:   make([]int32, n+1),
			Distance: make([]int32, n+1),
		},
	}
	for i := range w.res.Parent {
		w.res.Parent[i] = Unvisited
		w.res.Distance[i] = Unvisited
	}

	// Seed queue with the root, its own parent
	w.enqueue(root, 0, root)
	w.loop()

	return w.res, nil
}

// enqueue marks v discovered at depth d with the given parent.
func (w *walker) enqueue(v, d, parent int32) {
	w.res.Parent[v] = parent
	w.res.Distance[v] = d
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, counting levels.
func (w *walker) loop() {
	level := Unvisited
	for w.head < len(w.queue) {
		v := w.queue[w.head]
		w.head++
		d := w.res.Distance[v]
		if d != level {
			level = d
			w.res.Rounds++
		}
		for _, u := range w.graph.NeighborsOf(v) {
			if w.res.Parent[u] == Unvisited {
				w.enqueue(u, d+1, v)
			}
		}
	}
}
