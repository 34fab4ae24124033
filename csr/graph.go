// SPDX-License-Identifier: MIT

package csr

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidGraph is returned when offsets or neighbor ids violate the CSR
// invariants. Callers should match it with errors.Is.
var ErrInvalidGraph = errors.New("csr: invalid graph")

// Graph is an immutable undirected adjacency structure in CSR layout.
// The zero value is an empty graph with no vertices.
type Graph struct {
	n         int
	offsets   []int   // len n+1, offsets[0] == 0
	neighbors []int32 // flat neighbor ids in [1,n]
	maxDegree int
}

// New validates the raw CSR arrays and wraps them in a Graph.
// The slices are retained, not copied; callers must not mutate them afterwards.
//
// Complexity: O(n + len(neighbors)).
func New(n int, offsets []int, neighbors []int32) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrInvalidGraph, n)
	}
	if len(offsets) != n+1 {
		return nil, fmt.Errorf("%w: len(offsets)=%d, want %d", ErrInvalidGraph, len(offsets), n+1)
	}
	if offsets[0] != 0 {
		return nil, fmt.Errorf("%w: offsets[0]=%d, want 0", ErrInvalidGraph, offsets[0])
	}
	maxDeg := 0
	for i := 1; i <= n; i++ {
		d := offsets[i] - offsets[i-1]
		if d < 0 {
			return nil, fmt.Errorf("%w: offsets decrease at vertex %d", ErrInvalidGraph, i)
		}
		if d > maxDeg {
			maxDeg = d
		}
	}
	if offsets[n] != len(neighbors) {
		return nil, fmt.Errorf("%w: offsets[%d]=%d, want len(neighbors)=%d",
			ErrInvalidGraph, n, offsets[n], len(neighbors))
	}
	for i, w := range neighbors {
		if w < 1 || int(w) > n {
			return nil, fmt.Errorf("%w: neighbors[%d]=%d outside [1,%d]", ErrInvalidGraph, i, w, n)
		}
	}

	return &Graph{n: n, offsets: offsets, neighbors: neighbors, maxDegree: maxDeg}, nil
}

// FromEdges builds a symmetric Graph over vertices 1..n from an undirected
// edge list. Each pair is stored in both endpoint ranges and every range is
// sorted ascending, so the result is deterministic for a given input.
// Parallel edges are kept; self-loops are rejected.
//
// Complexity: O(n + m log Δ) where m = len(edges) and Δ is the max degree.
func FromEdges(n int, edges [][2]int32) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrInvalidGraph, n)
	}
	offsets := make([]int, n+1)
	for i, e := range edges {
		u, v := e[0], e[1]
		if u < 1 || int(u) > n || v < 1 || int(v) > n {
			return nil, fmt.Errorf("%w: edge %d (%d,%d) outside [1,%d]", ErrInvalidGraph, i, u, v, n)
		}
		if u == v {
			return nil, fmt.Errorf("%w: edge %d is a self-loop on %d", ErrInvalidGraph, i, u)
		}
		offsets[u]++
		offsets[v]++
	}
	// degree counts -> running end positions
	for i := 1; i <= n; i++ {
		offsets[i] += offsets[i-1]
	}

	neighbors := make([]int32, offsets[n])
	fill := make([]int, n+1)
	copy(fill, offsets)
	for _, e := range edges {
		u, v := e[0], e[1]
		// fill[v-1] is the next free slot of v's range
		neighbors[fill[u-1]] = v
		fill[u-1]++
		neighbors[fill[v-1]] = u
		fill[v-1]++
	}

	maxDeg := 0
	for v := 1; v <= n; v++ {
		lo, hi := offsets[v-1], offsets[v]
		slices.Sort(neighbors[lo:hi])
		if hi-lo > maxDeg {
			maxDeg = hi - lo
		}
	}

	return &Graph{n: n, offsets: offsets, neighbors: neighbors, maxDegree: maxDeg}, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of undirected edges (half the stored entries).
func (g *Graph) EdgeCount() int { return len(g.neighbors) / 2 }

// MaxDegree returns the largest neighbor-range length.
func (g *Graph) MaxDegree() int { return g.maxDegree }

// NeighborsOf returns v's neighbor ids. The slice aliases the graph's storage
// and must be treated as read-only. v must lie in [1,n].
func (g *Graph) NeighborsOf(v int32) []int32 {
	return g.neighbors[g.offsets[v-1]:g.offsets[v]]
}

// Degree returns the length of v's neighbor range.
func (g *Graph) Degree(v int32) int {
	return g.offsets[v] - g.offsets[v-1]
}

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int32) bool {
	return v >= 1 && int(v) <= g.n
}

// Offsets exposes the raw offsets array (read-only).
func (g *Graph) Offsets() []int { return g.offsets }

// Neighbors exposes the raw flat neighbor array (read-only).
func (g *Graph) Neighbors() []int32 { return g.neighbors }

// Edges calls fn once per undirected edge {u,v} with u < v, in ascending
// (u, v) order. Iteration stops early when fn returns false.
func (g *Graph) Edges(fn func(u, v int32) bool) {
	for u := int32(1); int(u) <= g.n; u++ {
		for _, v := range g.NeighborsOf(u) {
			if u < v && !fn(u, v) {
				return
			}
		}
	}
}
