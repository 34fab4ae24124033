// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// api.go: BuildGraph orchestrator and the Constructor contract.
//
// Design contract:
//   • One orchestrator: BuildGraph(bopts, cons...). Resolves cfg once, runs
//     constructors in order, then freezes the edge set into a csr.Graph.
//   • Each constructor allocates its own block of consecutive vertex ids, so
//     composing constructors yields their disjoint union.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical
//     offsets and neighbor arrays.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pargraph/csr"
)

// Constructor appends one topology to the edge sink using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(s *sink, cfg builderConfig) error

// sink accumulates vertices and undirected edges before CSR construction.
type sink struct {
	n     int
	edges [][2]int32
}

// addVertices reserves k new vertex ids and returns the first one.
// Ids are 1-based and consecutive: base, base+1, …, base+k-1.
func (s *sink) addVertices(k int) (int32, error) {
	if s.n+k > math.MaxInt32 {
		return 0, fmt.Errorf("vertex count %d exceeds int32: %w", s.n+k, ErrConstructFailed)
	}
	base := int32(s.n + 1)
	s.n += k

	return base, nil
}

func (s *sink) addEdge(u, v int32) {
	s.edges = append(s.edges, [2]int32{u, v})
}

// BuildGraph resolves bopts, applies every constructor in order and returns
// the resulting immutable graph. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
//
// Complexity: Σ cost of constructors + O(n + m log Δ) for CSR freezing.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*csr.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sink{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := csr.FromEdges(s.n, s.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// Build is BuildGraph without options, for deterministic constructors.
func Build(cons ...Constructor) (*csr.Graph, error) {
	return BuildGraph(nil, cons...)
}

// =============================================================================
// Topology factories (implemented in impl_*.go)
// =============================================================================
//
// Path(n)                  P_n, n ≥ 1; edges i–(i+1).
// Star(n)                  hub = first id, n-1 leaves; n ≥ 2.
// Cycle(n)                 C_n, n ≥ 3.
// Wheel(n)                 hub + C_{n-1}; n ≥ 4.
// Complete(n)              K_n, n ≥ 1.
// CompleteBipartite(a, b)  K_{a,b}, a,b ≥ 1; left block first.
// Grid(rows, cols)         4-neighborhood grid, row-major ids.
// BinaryTree(depth)        complete binary tree with 2^depth-1 vertices (heap ids).
// RandomSparse(n, p)       G(n,p); requires WithSeed/WithRand when 0<p<1.
