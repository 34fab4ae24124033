// SPDX-License-Identifier: MIT

// Package csr provides the immutable compressed-sparse-row adjacency view
// consumed by every parallel algorithm in pargraph.
//
// What
//
//   - Vertices are numbered 1..n (0 is never a valid vertex id).
//   - offsets holds n+1 non-decreasing positions; the neighbors of vertex v
//     occupy neighbors[offsets[v-1]:offsets[v]].
//   - Every undirected edge {u,v} appears twice: once in u's range and once
//     in v's range.
//
// Why
//
//   - Locating a neighbor range is O(1); iterating it is a contiguous scan,
//     which keeps per-thread discovery loops cache friendly.
//   - A Graph never changes after construction, so any number of goroutines
//     may read it concurrently without locks.
//
// Construction
//
//	g, err := csr.FromEdges(5, [][2]int32{{1, 2}, {2, 3}, {3, 4}, {4, 5}})
//	g, err := csr.New(n, offsets, neighbors) // raw, validated
//
// Errors
//
//   - ErrInvalidGraph for any structural violation (offsets out of range or
//     decreasing, neighbor id outside [1,n], self-loop in FromEdges).
//
// Malformed input is a construction-time error only; algorithms never
// re-validate a Graph.
package csr
