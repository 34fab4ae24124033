// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) gets id base + r*cols + c (row-major).
//   • For each cell emit Right then Bottom neighbor if present.
//
// Complexity: O(R·C) vertices + O(2·R·C) edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base, err := s.addVertices(rows * cols)
		if err != nil {
			return fmt.Errorf("%s: %w", methodGrid, err)
		}
		id := func(r, c int) int32 { return base + int32(r*cols+c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.addEdge(id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					s.addEdge(id(r, c), id(r+1, c))
				}
			}
		}

		return nil
	}
}
