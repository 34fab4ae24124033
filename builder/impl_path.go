// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits edges in stable order (base+i)–(base+i+1) for i = 0..n-2.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base, err := s.addVertices(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := int32(0); i < int32(n-1); i++ {
			s.addEdge(base+i, base+i+1)
		}

		return nil
	}
}
