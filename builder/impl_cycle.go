// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i → (i+1)%n for i = 0..n-1 (block-relative).
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base, err := s.addVertices(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		ring(s, base, n)

		return nil
	}
}

// ring emits the cycle over ids base..base+n-1.
func ring(s *sink, base int32, n int) {
	for i := 0; i < n; i++ {
		s.addEdge(base+int32(i), base+int32((i+1)%n))
	}
}
