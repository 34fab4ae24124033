// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is the first id of the block; leaves follow in ascending order.
//   • Spokes are emitted hub–leaf in ascending leaf order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, err := s.addVertices(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		for i := int32(1); i < int32(n); i++ {
			s.addEdge(hub, hub+i)
		}

		return nil
	}
}
