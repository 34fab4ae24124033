// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): hub + rim cycle C_{n-1}.
//   • Hub is the first id of the block; rim edges first, then spokes.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub, err := s.addVertices(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		ring(s, hub+1, n-1)
		for i := int32(1); i < int32(n); i++ {
			s.addEdge(hub, hub+i)
		}

		return nil
	}
}
