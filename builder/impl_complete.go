// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_complete.go: implementation of Complete(n) and CompleteBipartite(a,b).
//
// Contract:
//   • Complete: n ≥ 1; every unordered pair {i,j}, i<j, in lexicographic order.
//   • CompleteBipartite: a,b ≥ 1; left block ids first, then right block;
//     pairs emitted left-major.
//
// Complexity: O(n²) and O(a·b) edges respectively.

package builder

import "fmt"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base, err := s.addVertices(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}
		for i := int32(0); i < int32(n); i++ {
			for j := i + 1; j < int32(n); j++ {
				s.addEdge(base+i, base+j)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if a < minPartitionSize || b < minPartitionSize {
			return fmt.Errorf("%s: a=%d, b=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, a, b, minPartitionSize, ErrTooFewVertices)
		}
		left, err := s.addVertices(a + b)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
		}
		right := left + int32(a)
		for i := int32(0); i < int32(a); i++ {
			for j := int32(0); j < int32(b); j++ {
				s.addEdge(left+i, right+j)
			}
		}

		return nil
	}
}
