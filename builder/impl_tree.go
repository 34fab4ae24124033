// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_tree.go: implementation of BinaryTree(depth) constructor.
//
// Contract:
//   • depth ≥ 1 (else ErrTooFewVertices); 2^depth-1 vertices.
//   • Heap numbering inside the block: node k has children 2k and 2k+1.
//
// Complexity: O(2^depth) vertices and edges.

package builder

import "fmt"

const (
	methodBinaryTree = "BinaryTree"
	minTreeDepth     = 1
	maxTreeDepth     = 30
)

// BinaryTree returns a Constructor that builds a complete binary tree.
func BinaryTree(depth int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if depth < minTreeDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodBinaryTree, depth, minTreeDepth, ErrTooFewVertices)
		}
		if depth > maxTreeDepth {
			return fmt.Errorf("%s: depth=%d > max=%d: %w", methodBinaryTree, depth, maxTreeDepth, ErrConstructFailed)
		}
		n := (1 << depth) - 1
		base, err := s.addVertices(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodBinaryTree, err)
		}
		// heap index k (1-based) -> id base+k-1
		for k := 2; k <= n; k++ {
			s.addEdge(base+int32(k/2-1), base+int32(k-1))
		}

		return nil
	}
}
