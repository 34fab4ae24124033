// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// impl_random_sparse.go: implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   • Erdős–Rényi G(n,p): each unordered pair {i,j}, i<j, is included
//     independently with probability p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   • Stable trial order: i asc, then j asc; fixed seed ⇒ identical graph.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base, err := s.addVertices(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}
		if p == probMin {
			return nil
		}
		for i := int32(0); i < int32(n); i++ {
			for j := i + 1; j < int32(n); j++ {
				// p == 1 needs no draws, so a nil rng is fine there
				if p == probMax || cfg.rng.Float64() < p {
					s.addEdge(base+i, base+j)
				}
			}
		}

		return nil
	}
}
