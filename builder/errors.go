// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach method context with %w; option constructors panic
//     on meaningless input (nil rand source).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, depth)
// is smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed or WithRand must be supplied).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that composition failed (nil constructor,
// vertex count overflow, or the final CSR rejected the edge set).
var ErrConstructFailed = errors.New("builder: construction failed")
