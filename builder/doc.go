// SPDX-License-Identifier: MIT

// Package builder provides deterministic topology constructors that produce
// immutable csr.Graph values for tests, benchmarks, examples and the CLI.
//
// What
//
//   - Classic families: Path, Star, Cycle, Wheel, Complete,
//     CompleteBipartite, Grid, BinaryTree.
//   - Stochastic family: RandomSparse (Erdős–Rényi G(n,p)), seeded via
//     WithSeed or WithRand.
//   - Composition: BuildGraph runs constructors in order; each one allocates
//     a fresh block of consecutive vertex ids, so the result is the disjoint
//     union of the requested topologies (handy for unreachable-vertex tests).
//
// Usage
//
//	g, err := builder.Build(builder.Path(5))           // 1-2-3-4-5
//	g, err := builder.Build(builder.Star(5), builder.Path(3))
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomSparse(1000, 0.01),
//	)
//
// Errors
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed, always wrapped with the constructor name.
package builder
