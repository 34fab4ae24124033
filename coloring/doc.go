// Package coloring implements speculative parallel greedy vertex coloring
// over a csr.Graph.
//
// Phase 1 lets every worker first-fit color its share of the vertices
// without coordination, accepting that concurrently colored neighbors may
// collide. Phase 2 repeatedly flags colliding vertices, merges the flags
// into one list through the frontier package, recolors that list in
// parallel, and rechecks every edge, until no edge joins equal colors.
//
// Colors start at 1 and never exceed MaxDegree+1. With a single worker the
// result equals the sequential first-fit coloring in vertex order.
//
//	res, err := coloring.Greedy(g, coloring.WithWorkers(8))
//	err = coloring.Validate(g, res.Color)
package coloring
