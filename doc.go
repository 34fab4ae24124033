// Package pargraph is a toolkit of shared-memory parallel graph kernels over
// an immutable CSR adjacency: level-synchronous BFS, hybrid BFS and
// speculative greedy coloring.
//
// What is in the box?
//
//	csr/          immutable CSR Graph, validated construction, FromEdges
//	builder/      deterministic topology constructors (path, star, grid, G(n,p), ...)
//	team/         fixed-size SPMD worker team with a reusable barrier
//	frontier/     round merge: local buffers, prefix sum, compaction
//	bfs/          Parallel, Hybrid and Sequential BFS, CheckTree, PathTo
//	coloring/     Greedy, Repair, Validate
//	telemetry/    Prometheus collectors and text exposition
//	cmd/pargraph  CLI: bfs, color, gen
//
// Quick start
//
//	g, _ := builder.Build(builder.Grid(512, 512))
//	res, _ := bfs.Parallel(g, 1, bfs.WithWorkers(8))
//	col, _ := coloring.Greedy(g)
//
// Vertex ids are int32 in [1, n]; every per-vertex result slice has n+1
// cells with index 0 unused.
package pargraph
