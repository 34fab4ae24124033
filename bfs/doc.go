// Package bfs provides shared-memory parallel breadth-first search over a
// csr.Graph, returning hop distances and parent links from a root vertex.
//
// What
//
//   - ParallelWorker / Parallel: level-synchronous BFS. Every level the team
//     expands its evenly split share of the frontier and merges the
//     discoveries through the frontier package.
//   - HybridWorker / Hybrid: discoveries stay with the worker that found them
//     for k levels (default 2) before one merge rebalances the frontier.
//   - Sequential: single-threaded queue BFS, the trusted reference.
//   - CheckTree: validates parent/distance consistency of any Result.
//   - Result.PathTo, Result.Reached, Result.Eccentricity.
//
// Discovery race
//
//	Without WithAtomicClaim, two workers may both see vertex u unvisited in
//	the same level. Both store the same distance and a valid parent, and u
//	appears twice in the next frontier. The duplicate costs one redundant
//	expansion and nothing else. Cell accesses are atomic, so the race is
//	visible in results only as the choice of parent. WithAtomicClaim turns
//	discovery into a compare-and-swap on Parent[u] and removes duplicates.
//
// Complexity (V = vertices, E = edges, D = eccentricity of root, T = workers)
//
//   - Work:   O(V + E) plus duplicate expansions in benign-race mode.
//   - Span:   O(D·(T + V/T + Δ)) barriers and prefix sums included.
//   - Memory: O(V) shared + O(V/T) per worker.
//
// Usage
//
//	res, err := bfs.Parallel(g, 1, bfs.WithWorkers(8))
//	res, err := bfs.Hybrid(g, 1, bfs.WithHybridRounds(3), bfs.WithAtomicClaim())
//
//	// inside an existing team, with caller-owned buffers:
//	st, _ := bfs.NewState(g.VertexCount(), tm.Size())
//	_ = tm.Run(func(w *team.Worker) error {
//		bfs.ParallelWorker(w, g, 1, st)
//		return nil
//	})
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if root is outside [1, n].
//   - ErrOptionViolation      for invalid options (workers or rounds < 1).
//   - ErrInvalidTree          from CheckTree.
//   - ErrNoPath               from Result.PathTo.
//
// The per-worker kernels panic on violated preconditions; team.Run turns
// the panic into an error wrapping team.ErrWorkerPanic.
package bfs
