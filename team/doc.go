// Package team provides the fixed-size SPMD execution context the parallel
// graph kernels run in: a Team of workers, each knowing its own index and
// the team size, sharing one reusable Barrier.
//
// A kernel is written once as a per-worker function and started with Run:
//
//	t, _ := team.New(8)
//	err := t.Run(func(w *team.Worker) error {
//		lo, hi := w.Span(n) // this worker's contiguous share
//		// ... local work ...
//		w.Barrier()          // full-team rendezvous
//		return nil
//	})
//
// There is no task queue and no work stealing: every worker executes the same
// code against a disjoint partition, and the only blocking points are
// barriers. A failing worker (error or panic) breaks the barrier so the rest
// of the team is released; Run reports the original failure.
package team
