// Package frontier implements the round-merge protocol shared by every
// parallel kernel in pargraph.
//
// What
//
// A round has two phases. In the discovery phase each worker processes its
// contiguous Slice of the current frontier and appends what it finds to a
// private buffer. In the merge phase (Merge) the workers publish their local
// counts, meet at a barrier, derive non-overlapping write offsets with an
// exclusive prefix sum, copy their buffers into the shared queue, and the
// last worker publishes the total. A total of zero terminates the caller's
// loop.
//
// Why
//
//   - No locks on the hot path: ownership of each queue sub-range is derived
//     from the prefix sum, so compaction is race free by construction.
//   - One reduction yields both the next frontier and the termination signal.
//
// Shape
//
//	s, _ := frontier.New(n, teamSize)
//	s.Seed(w, root)
//	for s.Size() != 0 {
//		local = local[:0]
//		for _, v := range s.Slice(w) {
//			// discover into local
//		}
//		s.Merge(w, local)
//	}
//
// Errors
//
//   - ErrBufferTooSmall from Check when the queue holds fewer than n slots or
//     the count table fewer than teamSize+1.
package frontier
