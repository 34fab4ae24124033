package frontier_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pargraph/frontier"
	"github.com/katalvlaran/pargraph/team"
)

// recorder collects ObserveRound calls.
type recorder struct {
	mu     sync.Mutex
	rounds []int
	sizes  []int
}

func (r *recorder) ObserveRound(round, size int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rounds = append(r.rounds, round)
	r.sizes = append(r.sizes, size)
}

func TestCheck(t *testing.T) {
	s := frontier.FromBuffers(make([]int32, 10), make([]int, 5))
	assert.NoError(t, s.Check(10, 4))
	assert.ErrorIs(t, s.Check(11, 4), frontier.ErrBufferTooSmall)
	assert.ErrorIs(t, s.Check(10, 5), frontier.ErrBufferTooSmall)

	_, err := frontier.New(4, 0)
	assert.ErrorIs(t, err, frontier.ErrBufferTooSmall)
	_, err = frontier.New(-1, 2)
	assert.ErrorIs(t, err, frontier.ErrBufferTooSmall)
}

func TestSeedAndSlice(t *testing.T) {
	const workers = 3
	s, err := frontier.New(16, workers)
	require.NoError(t, err)
	tm, err := team.New(workers)
	require.NoError(t, err)

	slices := make([][]int32, workers)
	require.NoError(t, tm.Run(func(w *team.Worker) error {
		s.Seed(w, 1, 2, 3, 4, 5, 6, 7)
		got := s.Slice(w)
		slices[w.ID()] = append([]int32(nil), got...)
		return nil
	}))

	assert.Equal(t, 7, s.Size())
	assert.Equal(t, 0, s.Rounds())
	// [0,2) [2,4) [4,7)
	assert.Equal(t, []int32{1, 2}, slices[0])
	assert.Equal(t, []int32{3, 4}, slices[1])
	assert.Equal(t, []int32{5, 6, 7}, slices[2])
}

// TestMerge_OrderAndTotal verifies compaction order: worker contributions in
// ascending worker index, each keeping its local order.
func TestMerge_OrderAndTotal(t *testing.T) {
	const workers = 4
	s, err := frontier.New(32, workers)
	require.NoError(t, err)
	rec := &recorder{}
	s.SetObserver(rec)

	tm, err := team.New(workers)
	require.NoError(t, err)

	totals := make([]int, workers)
	require.NoError(t, tm.Run(func(w *team.Worker) error {
		s.Seed(w, 1)
		// worker i contributes i items: 10*i+0, 10*i+1, ...
		local := make([]int32, 0, w.ID())
		for k := 0; k < w.ID(); k++ {
			local = append(local, int32(10*w.ID()+k))
		}
		totals[w.ID()] = s.Merge(w, local)
		return nil
	}))

	for _, tot := range totals {
		assert.Equal(t, 6, tot)
	}
	assert.Equal(t, 6, s.Size())
	assert.Equal(t, []int32{10, 20, 21, 30, 31, 32}, s.Queue())
	assert.Equal(t, 1, s.Rounds())
	assert.Equal(t, []int{1}, rec.rounds)
	assert.Equal(t, []int{6}, rec.sizes)
}

func TestMerge_EmptyTerminates(t *testing.T) {
	s, err := frontier.New(4, 2)
	require.NoError(t, err)
	tm, err := team.New(2)
	require.NoError(t, err)

	iterations := make([]int, 2)
	require.NoError(t, tm.Run(func(w *team.Worker) error {
		s.Seed(w, 1, 2)
		for s.Size() != 0 {
			iterations[w.ID()]++
			s.Merge(w, nil)
		}
		return nil
	}))
	assert.Equal(t, []int{1, 1}, iterations)
	assert.Equal(t, 0, s.Size())
}

// runWithin fails the test instead of hanging if tm.Run does not return
// within d.
func runWithin(t *testing.T, d time.Duration, tm *team.Team, fn func(w *team.Worker) error) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- tm.Run(fn) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(d):
		t.Fatalf("team did not finish within %v", d)
	}
}

// TestMerge_GrowsQueue feeds far more items than the queue holds, many times
// over, so worker 0's reallocation races every peer's length check.
func TestMerge_GrowsQueue(t *testing.T) {
	const (
		workers    = 8
		iterations = 300
	)
	want := make([]int32, 0, 2*workers)
	for id := 0; id < workers; id++ {
		want = append(want, int32(id), int32(id))
	}

	tm, err := team.New(workers)
	require.NoError(t, err)
	for i := 0; i < iterations; i++ {
		s, err := frontier.New(1, workers)
		require.NoError(t, err)

		totals := make([]int, workers)
		runWithin(t, 10*time.Second, tm, func(w *team.Worker) error {
			s.Seed(w, 1)
			local := []int32{int32(w.ID()), int32(w.ID())}
			totals[w.ID()] = s.Merge(w, local)
			return nil
		})
		require.Equal(t, want, s.Queue(), "iteration %d", i)
		for id, tot := range totals {
			require.Equal(t, 2*workers, tot, "iteration %d worker %d", i, id)
		}
	}
}

// TestMerge_GrowsRepeatedly doubles the frontier every round from a single
// slot, so nearly every merge takes the growth path and the next round reads
// the grown queue.
func TestMerge_GrowsRepeatedly(t *testing.T) {
	const (
		workers = 8
		rounds  = 10
	)
	s, err := frontier.New(1, workers)
	require.NoError(t, err)
	tm, err := team.New(workers)
	require.NoError(t, err)

	runWithin(t, 10*time.Second, tm, func(w *team.Worker) error {
		s.Seed(w, 0)
		var local []int32
		for r := 0; r < rounds; r++ {
			local = local[:0]
			for _, x := range s.Slice(w) {
				local = append(local, x+1, x+1)
			}
			s.Merge(w, local)
		}
		return nil
	})

	require.Equal(t, 1<<rounds, s.Size())
	for _, x := range s.Queue() {
		assert.Equal(t, int32(rounds), x)
	}
	assert.Equal(t, rounds, s.Rounds())
}

// TestMerge_ManyRounds pushes a counter through repeated merges so each round
// depends on the previous round's compacted queue.
func TestMerge_ManyRounds(t *testing.T) {
	const (
		workers = 5
		rounds  = 50
	)
	s, err := frontier.New(64, workers)
	require.NoError(t, err)
	tm, err := team.New(workers)
	require.NoError(t, err)

	require.NoError(t, tm.Run(func(w *team.Worker) error {
		s.Seed(w, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
		local := make([]int32, 0, 64)
		for r := 0; r < rounds; r++ {
			local = local[:0]
			for _, x := range s.Slice(w) {
				local = append(local, x+1)
			}
			s.Merge(w, local)
		}
		return nil
	}))

	require.Equal(t, 10, s.Size())
	for _, x := range s.Queue() {
		assert.Equal(t, int32(rounds), x)
	}
	assert.Equal(t, rounds, s.Rounds())
}
