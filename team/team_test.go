package team_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pargraph/team"
)

func TestNew_RejectsNonPositive(t *testing.T) {
	for _, size := range []int{0, -3} {
		tm, err := team.New(size)
		assert.Nil(t, tm)
		assert.ErrorIs(t, err, team.ErrTeamSize)
	}
}

func TestRun_EveryWorkerOnce(t *testing.T) {
	tm, err := team.New(6)
	require.NoError(t, err)

	seen := make([]int32, 6)
	err = tm.Run(func(w *team.Worker) error {
		assert.Equal(t, 6, w.Size())
		atomic.AddInt32(&seen[w.ID()], 1)
		return nil
	})
	require.NoError(t, err)
	for id, c := range seen {
		assert.Equal(t, int32(1), c, "worker %d", id)
	}
}

// TestBarrier_Rounds checks that no worker enters round r+1 before every
// worker finished round r, over many reuses of the same barrier.
func TestBarrier_Rounds(t *testing.T) {
	const (
		workers = 8
		rounds  = 200
	)
	tm, err := team.New(workers)
	require.NoError(t, err)

	var arrived atomic.Int64
	err = tm.Run(func(w *team.Worker) error {
		for r := 0; r < rounds; r++ {
			arrived.Add(1)
			w.Barrier()
			if got, want := arrived.Load(), int64((r+1)*workers); got < want {
				return errors.New("worker passed barrier early")
			}
			w.Barrier()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(workers*rounds), arrived.Load())
}

func TestSpan_TilesRange(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7, 16} {
		for _, total := range []int{0, 1, 5, 16, 100, 1001} {
			tm, err := team.New(size)
			require.NoError(t, err)

			lo := make([]int, size)
			hi := make([]int, size)
			require.NoError(t, tm.Run(func(w *team.Worker) error {
				lo[w.ID()], hi[w.ID()] = w.Span(total)
				return nil
			}))

			assert.Equal(t, 0, lo[0])
			assert.Equal(t, total, hi[size-1])
			for i := 1; i < size; i++ {
				assert.Equal(t, hi[i-1], lo[i], "size=%d total=%d", size, total)
			}
			for i := 0; i < size; i++ {
				n := hi[i] - lo[i]
				assert.True(t, n == total/size || n == total/size+1,
					"size=%d total=%d worker=%d share=%d", size, total, i, n)
			}
		}
	}
}

func TestRun_ErrorBreaksBarrier(t *testing.T) {
	tm, err := team.New(4)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tm.Run(func(w *team.Worker) error {
		if w.ID() == 2 {
			return boom
		}
		// would deadlock without barrier breaking
		w.Barrier()
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, team.ErrBarrierBroken)
}

func TestRun_PanicIsRecovered(t *testing.T) {
	tm, err := team.New(3)
	require.NoError(t, err)

	err = tm.Run(func(w *team.Worker) error {
		w.Barrier()
		if w.Last() {
			panic("kernel precondition violated")
		}
		w.Barrier()
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, team.ErrWorkerPanic)
	assert.Contains(t, err.Error(), "kernel precondition violated")
}

func TestRun_Reusable(t *testing.T) {
	tm, err := team.New(2)
	require.NoError(t, err)

	require.Error(t, tm.Run(func(w *team.Worker) error {
		if w.ID() == 0 {
			return errors.New("first run fails")
		}
		w.Barrier()
		return nil
	}))

	var n atomic.Int32
	require.NoError(t, tm.Run(func(w *team.Worker) error {
		w.Barrier()
		n.Add(1)
		return nil
	}))
	assert.Equal(t, int32(2), n.Load())
}

func TestSolo(t *testing.T) {
	w := team.Solo()
	assert.Equal(t, 0, w.ID())
	assert.Equal(t, 1, w.Size())
	assert.True(t, w.Last())
	w.Barrier() // single party: never blocks
	lo, hi := w.Span(9)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 9, hi)
}

func TestBarrier_BreakReleasesWaiters(t *testing.T) {
	b := team.NewBarrier(2)
	assert.Equal(t, 2, b.Parties())
	done := make(chan any, 1)
	go func() {
		defer func() { done <- recover() }()
		b.Wait()
	}()
	cause := errors.New("stop")
	b.Break(cause)

	r := <-done
	require.NotNil(t, r)
	e, ok := r.(error)
	require.True(t, ok)
	assert.ErrorIs(t, e, team.ErrBarrierBroken)
	assert.Equal(t, cause, b.Cause())
	assert.Panics(t, b.Wait)
}
