package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pargraph/csr"
)

func TestNew_Valid(t *testing.T) {
	// path 1-2-3
	g, err := csr.New(3, []int{0, 1, 3, 4}, []int32{2, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.MaxDegree())
	assert.Equal(t, []int32{2}, g.NeighborsOf(1))
	assert.Equal(t, []int32{1, 3}, g.NeighborsOf(2))
	assert.Equal(t, 1, g.Degree(3))
}

func TestNew_Empty(t *testing.T) {
	g, err := csr.New(0, []int{0}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasVertex(1))
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		offsets   []int
		neighbors []int32
	}{
		{"negative n", -1, []int{0}, nil},
		{"short offsets", 3, []int{0, 1, 2}, []int32{2, 1}},
		{"nonzero first offset", 2, []int{1, 1, 2}, []int32{2, 1}},
		{"decreasing offsets", 2, []int{0, 2, 1}, []int32{2, 1}},
		{"last offset mismatch", 2, []int{0, 1, 2}, []int32{2, 1, 1}},
		{"neighbor zero", 2, []int{0, 1, 2}, []int32{0, 1}},
		{"neighbor above n", 2, []int{0, 1, 2}, []int32{3, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := csr.New(tc.n, tc.offsets, tc.neighbors)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, csr.ErrInvalidGraph)
		})
	}
}

func TestFromEdges_Symmetric(t *testing.T) {
	g, err := csr.FromEdges(4, [][2]int32{{3, 1}, {1, 2}, {2, 3}, {4, 3}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []int32{2, 3}, g.NeighborsOf(1))
	assert.Equal(t, []int32{1, 3}, g.NeighborsOf(2))
	assert.Equal(t, []int32{1, 2, 4}, g.NeighborsOf(3))
	assert.Equal(t, []int32{3}, g.NeighborsOf(4))
	assert.Equal(t, 3, g.MaxDegree())

	// every stored entry has its mirror
	for u := int32(1); u <= 4; u++ {
		for _, v := range g.NeighborsOf(u) {
			assert.Contains(t, g.NeighborsOf(v), u)
		}
	}
}

func TestFromEdges_IsolatedAndParallel(t *testing.T) {
	g, err := csr.FromEdges(3, [][2]int32{{1, 2}, {2, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 2}, g.NeighborsOf(1))
	assert.Empty(t, g.NeighborsOf(3))
	assert.Equal(t, 0, g.Degree(3))
}

func TestFromEdges_Invalid(t *testing.T) {
	_, err := csr.FromEdges(2, [][2]int32{{1, 3}})
	assert.ErrorIs(t, err, csr.ErrInvalidGraph)

	_, err = csr.FromEdges(2, [][2]int32{{0, 1}})
	assert.ErrorIs(t, err, csr.ErrInvalidGraph)

	_, err = csr.FromEdges(2, [][2]int32{{2, 2}})
	assert.ErrorIs(t, err, csr.ErrInvalidGraph)

	_, err = csr.FromEdges(-4, nil)
	assert.ErrorIs(t, err, csr.ErrInvalidGraph)
}

func TestFromEdges_RoundTripsThroughNew(t *testing.T) {
	g, err := csr.FromEdges(5, [][2]int32{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}})
	require.NoError(t, err)

	h, err := csr.New(g.VertexCount(), g.Offsets(), g.Neighbors())
	require.NoError(t, err)
	assert.Equal(t, g.MaxDegree(), h.MaxDegree())
	for v := int32(1); v <= 5; v++ {
		assert.Equal(t, g.NeighborsOf(v), h.NeighborsOf(v))
	}
}

func TestEdges_OrderAndEarlyStop(t *testing.T) {
	g, err := csr.FromEdges(4, [][2]int32{{4, 1}, {2, 3}, {1, 2}})
	require.NoError(t, err)

	var got [][2]int32
	g.Edges(func(u, v int32) bool {
		got = append(got, [2]int32{u, v})
		return true
	})
	assert.Equal(t, [][2]int32{{1, 2}, {1, 4}, {2, 3}}, got)

	calls := 0
	g.Edges(func(_, _ int32) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}
