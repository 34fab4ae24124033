package csr_test

import (
	"fmt"

	"github.com/katalvlaran/pargraph/csr"
)

// ExampleFromEdges builds the 4-cycle 1-2-3-4-1 and prints each range.
func ExampleFromEdges() {
	g, err := csr.FromEdges(4, [][2]int32{{1, 2}, {2, 3}, {3, 4}, {4, 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for v := int32(1); v <= int32(g.VertexCount()); v++ {
		fmt.Println(v, g.NeighborsOf(v))
	}
	fmt.Println("offsets:", g.Offsets())
	// Output:
	// 1 [2 4]
	// 2 [1 3]
	// 3 [2 4]
	// 4 [1 3]
	// offsets: [0 2 4 6 8]
}
