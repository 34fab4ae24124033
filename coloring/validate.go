package coloring

import (
	"fmt"

	"github.com/katalvlaran/pargraph/csr"
	"github.com/katalvlaran/pargraph/frontier"
)

// Validate checks that color is a proper coloring of g: every vertex has a
// color >= 1 and no edge joins two equal colors. Self-loops are ignored.
func Validate(g *csr.Graph, color []int32) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.VertexCount()
	if len(color) < n+1 {
		return fmt.Errorf("coloring: %w: color has %d cells, need %d", frontier.ErrBufferTooSmall, len(color), n+1)
	}
	for v := int32(1); int(v) <= n; v++ {
		if color[v] < 1 {
			return fmt.Errorf("%w: vertex %d has color %d", ErrUncolored, v, color[v])
		}
	}

	var err error
	g.Edges(func(u, v int32) bool {
		if color[u] == color[v] {
			err = fmt.Errorf("%w: edge %d-%d has color %d", ErrConflict, u, v, color[u])
			return false
		}
		return true
	})

	return err
}

// CountColors returns the number of distinct colors >= 1 in color[1:].
func CountColors(color []int32) int {
	seen := make(map[int32]struct{})
	for v := 1; v < len(color); v++ {
		if color[v] >= 1 {
			seen[color[v]] = struct{}{}
		}
	}

	return len(seen)
}
