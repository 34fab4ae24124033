package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pargraph/csr"
)

// CheckTree verifies that res is a consistent BFS tree of g:
//   - Parent[Root] == Root and Distance[Root] == 0;
//   - every other reached v has Distance[v] == Distance[Parent[v]]+1 and
//     Parent[v] adjacent to v;
//   - unreached vertices carry Unvisited in both arrays.
//
// It does not prove distances minimal; compare against Sequential for that.
func CheckTree(g *csr.Graph, res *Result) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.VertexCount()
	if res == nil || len(res.Parent) != n+1 || len(res.Distance) != n+1 {
		return fmt.Errorf("%w: result arrays must have %d cells", ErrInvalidTree, n+1)
	}
	root := res.Root
	if !g.HasVertex(root) {
		return fmt.Errorf("%w: %d", ErrStartVertexNotFound, root)
	}
	if res.Parent[root] != root || res.Distance[root] != 0 {
		return fmt.Errorf("%w: root %d has parent %d distance %d",
			ErrInvalidTree, root, res.Parent[root], res.Distance[root])
	}

	for v := int32(1); int(v) <= n; v++ {
		if v == root {
			continue
		}
		p, d := res.Parent[v], res.Distance[v]
		if p == Unvisited || d == Unvisited {
			if p != d {
				return fmt.Errorf("%w: vertex %d half visited (parent %d, distance %d)", ErrInvalidTree, v, p, d)
			}
			continue
		}
		if !g.HasVertex(p) {
			return fmt.Errorf("%w: vertex %d has parent %d out of range", ErrInvalidTree, v, p)
		}
		if !slices.Contains(g.NeighborsOf(p), v) {
			return fmt.Errorf("%w: parent %d is not adjacent to %d", ErrInvalidTree, p, v)
		}
		if d != res.Distance[p]+1 {
			return fmt.Errorf("%w: distance[%d]=%d but distance[parent %d]=%d",
				ErrInvalidTree, v, d, p, res.Distance[p])
		}
	}

	return nil
}
