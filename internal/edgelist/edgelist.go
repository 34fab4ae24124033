// Package edgelist reads and writes undirected graphs as plain-text edge
// lists:
//
//	# comment (also %)
//	N M
//	U V
//	...        (M lines, 1-based vertex ids)
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/pargraph/csr"
)

// ErrFormat is returned for malformed input.
var ErrFormat = errors.New("edgelist: malformed input")

// Read parses an edge list and builds its graph.
func Read(r io.Reader) (*csr.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		line   int
		header bool
		n, m   int
		edges  [][2]int32
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrFormat, line, len(fields))
		}
		if !header {
			var err error
			if n, err = parseCount(fields[0]); err != nil {
				return nil, fmt.Errorf("%w: line %d: vertex count: %w", ErrFormat, line, err)
			}
			if m, err = parseCount(fields[1]); err != nil {
				return nil, fmt.Errorf("%w: line %d: edge count: %w", ErrFormat, line, err)
			}
			if n > math.MaxInt32 {
				return nil, fmt.Errorf("%w: line %d: %d vertices exceed int32", ErrFormat, line, n)
			}
			edges = make([][2]int32, 0, min(m, 1<<20))
			header = true
			continue
		}
		if len(edges) == m {
			return nil, fmt.Errorf("%w: line %d: more than %d edges", ErrFormat, line, m)
		}
		u, err := parseVertex(fields[0], n)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, line, err)
		}
		v, err := parseVertex(fields[1], n)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, line, err)
		}
		edges = append(edges, [2]int32{u, v})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	if !header {
		return nil, fmt.Errorf("%w: missing header", ErrFormat)
	}
	if len(edges) != m {
		return nil, fmt.Errorf("%w: header promises %d edges, found %d", ErrFormat, m, len(edges))
	}

	g, err := csr.FromEdges(n, edges)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}

	return g, nil
}

func parseCount(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value %d", v)
	}

	return v, nil
}

func parseVertex(s string, n int) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if v < 1 || int(v) > n {
		return 0, fmt.Errorf("vertex %d outside [1,%d]", v, n)
	}

	return int32(v), nil
}

// Write emits g as an edge list, each undirected edge once with u < v.
func Write(w io.Writer, g *csr.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.VertexCount(), g.EdgeCount()); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}
	var err error
	g.Edges(func(u, v int32) bool {
		_, err = fmt.Fprintf(bw, "%d %d\n", u, v)
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}
