package spcio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/graphlab-go/spc2h/graph"
)

// LoadGraphText reads the graph edge-list format (spec §6): a header line
// "n m" followed by m "u v" edge lines. Self-loops are rejected; duplicate
// (min,max) pairs are silently deduplicated rather than rejected, per the
// loader invariants in spec §6.
func LoadGraphText(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var n, m int
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing header line", ErrMalformed)
	}
	if _, err := fmt.Sscanf(sc.Text(), "%d %d", &n, &m); err != nil {
		return nil, fmt.Errorf("%w: header %q: %v", ErrMalformed, sc.Text(), err)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < m; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d edges, got %d", ErrMalformed, m, i)
		}
		var u, v int
		if _, err := fmt.Sscanf(sc.Text(), "%d %d", &u, &v); err != nil {
			return nil, fmt.Errorf("%w: edge line %q: %v", ErrMalformed, sc.Text(), err)
		}
		if g.HasEdge(u, v) {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%w: edge (%d,%d): %v", ErrMalformed, u, v, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return g, nil
}

// WriteGraphText writes g back out in the same format LoadGraphText reads,
// each undirected edge emitted once (u < v).
func WriteGraphText(w io.Writer, g *graph.Graph) error {
	n := g.N()
	if _, err := fmt.Fprintf(w, "%d %d\n", n, g.EdgeCount()); err != nil {
		return err
	}
	for u := 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			if int(v) <= u {
				continue
			}
			if _, err := fmt.Fprintf(w, "%d %d\n", u, v); err != nil {
				return err
			}
		}
	}
	return nil
}
