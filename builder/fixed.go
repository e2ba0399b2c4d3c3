package builder

import (
	"fmt"

	"github.com/graphlab-go/spc2h/graph"
)

const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodGrid     = "Grid"

	minCycleNodes = 3
	minPathNodes  = 2
	minStarNodes  = 2
	minWheelNodes = 4
	minGridDim    = 1
)

// Complete builds the complete simple graph K_n (n >= 2; graph.Graph has no
// representation for a single isolated vertex).
func Complete(n int) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d < min=2: %w", methodComplete, n, ErrTooFewVertices)
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
			}
		}
	}
	return g, nil
}

// Cycle builds an n-vertex simple cycle C_n (n >= 3).
func Cycle(n int) (*graph.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, i, (i+1)%n, err)
		}
	}
	return g, nil
}

// Path builds a simple path P_n (n >= 2).
func Path(n int) (*graph.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n-1; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i, i+1, err)
		}
	}
	return g, nil
}

// Star builds a star with center vertex 0 and n-1 leaves (n >= 2).
func Star(n int) (*graph.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	for leaf := 1; leaf < n; leaf++ {
		if err := g.AddEdge(0, leaf); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(0,%d): %w", methodStar, leaf, err)
		}
	}
	return g, nil
}

// Wheel builds a wheel W_n: a ring of n-1 vertices plus a hub (vertex 0)
// connected to every ring vertex (n >= 4).
func Wheel(n int) (*graph.Graph, error) {
	if n < minWheelNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	ring := n - 1
	for i := 1; i <= ring; i++ {
		next := i + 1
		if next > ring {
			next = 1
		}
		if i != next {
			if err := g.AddEdge(i, next); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodWheel, i, next, err)
			}
		}
		if err := g.AddEdge(0, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(0,%d): %w", methodWheel, i, err)
		}
	}
	return g, nil
}

// Grid builds a rows x cols 4-neighborhood grid, vertex id = r*cols+c
// (rows, cols >= 1 and rows*cols >= 2; graph.Graph has no representation
// for a single isolated vertex).
func Grid(rows, cols int) (*graph.Graph, error) {
	if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
		return nil, fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}
	n := rows * cols
	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	id := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := g.AddEdge(id(r, c), id(r, c+1)); err != nil {
					return nil, fmt.Errorf("%s: AddEdge: %w", methodGrid, err)
				}
			}
			if r+1 < rows {
				if err := g.AddEdge(id(r, c), id(r+1, c)); err != nil {
					return nil, fmt.Errorf("%s: AddEdge: %w", methodGrid, err)
				}
			}
		}
	}
	return g, nil
}

