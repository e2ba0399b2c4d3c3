package builder

import (
	"fmt"

	"github.com/graphlab-go/spc2h/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomRegular     = "RandomRegular"
	minRandomVertices       = 2
	probMin                 = 0.0
	probMax                 = 1.0
	maxStubMatchingAttempts = 8
)

// RandomSparse samples an Erdős–Rényi-like graph over n vertices, including
// each unordered pair {i, j} (i < j) independently with probability p.
// Grounded on the teacher's impl_random_sparse.go (stable i-ascending,
// j-ascending trial order for determinism), trimmed to the undirected,
// unweighted case graph.Graph is always in.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*graph.Graph, error) {
	if n < minRandomVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := resolve(opts)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			include := p == 1 || (cfg.rng != nil && cfg.rng.Float64() < p)
			if !include {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomSparse, i, j, err)
			}
		}
	}
	return g, nil
}

// RandomRegular builds an undirected d-regular simple graph via stub
// matching with bounded reshuffle retries: n*d stubs (d copies of each
// vertex) are shuffled and paired consecutively; a pairing with a self-loop
// or a repeated edge is discarded and reshuffled, up to
// maxStubMatchingAttempts times. Grounded on the teacher's
// impl_random_regular.go.
func RandomRegular(n, d int, opts ...BuilderOption) (*graph.Graph, error) {
	if n < minRandomVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRandomVertices, ErrTooFewVertices)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
	}
	cfg := resolve(opts)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, err
	}
	stubCount := n * d
	if stubCount == 0 {
		return g, nil
	}
	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		seen := make(map[[2]int]struct{}, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomRegular, u, v, err)
			}
		}
		return g, nil
	}

	return nil, fmt.Errorf("%s: failed to construct after %d attempts: %w", methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
}
