package plindex

import (
	"github.com/graphlab-go/spc2h/graph"
	"github.com/graphlab-go/spc2h/label"
	"github.com/graphlab-go/spc2h/order"
)

// Build runs pruned BFS from every vertex, in order.Order priority, and
// returns the split index (dL, cL not yet merged) along with Stats.
//
// For each root u, a single BFS explores only vertices of strictly higher
// rank than u (spec §4.2 rank pruning), tracking at every visited vertex v
// the joint distance already covered by earlier, higher-priority hubs via
// dLu (v's label list against u's own canonical list). When that joint
// distance is strictly smaller than the BFS distance D[v], v is covered by
// an earlier hub and is skipped entirely — no label is emitted for it, and
// its neighbors are not expanded from here (the original implementation's
// BuildIndex makes this an unconditional `continue`; both halves of the
// skip matter, since expanding through an already-covered vertex would
// double count paths already attributed to its covering hub). When the joint
// distance equals D[v], v gets a non-canonical (cL) entry; when D[v] is
// smaller, a canonical (dL) entry.
func Build(g *graph.Graph, scheme order.Scheme) (*Index, Stats, error) {
	ord, err := order.Compute(g, scheme)
	if err != nil {
		return nil, Stats{}, err
	}
	n := g.N()
	idx := &Index{
		G:   g,
		Ord: ord,
		dL:  make([]label.List, n),
		cL:  make([]label.List, n),
	}
	rank := ord.Rank

	D := make([]uint32, n)
	C := make([]uint32, n)
	dLu := make([]uint32, n)
	for v := 0; v < n; v++ {
		D[v] = infDist
		dLu[v] = infDist
	}

	reset := make([]int32, 0, n)
	queue := make([]int32, 0, n)

	for i := 0; i < n; i++ {
		u := int(ord.Order[i])

		for _, e := range idx.dL[u] {
			dLu[e.Hub] = e.Dist
		}

		reset = reset[:0]
		queue = queue[:0]
		D[u] = 0
		C[u] = 1
		queue = append(queue, int32(u))
		reset = append(reset, int32(u))

		for qi := 0; qi < len(queue); qi++ {
			v := int(queue[qi])

			dSoFar := label.JointDistance(dLu, idx.dL[v])
			if D[v] > dSoFar {
				continue
			}

			entry := label.Entry{Hub: uint32(u), Dist: D[v], Cnt: C[v]}
			if D[v] < dSoFar {
				idx.dL[v] = append(idx.dL[v], entry)
			} else {
				idx.cL[v] = append(idx.cL[v], entry)
			}

			for _, wi := range g.Neighbors(v) {
				w := int(wi)
				if rank[w] <= rank[u] {
					continue
				}
				switch {
				case D[w] == infDist:
					D[w] = D[v] + 1
					C[w] = C[v]
					queue = append(queue, int32(w))
					reset = append(reset, int32(w))
				case D[w] == D[v]+1:
					C[w], _ = label.Saturate(C[w], C[v])
				}
			}
		}

		for _, v := range reset {
			D[v] = infDist
			C[v] = 0
		}
		for _, e := range idx.dL[u] {
			dLu[e.Hub] = infDist
		}
	}

	var stats Stats
	for v := 0; v < n; v++ {
		stats.NumCanonical += len(idx.dL[v])
		stats.NumNonCanonical += len(idx.cL[v])
	}
	return idx, stats, nil
}
