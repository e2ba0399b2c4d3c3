package oracle

import "github.com/graphlab-go/spc2h/graph"

// Count returns the shortest-path distance and the number of distinct
// shortest paths between s and t in g, computed by brute-force
// bidirectional BFS. It returns (0, 0, nil) when s and t are disconnected.
func Count(g *graph.Graph, s, t int) (uint32, uint64, error) {
	if s == t {
		return 0, 0, ErrSelfQuery
	}
	n := g.N()

	dist := [2][]uint32{make([]uint32, n), make([]uint32, n)}
	cnt := [2][]uint64{make([]uint64, n), make([]uint64, n)}
	touchedThisLevel := make([]bool, n)
	for side := 0; side < 2; side++ {
		for v := 0; v < n; v++ {
			dist[side][v] = infDist
		}
	}
	dist[0][s], cnt[0][s] = 0, 1
	dist[1][t], cnt[1][t] = 0, 1

	frontier := [2][]int32{{int32(s)}, {int32(t)}}

	var bestD uint32
	var bestC uint64
	found := false

	for len(frontier[0]) > 0 && len(frontier[1]) > 0 {
		use := 0
		if len(frontier[1]) < len(frontier[0]) {
			use = 1
		}
		other := 1 - use

		var next []int32
		var touched []int32
		for _, vi := range frontier[use] {
			v := int(vi)
			for _, wi := range g.Neighbors(v) {
				w := int(wi)

				switch {
				case dist[use][w] == infDist:
					dist[use][w] = dist[use][v] + 1
					cnt[use][w] = cnt[use][v]
					next = append(next, int32(w))
					if !touchedThisLevel[w] {
						touchedThisLevel[w] = true
						touched = append(touched, int32(w))
					}
				case dist[use][w] == dist[use][v]+1:
					cnt[use][w] += cnt[use][v]
					if !touchedThisLevel[w] {
						touchedThisLevel[w] = true
						touched = append(touched, int32(w))
					}
				}
			}
		}

		// Meeting check runs once per touched vertex, after every edge
		// into it this level has been folded into its final count.
		for _, wi := range touched {
			w := int(wi)
			touchedThisLevel[w] = false
			if dist[other][w] == infDist {
				continue
			}
			bestD = dist[use][w] + dist[other][w]
			bestC += cnt[use][w] * cnt[other][w]
			found = true
		}

		if found {
			break
		}
		frontier[use] = next
	}

	if !found {
		return 0, 0, nil
	}
	return bestD, bestC, nil
}
