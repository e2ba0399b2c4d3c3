package update

import (
	"sort"

	"github.com/graphlab-go/spc2h/graph"
	"github.com/graphlab-go/spc2h/label"
	"github.com/graphlab-go/spc2h/plindex"
	"github.com/graphlab-go/spc2h/query"
)

// DeleteStats reports the affected-set sizes and label-patch counters for
// one Delete call, mirroring the per-update fields the original CLI logged
// to its info file.
type DeleteStats struct {
	AffA, AffB int
	RecA, RecB int
	RenewC     int
	RenewD     int
	Insert     int
	Remove     int
	FastPath   bool
}

// Delete removes the edge (a, b) from idx's graph and re-derives every
// label that the removal may have invalidated.
//
// An edge removal can only ever lengthen shortest paths or lose some of
// them. Grounded on Dec_SPC: two BFS passes (one rooted at a, one at b)
// find the vertices u for which the edge lies on a shortest path from u to
// the other endpoint, and classify each as "affected" (every such shortest
// path uses the edge, or u is a hub of both a and b) or a "receiver" (only
// some do, and u is not a hub of both). Update_hub then re-derives, for
// each affected vertex treated as a hub, the labels of the opposite side's
// affected and receiver vertices, and for a hub shared by a and b removes
// its now-stale entries from those vertices.
func Delete(idx *plindex.Index, a, b int) (DeleteStats, error) {
	if a == b {
		return DeleteStats{}, ErrSameVertex
	}
	if !idx.Merged() {
		return DeleteStats{}, ErrNotMerged
	}
	if !idx.G.HasEdge(a, b) {
		return DeleteStats{}, graph.ErrMissingEdge
	}

	n := idx.G.N()
	hubListA := make([]bool, n)
	hubListB := make([]bool, n)
	for _, e := range idx.Labels(a) {
		hubListA[e.Hub] = true
	}
	for _, e := range idx.Labels(b) {
		hubListB[e.Hub] = true
	}

	affFlagA, affA, recA := discoverAffected(idx, a, b, hubListA, hubListB)
	affFlagB, affB, recB := discoverAffected(idx, b, a, hubListA, hubListB)

	stats := DeleteStats{AffA: len(affA), AffB: len(affB), RecA: len(recA), RecB: len(recB)}

	if erased, ok := fastUpdate(idx, a, b, affA, affB); ok {
		stats.FastPath = true
		stats.Remove = erased
		return stats, nil
	}

	if err := idx.G.RemoveEdge(a, b); err != nil {
		return DeleteStats{}, err
	}

	sort.Slice(affA, func(i, j int) bool { return affA[i] < affA[j] })
	sort.Slice(affB, func(i, j int) bool { return affB[i] < affB[j] })

	ai, bi := 0, 0
	for ai < len(affA) || bi < len(affB) {
		if bi == len(affB) || (ai < len(affA) && affA[ai] < affB[bi]) {
			hub := int(idx.Ord.Order[affA[ai]])
			isHub := hubListA[hub] && hubListB[hub]
			rc, rd, ins, rem := updateHub(idx, hub, affFlagB, affB, recB, isHub)
			stats.RenewC += rc
			stats.RenewD += rd
			stats.Insert += ins
			stats.Remove += rem
			ai++
		} else {
			hub := int(idx.Ord.Order[affB[bi]])
			isHub := hubListA[hub] && hubListB[hub]
			rc, rd, ins, rem := updateHub(idx, hub, affFlagA, affA, recA, isHub)
			stats.RenewC += rc
			stats.RenewD += rd
			stats.Insert += ins
			stats.Remove += rem
			bi++
		}
	}
	return stats, nil
}

// discoverAffected runs a BFS from `from` that only visits and expands
// vertices u whose BFS distance plus one equals their indexed distance to
// `to` (the edge lies on a shortest u-`to` path). Each such u is classified
// as a receiver (appended, by vertex id, to recVerts) when its indexed path
// count to `to` exceeds the count of paths reaching it from `from` and it is
// not a hub of both endpoints, and as affected (appended, by rank, to
// affRanks) otherwise. Grounded on the first of Dec_SPC's two discovery
// passes.
func discoverAffected(idx *plindex.Index, from, to int, hubListA, hubListB []bool) (affFlag []int8, affRanks []int32, recVerts []int32) {
	g := idx.G
	rank := idx.Ord.Rank
	n := g.N()

	D := make([]uint32, n)
	C := make([]uint64, n)
	for v := 0; v < n; v++ {
		D[v] = label.NoDist
	}
	D[from] = 0
	C[from] = 1
	affFlag = make([]int8, n)
	queue := []int32{int32(from)}

	for qi := 0; qi < len(queue); qi++ {
		u := int(queue[qi])

		d, c := countSPC(idx, u, to)
		if D[u]+1 != d {
			continue
		}

		if c > C[u] && (!hubListA[u] || !hubListB[u]) {
			affFlag[rank[u]] = -1
			recVerts = append(recVerts, int32(u))
		} else {
			affFlag[rank[u]] = 1
			affRanks = append(affRanks, rank[u])
		}

		for _, wi := range g.Neighbors(u) {
			w := int(wi)
			switch {
			case D[w] == label.NoDist:
				D[w] = D[u] + 1
				C[w] = C[u]
				queue = append(queue, int32(w))
			case D[w] == D[u]+1:
				C[w] += C[u]
			}
		}
	}
	return affFlag, affRanks, recVerts
}

// countSPC is the self-aware wrapper around query.Count used by the
// affected-discovery BFS, which (unlike the query package's public
// contract) may legitimately ask about a vertex against itself.
func countSPC(idx *plindex.Index, s, t int) (uint32, uint64) {
	if s == t {
		return 0, 1
	}
	d, c, err := query.Count(idx, s, t)
	if err != nil {
		return 0, 0
	}
	return d, c
}

// fastUpdate special-cases an edge that is a pendant vertex's only edge:
// removing it isolates that vertex, whose label collapses to a bare self
// entry without needing a graph walk at all. Grounded on Fast_update; unlike
// the original, this also removes the edge from the graph, since leaving it
// in place while resetting the pendant's label would desync the two.
func fastUpdate(idx *plindex.Index, a, b int, affA, affB []int32) (erased int, ok bool) {
	rank := idx.Ord.Rank
	if len(affA) == 1 && idx.G.Degree(a) == 1 && rank[a] > rank[b] {
		erased = len(idx.Labels(a)) - 1
		idx.SetLabels(a, label.List{{Hub: uint32(a), Dist: 0, Cnt: 1}})
		if err := idx.G.RemoveEdge(a, b); err != nil {
			return 0, false
		}
		return erased, true
	}
	if len(affB) == 1 && idx.G.Degree(b) == 1 && rank[b] > rank[a] {
		erased = len(idx.Labels(b)) - 1
		idx.SetLabels(b, label.List{{Hub: uint32(b), Dist: 0, Cnt: 1}})
		if err := idx.G.RemoveEdge(a, b); err != nil {
			return 0, false
		}
		return erased, true
	}
	return 0, false
}

// updateHub re-derives hub's own labels over every vertex reachable from it
// (post-removal), skipping vertices the discovery pass proved unaffected,
// and purges stale hub entries left behind on vertices hub no longer
// reaches at all. Grounded on Update_hub.
func updateHub(idx *plindex.Index, hub int, affFlag []int8, affs []int32, recs []int32, isHub bool) (renewC, renewD, insert, remove int) {
	g := idx.G
	rank := idx.Ord.Rank
	n := g.N()

	D := make([]uint32, n)
	C := make([]uint64, n)
	updated := make([]bool, n)
	for v := 0; v < n; v++ {
		D[v] = label.NoDist
	}
	D[hub] = 0
	C[hub] = 1
	queue := []int32{int32(hub)}

	for qi := 0; qi < len(queue); qi++ {
		v := int(queue[qi])

		if v != hub {
			if affFlag[rank[v]] == 0 {
				if queryDistanceOnly(idx, hub, v) < D[v] {
					continue
				}
			} else {
				dOver, _, dHub, cHub, pos := querySearch(idx, hub, v)
				if D[v] > dOver {
					continue
				}
				newCount := clampCount(C[v])
				lv := idx.Labels(v)
				if dHub == label.NoDist {
					idx.SetLabels(v, lv.Insert(pos, label.Entry{Hub: uint32(hub), Dist: D[v], Cnt: newCount}))
					insert++
					updated[v] = true
				} else if dHub != D[v] || cHub != newCount {
					lv[pos] = label.Entry{Hub: uint32(hub), Dist: D[v], Cnt: newCount}
					idx.SetLabels(v, lv)
					updated[v] = true
					if dHub == D[v] {
						renewC++
					} else {
						renewD++
					}
				} else {
					updated[v] = true
				}
			}
		}

		for _, wi := range g.Neighbors(v) {
			w := int(wi)
			if rank[w] <= rank[hub] {
				continue
			}
			switch {
			case D[w] == label.NoDist:
				D[w] = D[v] + 1
				C[w] = C[v]
				queue = append(queue, int32(w))
			case D[w] == D[v]+1:
				C[w] += C[v]
			}
		}
	}

	if isHub {
		for _, r := range affs {
			if r <= rank[hub] {
				continue
			}
			v := int(idx.Ord.Order[r])
			if updated[v] {
				continue
			}
			if removeHubEntry(idx, v, hub) {
				remove++
				updated[v] = true
			}
		}
		for _, v32 := range recs {
			v := int(v32)
			if rank[v] <= rank[hub] {
				continue
			}
			if updated[v] {
				continue
			}
			if removeHubEntry(idx, v, hub) {
				remove++
				updated[v] = true
			}
		}
	}
	return renewC, renewD, insert, remove
}

func removeHubEntry(idx *plindex.Index, v, hub int) bool {
	lv := idx.Labels(v)
	pos, found := lv.SearchPos(idx.Ord.Rank, uint32(hub))
	if !found {
		return false
	}
	idx.SetLabels(v, lv.RemoveAt(pos))
	return true
}

func clampCount(c uint64) uint32 {
	if c > uint64(label.UBC) {
		return label.UBC
	}
	return uint32(c)
}

// querySearch mirrors Query_Search: a merge-join between hub's and v's
// label lists that stops the instant it encounters hub's own entry in v's
// list, returning the best distance/count found via any other shared hub up
// to that point (dOver, cOver) alongside hub's current entry for v, if any
// (dHub, cHub, pos); pos is always a valid SearchPos-style position in v's
// list for hub, whether or not dHub is label.NoDist.
func querySearch(idx *plindex.Index, hub, v int) (dOver uint32, cOver uint64, dHub uint32, cHub uint32, pos int) {
	rank := idx.Ord.Rank
	lh := idx.Labels(hub)
	lv := idx.Labels(v)
	dOver = label.NoDist
	dHub = label.NoDist

	p1, p2 := 0, 0
	for p1 < len(lh) && p2 < len(lv) {
		w1, w2 := lh[p1].Hub, lv[p2].Hub
		if w2 == uint32(hub) {
			dHub = lv[p2].Dist
			cHub = lv[p2].Cnt
			pos = p2
			return dOver, cOver, dHub, cHub, pos
		}
		switch {
		case rank[w1] < rank[w2]:
			p1++
		case rank[w1] > rank[w2]:
			p2++
		default:
			d := lh[p1].Dist + lv[p2].Dist
			switch {
			case d < dOver:
				dOver = d
				cOver = uint64(lh[p1].Cnt) * uint64(lv[p2].Cnt)
			case d == dOver:
				cOver += uint64(lh[p1].Cnt) * uint64(lv[p2].Cnt)
			}
			p1++
			p2++
		}
	}
	pos = p2
	return dOver, cOver, dHub, cHub, pos
}

// queryDistanceOnly mirrors Query_Distance: a plain merge-join distance
// query, used when the affected-discovery pass has already proved v is
// untouched by this hub's change (so only a cheap confirmation is needed).
func queryDistanceOnly(idx *plindex.Index, hub, v int) uint32 {
	rank := idx.Ord.Rank
	lh := idx.Labels(hub)
	lv := idx.Labels(v)
	best := label.NoDist

	p1, p2 := 0, 0
	for p1 < len(lh) && p2 < len(lv) {
		w1, w2 := lh[p1].Hub, lv[p2].Hub
		switch {
		case rank[w1] < rank[w2]:
			p1++
		case rank[w1] > rank[w2]:
			p2++
		default:
			if d := lh[p1].Dist + lv[p2].Dist; d < best {
				best = d
			}
			p1++
			p2++
		}
	}
	return best
}
