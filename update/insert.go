package update

import (
	"github.com/graphlab-go/spc2h/label"
	"github.com/graphlab-go/spc2h/plindex"
)

// InsertStats reports how many label entries an Insert call touched.
type InsertStats struct {
	RenewC int // count-only update to an existing (hub, v) label
	RenewD int // distance (and count) update to an existing (hub, v) label
	New    int // brand-new (hub, v) label created
}

// Insert adds the edge (a, b) to idx's graph and patches labels for every
// vertex whose shortest-path count to a hub changed as a result, without a
// full rebuild.
//
// Grounded on Inc_SPC: the new edge can only ever shorten distances, and
// only through the two new (hub, dist+1) candidate distances it directly
// creates at a and b. For every hub in a's label list, if that hub has
// higher priority than b, a BFS from b patches b's side of the graph (and
// vice versa for hubs in b's list feeding into a's side).
func Insert(idx *plindex.Index, a, b int) (InsertStats, error) {
	if a == b {
		return InsertStats{}, ErrSameVertex
	}
	if !idx.Merged() {
		return InsertStats{}, ErrNotMerged
	}

	if err := idx.G.AddEdge(a, b); err != nil {
		return InsertStats{}, err
	}

	rank := idx.Ord.Rank
	la, lb := idx.Labels(a), idx.Labels(b)

	var stats InsertStats
	i, j := 0, 0
	for i < len(la) || j < len(lb) {
		switch {
		case j == len(lb) || (i < len(la) && rank[la[i].Hub] < rank[lb[j].Hub]):
			e := la[i]
			if rank[e.Hub] < rank[b] {
				incBFS(idx, int(e.Hub), b, e.Dist+1, uint64(e.Cnt), &stats)
			}
			i++
		case i == len(la) || rank[lb[j].Hub] < rank[la[i].Hub]:
			e := lb[j]
			if rank[e.Hub] < rank[a] {
				incBFS(idx, int(e.Hub), a, e.Dist+1, uint64(e.Cnt), &stats)
			}
			j++
		default:
			ea, eb := la[i], lb[j]
			if rank[ea.Hub] < rank[b] {
				incBFS(idx, int(ea.Hub), b, ea.Dist+1, uint64(ea.Cnt), &stats)
			}
			if rank[eb.Hub] < rank[a] {
				incBFS(idx, int(eb.Hub), a, eb.Dist+1, uint64(eb.Cnt), &stats)
			}
			i++
			j++
		}
	}

	return stats, nil
}

// incBFS patches hub's labels over every vertex reachable, via the new
// candidate (hub, start, d, c), at a distance no worse than what hub
// already offers. Grounded on Inc_BFS.
func incBFS(idx *plindex.Index, hub, start int, d uint32, c uint64, stats *InsertStats) {
	g := idx.G
	rank := idx.Ord.Rank
	n := g.N()

	D := make([]uint32, n)
	C := make([]uint64, n)
	distByHub := make([]uint32, n)
	for v := 0; v < n; v++ {
		D[v] = label.NoDist
		distByHub[v] = label.NoDist
	}
	for _, e := range idx.Labels(hub) {
		distByHub[e.Hub] = e.Dist
	}

	D[start] = d
	C[start] = c
	queue := []int32{int32(start)}

	for qi := 0; qi < len(queue); qi++ {
		v := int(queue[qi])
		lv := idx.Labels(v)

		prev := label.JointDistance(distByHub, lv)
		if D[v] > prev {
			continue
		}
		pos, found := lv.SearchPos(rank, uint32(hub))

		cc := C[v]
		if found && lv[pos].Dist == D[v] {
			cc += uint64(lv[pos].Cnt)
		}
		clampedC := uint32(cc)
		if cc > uint64(label.UBC) {
			clampedC = label.UBC
		}

		if found {
			if lv[pos].Dist == D[v] {
				stats.RenewC++
			} else {
				stats.RenewD++
			}
			lv[pos] = label.Entry{Hub: uint32(hub), Dist: D[v], Cnt: clampedC}
			idx.SetLabels(v, lv)
		} else {
			idx.SetLabels(v, lv.Insert(pos, label.Entry{Hub: uint32(hub), Dist: D[v], Cnt: clampedC}))
			stats.New++
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
}
