package query

import "github.com/graphlab-go/spc2h/plindex"

// Count returns the shortest-path distance and count between s and t using
// idx's merged label lists. It returns (0, 0, nil) when s and t are
// disconnected, and ErrSelfQuery when s == t.
func Count(idx *plindex.Index, s, t int) (uint32, uint64, error) {
	if s == t {
		return 0, 0, ErrSelfQuery
	}
	if !idx.Merged() {
		return 0, 0, ErrNotMerged
	}

	rank := idx.Ord.Rank
	ls := idx.Labels(s)
	lt := idx.Labels(t)

	best := noPath
	var count uint64

	i, j := 0, 0
	for i < len(ls) && j < len(lt) {
		hi, hj := ls[i].Hub, lt[j].Hub
		ri, rj := rank[hi], rank[hj]

		switch {
		case ri < rj:
			i++
		case ri > rj:
			j++
		default:
			d := ls[i].Dist + lt[j].Dist
			switch {
			case d < best:
				best = d
				count = uint64(ls[i].Cnt) * uint64(lt[j].Cnt)
			case d == best:
				count += uint64(ls[i].Cnt) * uint64(lt[j].Cnt)
			}
			i++
			j++
		}
	}

	if best == noPath {
		return 0, 0, nil
	}
	return best, count, nil
}
