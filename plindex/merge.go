package plindex

import "github.com/graphlab-go/spc2h/label"

// Merge folds dL into cL for every vertex, producing the single
// rank-sorted label list the query and update packages operate on, then
// discards dL. It is idempotent (P4): once dL is nil, Merge is a no-op.
func (idx *Index) Merge() {
	if idx.dL == nil {
		return
	}
	rank := idx.Ord.Rank
	for v := range idx.cL {
		idx.cL[v] = label.Merge(rank, idx.dL[v], idx.cL[v])
	}
	idx.dL = nil
}
