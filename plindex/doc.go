// Package plindex builds and maintains the 2-hop labeling index: a pruned,
// order-constrained breadth-first traversal rooted at each vertex in turn,
// producing for every vertex a canonical label list (dL) and a
// non-canonical label list (cL) that together satisfy the 2-hop covering
// property for both distance and shortest-path count (spec §3 I1/I2).
//
// Build runs the construction phase (spec §4.3); Merge folds the canonical
// and non-canonical lists into the single sorted list the query engine and
// the incremental/decremental updaters operate on (spec §4.3 IndexMerge).
// Merge is idempotent (P4): once dL has been discarded, calling Merge again
// is a no-op.
//
// The BFS walker here follows the queue/scratch-array shape of the
// teacher's bfs.walker (a plain slice-backed FIFO, a reset list instead of
// reallocating scratch arrays per root), generalized from unweighted
// shortest-path distance to joint (distance, saturating count) pruning.
package plindex

import (
	"github.com/graphlab-go/spc2h/graph"
	"github.com/graphlab-go/spc2h/label"
	"github.com/graphlab-go/spc2h/order"
)

// infDist represents an unreached vertex in the scratch distance arrays.
const infDist = label.NoDist

// Index holds the graph, the frozen vertex order, and the label lists.
//
// dL is non-nil only between Build and the first Merge call; once merged it
// is dropped (set to nil) and cL alone is authoritative, per spec §4.3.
type Index struct {
	G   *graph.Graph
	Ord order.Order
	dL  []label.List
	cL  []label.List
}

// Stats reports construction-time counters useful for observability; it is
// deliberately returned rather than logged from within this package (no
// library package in this module imports a logger — see SPEC_FULL.md §3).
type Stats struct {
	NumCanonical    int
	NumNonCanonical int
}

// Labels returns cL(v): the full merged label list once Merge has run, or
// only the non-canonical part while the index is still split.
func (idx *Index) Labels(v int) label.List {
	return idx.cL[v]
}

// CanonicalLabels returns dL(v); nil once the index has been merged.
func (idx *Index) CanonicalLabels(v int) label.List {
	if idx.dL == nil {
		return nil
	}
	return idx.dL[v]
}

// Merged reports whether dL has been discarded (i.e. Merge has run).
func (idx *Index) Merged() bool {
	return idx.dL == nil
}
