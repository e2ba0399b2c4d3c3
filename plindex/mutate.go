package plindex

import (
	"github.com/graphlab-go/spc2h/graph"
	"github.com/graphlab-go/spc2h/label"
	"github.com/graphlab-go/spc2h/order"
)

// SetLabels replaces v's label list in place. It is intended for use by
// package update, which patches labels after an edge insertion or deletion
// rather than rebuilding the whole index.
func (idx *Index) SetLabels(v int, l label.List) {
	idx.cL[v] = l
}

// FromParts reassembles an Index from its constituent pieces, bypassing
// Build. Used by package spcio when reading an index back from disk: dL is
// nil for a merged-shape file, non-nil (and parallel to cL) for a
// split-shape one.
func FromParts(g *graph.Graph, ord order.Order, dL, cL []label.List) *Index {
	return &Index{G: g, Ord: ord, dL: dL, cL: cL}
}

// Parts exposes v's raw dL/cL lists for serialization. dL is nil once the
// index has been merged.
func (idx *Index) Parts(v int) (dL, cL label.List) {
	if idx.dL != nil {
		dL = idx.dL[v]
	}
	return dL, idx.cL[v]
}
