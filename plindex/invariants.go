package plindex

import (
	"errors"
	"fmt"

	"github.com/graphlab-go/spc2h/label"
)

// ErrInvariant wraps any violation detected by ValidateInvariants.
var ErrInvariant = errors.New("plindex: invariant violated")

// ValidateInvariants checks, for every vertex v, that:
//   - I4: cL(v) (and dL(v), if still split) is sorted by hub rank.
//   - I5: every label entry's hub has rank <= rank(v) (hubs are only ever
//     earlier-priority vertices, spec §3 I5).
//   - I3: v carries a self label (v, 0, 1) somewhere in its list.
//
// It is intended for property tests (P1), not production call paths.
func ValidateInvariants(idx *Index) error {
	rank := idx.Ord.Rank
	n := idx.G.N()

	for v := 0; v < n; v++ {
		if idx.dL != nil {
			if err := checkList(rank, v, idx.dL[v]); err != nil {
				return err
			}
		}
		if err := checkList(rank, v, idx.cL[v]); err != nil {
			return err
		}

		self := findSelf(idx, v)
		if self == nil {
			return fmt.Errorf("%w: vertex %d has no self label", ErrInvariant, v)
		}
		if self.Dist != 0 || self.Cnt != 1 {
			return fmt.Errorf("%w: vertex %d self label is (%d,%d), want (0,1)", ErrInvariant, v, self.Dist, self.Cnt)
		}
	}
	return nil
}

func checkList(rank []int32, v int, l label.List) error {
	if !label.IsSorted(rank, l) {
		return fmt.Errorf("%w: label list of vertex %d is not rank-sorted", ErrInvariant, v)
	}
	for _, e := range l {
		if rank[e.Hub] > rank[v] {
			return fmt.Errorf("%w: vertex %d carries hub %d of lower priority", ErrInvariant, v, e.Hub)
		}
	}
	return nil
}

func findSelf(idx *Index, v int) *label.Entry {
	if idx.dL != nil {
		for i, e := range idx.dL[v] {
			if e.Hub == uint32(v) {
				return &idx.dL[v][i]
			}
		}
	}
	for i, e := range idx.cL[v] {
		if e.Hub == uint32(v) {
			return &idx.cL[v][i]
		}
	}
	return nil
}
