package label

// List is a sequence of Entry values sorted strictly ascending by rank(Hub).
// The zero value is an empty, usable list.
type List []Entry

// SearchPos returns the index of the first Entry in l whose hub has rank
// greater than or equal to rank[hub]. If l already contains an entry for hub,
// that entry's index is returned; otherwise the returned index is the
// correct insertion point to keep l sorted. Both cases are reported via
// found. A returned pos equal to len(l) means "insert at the end" (§9 OQ3).
func (l List) SearchPos(rank []int32, hub uint32) (pos int, found bool) {
	target := rank[hub]
	lo, hi := 0, len(l)
	for lo < hi {
		mid := (lo + hi) / 2
		if rank[l[mid].Hub] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(l) && l[lo].Hub == hub {
		return lo, true
	}
	return lo, false
}

// Insert returns l with e inserted at pos, shifting later entries right.
// The caller is responsible for choosing pos (normally via SearchPos) so
// that the rank-ascending invariant is preserved.
func (l List) Insert(pos int, e Entry) List {
	l = append(l, Entry{})
	copy(l[pos+1:], l[pos:])
	l[pos] = e
	return l
}

// RemoveAt returns l with the entry at pos removed.
func (l List) RemoveAt(pos int) List {
	return append(l[:pos], l[pos+1:]...)
}

// Merge merges two rank-ascending lists into one rank-ascending list. When
// the same hub appears in both inputs (only possible while dL/cL are still
// split during index construction — a merged cL never does), both entries
// are kept and the b-side entry comes first, per original_source
// IndexMerge's tie-break ("else" branch takes b whenever a's rank is not
// strictly smaller).
func Merge(rank []int32, a, b List) List {
	out := make(List, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if rank[a[i].Hub] < rank[b[j].Hub] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// JointDistance returns the minimum, over entries e in lv, of
// distByHub[e.Hub] + e.Dist, where distByHub[h] is expected to hold the
// distance from some fixed root to h (NoDist if unknown). It returns NoDist
// if lv shares no hub with a known distance. Used by the builder to decide
// pruning and by the incremental updater (update.Insert) to recompute a
// vertex's current distance to a hub via its existing labels.
func JointDistance(distByHub []uint32, lv List) uint32 {
	best := NoDist
	for _, e := range lv {
		d := distByHub[e.Hub]
		if d == NoDist {
			continue
		}
		if s := d + e.Dist; s < best {
			best = s
		}
	}
	return best
}

// IsSorted reports whether l is strictly ascending by rank(Hub), per
// invariant I4. Used by plindex's invariant checks.
func IsSorted(rank []int32, l List) bool {
	for i := 1; i < len(l); i++ {
		if rank[l[i].Hub] <= rank[l[i-1].Hub] {
			return false
		}
	}
	return true
}
