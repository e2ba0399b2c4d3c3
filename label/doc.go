// Package label defines the fixed-width label entry used by the 2-hop
// labeling index, plus sorted-list primitives shared by the builder, the
// query engine, and the incremental/decremental updaters.
//
// An Entry records, from the perspective of some owner vertex v, "one can
// reach Hub via Dist edges along Cnt distinct shortest paths among those
// passing through Hub". A List is a sequence of Entry values sorted strictly
// ascending by the rank of Hub (lower rank = more central hub); see the
// order package for rank semantics.
//
// Counts saturate at UBC rather than overflow; distances are rejected by
// New above DMax. Both bounds are generous enough that real shortest-path
// distances and path counts on graphs with millions of edges never approach
// them except under pathological fan-out, in which case saturation (not
// overflow) is the documented, correct behavior.
package label

import "errors"

// ErrBadDistance indicates a distance value exceeding DMax was supplied to New.
var ErrBadDistance = errors.New("label: distance exceeds DMax")

// ErrBadCount indicates a count value exceeding UBC was supplied to New.
var ErrBadCount = errors.New("label: count exceeds UBC")

const (
	// UBC is the saturating upper bound for the path-count field.
	UBC uint32 = 1<<32 - 1

	// DMax is the largest distance value an Entry may carry.
	DMax uint32 = 1<<32 - 2

	// NoDist marks an unreached vertex in scratch distance arrays used by
	// the builder and updaters; it is not a valid Entry.Dist value.
	NoDist uint32 = 1<<32 - 1
)

// Entry is a fixed-width (hub, distance, count) label record.
//
// Entry intentionally uses three discrete uint32 fields rather than a
// bit-packed word: at 12 bytes it is still cache-friendly for the
// merge-join access pattern in package query, and keeping the fields
// separate avoids shift/mask noise throughout the builder and updater.
type Entry struct {
	Hub  uint32
	Dist uint32
	Cnt  uint32
}

// New constructs an Entry, rejecting distances or counts that exceed the
// packed field's documented bounds. Callers that want saturating behavior
// instead of rejection should call Saturate on the count before calling New.
func New(hub, dist, cnt uint32) (Entry, error) {
	if dist > DMax {
		return Entry{}, ErrBadDistance
	}
	if cnt > UBC {
		return Entry{}, ErrBadCount
	}
	return Entry{Hub: hub, Dist: dist, Cnt: cnt}, nil
}

// Saturate adds a and b, clamping the result at UBC instead of overflowing.
// The returned bool reports whether clamping occurred.
func Saturate(a, b uint32) (uint32, bool) {
	if a > UBC-b {
		return UBC, true
	}
	return a + b, false
}

// SaturateMul multiplies a and b (widened to uint64 to detect overflow),
// clamping at UBC.
func SaturateMul(a, b uint32) (uint64, bool) {
	prod := uint64(a) * uint64(b)
	if prod > uint64(UBC) {
		return uint64(UBC), true
	}
	return prod, false
}
