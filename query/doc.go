// Package query answers (distance, shortest-path-count) queries against a
// merged plindex.Index in O(|L(s)| + |L(t)|) via a sorted merge-join over
// the two label lists, grounded on the original implementation's Query_SPC
// (and structurally on the merge step of label.Merge: both walk two
// rank-ordered lists with twin cursors).
package query

import "errors"

// ErrSelfQuery is returned for s == t; callers should treat that case as
// (0, 1) directly rather than calling Count.
var ErrSelfQuery = errors.New("query: s and t must differ")

// ErrNotMerged is returned when Count is called on an index that still
// has a split dL/cL (i.e. plindex.Index.Merge has not run).
var ErrNotMerged = errors.New("query: index has not been merged")

const noPath uint32 = ^uint32(0)
