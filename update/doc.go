// Package update applies edge insertions and deletions to an already-built,
// merged plindex.Index without a full rebuild.
//
// Insert (grounded on the original implementation's Inc_SPC/Inc_BFS) takes
// every hub in either endpoint's label list that outranks the other
// endpoint and, via a pruned BFS from that other endpoint, patches the
// labels of the vertices whose distance or count to the hub changed through
// the new edge.
//
// Delete (grounded on Dec_SPC/Update_hub/Fast_update/Query_Search/
// Query_Distance) is the harder direction: removing an edge can only ever
// increase distances or drop shortest paths. Two BFS passes first find, for
// each endpoint, the vertices whose shortest paths to the other endpoint
// run through the edge, and classify them as "affected" (all of those paths
// use the edge, or the vertex is a hub of both endpoints) or "receivers"
// (only some do); then Update_hub re-derives, for each affected vertex as a
// hub, the labels of the other side's affected and receiver vertices via
// its own BFS. An isolated-vertex fast path
// (Fast_update) special-cases the edge being a pendant's only edge, where
// the answer is a single self-label reset rather than a graph walk.
package update

import "errors"

// ErrSameVertex is returned by Insert/Delete when a == b.
var ErrSameVertex = errors.New("update: endpoints must differ")

// ErrNotMerged is returned when called on a split (pre-Merge) index.
var ErrNotMerged = errors.New("update: index has not been merged")
