// Package graph provides the dense, vertex-indexed graph store the 2-hop
// labeling index is built and maintained over: an undirected, simple graph
// on vertices [0, n), represented as per-vertex ascending adjacency slices.
//
// This mirrors the thread-safety posture of the teacher's core.Graph (an
// RWMutex guarding mutation, sentinel errors for every rejected operation;
// New takes only n, with no construction-time options) but trades
// core.Graph's string-keyed maps for int32 slices: the spec's target of
// microsecond queries over millions of edges rules out a map-of-maps
// adjacency representation.
package graph

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrTooFewVertices indicates n < 2, which the spec requires (§3).
	ErrTooFewVertices = errors.New("graph: n must be >= 2")

	// ErrVertexRange indicates a vertex id outside [0, n).
	ErrVertexRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop indicates an edge (v, v) was rejected; self-loops are
	// never permitted (§3).
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrDuplicateEdge indicates AddEdge was called for an edge that
	// already exists; the spec's Inc_SPC precondition requires callers
	// to check HasEdge first, but AddEdge still refuses silently
	// duplicating adjacency entries.
	ErrDuplicateEdge = errors.New("graph: edge already exists")

	// ErrMissingEdge indicates RemoveEdge was called for an edge that
	// does not exist.
	ErrMissingEdge = errors.New("graph: edge does not exist")
)
