// Package order computes a total vertex order for the 2-hop labeling index
// and its inverse, rank. Lower rank means higher priority as a hub: rank 0 is
// the most "central" vertex and is visited first during index construction.
//
// The order/rank pair is frozen for the lifetime of an index (spec §3,
// "Lifecycle"): neither incremental insertion nor decremental deletion
// reorders vertices. Dispatch over the ordering scheme is a plain tagged
// enum switch rather than virtual dispatch or a method-pointer table,
// per spec §9 ("Member-function-pointer maps").
package order

import (
	"errors"
	"sort"

	"github.com/graphlab-go/spc2h/graph"
)

// ErrInvalidScheme is returned when Compute is asked for the Invalid scheme,
// which exists only as a fatal placeholder (spec §4.2).
var ErrInvalidScheme = errors.New("order: invalid ordering scheme")

// Scheme identifies a vertex-ordering strategy.
type Scheme int

const (
	// Degree orders vertices by descending degree, ties broken by
	// ascending vertex id (stable).
	Degree Scheme = iota

	// Invalid is a placeholder scheme that always fails; selecting it is
	// a fatal configuration error, not a silently-degraded default.
	Invalid
)

// Order holds a permutation of [0, n) and its inverse.
//
// Order[i] is the vertex placed at position i (priority i); Rank[v] is the
// position of vertex v. Both slices have length n. Order is immutable once
// constructed; callers must not mutate the returned slices.
type Order struct {
	Order []int32
	Rank  []int32
}

// Compute derives an Order for g using the given scheme. This is the one
// seam through which future ordering schemes (e.g. betweenness) would be
// added: a pure function (Scheme, *graph.Graph) -> Order.
func Compute(g *graph.Graph, scheme Scheme) (Order, error) {
	n := g.N()
	switch scheme {
	case Degree:
		return computeDegree(g, n), nil
	default:
		return Order{}, ErrInvalidScheme
	}
}

// computeDegree implements the Degree scheme (spec §4.2).
func computeDegree(g *graph.Graph, n int) Order {
	perm := make([]int32, n)
	for v := 0; v < n; v++ {
		perm[v] = int32(v)
	}
	sort.SliceStable(perm, func(i, j int) bool {
		di, dj := g.Degree(int(perm[i])), g.Degree(int(perm[j]))
		if di != dj {
			return di > dj
		}
		return perm[i] < perm[j]
	})
	rank := make([]int32, n)
	for i, v := range perm {
		rank[v] = int32(i)
	}
	return Order{Order: perm, Rank: rank}
}

// FromArrays wraps a previously computed (order, rank) pair, e.g. one read
// back from an index file, without recomputing it. The caller is responsible
// for the two slices being a consistent inverse pair.
func FromArrays(o, rank []int32) Order {
	return Order{Order: o, Rank: rank}
}

// FromOrder rebuilds an Order from just the order permutation, inverting it
// to recover rank. Used by package spcio when reading an index file back
// from disk: only the order array is persisted in the trailer (spec §6).
func FromOrder(o []int32) Order {
	rank := make([]int32, len(o))
	for i, v := range o {
		rank[v] = int32(i)
	}
	return Order{Order: o, Rank: rank}
}
