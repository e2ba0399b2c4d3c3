// Package spc2h is a 2-hop pruned-landmark-labeling index over undirected
// graphs, extended to answer not just shortest-path distance but the exact
// number of distinct shortest paths between any two vertices.
//
// A query costs O(|L(s)| + |L(t)|) — a merge-join over two precomputed
// label lists — rather than a fresh graph traversal. The index tolerates
// graph churn: an edge insertion or deletion is patched incrementally,
// without a full rebuild.
//
// Package layout:
//
//	graph/    — the undirected int-vertex graph the whole system builds on
//	label/    — the (hub, distance, count) label entry and sorted label lists
//	order/    — vertex ordering (hub priority) the labeling is built against
//	plindex/  — pruned BFS index construction and dL/cL -> cL merge
//	query/    — the merge-join query engine over a merged index
//	update/   — incremental (edge insert) and decremental (edge delete) maintenance
//	oracle/   — brute-force bidirectional BFS, for testing query/update against
//	spcio/    — text and binary file formats for the cmd/ tools
//	builder/  — deterministic graph fixtures (cycles, grids, random graphs)
//	cmd/      — spcbuild, spcquery, spcupdate command-line tools
//
// See SPEC_FULL.md for the full design and DESIGN.md for where each package
// is grounded.
package spc2h
