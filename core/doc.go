// SPDX-License-Identifier: MIT

// Package core provides the weighted undirected Graph that every sampler in
// antwalk reads from.
//
// The Graph G = (V,E) keeps two tables:
//
//   - adjacency[u] = set of neighbors of u
//   - weights[Edge{u,v}] = weight, stored under both orderings
//
// so that neighbor membership and weight lookups are O(1) in either direction.
//
// Invariants (hold after every exported call):
//
//	weight(u,v) == weight(v,u)
//	u ∈ neighbors(v) ⟺ v ∈ neighbors(u)
//	NumberOfEdges() == len(weights)/2
//
// Iteration:
//
//	Nodes()        : every known node once, unordered
//	SortedNodes()  : every known node once, ascending
//	Edges()        : every undirected edge once (emitted as U < V)
//	DirectedEdges(): both orientations of every edge
//
// Errors:
//
//	ErrLookup           : class: a node or edge was assumed present but is not
//	  ErrNodeNotFound
//	  ErrEdgeNotFound
//	  ErrEdgeSetMismatch
//	ErrInvalidArgument  : class: degenerate or malformed input
//	  ErrBadWeight
//	  ErrLoopNotAllowed
//
// Concurrency:
//
// Graph has no internal locks. Any number of goroutines may read a Graph as
// long as no goroutine mutates it. AddEdge, RemoveEdge and SetEdgeWeight must
// be serialized by the caller and never overlap a walk phase.
package core
