// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph and GraphOption declarations, the sentinel error
//       taxonomy, and NewGraph.
// Determinism:
//   - Edge is a directed key; every undirected edge is stored under both
//     orientations.
// Concurrency:
//   - Graph has no internal locking; see methods_edges.go.

// Package core declares Node, Edge, Graph, GraphOption, the sentinel error
// taxonomy, and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
)

// Error classes. Every sentinel below wraps exactly one class, so callers can
// branch either on the precise failure or on its class with errors.Is.
var (
	// ErrLookup is the class of failures where a node or edge was assumed to
	// be present in an internal table but is not.
	ErrLookup = errors.New("lookup failed")

	// ErrInvalidArgument is the class of failures caused by malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an unknown node.
	ErrNodeNotFound = fmt.Errorf("core: node not found: %w", ErrLookup)

	// ErrEdgeNotFound indicates an operation referenced an absent edge.
	ErrEdgeNotFound = fmt.Errorf("core: edge not found: %w", ErrLookup)

	// ErrEdgeSetMismatch indicates two graphs expected to share an edge set do not.
	ErrEdgeSetMismatch = fmt.Errorf("core: edge sets differ: %w", ErrLookup)

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = fmt.Errorf("core: bad edge weight: %w", ErrInvalidArgument)

	// ErrLoopNotAllowed indicates an attempt to add a self-loop.
	ErrLoopNotAllowed = fmt.Errorf("core: self-loop not allowed: %w", ErrInvalidArgument)
)

// Node is an opaque integer vertex identifier.
type Node int

// Edge is a directed key (U→V). An undirected edge of a Graph is stored under
// both Edge{U,V} and Edge{V,U}.
type Edge struct {
	U Node
	V Node
}

// Reverse returns the opposite orientation of e.
func (e Edge) Reverse() Edge { return Edge{U: e.V, V: e.U} }

// String renders e as "U-V".
func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.U, e.V) }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the internal tables for roughly n nodes.
// Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is a weighted undirected graph with O(1) bidirectional edge lookup.
//
// adjacency[u] holds the neighbor set of u; weights holds every edge under
// both orientations. A node stays known (with an empty neighbor set) after its
// last edge is removed.
type Graph struct {
	capacity int

	adjacency map[Node]map[Node]struct{} // node → neighbor set
	weights   map[Edge]float64           // directed key → weight (mirrored)
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(capacity) with WithCapacity.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make(map[Node]map[Node]struct{}, g.capacity)
	g.weights = make(map[Edge]float64, 2*g.capacity)

	return g
}
