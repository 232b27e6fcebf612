// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Lazy iteration over nodes and edges.
// Determinism:
//   - Map order: no ordering guarantee. Use SortedNodes or slices.SortedFunc
//     when a stable order matters.
// Concurrency:
//   - Iterators read the live tables. Do not mutate the graph while ranging.

package core

import "iter"

// Nodes yields every known node exactly once.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for u := range g.adjacency {
			if !yield(u) {
				return
			}
		}
	}
}

// Edges yields every undirected edge exactly once, oriented so that U < V.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for e := range g.weights {
			if e.U >= e.V {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// DirectedEdges yields both orientations of every edge, 2×NumberOfEdges keys.
func (g *Graph) DirectedEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for e := range g.weights {
			if !yield(e) {
				return
			}
		}
	}
}

// WeightedEdges yields every undirected edge once (U < V) with its weight.
func (g *Graph) WeightedEdges() iter.Seq2[Edge, float64] {
	return func(yield func(Edge, float64) bool) {
		for e, w := range g.weights {
			if e.U >= e.V {
				continue
			}
			if !yield(e, w) {
				return
			}
		}
	}
}

// CompareEdges orders edges by (U, V) ascending; suitable for slices.SortFunc.
func CompareEdges(a, b Edge) int {
	switch {
	case a.U < b.U:
		return -1
	case a.U > b.U:
		return 1
	case a.V < b.V:
		return -1
	case a.V > b.V:
		return 1
	}

	return 0
}
