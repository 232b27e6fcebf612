// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and edge-set comparison.
// Concurrency:
//   - Reads the source only; the result is a fresh, independent graph.

package core

import "fmt"

// Clone returns a deep copy of the graph: nodes, neighbor sets and weights.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph(WithCapacity(len(g.adjacency)))
	for u, nbrs := range g.adjacency {
		cp := make(map[Node]struct{}, len(nbrs))
		for v := range nbrs {
			cp[v] = struct{}{}
		}
		clone.adjacency[u] = cp
	}
	for e, w := range g.weights {
		clone.weights[e] = w
	}

	return clone
}

// CloneWithWeight returns a structural copy of g with every edge set to w.
// Complexity: O(V + E).
func (g *Graph) CloneWithWeight(w float64) (*Graph, error) {
	if !validWeight(w) {
		return nil, ErrBadWeight
	}
	clone := g.Clone()
	for e := range clone.weights {
		clone.weights[e] = w
	}

	return clone, nil
}

// SameEdgeSet reports whether g and other hold exactly the same directed
// edge keys. Weights are not compared.
//
// Errors: ErrEdgeSetMismatch, wrapped with the first differing edge.
// Complexity: O(E).
func (g *Graph) SameEdgeSet(other *Graph) error {
	if len(g.weights) != len(other.weights) {
		return fmt.Errorf("SameEdgeSet: %d vs %d directed keys: %w",
			len(g.weights), len(other.weights), ErrEdgeSetMismatch)
	}
	for e := range g.weights {
		if _, ok := other.weights[e]; !ok {
			return fmt.Errorf("SameEdgeSet: edge %s: %w", e, ErrEdgeSetMismatch)
		}
	}

	return nil
}
