// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node registration and queries: AddNode/HasNode/Neighbors/Degree/
//       NumberOfNodes/SortedNodes.
// Determinism:
//   - Neighbors() and SortedNodes() return ascending slices.

package core

import "slices"

// AddNode registers u without edges. Known nodes are left unchanged.
// An isolated node is a dead end for walkers.
func (g *Graph) AddNode(u Node) {
	g.ensureNode(u)
}

// HasNode reports whether u is known to the graph.
func (g *Graph) HasNode(u Node) bool {
	_, ok := g.adjacency[u]
	return ok
}

// Neighbors returns the neighbors of u in ascending order. The slice is a
// fresh copy; callers may keep or modify it.
//
// Errors: ErrNodeNotFound if u is unknown.
// Complexity: O(d log d).
func (g *Graph) Neighbors(u Node) ([]Node, error) {
	nbrs, ok := g.adjacency[u]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]Node, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	slices.Sort(out)

	return out, nil
}

// Degree returns |neighbors(u)|.
// Errors: ErrNodeNotFound if u is unknown.
// Complexity: O(1).
func (g *Graph) Degree(u Node) (int, error) {
	nbrs, ok := g.adjacency[u]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(nbrs), nil
}

// NumberOfNodes returns the count of known nodes, including nodes whose
// edges were all removed.
func (g *Graph) NumberOfNodes() int {
	return len(g.adjacency)
}

// SortedNodes returns every known node in ascending order.
// Complexity: O(V log V).
func (g *Graph) SortedNodes() []Node {
	out := make([]Node, 0, len(g.adjacency))
	for u := range g.adjacency {
		out = append(out, u)
	}
	slices.Sort(out)

	return out
}

// ensureNode registers u with an empty neighbor set if it is unknown.
func (g *Graph) ensureNode(u Node) {
	if _, ok := g.adjacency[u]; !ok {
		g.adjacency[u] = make(map[Node]struct{})
	}
}
