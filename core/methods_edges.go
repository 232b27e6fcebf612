// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & weight queries: AddEdge/RemoveEdge/SetEdgeWeight/Weight/HasEdge.
// Determinism:
//   - Every mutation writes both orientations before returning.
// Concurrency:
//   - None internal. Callers serialize mutations and keep them out of walk phases.

package core

import "math"

// AddEdge inserts the undirected edge u-v with weight w.
//
// Steps:
//  1. Validate u != v and w (finite, ≥ 0).
//  2. Insert v into neighbors(u) and u into neighbors(v).
//  3. Set weights[{u,v}] = weights[{v,u}] = w.
//
// Re-adding an existing edge leaves the structure unchanged and overwrites
// the weight.
//
// Errors: ErrLoopNotAllowed, ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v Node, w float64) error {
	if u == v {
		return ErrLoopNotAllowed
	}
	if !validWeight(w) {
		return ErrBadWeight
	}

	g.ensureNode(u)
	g.ensureNode(v)
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.weights[Edge{U: u, V: v}] = w
	g.weights[Edge{U: v, V: u}] = w

	return nil
}

// RemoveEdge erases both orientations of u-v. Removing an absent edge is a
// no-op. Endpoints stay known with whatever neighbors remain.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v Node) {
	if nbrs, ok := g.adjacency[u]; ok {
		delete(nbrs, v)
	}
	if nbrs, ok := g.adjacency[v]; ok {
		delete(nbrs, u)
	}
	delete(g.weights, Edge{U: u, V: v})
	delete(g.weights, Edge{U: v, V: u})
}

// SetEdgeWeight overwrites the weight of the existing edge u-v in both
// orientations.
//
// Errors: ErrEdgeNotFound if the edge is absent; ErrBadWeight on invalid w.
// Complexity: O(1).
func (g *Graph) SetEdgeWeight(u, v Node, w float64) error {
	return g.SetWeight(Edge{U: u, V: v}, w)
}

// SetWeight is SetEdgeWeight keyed by an Edge.
func (g *Graph) SetWeight(e Edge, w float64) error {
	if _, ok := g.weights[e]; !ok {
		return ErrEdgeNotFound
	}
	if !validWeight(w) {
		return ErrBadWeight
	}
	g.weights[e] = w
	g.weights[e.Reverse()] = w

	return nil
}

// Weight returns the weight of u-v.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Weight(u, v Node) (float64, error) {
	return g.EdgeWeight(Edge{U: u, V: v})
}

// EdgeWeight is Weight keyed by an Edge.
func (g *Graph) EdgeWeight(e Edge) (float64, error) {
	w, ok := g.weights[e]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// HasEdge reports whether u-v exists. Symmetric by construction.
func (g *Graph) HasEdge(u, v Node) bool {
	_, ok := g.weights[Edge{U: u, V: v}]
	return ok
}

// NumberOfEdges returns the count of undirected edges.
// Complexity: O(1).
func (g *Graph) NumberOfEdges() int {
	return len(g.weights) / 2
}

// validWeight accepts finite, non-negative weights. Zero is allowed: the
// pheromone engine legitimately drives weights to zero.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1) && !math.IsNaN(w)
}
