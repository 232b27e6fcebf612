// SPDX-License-Identifier: MIT
//
// File: biased.go
// Role: Second-order (node2vec) walker with return parameter p and in-out
//       parameter q.
// Memory:
//   - One table per directed edge: Σ_v deg(v)² entries overall.

package walker

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/antwalk/core"
)

// BiasedWalker is a second-order random walker.
type BiasedWalker struct {
	opts  options
	nodes []core.Node

	// nodeDists[u] is uniform over neighbors(u); nil marks a dead end.
	nodeDists map[core.Node]*Distribution
	edgeDists map[core.Edge]*Distribution
}

// NewBiasedWalker returns an empty walker; call InitDistributionsFromGraph
// before walking.
func NewBiasedWalker(opts ...Option) *BiasedWalker {
	return &BiasedWalker{
		opts:      newOptions(opts...),
		nodeDists: make(map[core.Node]*Distribution),
		edgeDists: make(map[core.Edge]*Distribution),
	}
}

// NodeList returns the start nodes in ascending order.
func (w *BiasedWalker) NodeList() []core.Node { return w.nodes }

// InitDistributionsFromGraph builds the first-step table of every node and
// the (previous→current) table of every directed edge.
//
// For edge u→v, each x ∈ neighbors(v) gets weight:
//
//	1/p  if x == u
//	1    if x ∈ neighbors(u)
//	1/q  otherwise
//
// Errors: ErrInvalidBias; lookups against g on an inconsistent graph.
func (w *BiasedWalker) InitDistributionsFromGraph(g *core.Graph, p, q float64) error {
	if !validBias(p) || !validBias(q) {
		return fmt.Errorf("InitDistributionsFromGraph: p=%g q=%g: %w", p, q, ErrInvalidBias)
	}

	w.nodes = g.SortedNodes()
	w.nodeDists = make(map[core.Node]*Distribution, len(w.nodes))
	w.edgeDists = make(map[core.Edge]*Distribution, 2*g.NumberOfEdges())

	nbrs := make(map[core.Node][]core.Node, len(w.nodes))
	for _, u := range w.nodes {
		nu, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("InitDistributionsFromGraph: %w", err)
		}
		nbrs[u] = nu
		if len(nu) == 0 {
			w.nodeDists[u] = nil
			continue
		}
		d, err := NewUniformDistribution(nu)
		if err != nil {
			return fmt.Errorf("InitDistributionsFromGraph: node %d: %w", u, err)
		}
		w.nodeDists[u] = d
	}

	var weights []float64
	for e := range g.DirectedEdges() {
		nv, ok := nbrs[e.V]
		if !ok {
			return fmt.Errorf("InitDistributionsFromGraph: edge %s: %w", e, core.ErrNodeNotFound)
		}
		weights = weights[:0]
		for _, x := range nv {
			switch {
			case x == e.U:
				weights = append(weights, 1/p)
			case g.HasEdge(e.U, x):
				weights = append(weights, 1)
			default:
				weights = append(weights, 1/q)
			}
		}
		d, err := NewDistribution(nv, weights)
		if err != nil {
			return fmt.Errorf("InitDistributionsFromGraph: edge %s: %w", e, err)
		}
		w.edgeDists[e] = d
	}

	return nil
}

// SimulateWalk draws the first step uniformly from start's neighbors and
// every further step from the (previous, current) table.
//
// Errors: ErrInvalidWalkParams for length < 0; ErrNoDistribution for an
// unknown start or edge, or a dead-end start under DeadEndFail.
func (w *BiasedWalker) SimulateWalk(rng *rand.Rand, start core.Node, length int) ([]core.Node, error) {
	if length < 0 {
		return nil, ErrInvalidWalkParams
	}

	seq := make([]core.Node, 0, length+1)
	seq = append(seq, start)
	first, known := w.nodeDists[start]
	if !known {
		return deadEnd(DeadEndFail, start, false, nil)
	}
	if length == 0 {
		return seq, nil
	}
	if first == nil {
		return deadEnd(w.opts.deadEnd, start, true, seq)
	}

	prev, cur := start, first.Draw(rng)
	seq = append(seq, cur)
	for i := 1; i < length; i++ {
		d, ok := w.edgeDists[core.Edge{U: prev, V: cur}]
		if !ok {
			return nil, fmt.Errorf("SimulateWalk: edge %d-%d: %w", prev, cur, ErrNoDistribution)
		}
		prev, cur = cur, d.Draw(rng)
		seq = append(seq, cur)
	}

	return seq, nil
}

func validBias(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
