// SPDX-License-Identifier: MIT
//
// File: uniform.go
// Role: First-order walker: next node drawn from the current node's table.
// Determinism:
//   - Node list and candidate order are ascending, so a fixed rng stream
//     yields a fixed walk regardless of map iteration order.

package walker

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/antwalk/core"
)

// UniformWalker is a first-order random walker.
type UniformWalker struct {
	opts  options
	nodes []core.Node

	// dists[u] == nil marks a known dead end.
	dists map[core.Node]*Distribution
}

// NewUniformWalker returns an empty walker; call InitDistributionsFromGraph
// or SetNodeList/SetTransitionWeights before walking.
func NewUniformWalker(opts ...Option) *UniformWalker {
	return &UniformWalker{
		opts:  newOptions(opts...),
		dists: make(map[core.Node]*Distribution),
	}
}

// NodeList returns the start nodes (ascending after InitDistributionsFromGraph).
func (w *UniformWalker) NodeList() []core.Node { return w.nodes }

// SetNodeList replaces the start node list without touching distributions.
func (w *UniformWalker) SetNodeList(nodes []core.Node) {
	w.nodes = append(w.nodes[:0:0], nodes...)
}

// SetTransitionWeights installs the distribution of node over neighbors.
// Errors: ErrDegenerateDistribution.
func (w *UniformWalker) SetTransitionWeights(node core.Node, neighbors []core.Node, weights []float64) error {
	d, err := NewDistribution(neighbors, weights)
	if err != nil {
		return fmt.Errorf("SetTransitionWeights: node %d: %w", node, err)
	}
	w.dists[node] = d

	return nil
}

// InitDistributionsFromGraph rebuilds the node list and one distribution per
// node over its neighbors, weighted by edge weight when weighted is true and
// uniform otherwise. Nodes without neighbors, or whose neighbor weights sum
// to zero, are recorded as dead ends.
//
// Errors: lookups against g (only on an inconsistent graph).
// Complexity: O(V + E log Δ).
func (w *UniformWalker) InitDistributionsFromGraph(g *core.Graph, weighted bool) error {
	w.nodes = g.SortedNodes()
	w.dists = make(map[core.Node]*Distribution, len(w.nodes))

	deadEnds := 0
	var weights []float64
	for _, u := range w.nodes {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("InitDistributionsFromGraph: %w", err)
		}
		if len(nbrs) == 0 {
			w.dists[u] = nil
			deadEnds++
			continue
		}

		var d *Distribution
		if weighted {
			weights = weights[:0]
			for _, v := range nbrs {
				x, err := g.Weight(u, v)
				if err != nil {
					return fmt.Errorf("InitDistributionsFromGraph: %d-%d: %w", u, v, err)
				}
				weights = append(weights, x)
			}
			d, err = NewDistribution(nbrs, weights)
		} else {
			d, err = NewUniformDistribution(nbrs)
		}
		if err != nil {
			// All-zero rows: nothing to draw from.
			w.dists[u] = nil
			deadEnds++
			continue
		}
		w.dists[u] = d
	}

	if deadEnds > 0 {
		w.opts.logger.Debug("uniform walker dead ends",
			"dead_ends", deadEnds,
			"nodes", len(w.nodes),
			"policy", w.opts.deadEnd.String(),
		)
	}

	return nil
}

// DeadEnds returns the known nodes without a distribution, ascending.
func (w *UniformWalker) DeadEnds() []core.Node {
	var out []core.Node
	for _, u := range w.nodes {
		if d, ok := w.dists[u]; ok && d == nil {
			out = append(out, u)
		}
	}

	return out
}

// SimulateWalk performs length first-order steps from start.
//
// Errors: ErrInvalidWalkParams for length < 0; ErrNoDistribution for an
// unknown node, or for a dead end under DeadEndFail.
func (w *UniformWalker) SimulateWalk(rng *rand.Rand, start core.Node, length int) ([]core.Node, error) {
	if length < 0 {
		return nil, ErrInvalidWalkParams
	}

	seq := make([]core.Node, 0, length+1)
	seq = append(seq, start)
	if _, known := w.dists[start]; !known {
		return deadEnd(DeadEndFail, start, false, nil)
	}

	cur := start
	for i := 0; i < length; i++ {
		d, known := w.dists[cur]
		if d == nil {
			return deadEnd(w.opts.deadEnd, cur, known, seq)
		}
		cur = d.Draw(rng)
		seq = append(seq, cur)
	}

	return seq, nil
}
