// SPDX-License-Identifier: MIT
//
// File: scoring.go
// Role: Sequential phase of a round: reinforcement, evaporation, reweighting.
// Concurrency:
//   - Not safe for concurrent use on the same graphs. The engine calls these
//     only after walker.Walk has returned.

package aco

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/antwalk/core"
)

// Scorer rewards short segments of sampled walks.
type Scorer struct {
	// MaxStep bounds segment length, in steps; Window decides whether
	// MaxStep itself is scored.
	MaxStep int
	Scan    ScanMode
	Window  WindowBound
}

// Loops adds 1/len to every edge of seq[i..i+len] for the shortest
// len in the window with seq[i] == seq[i+len].
//
// Errors: core.ErrEdgeNotFound when a walk step is not an edge of pheromone.
func (s Scorer) Loops(seqs [][]core.Node, pheromone *core.Graph) error {
	for _, seq := range seqs {
		err := s.scan(seq, pheromone, func(i, j int) bool { return seq[i] == seq[j] })
		if err != nil {
			return fmt.Errorf("ScoreLoops: %w", err)
		}
	}

	return nil
}

// Labels adds 1/len to every edge of seq[i..i+len] for the shortest
// len in the window where seq[i+len] carries a label.
//
// Errors: core.ErrEdgeNotFound when a walk step is not an edge of pheromone.
func (s Scorer) Labels(seqs [][]core.Node, labels Labels, pheromone *core.Graph) error {
	if len(labels) == 0 {
		return nil
	}
	for _, seq := range seqs {
		err := s.scan(seq, pheromone, func(_, j int) bool { return labels.Has(seq[j]) })
		if err != nil {
			return fmt.Errorf("ScoreLabels: %w", err)
		}
	}

	return nil
}

// scan runs the shortest-match search from every offset of seq.
func (s Scorer) scan(seq []core.Node, pheromone *core.Graph, hit func(i, j int) bool) error {
	for i := 0; i < len(seq); i++ {
		for l := 1; l <= s.longest() && i+l < len(seq); l++ {
			if !hit(i, i+l) {
				continue
			}
			if err := reinforce(pheromone, seq[i:i+l+1], 1/float64(l)); err != nil {
				return err
			}
			if s.Scan == ScanDisjoint {
				i += l - 1
			}
			break
		}
	}

	return nil
}

// longest is the largest scored segment length.
func (s Scorer) longest() int {
	if s.Window == WindowInclusive {
		return s.MaxStep
	}

	return s.MaxStep - 1
}

// reinforce adds amount to every consecutive pair of path.
func reinforce(pheromone *core.Graph, path []core.Node, amount float64) error {
	for k := 1; k < len(path); k++ {
		u, v := path[k-1], path[k]
		w, err := pheromone.Weight(u, v)
		if err != nil {
			return fmt.Errorf("step %d-%d: %w", u, v, err)
		}
		if err = pheromone.SetEdgeWeight(u, v, w+amount); err != nil {
			return fmt.Errorf("step %d-%d: %w", u, v, err)
		}
	}

	return nil
}

// ScoreLoops runs loop scoring over lengths [1, maxStep) with every offset
// scored.
func ScoreLoops(seqs [][]core.Node, maxStep int, pheromone *core.Graph) error {
	return Scorer{MaxStep: maxStep}.Loops(seqs, pheromone)
}

// ScoreLabels runs label scoring over lengths [1, maxStep) with every
// offset scored.
func ScoreLabels(seqs [][]core.Node, labels Labels, maxStep int, pheromone *core.Graph) error {
	return Scorer{MaxStep: maxStep}.Labels(seqs, labels, pheromone)
}

// Evaporate sets total[e] = total[e]×(1−rate) + fresh[e] on every edge.
//
// Errors: core.ErrEdgeNotFound when fresh lacks an edge of total;
// core.ErrBadWeight when the result is negative or non-finite.
func Evaporate(total, fresh *core.Graph, rate float64) error {
	for _, e := range edgesOf(total) {
		t, err := total.EdgeWeight(e)
		if err != nil {
			return fmt.Errorf("Evaporate: %w", err)
		}
		f, err := fresh.EdgeWeight(e)
		if err != nil {
			return fmt.Errorf("Evaporate: edge %s: %w", e, err)
		}
		if err = total.SetWeight(e, t*(1-rate)+f); err != nil {
			return fmt.Errorf("Evaporate: edge %s: %w", e, err)
		}
	}

	return nil
}

// Reweight sets mixed[e] = base[e] × total[e]^alpha on every edge.
//
// Errors: core.ErrEdgeNotFound when base or total lacks an edge of mixed;
// core.ErrBadWeight when the result is negative or non-finite.
func Reweight(mixed, base, total *core.Graph, alpha float64) error {
	for _, e := range edgesOf(mixed) {
		b, err := base.EdgeWeight(e)
		if err != nil {
			return fmt.Errorf("Reweight: edge %s: %w", e, err)
		}
		t, err := total.EdgeWeight(e)
		if err != nil {
			return fmt.Errorf("Reweight: edge %s: %w", e, err)
		}
		if err = mixed.SetWeight(e, b*math.Pow(t, alpha)); err != nil {
			return fmt.Errorf("Reweight: edge %s: %w", e, err)
		}
	}

	return nil
}

// Exponentiate raises every edge weight of g to alpha in place.
//
// Errors: core.ErrBadWeight when a result is non-finite (0^alpha, alpha < 0).
func Exponentiate(g *core.Graph, alpha float64) error {
	for _, e := range edgesOf(g) {
		w, err := g.EdgeWeight(e)
		if err != nil {
			return fmt.Errorf("Exponentiate: %w", err)
		}
		if err = g.SetWeight(e, math.Pow(w, alpha)); err != nil {
			return fmt.Errorf("Exponentiate: edge %s: %w", e, err)
		}
	}

	return nil
}

// fill sets every edge of g to w.
func fill(g *core.Graph, w float64) error {
	for _, e := range edgesOf(g) {
		if err := g.SetWeight(e, w); err != nil {
			return err
		}
	}

	return nil
}

// edgesOf snapshots g's undirected edges so weights can be written while
// walking the list.
func edgesOf(g *core.Graph) []core.Edge {
	return slices.Collect(g.Edges())
}
