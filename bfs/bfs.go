// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Queue-driven breadth-first search and connected components.
// Complexity: O(V + E log Δ) (neighbors are sorted per expansion).

package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/antwalk/core"
)

type queueItem struct {
	node  core.Node
	depth int
}

// search holds the mutable state of one BFS.
type search struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS explores g from start in order of increasing edge distance.
// On a hook error or cancellation the partial result is returned with the
// error.
func BFS(g *core.Graph, start core.Node, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("BFS: %w", o.err)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("BFS: node %d: %w", start, ErrStartNotFound)
	}

	n := g.NumberOfNodes()
	s := &search{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.Node, 0, n),
			Depth:  make(map[core.Node]int, n),
			Parent: make(map[core.Node]core.Node, n),
		},
	}
	s.enqueue(start, 0, start)

	return s.res, s.loop()
}

func (s *search) enqueue(u core.Node, depth int, parent core.Node) {
	s.res.Depth[u] = depth
	if u != parent {
		s.res.Parent[u] = parent
	}
	s.queue = append(s.queue, queueItem{node: u, depth: depth})
}

func (s *search) loop() error {
	for len(s.queue) > 0 {
		if err := s.ctx.Err(); err != nil {
			return err
		}

		item := s.queue[0]
		s.queue = s.queue[1:]
		s.res.Order = append(s.res.Order, item.node)
		if err := s.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("BFS: OnVisit at %d: %w", item.node, err)
		}

		next := item.depth + 1
		if s.opts.MaxDepth > 0 && next > s.opts.MaxDepth {
			continue
		}
		nbrs, err := s.graph.Neighbors(item.node)
		if err != nil {
			return fmt.Errorf("BFS: %w", err)
		}
		for _, v := range nbrs {
			if s.res.Reached(v) || !s.opts.FilterNeighbor(item.node, v) {
				continue
			}
			s.enqueue(v, next, item.node)
		}
	}

	return nil
}

// Components partitions the nodes of g into connected components. Each
// component is ascending; components are ordered by their smallest node.
// Isolated nodes form singleton components.
func Components(g *core.Graph) [][]core.Node {
	seen := make(map[core.Node]struct{}, g.NumberOfNodes())
	var out [][]core.Node
	for _, u := range g.SortedNodes() {
		if _, ok := seen[u]; ok {
			continue
		}
		// u is known, so BFS cannot fail here.
		res, _ := BFS(g, u)
		comp := slices.Clone(res.Order)
		slices.Sort(comp)
		for _, v := range comp {
			seen[v] = struct{}{}
		}
		out = append(out, comp)
	}

	return out
}

// Isolated returns the nodes of g without neighbors, ascending.
func Isolated(g *core.Graph) []core.Node {
	var out []core.Node
	for _, u := range g.SortedNodes() {
		if d, err := g.Degree(u); err == nil && d == 0 {
			out = append(out, u)
		}
	}

	return out
}
