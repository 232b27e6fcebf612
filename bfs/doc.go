// SPDX-License-Identifier: MIT

// Package bfs runs breadth-first search over a core.Graph. Weights are
// ignored; distances count edges.
//
// The walker and aco packages use it as a topology pre-flight: Components
// exposes disconnected pieces and isolated nodes, which walks cannot leave
// and which become dead ends under reweighting.
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(3))
//	path, err := res.PathTo(target)
//	comps := bfs.Components(g)
//
// Determinism: neighbors are expanded in ascending order, so Order and
// Parent are stable for a given graph.
//
// Hooks: WithOnVisit may abort the search by returning an error, which BFS
// wraps and returns together with the partial result. WithFilterNeighbor
// hides edges from the search.
//
// Errors: ErrGraphNil, ErrStartNotFound (LookupError class),
// ErrOptionViolation (InvalidArgument class), ErrNoPath, ctx.Err().
package bfs
