// SPDX-License-Identifier: MIT

// Package antwalk samples random walks on undirected weighted graphs and
// reinforces frequently closed short paths with a pheromone process.
//
// Layout:
//
//	core/      Graph: undirected, weighted, no self-loops, deterministic views
//	walker/    alias-table distributions, UniformWalker, BiasedWalker (p, q),
//	           and the parallel Walk orchestrator
//	aco/       pheromone rounds: loop and label scoring, evaporation,
//	           reweighting, ACOWalk and ACOWalkWithLabel
//	bfs/       breadth-first search and connected components
//	builder/   deterministic graph constructors and topology specs
//	telemetry/ OpenTelemetry providers for the command-line tool
//	cmd/antwalk  cobra CLI: walk, aco, inspect
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.Cycle(6))
//	w, _ := aco.ACOWalk(ctx, g, 10, 6, 3, 1, 0.1, runtime.NumCPU())
//	for e, x := range w.WeightedEdges() {
//		fmt.Println(e, x)
//	}
//
// All packages report failures as wrapped sentinels; errors.Is against
// core.ErrLookup or core.ErrInvalidArgument classifies any of them.
package antwalk
