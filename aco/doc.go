// SPDX-License-Identifier: MIT

// Package aco reweights a graph by ant-colony style reinforcement: sample
// walks, reward edges on short closed loops (and, optionally, on short paths
// into labeled nodes), evaporate, and feed the result back into the next
// round's sampling weights.
//
// State per run (all four graphs share one edge set):
//
//	base       the caller's graph, never modified
//	mixed      sampling weights; starts as base
//	total      accumulated pheromone; starts at 0 on every edge
//	pheromone  one round's fresh reinforcement
//
// Round r = 1..NumIterations:
//
//  1. Build a weighted UniformWalker from mixed and draw NumWalks walks of
//     ExplorationLength steps from every node (walker.Walk).
//  2. pheromone := 0.
//  3. Loop scoring: for every walk and offset i, find the shortest
//     len ∈ [1, MaxStep) with seq[i] == seq[i+len] and add 1/len to every
//     edge of seq[i..i+len]. WindowInclusive also scores len == MaxStep.
//  4. Label scoring (labeled runs only): same scan, triggered by seq[i+len]
//     carrying a label.
//  5. total := total×(1−Evaporate) + pheromone.
//  6. mixed := base × total^Alpha.
//
// ScanOverlapping scores every offset i. ScanDisjoint resumes the scan right
// after each scored segment, so no edge step is rewarded twice by one walk.
//
// Result:
//
// ResultAuto returns total^Alpha for unlabeled runs (ACOWalk) and raw total
// for labeled runs (ACOWalkWithLabel), and logs a warning the first time a
// labeled run returns raw totals. ResultRaw and ResultExponentiated pick one
// shape for both. math.Pow(0, 0) == 1, so Alpha = 0 turns untouched edges
// into 1.
//
// Errors:
//
//	ErrInvalidConfig, ErrInvalidLabels: core.ErrInvalidArgument class;
//	    Alpha < 0 and Evaporate > 1 are rejected before any round runs
//	core.ErrEdgeNotFound, core.ErrEdgeSetMismatch: a walk step or graph
//	    outside the shared edge set (core.ErrLookup class)
//	core.ErrBadWeight: a reweighting step produced a negative or
//	    non-finite weight (standalone Evaporate/Exponentiate calls)
package aco
