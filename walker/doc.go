// SPDX-License-Identifier: MIT

// Package walker turns a core.Graph snapshot into discrete transition tables
// and draws random walks from them, one worker goroutine per contiguous node
// range.
//
// Samplers:
//
//	UniformWalker (first order): the next node depends only on the current
//	                node. Per node, a distribution over its neighbors weighted
//	                by edge weight (or uniform when weighted == false).
//	BiasedWalker (second order, node2vec): the next node depends on the
//	                directed edge (previous → current). For every edge u→v the
//	                candidates are v's neighbors with weight
//	                    1/p  when returning to u,
//	                    1    when the candidate is also a neighbor of u,
//	                    1/q  otherwise.
//
// Both build their tables once (InitDistributionsFromGraph) and never touch
// the graph again, so a walk phase reads only immutable tables.
//
// Orchestrator:
//
//	Walk[S Sampler](ctx, s, numWalks, walkLength, numThreads, opts...)
//
// returns exactly len(s.NodeList())×numWalks sequences. Slot
// nodeIndex×numWalks + repetition is written by exactly one worker, so the
// output slice needs no locking. Each worker owns a *rand.Rand seeded from a
// SeedSource at spawn (OS entropy by default, FixedSeeds/DerivedSeeds for
// reproducible runs).
//
// Dead ends:
//
// A node with no neighbors, or whose neighbor weights sum to zero, gets no
// distribution. DeadEndFail (default) turns reaching such a node into
// ErrNoDistribution; DeadEndTruncate ends the walk there and returns the
// shorter sequence.
//
// Errors:
//
//	ErrNoDistribution         : LookupError class (core.ErrLookup)
//	ErrDegenerateDistribution : InvalidArgument class (core.ErrInvalidArgument)
//	ErrInvalidBias
//	ErrInvalidWalkParams
package walker
