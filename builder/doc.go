// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures from composable
// topology constructors.
//
// Entry point:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 5)},
//		builder.Cycle(6),
//		builder.Star(4),
//	)
//
// Constructors run in order against one graph. Each one numbers its nodes
// 0..n-1 shifted by the configured ID offset, so two constructors with the
// same offset overlap and later weights win.
//
// Topologies:
//
//	Path(n)                 n ≥ 2, n-1 edges
//	Cycle(n)                n ≥ 3, n edges
//	Star(n)                 n ≥ 2, center 0, n-1 spokes
//	Wheel(n)                n ≥ 4, hub 0, rim 1..n-1, 2(n-1) edges
//	Complete(n)             n ≥ 1, n(n-1)/2 edges
//	CompleteBipartite(a,b)  left 0..a-1, right a..a+b-1, a·b edges
//	Grid(r, c)              row-major ids r·c + c, 4-neighborhood
//	RandomSparse(n, p)      every pair i<j kept with probability p
//	RandomRegular(n, d)     d-regular via stub matching
//
// ParseTopology turns strings such as "grid:10x10" or "random:50:0.1" into
// constructors for command-line use.
//
// Determinism: same options, seed and constructor order give the same graph.
// Weights come from the configured WeightFn (default: constant 1).
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, ErrBadTopology. Core errors from AddEdge are wrapped.
package builder
