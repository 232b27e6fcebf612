// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for BuildGraph.
// Contract:
//   - Option constructors panic on meaningless input; constructors never do.

package builder

import "math/rand"

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithIDOffset shifts every node id by off. Use Offset to shift a single
// constructor. Panics on a negative offset.
func WithIDOffset(off int) BuilderOption {
	if off < 0 {
		panic("builder: WithIDOffset(off<0)")
	}
	return func(c *builderConfig) { c.idOffset = off }
}
