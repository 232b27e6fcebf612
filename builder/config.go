// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Resolved builder configuration and its deterministic defaults.
//
// Defaults:
//   - rng      = nil (pure unless seeded)
//   - weightFn = DefaultWeightFn (constant 1)
//   - idOffset = 0

package builder

import (
	"math/rand"

	"github.com/katalvlaran/antwalk/core"
)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	idOffset int
}

// newBuilderConfig applies opts in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// node maps a constructor-local index to a graph node.
func (c builderConfig) node(i int) core.Node {
	return core.Node(c.idOffset + i)
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}

// addEdge inserts i-j with the next weight, wrapping core errors with method.
func (c builderConfig) addEdge(g *core.Graph, method string, i, j int) error {
	u, v, w := c.node(i), c.node(j), c.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return wrapAddEdge(method, u, v, w, err)
	}

	return nil
}

// addNodes registers indices 0..n-1 so isolated nodes survive.
func (c builderConfig) addNodes(g *core.Graph, n int) {
	for i := 0; i < n; i++ {
		g.AddNode(c.node(i))
	}
}
