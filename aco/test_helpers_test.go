// SPDX-License-Identifier: MIT

package aco_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antwalk/core"
)

// Fixture parameters shared by aco tests.
const (
	testSeed    int64 = 7
	testThreads       = 3
	eps               = 1e-12
)

// newGraph builds a unit-weight graph from (u, v) pairs.
func newGraph(t testing.TB, pairs ...[2]core.Node) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1], 1))
	}

	return g
}

// newCycle returns the n-cycle with unit weights.
func newCycle(t testing.TB, n int) *core.Graph {
	t.Helper()
	pairs := make([][2]core.Node, n)
	for i := range pairs {
		pairs[i] = [2]core.Node{core.Node(i), core.Node((i + 1) % n)}
	}

	return newGraph(t, pairs...)
}

// weightsOf snapshots the undirected weights of g.
func weightsOf(g *core.Graph) map[core.Edge]float64 {
	out := make(map[core.Edge]float64, g.NumberOfEdges())
	for e, w := range g.WeightedEdges() {
		out[e] = w
	}

	return out
}

// requireWeight asserts the weight of u-v within eps.
func requireWeight(t *testing.T, g *core.Graph, u, v core.Node, want float64) {
	t.Helper()
	got, err := g.Weight(u, v)
	require.NoError(t, err)
	require.InDeltaf(t, want, got, eps, "edge %d-%d", u, v)
}
