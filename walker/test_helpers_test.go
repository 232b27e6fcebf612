// SPDX-License-Identifier: MIT

package walker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antwalk/core"
)

// Fixture parameters shared by walker tests.
const (
	testSeed       int64 = 42
	testWalks            = 3
	testWalkLength       = 10
)

// newCycle returns the n-cycle 0-1-…-(n-1)-0 with unit weights.
func newCycle(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(core.Node(i), core.Node((i+1)%n), 1))
	}

	return g
}

// newPath returns the path 0-1-…-(n-1) with unit weights.
func newPath(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(core.Node(i), core.Node(i+1), 1))
	}

	return g
}

// requireValidWalk asserts every consecutive pair in seq is an edge of g.
func requireValidWalk(t *testing.T, g *core.Graph, seq []core.Node) {
	t.Helper()
	for i := 1; i < len(seq); i++ {
		require.Truef(t, g.HasEdge(seq[i-1], seq[i]), "step %d: %d-%d is not an edge", i, seq[i-1], seq[i])
	}
}
