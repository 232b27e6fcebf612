// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antwalk/core"
)

// Common nodes used across core tests.
const (
	N0 core.Node = iota
	N1
	N2
	N3
	N4
	N5
)

// Common weights used across core tests.
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2   = 2.0
	Weight2_5 = 2.5
	Weight7   = 7.0
)

// newSquare returns the 4-cycle 0-1-2-3-0 with weights 1,2,2.5,7.
func newSquare(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(N0, N1, Weight1))
	require.NoError(t, g.AddEdge(N1, N2, Weight2))
	require.NoError(t, g.AddEdge(N2, N3, Weight2_5))
	require.NoError(t, g.AddEdge(N3, N0, Weight7))

	return g
}

// collectEdges drains an edge iterator into a sorted slice.
func collectEdges(seq iter.Seq[core.Edge]) []core.Edge {
	out := slices.Collect(seq)
	slices.SortFunc(out, core.CompareEdges)

	return out
}

// requireSymmetric asserts both graph invariants for every directed key.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	for e := range g.DirectedEdges() {
		w, err := g.EdgeWeight(e)
		require.NoError(t, err)
		rw, err := g.EdgeWeight(e.Reverse())
		require.NoError(t, err, "mirror of %s missing", e)
		require.Equal(t, w, rw, "weight(%s) != weight(reverse)", e)

		nu, err := g.Neighbors(e.U)
		require.NoError(t, err)
		nv, err := g.Neighbors(e.V)
		require.NoError(t, err)
		require.Contains(t, nu, e.V)
		require.Contains(t, nv, e.U)
	}
}
