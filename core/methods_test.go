// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antwalk/core"
)

// TestGraph_AddEdgeSymmetry checks both invariants after inserts and overwrites.
func TestGraph_AddEdgeSymmetry(t *testing.T) {
	g := newSquare(t)
	requireSymmetric(t, g)

	// Re-adding overwrites weight, structure unchanged.
	require.NoError(t, g.AddEdge(N1, N0, Weight2_5))
	w, err := g.Weight(N0, N1)
	require.NoError(t, err)
	assert.Equal(t, Weight2_5, w)
	assert.Equal(t, 4, g.NumberOfEdges())
	assert.Equal(t, 4, g.NumberOfNodes())
	requireSymmetric(t, g)
}

// TestGraph_AddEdgeRejects covers loop and weight validation.
func TestGraph_AddEdgeRejects(t *testing.T) {
	g := core.NewGraph()

	err := g.AddEdge(N1, N1, Weight1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		err = g.AddEdge(N0, N1, w)
		require.ErrorIs(t, err, core.ErrBadWeight, "w=%v", w)
	}
	assert.Equal(t, 0, g.NumberOfNodes(), "rejected inserts must not register nodes")

	require.NoError(t, g.AddEdge(N0, N1, Weight0), "zero weight is legal")
}

// TestGraph_RemoveEdge checks mirrored removal and the absent-edge no-op.
func TestGraph_RemoveEdge(t *testing.T) {
	g := newSquare(t)

	g.RemoveEdge(N1, N0)
	assert.False(t, g.HasEdge(N0, N1))
	assert.False(t, g.HasEdge(N1, N0))
	assert.Equal(t, 3, g.NumberOfEdges())

	nbrs, err := g.Neighbors(N0)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{N3}, nbrs)

	// Absent edge and unknown nodes: no-op, no panic.
	g.RemoveEdge(N0, N2)
	g.RemoveEdge(N4, N5)
	assert.Equal(t, 3, g.NumberOfEdges())
	requireSymmetric(t, g)

	// Node stays known with an empty neighbor set.
	g.RemoveEdge(N0, N3)
	d, err := g.Degree(N0)
	require.NoError(t, err)
	assert.Equal(t, 0, d)
	assert.True(t, g.HasNode(N0))
}

// TestGraph_SetEdgeWeight checks existence requirement and symmetry.
func TestGraph_SetEdgeWeight(t *testing.T) {
	g := newSquare(t)

	require.NoError(t, g.SetEdgeWeight(N2, N1, Weight7))
	w, err := g.Weight(N1, N2)
	require.NoError(t, err)
	assert.Equal(t, Weight7, w)

	err = g.SetEdgeWeight(N0, N2, Weight1)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.ErrorIs(t, err, core.ErrLookup)
	assert.False(t, g.HasEdge(N0, N2), "SetEdgeWeight must not create edges")

	require.ErrorIs(t, g.SetWeight(core.Edge{U: N0, V: N1}, -2), core.ErrBadWeight)
}

// TestGraph_LookupErrors checks the LookupError class on every query.
func TestGraph_LookupErrors(t *testing.T) {
	g := newSquare(t)

	_, err := g.Weight(N0, N2)
	assert.True(t, errors.Is(err, core.ErrEdgeNotFound))

	_, err = g.Neighbors(N5)
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
	assert.True(t, errors.Is(err, core.ErrLookup))

	_, err = g.Degree(N5)
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
}

// TestGraph_Iteration checks dedup and direction rules of the iterators.
func TestGraph_Iteration(t *testing.T) {
	g := newSquare(t)

	edges := collectEdges(g.Edges())
	require.Len(t, edges, g.NumberOfEdges())
	for _, e := range edges {
		assert.Less(t, e.U, e.V, "Edges() must emit U < V")
	}
	assert.Equal(t, []core.Edge{{U: N0, V: N1}, {U: N0, V: N3}, {U: N1, V: N2}, {U: N2, V: N3}}, edges)

	directed := collectEdges(g.DirectedEdges())
	assert.Len(t, directed, 2*len(edges))

	seen := map[core.Node]int{}
	for u := range g.Nodes() {
		seen[u]++
	}
	assert.Equal(t, map[core.Node]int{N0: 1, N1: 1, N2: 1, N3: 1}, seen)
	assert.Equal(t, []core.Node{N0, N1, N2, N3}, g.SortedNodes())

	var total float64
	for _, w := range g.WeightedEdges() {
		total += w
	}
	assert.InDelta(t, Weight1+Weight2+Weight2_5+Weight7, total, 1e-12)
}

// TestGraph_IterationEarlyStop checks that iterators honor a false yield.
func TestGraph_IterationEarlyStop(t *testing.T) {
	g := newSquare(t)
	n := 0
	for range g.DirectedEdges() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

// TestGraph_Clone checks independence of the clone.
func TestGraph_Clone(t *testing.T) {
	g := newSquare(t)
	c := g.Clone()
	require.NoError(t, c.SameEdgeSet(g))

	require.NoError(t, c.SetEdgeWeight(N0, N1, Weight0))
	c.RemoveEdge(N2, N3)

	w, err := g.Weight(N0, N1)
	require.NoError(t, err)
	assert.Equal(t, Weight1, w, "clone mutation leaked into source")
	assert.True(t, g.HasEdge(N2, N3))

	z, err := g.CloneWithWeight(Weight0)
	require.NoError(t, err)
	for _, w := range z.WeightedEdges() {
		assert.Equal(t, Weight0, w)
	}
	_, err = g.CloneWithWeight(math.NaN())
	require.ErrorIs(t, err, core.ErrBadWeight)
}

// TestGraph_SameEdgeSet checks mismatch detection in both directions.
func TestGraph_SameEdgeSet(t *testing.T) {
	g := newSquare(t)
	other := g.Clone()
	require.NoError(t, g.SameEdgeSet(other))

	other.RemoveEdge(N0, N1)
	require.ErrorIs(t, g.SameEdgeSet(other), core.ErrEdgeSetMismatch)

	require.NoError(t, other.AddEdge(N0, N2, Weight1))
	err := g.SameEdgeSet(other)
	require.ErrorIs(t, err, core.ErrEdgeSetMismatch)
	require.ErrorIs(t, err, core.ErrLookup)
}

// TestGraph_AddNode checks isolated registration and idempotence.
func TestGraph_AddNode(t *testing.T) {
	g := newSquare(t)

	g.AddNode(N5)
	assert.True(t, g.HasNode(N5))
	assert.Equal(t, 5, g.NumberOfNodes())
	assert.Equal(t, 4, g.NumberOfEdges())
	nbrs, err := g.Neighbors(N5)
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	// Re-adding a connected node keeps its neighbors.
	g.AddNode(N0)
	d, err := g.Degree(N0)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}
