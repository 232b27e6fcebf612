// SPDX-License-Identifier: MIT

package walker_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antwalk/core"
	"github.com/katalvlaran/antwalk/walker"
)

func TestUniformWalker_WalkFollowsEdges(t *testing.T) {
	g := newCycle(t, 5)
	for _, weighted := range []bool{false, true} {
		w := walker.NewUniformWalker()
		require.NoError(t, w.InitDistributionsFromGraph(g, weighted))
		assert.Equal(t, []core.Node{0, 1, 2, 3, 4}, w.NodeList())
		assert.Empty(t, w.DeadEnds())

		rng := rand.New(rand.NewSource(testSeed))
		seq, err := w.SimulateWalk(rng, 2, testWalkLength)
		require.NoError(t, err)
		require.Len(t, seq, testWalkLength+1)
		assert.Equal(t, core.Node(2), seq[0])
		requireValidWalk(t, g, seq)
	}
}

func TestUniformWalker_WeightedPrefersHeavyEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(0, 2, 3))

	w := walker.NewUniformWalker()
	require.NoError(t, w.InitDistributionsFromGraph(g, true))

	rng := rand.New(rand.NewSource(testSeed))
	for i := 0; i < 200; i++ {
		seq, err := w.SimulateWalk(rng, 0, 1)
		require.NoError(t, err)
		require.Equal(t, []core.Node{0, 2}, seq)
	}
}

func TestUniformWalker_ZeroLength(t *testing.T) {
	w := walker.NewUniformWalker()
	require.NoError(t, w.InitDistributionsFromGraph(newPath(t, 3), false))

	seq, err := w.SimulateWalk(rand.New(rand.NewSource(testSeed)), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{1}, seq)

	_, err = w.SimulateWalk(rand.New(rand.NewSource(testSeed)), 1, -1)
	require.ErrorIs(t, err, walker.ErrInvalidWalkParams)
}

func TestUniformWalker_UnknownStart(t *testing.T) {
	w := walker.NewUniformWalker(walker.WithDeadEndPolicy(walker.DeadEndTruncate))
	require.NoError(t, w.InitDistributionsFromGraph(newPath(t, 3), false))

	_, err := w.SimulateWalk(rand.New(rand.NewSource(testSeed)), 99, 4)
	require.ErrorIs(t, err, walker.ErrNoDistribution)
	assert.True(t, errors.Is(err, core.ErrLookup))
}

func TestUniformWalker_DeadEndPolicies(t *testing.T) {
	// 0-1 has zero weight: under weighted tables both ends are dead.
	// 2 and 3 lose their only edge and become isolated.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(2, 3, 1))
	g.RemoveEdge(2, 3)

	t.Run("fail", func(t *testing.T) {
		w := walker.NewUniformWalker()
		require.NoError(t, w.InitDistributionsFromGraph(g, true))
		assert.Equal(t, []core.Node{0, 1, 2, 3}, w.DeadEnds())

		_, err := w.SimulateWalk(rand.New(rand.NewSource(testSeed)), 2, 3)
		require.ErrorIs(t, err, walker.ErrNoDistribution)
		_, err = w.SimulateWalk(rand.New(rand.NewSource(testSeed)), 0, 3)
		require.ErrorIs(t, err, walker.ErrNoDistribution)
	})

	t.Run("truncate", func(t *testing.T) {
		w := walker.NewUniformWalker(walker.WithDeadEndPolicy(walker.DeadEndTruncate))
		require.NoError(t, w.InitDistributionsFromGraph(g, true))

		seq, err := w.SimulateWalk(rand.New(rand.NewSource(testSeed)), 2, 3)
		require.NoError(t, err)
		assert.Equal(t, []core.Node{2}, seq)
	})

	t.Run("unweighted keeps zero-weight edges", func(t *testing.T) {
		w := walker.NewUniformWalker()
		require.NoError(t, w.InitDistributionsFromGraph(g, false))
		assert.Equal(t, []core.Node{2, 3}, w.DeadEnds())

		seq, err := w.SimulateWalk(rand.New(rand.NewSource(testSeed)), 0, 2)
		require.NoError(t, err)
		assert.Equal(t, []core.Node{0, 1, 0}, seq)
	})
}

func TestUniformWalker_ManualTables(t *testing.T) {
	w := walker.NewUniformWalker(walker.WithDeadEndPolicy(walker.DeadEndTruncate))
	w.SetNodeList([]core.Node{7})
	require.NoError(t, w.SetTransitionWeights(7, []core.Node{8}, []float64{1}))
	assert.Equal(t, []core.Node{7}, w.NodeList())

	seq, err := w.SimulateWalk(rand.New(rand.NewSource(testSeed)), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{7, 8}, seq)

	// 8 never got a table, so truncation does not apply.
	_, err = w.SimulateWalk(rand.New(rand.NewSource(testSeed)), 7, 2)
	require.ErrorIs(t, err, walker.ErrNoDistribution)

	err = w.SetTransitionWeights(7, []core.Node{8}, []float64{0})
	require.ErrorIs(t, err, walker.ErrDegenerateDistribution)
}

func TestParseDeadEndPolicy(t *testing.T) {
	for _, p := range []walker.DeadEndPolicy{walker.DeadEndFail, walker.DeadEndTruncate} {
		got, err := walker.ParseDeadEndPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := walker.ParseDeadEndPolicy("skip")
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}
