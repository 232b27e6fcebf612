// SPDX-License-Identifier: MIT

package aco_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/core"
)

func zeroed(t *testing.T, g *core.Graph) *core.Graph {
	t.Helper()
	z, err := g.CloneWithWeight(0)
	require.NoError(t, err)

	return z
}

func TestScoreLoops_TriangleClosure(t *testing.T) {
	tri := newGraph(t, [2]core.Node{0, 1}, [2]core.Node{1, 2}, [2]core.Node{2, 0})

	ph := zeroed(t, tri)
	require.NoError(t, aco.ScoreLoops([][]core.Node{{0, 1, 2, 0}}, 4, ph))
	requireWeight(t, ph, 0, 1, 1.0/3)
	requireWeight(t, ph, 1, 2, 1.0/3)
	requireWeight(t, ph, 2, 0, 1.0/3)

	ph = zeroed(t, tri)
	require.NoError(t, aco.Scorer{MaxStep: 3, Window: aco.WindowInclusive}.Loops([][]core.Node{{0, 1, 2, 0}}, ph))
	requireWeight(t, ph, 0, 1, 1.0/3)
	requireWeight(t, ph, 1, 2, 1.0/3)
	requireWeight(t, ph, 2, 0, 1.0/3)
}

func TestScoreLoops_WindowBound(t *testing.T) {
	tri := newGraph(t, [2]core.Node{0, 1}, [2]core.Node{1, 2}, [2]core.Node{2, 0})
	cases := []struct {
		name    string
		seq     []core.Node
		maxStep int
		window  aco.WindowBound
		want    float64 // weight of edge 0-1
	}{
		{name: "backtrack at max_step, exclusive", seq: []core.Node{0, 1, 0}, maxStep: 2, window: aco.WindowExclusive, want: 0},
		{name: "backtrack at max_step, inclusive", seq: []core.Node{0, 1, 0}, maxStep: 2, window: aco.WindowInclusive, want: 1},
		{name: "triangle at max_step, exclusive", seq: []core.Node{0, 1, 2, 0}, maxStep: 3, window: aco.WindowExclusive, want: 0},
		{name: "triangle at max_step, inclusive", seq: []core.Node{0, 1, 2, 0}, maxStep: 3, window: aco.WindowInclusive, want: 1.0 / 3},
		{name: "triangle past max_step, inclusive", seq: []core.Node{0, 1, 2, 0}, maxStep: 2, window: aco.WindowInclusive, want: 0},
		{name: "max_step 1 scores nothing", seq: []core.Node{0, 1, 0}, maxStep: 1, window: aco.WindowExclusive, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ph := zeroed(t, tri)
			s := aco.Scorer{MaxStep: tc.maxStep, Window: tc.window}
			require.NoError(t, s.Loops([][]core.Node{tc.seq}, ph))
			requireWeight(t, ph, 0, 1, tc.want)
		})
	}

	// The package-level helpers use the exclusive bound.
	ph := zeroed(t, tri)
	require.NoError(t, aco.ScoreLoops([][]core.Node{{0, 1, 0}}, 2, ph))
	requireWeight(t, ph, 0, 1, 0)
}

func TestScoreLoops_ShortestWins(t *testing.T) {
	seqs := [][]core.Node{{0, 1, 0, 1, 0}}

	ph := zeroed(t, newGraph(t, [2]core.Node{0, 1}))
	require.NoError(t, aco.ScoreLoops(seqs, 4, ph))
	// Offsets 0, 1 and 2 each close a 2-step loop: 3 × (2 × 1/2).
	requireWeight(t, ph, 0, 1, 3)

	ph = zeroed(t, newGraph(t, [2]core.Node{0, 1}))
	require.NoError(t, aco.Scorer{MaxStep: 4, Scan: aco.ScanDisjoint}.Loops(seqs, ph))
	requireWeight(t, ph, 0, 1, 2)
}

func TestScoreLabels_Path(t *testing.T) {
	path := newGraph(t, [2]core.Node{0, 1}, [2]core.Node{1, 2}, [2]core.Node{2, 3}, [2]core.Node{3, 4})
	seqs := [][]core.Node{{0, 1, 2, 3, 4}}
	labels := aco.Labels{4: {1}}

	t.Run("disjoint", func(t *testing.T) {
		ph := zeroed(t, path)
		s := aco.Scorer{MaxStep: 4, Scan: aco.ScanDisjoint, Window: aco.WindowInclusive}
		require.NoError(t, s.Labels(seqs, labels, ph))
		requireWeight(t, ph, 0, 1, 1.0/4)
		requireWeight(t, ph, 1, 2, 1.0/4)
		requireWeight(t, ph, 2, 3, 1.0/4)
		requireWeight(t, ph, 3, 4, 1.0/4)
	})

	t.Run("disjoint exclusive", func(t *testing.T) {
		// Offset 0 needs 4 steps; the first hit is 1→4 in 3.
		ph := zeroed(t, path)
		require.NoError(t, aco.Scorer{MaxStep: 4, Scan: aco.ScanDisjoint}.Labels(seqs, labels, ph))
		requireWeight(t, ph, 0, 1, 0)
		requireWeight(t, ph, 1, 2, 1.0/3)
		requireWeight(t, ph, 2, 3, 1.0/3)
		requireWeight(t, ph, 3, 4, 1.0/3)
	})

	t.Run("overlapping", func(t *testing.T) {
		ph := zeroed(t, path)
		require.NoError(t, aco.ScoreLabels(seqs, labels, 5, ph))
		requireWeight(t, ph, 0, 1, 1.0/4)
		requireWeight(t, ph, 1, 2, 1.0/4+1.0/3)
		requireWeight(t, ph, 2, 3, 1.0/4+1.0/3+1.0/2)
		requireWeight(t, ph, 3, 4, 1.0/4+1.0/3+1.0/2+1)
	})

	t.Run("no labels", func(t *testing.T) {
		ph := zeroed(t, path)
		require.NoError(t, aco.ScoreLabels(seqs, nil, 4, ph))
		for _, w := range weightsOf(ph) {
			require.Zero(t, w)
		}
	})
}

func TestScore_MissingEdge(t *testing.T) {
	ph := zeroed(t, newGraph(t, [2]core.Node{0, 1}, [2]core.Node{1, 2}))

	err := aco.ScoreLoops([][]core.Node{{0, 2, 0}}, 4, ph)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.ErrorIs(t, err, core.ErrLookup)

	err = aco.ScoreLabels([][]core.Node{{0, 2}}, aco.Labels{2: {9}}, 4, ph)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestEvaporate(t *testing.T) {
	total := core.NewGraph()
	require.NoError(t, total.AddEdge(0, 1, 1))
	require.NoError(t, total.AddEdge(1, 2, 2))
	require.NoError(t, total.AddEdge(2, 0, 4))
	fresh := core.NewGraph()
	require.NoError(t, fresh.AddEdge(0, 1, 0.5))
	require.NoError(t, fresh.AddEdge(1, 2, 0))
	require.NoError(t, fresh.AddEdge(2, 0, 1))

	require.NoError(t, aco.Evaporate(total, fresh, 0.25))
	requireWeight(t, total, 0, 1, 1*0.75+0.5)
	requireWeight(t, total, 1, 2, 2*0.75)
	requireWeight(t, total, 2, 0, 4*0.75+1)

	fresh.RemoveEdge(2, 0)
	require.ErrorIs(t, aco.Evaporate(total, fresh, 0.25), core.ErrEdgeNotFound)

	// Rate above 1 drives positive totals negative.
	require.ErrorIs(t, aco.Evaporate(total, total.Clone(), 3), core.ErrBadWeight)
}

func TestReweightAndExponentiate(t *testing.T) {
	base := newGraph(t, [2]core.Node{0, 1}, [2]core.Node{1, 2})
	require.NoError(t, base.SetEdgeWeight(0, 1, 2))
	total := zeroed(t, base)
	require.NoError(t, total.SetEdgeWeight(0, 1, 3))
	mixed := base.Clone()

	require.NoError(t, aco.Reweight(mixed, base, total, 2))
	requireWeight(t, mixed, 0, 1, 2*9)
	requireWeight(t, mixed, 1, 2, 0)

	// 0^0 == 1.
	require.NoError(t, aco.Reweight(mixed, base, total, 0))
	requireWeight(t, mixed, 0, 1, 2)
	requireWeight(t, mixed, 1, 2, 1)

	require.NoError(t, aco.Exponentiate(total, 0))
	requireWeight(t, total, 0, 1, 1)
	requireWeight(t, total, 1, 2, 1)

	zero := zeroed(t, base)
	require.ErrorIs(t, aco.Exponentiate(zero, -1), core.ErrBadWeight)
}
