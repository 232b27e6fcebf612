// SPDX-License-Identifier: MIT

package walker_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antwalk/core"
	"github.com/katalvlaran/antwalk/walker"
)

func TestDistribution_Probabilities(t *testing.T) {
	cands := []core.Node{10, 11, 12, 13}
	weights := []float64{1, 2, 3, 4}

	d, err := walker.NewDistribution(cands, weights)
	require.NoError(t, err)
	require.Equal(t, 4, d.Len())
	assert.Equal(t, cands, d.Candidates())

	var sum float64
	for i, w := range weights {
		assert.InDelta(t, w/10, d.Probability(i), 1e-12, "candidate %d", i)
		sum += d.Probability(i)
	}
	assert.InDelta(t, 1, sum, 1e-12)
}

func TestDistribution_ZeroWeightNeverDrawn(t *testing.T) {
	d, err := walker.NewDistribution([]core.Node{1, 2, 3}, []float64{0, 5, 0})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(testSeed))
	for i := 0; i < 1000; i++ {
		require.Equal(t, core.Node(2), d.Draw(rng))
	}
}

func TestDistribution_Frequencies(t *testing.T) {
	d, err := walker.NewDistribution([]core.Node{0, 1, 2, 3}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	const draws = 200000
	rng := rand.New(rand.NewSource(testSeed))
	counts := make([]int, 4)
	for i := 0; i < draws; i++ {
		counts[d.Draw(rng)]++
	}
	for i, c := range counts {
		assert.InDelta(t, float64(i+1)/10, float64(c)/draws, 0.01, "candidate %d", i)
	}
}

func TestDistribution_Uniform(t *testing.T) {
	d, err := walker.NewUniformDistribution([]core.Node{4, 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d.Probability(0), 1e-12)
	assert.InDelta(t, 0.5, d.Probability(1), 1e-12)

	_, err = walker.NewUniformDistribution(nil)
	require.ErrorIs(t, err, walker.ErrDegenerateDistribution)
}

func TestDistribution_Degenerate(t *testing.T) {
	cases := []struct {
		name    string
		cands   []core.Node
		weights []float64
	}{
		{name: "empty", cands: nil, weights: nil},
		{name: "length mismatch", cands: []core.Node{1, 2}, weights: []float64{1}},
		{name: "all zero", cands: []core.Node{1, 2}, weights: []float64{0, 0}},
		{name: "negative", cands: []core.Node{1, 2}, weights: []float64{1, -1}},
		{name: "nan", cands: []core.Node{1}, weights: []float64{math.NaN()}},
		{name: "inf", cands: []core.Node{1}, weights: []float64{math.Inf(1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := walker.NewDistribution(tc.cands, tc.weights)
			require.ErrorIs(t, err, walker.ErrDegenerateDistribution)
			assert.True(t, errors.Is(err, core.ErrInvalidArgument))
		})
	}
}
