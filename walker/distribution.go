// SPDX-License-Identifier: MIT
//
// File: distribution.go
// Role: Discrete distribution over candidate nodes (Vose alias method).
// Complexity:
//   - Build O(n), Draw O(1) with two RNG calls (one for uniform tables).

package walker

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/antwalk/core"
)

// Distribution is an immutable discrete distribution over candidate nodes.
// Draw is safe for concurrent use with distinct rng values.
type Distribution struct {
	candidates []core.Node
	prob       []float64 // acceptance threshold per column; nil for uniform tables
	alias      []int
}

// NewDistribution builds an alias table where candidates[i] is drawn with
// probability weights[i]/Σweights. Zero weights are allowed as long as the
// sum is positive.
//
// Errors: ErrDegenerateDistribution.
func NewDistribution(candidates []core.Node, weights []float64) (*Distribution, error) {
	n := len(candidates)
	if n == 0 || len(weights) != n {
		return nil, ErrDegenerateDistribution
	}

	var sum float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrDegenerateDistribution
		}
		sum += w
	}
	if sum <= 0 || math.IsInf(sum, 0) {
		return nil, ErrDegenerateDistribution
	}

	d := &Distribution{
		candidates: append([]core.Node(nil), candidates...),
		prob:       make([]float64, n),
		alias:      make([]int, n),
	}

	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / sum
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		d.prob[s] = scaled[s]
		d.alias[s] = l
		scaled[l] += scaled[s] - 1
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}
	// Leftovers are 1 up to rounding error.
	for _, i := range large {
		d.prob[i] = 1
		d.alias[i] = i
	}
	for _, i := range small {
		d.prob[i] = 1
		d.alias[i] = i
	}

	return d, nil
}

// NewUniformDistribution draws every candidate with equal probability.
// Errors: ErrDegenerateDistribution on an empty candidate set.
func NewUniformDistribution(candidates []core.Node) (*Distribution, error) {
	if len(candidates) == 0 {
		return nil, ErrDegenerateDistribution
	}

	return &Distribution{candidates: append([]core.Node(nil), candidates...)}, nil
}

// Draw samples one candidate.
func (d *Distribution) Draw(rng *rand.Rand) core.Node {
	i := rng.Intn(len(d.candidates))
	if d.prob == nil || rng.Float64() < d.prob[i] {
		return d.candidates[i]
	}

	return d.candidates[d.alias[i]]
}

// Len returns the number of candidates.
func (d *Distribution) Len() int { return len(d.candidates) }

// Candidates returns a copy of the candidate list.
func (d *Distribution) Candidates() []core.Node {
	return append([]core.Node(nil), d.candidates...)
}

// Probability returns the exact probability of drawing candidates[i], derived
// from the alias table.
func (d *Distribution) Probability(i int) float64 {
	n := float64(len(d.candidates))
	if d.prob == nil {
		return 1 / n
	}
	p := d.prob[i]
	for j, a := range d.alias {
		if a == i && j != i {
			p += 1 - d.prob[j]
		}
	}

	return p / n
}
