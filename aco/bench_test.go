// SPDX-License-Identifier: MIT

package aco_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/walker"
)

func BenchmarkACOWalk(b *testing.B) {
	g := newCycle(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := aco.ACOWalk(context.Background(), g, 4, 10, 2, 1, 0.1, 4,
			aco.WithSeedSource(walker.FixedSeeds(int64(i)))); err != nil {
			b.Fatal(err)
		}
	}
}
