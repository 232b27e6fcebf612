// SPDX-License-Identifier: MIT

package aco_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/core"
)

// ExampleScoreLoops rewards the three edges of a closed triangle walk.
func ExampleScoreLoops() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 0, 1)
	ph, _ := g.CloneWithWeight(0)

	if err := aco.ScoreLoops([][]core.Node{{0, 1, 2, 0}}, 4, ph); err != nil {
		fmt.Println(err)
		return
	}
	w, _ := ph.Weight(1, 2)
	fmt.Printf("%.4f\n", w)
	// Output: 0.3333
}

// ExampleACOWalk shows that zero rounds return 0^alpha on every edge.
func ExampleACOWalk() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 5)

	out, err := aco.ACOWalk(context.Background(), g, 10, 10, 0, 0, 0, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	w, _ := out.Weight(0, 1)
	fmt.Println(w)
	// Output: 1
}
