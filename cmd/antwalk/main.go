// SPDX-License-Identifier: MIT

// Command antwalk samples random walks and runs pheromone reinforcement on
// graphs read from edge lists or generated from topology specs.
//
//	antwalk inspect --topology grid:4x4
//	antwalk walk --topology cycle:10 --walks 2 --length 5 --seed 7
//	antwalk aco --edges graph.txt --labels labels.txt --iterations 5
//
// Every flag except --config can also be set in the YAML file given by
// --config; explicit flags win.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
