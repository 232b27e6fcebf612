// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antwalk/core"
	"github.com/katalvlaran/antwalk/telemetry"
	"github.com/katalvlaran/antwalk/walker"
)

func newWalkCmd(a *app) *cobra.Command {
	var f walkConfig
	var unweighted bool
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Sample random walks from every node and print one walk per line",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.runE(func(ctx context.Context, cmd *cobra.Command) error {
		cfg := a.cfg.Walk
		override(cmd, "mode", &cfg.Mode, f.Mode)
		override(cmd, "walks", &cfg.NumWalks, f.NumWalks)
		override(cmd, "length", &cfg.Length, f.Length)
		override(cmd, "threads", &cfg.Threads, f.Threads)
		override(cmd, "p", &cfg.P, f.P)
		override(cmd, "q", &cfg.Q, f.Q)
		override(cmd, "dead-end", &cfg.DeadEnd, f.DeadEnd)
		override(cmd, "seed", &cfg.Seed, f.Seed)
		if unweighted {
			cfg.Weighted = false
		}

		g, err := a.loadGraph()
		if err != nil {
			return err
		}
		walks, err := runWalks(ctx, a, g, cfg)
		if err != nil {
			return err
		}

		return writeWalks(cmd.OutOrStdout(), walks)
	})

	fl := cmd.Flags()
	fl.StringVar(&f.Mode, "mode", "uniform", "uniform or biased")
	fl.IntVar(&f.NumWalks, "walks", 10, "walks per start node")
	fl.IntVar(&f.Length, "length", 20, "steps per walk")
	fl.IntVar(&f.Threads, "threads", 1, "worker goroutines")
	fl.Float64Var(&f.P, "p", 1, "return parameter (biased)")
	fl.Float64Var(&f.Q, "q", 1, "in-out parameter (biased)")
	fl.StringVar(&f.DeadEnd, "dead-end", "fail", "fail or truncate (uniform)")
	fl.Int64Var(&f.Seed, "seed", 0, "base seed; 0 draws seeds from the OS")
	fl.BoolVar(&unweighted, "unweighted", false, "ignore edge weights (uniform)")

	return cmd
}

func runWalks(ctx context.Context, a *app, g *core.Graph, cfg walkConfig) ([][]core.Node, error) {
	policy, err := walker.ParseDeadEndPolicy(cfg.DeadEnd)
	if err != nil {
		return nil, err
	}
	log := telemetry.LoggerWithTrace(ctx, a.log)
	opts := []walker.WalkOption{walker.WithWalkLogger(log), walker.WithSeedSource(seedSource(cfg.Seed))}

	switch cfg.Mode {
	case "uniform":
		w := walker.NewUniformWalker(walker.WithDeadEndPolicy(policy), walker.WithLogger(log))
		if err := w.InitDistributionsFromGraph(g, cfg.Weighted); err != nil {
			return nil, err
		}
		return walker.Walk(ctx, w, cfg.NumWalks, cfg.Length, cfg.Threads, opts...)
	case "biased":
		w := walker.NewBiasedWalker(walker.WithDeadEndPolicy(policy), walker.WithLogger(log))
		if err := w.InitDistributionsFromGraph(g, cfg.P, cfg.Q); err != nil {
			return nil, err
		}
		return walker.Walk(ctx, w, cfg.NumWalks, cfg.Length, cfg.Threads, opts...)
	}

	return nil, fmt.Errorf("walk mode %q: want uniform or biased: %w", cfg.Mode, errConfig)
}

func seedSource(seed int64) walker.SeedSource {
	if seed == 0 {
		return walker.EntropySeeds()
	}
	return walker.DerivedSeeds(seed)
}

func writeWalks(w io.Writer, walks [][]core.Node) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, seq := range walks {
		buf = buf[:0]
		for i, u := range seq {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(u), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
