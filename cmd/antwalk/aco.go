// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/core"
	"github.com/katalvlaran/antwalk/walker"
)

func newACOCmd(a *app) *cobra.Command {
	var f acoConfig
	var scan, window string
	cmd := &cobra.Command{
		Use:   "aco",
		Short: "Run pheromone reinforcement and print \"u v weight\" per edge",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.runE(func(ctx context.Context, cmd *cobra.Command) error {
		cfg := a.cfg.ACO
		override(cmd, "walks", &cfg.NumWalks, f.NumWalks)
		override(cmd, "max-step", &cfg.MaxStep, f.MaxStep)
		override(cmd, "iterations", &cfg.NumIterations, f.NumIterations)
		override(cmd, "alpha", &cfg.Alpha, f.Alpha)
		override(cmd, "evaporate", &cfg.Evaporate, f.Evaporate)
		override(cmd, "threads", &cfg.NumThreads, f.NumThreads)
		override(cmd, "exploration-length", &cfg.ExplorationLength, f.ExplorationLength)
		override(cmd, "result-mode", &cfg.ResultMode, f.ResultMode)
		override(cmd, "dead-end", &cfg.DeadEnd, f.DeadEnd)
		override(cmd, "labels", &cfg.Labels, f.Labels)
		override(cmd, "seed", &cfg.Seed, f.Seed)
		if cmd.Flags().Changed("scan") {
			if err := cfg.Scan.UnmarshalText([]byte(scan)); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("window") {
			if err := cfg.Window.UnmarshalText([]byte(window)); err != nil {
				return err
			}
		}

		g, err := a.loadGraph()
		if err != nil {
			return err
		}
		total, err := runACO(ctx, a, g, cfg)
		if err != nil {
			return err
		}

		return writeWeights(cmd.OutOrStdout(), total)
	})

	d := aco.DefaultConfig()
	fl := cmd.Flags()
	fl.IntVar(&f.NumWalks, "walks", d.NumWalks, "walks per node per round")
	fl.IntVar(&f.MaxStep, "max-step", d.MaxStep, "segment length bound; see --window")
	fl.IntVar(&f.NumIterations, "iterations", d.NumIterations, "rounds")
	fl.Float64Var(&f.Alpha, "alpha", d.Alpha, "pheromone exponent")
	fl.Float64Var(&f.Evaporate, "evaporate", d.Evaporate, "evaporation rate")
	fl.IntVar(&f.NumThreads, "threads", d.NumThreads, "worker goroutines")
	fl.IntVar(&f.ExplorationLength, "exploration-length", d.ExplorationLength, "steps per sampled walk")
	fl.StringVar(&scan, "scan", d.Scan.String(), "overlapping or disjoint")
	fl.StringVar(&window, "window", d.Window.String(), "exclusive scores lengths below max-step, inclusive adds max-step")
	fl.StringVar(&f.ResultMode, "result-mode", "auto", "auto, raw or exp")
	fl.StringVar(&f.DeadEnd, "dead-end", "truncate", "fail or truncate")
	fl.StringVar(&f.Labels, "labels", "", "label file: \"node l1 l2 ...\" per line")
	fl.Int64Var(&f.Seed, "seed", 0, "base seed; 0 draws seeds from the OS")

	return cmd
}

func runACO(ctx context.Context, a *app, g *core.Graph, cfg acoConfig) (*core.Graph, error) {
	mode, err := aco.ParseResultMode(cfg.ResultMode)
	if err != nil {
		return nil, err
	}
	policy, err := walker.ParseDeadEndPolicy(cfg.DeadEnd)
	if err != nil {
		return nil, err
	}
	labels, err := loadLabels(cfg.Labels)
	if err != nil {
		return nil, err
	}

	engine, err := aco.NewEngine(cfg.Config,
		aco.WithLogger(a.log),
		aco.WithResultMode(mode),
		aco.WithDeadEndPolicy(policy),
		aco.WithSeedSource(seedSource(cfg.Seed)),
	)
	if err != nil {
		return nil, err
	}

	return engine.Run(ctx, g, labels)
}

func writeWeights(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range slices.SortedFunc(g.Edges(), core.CompareEdges) {
		x, err := g.EdgeWeight(e)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", e.U, e.V, strconv.FormatFloat(x, 'g', -1, 64)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
