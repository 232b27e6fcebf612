// SPDX-License-Identifier: MIT
//
// File: parallel.go
// Role: Parallel walk orchestrator over any Sampler.
// Determinism:
//   - Worker i walks the contiguous node range [round(n/T·i), round(n/T·(i+1)))
//     with its own rng seeded from SeedSource(i). Fixed seeds and a fixed
//     worker count reproduce the output exactly.
// Concurrency:
//   - Output slot nodeIndex*numWalks+r is written by exactly one worker.
//   - Cancellation is observed between start nodes.

package walker

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/antwalk/core"
)

// WalkOption configures Walk.
type WalkOption func(*walkOptions)

type walkOptions struct {
	seeds  SeedSource
	logger *slog.Logger
}

// WithSeedSource sets the per-worker seed source. Panics on nil.
func WithSeedSource(src SeedSource) WalkOption {
	if src == nil {
		panic("walker: WithSeedSource(nil)")
	}
	return func(o *walkOptions) { o.seeds = src }
}

// WithWalkLogger routes orchestrator debug output to l. Panics on nil.
func WithWalkLogger(l *slog.Logger) WalkOption {
	if l == nil {
		panic("walker: WithWalkLogger(nil)")
	}
	return func(o *walkOptions) { o.logger = l }
}

// Walk simulates numWalks walks of walkLength steps from every node of
// s.NodeList() and returns them grouped by start node:
//
//	out[i*numWalks + r] is walk r from NodeList()[i].
//
// A single worker is used when the node count does not exceed numThreads.
// On any worker error (or ctx cancellation) Walk returns nil and the first
// error; partial output is discarded.
//
// Errors: ErrInvalidWalkParams; sampler errors; ctx.Err().
func Walk[S Sampler](ctx context.Context, s S, numWalks, walkLength, numThreads int, opts ...WalkOption) ([][]core.Node, error) {
	if numWalks <= 0 || walkLength < 0 || numThreads < 1 {
		return nil, fmt.Errorf("Walk: numWalks=%d walkLength=%d numThreads=%d: %w",
			numWalks, walkLength, numThreads, ErrInvalidWalkParams)
	}

	o := walkOptions{seeds: EntropySeeds(), logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	nodes := s.NodeList()
	n := len(nodes)
	workers := numThreads
	if n <= numThreads {
		workers = 1
	}

	ctx, span := tracer.Start(ctx, "walker.Walk",
		trace.WithAttributes(
			attribute.Int("nodes", n),
			attribute.Int("num_walks", numWalks),
			attribute.Int("walk_length", walkLength),
			attribute.Int("workers", workers),
		),
	)
	defer span.End()
	start := time.Now()

	out := make([][]core.Node, n*numWalks)
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range partition(n, workers) {
		seed := o.seeds(i)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			for u := r.lo; u < r.hi; u++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				for rep := 0; rep < numWalks; rep++ {
					seq, err := s.SimulateWalk(rng, nodes[u], walkLength)
					if err != nil {
						return err
					}
					out[u*numWalks+rep] = seq
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordWalkMetrics(ctx, 0, workers, time.Since(start), false)
		return nil, err
	}

	recordWalkMetrics(ctx, len(out), workers, time.Since(start), true)
	o.logger.Debug("walk phase completed",
		slog.Int("walks", len(out)),
		slog.Int("workers", workers),
		slog.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}

type nodeRange struct{ lo, hi int }

// partition splits [0,n) into workers contiguous ranges with boundaries
// round(n/workers*i).
func partition(n, workers int) []nodeRange {
	out := make([]nodeRange, workers)
	step := float64(n) / float64(workers)
	for i := range out {
		out[i] = nodeRange{
			lo: int(math.Round(step * float64(i))),
			hi: int(math.Round(step * float64(i+1))),
		}
	}
	out[workers-1].hi = n

	return out
}
