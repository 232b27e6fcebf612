// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Round loop alternating parallel sampling with sequential scoring.
// Determinism:
//   - With a deterministic SeedSource and fixed NumThreads two runs over the
//     same graph return bit-identical weights.
// Concurrency:
//   - An Engine may run several graphs concurrently; each Run owns its
//     four graphs. The caller's graph is only read.

package aco

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/antwalk/core"
	"github.com/katalvlaran/antwalk/telemetry"
	"github.com/katalvlaran/antwalk/walker"
)

// Engine runs the pheromone process with a fixed Config.
type Engine struct {
	cfg  Config
	opts options

	warnOnce sync.Once
}

// NewEngine validates cfg and applies opts.
// Errors: ErrInvalidConfig.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewEngine: %w", err)
	}

	return &Engine{cfg: cfg, opts: newOptions(opts...)}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Run executes NumIterations rounds over g and returns the total pheromone
// graph. A nil labels map runs loop scoring only; a non-nil map (even
// empty) marks a labeled run, which matters for ResultAuto.
//
// Errors: ErrInvalidLabels; core.ErrEdgeSetMismatch; core.ErrEdgeNotFound;
// core.ErrBadWeight; walker errors; ctx.Err().
func (e *Engine) Run(ctx context.Context, g *core.Graph, labels Labels) (*core.Graph, error) {
	labeled := labels != nil
	if labeled {
		if err := labels.Validate(); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}

	runID := uuid.NewString()
	ctx, span := tracer.Start(ctx, "aco.Run",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.Int("nodes", g.NumberOfNodes()),
			attribute.Int("edges", g.NumberOfEdges()),
			attribute.Int("num_iterations", e.cfg.NumIterations),
			attribute.Bool("labeled", labeled),
		),
	)
	defer span.End()
	log := telemetry.LoggerWithTrace(ctx, e.opts.logger).With(slog.String("run_id", runID))

	total, err := e.run(ctx, log, g, labels)
	recordRunMetrics(ctx, labeled, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("pheromone run failed", slog.String("error", err.Error()))
		return nil, err
	}

	return total, nil
}

func (e *Engine) run(ctx context.Context, log *slog.Logger, g *core.Graph, labels Labels) (*core.Graph, error) {
	labeled := labels != nil
	base := g.Clone()
	mixed := g.Clone()
	total, err := g.CloneWithWeight(0)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	pheromone, err := g.CloneWithWeight(0)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	for _, other := range []*core.Graph{mixed, total, pheromone} {
		if err = base.SameEdgeSet(other); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}

	log.Info("pheromone run started",
		slog.Int("nodes", g.NumberOfNodes()),
		slog.Int("edges", g.NumberOfEdges()),
		slog.Int("num_iterations", e.cfg.NumIterations),
		slog.Bool("labeled", labeled),
	)
	start := time.Now()

	scorer := Scorer{MaxStep: e.cfg.MaxStep, Scan: e.cfg.Scan, Window: e.cfg.Window}
	for round := 0; round < e.cfg.NumIterations; round++ {
		if err = e.round(ctx, log, round, scorer, base, mixed, total, pheromone, labels); err != nil {
			return nil, err
		}
	}

	if e.exponentiate(log, labeled) {
		if err = Exponentiate(total, e.cfg.Alpha); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}

	log.Info("pheromone run completed",
		slog.Int("rounds", e.cfg.NumIterations),
		slog.Duration("duration", time.Since(start)),
	)

	return total, nil
}

// round performs one sample/score/evaporate/reweight cycle.
func (e *Engine) round(ctx context.Context, log *slog.Logger, round int, scorer Scorer,
	base, mixed, total, pheromone *core.Graph, labels Labels) error {
	ctx, span := tracer.Start(ctx, "aco.Round", trace.WithAttributes(attribute.Int("round", round)))
	defer span.End()
	start := time.Now()

	fail := func(err error) error {
		err = fmt.Errorf("round %d: %w", round, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	w := walker.NewUniformWalker(
		walker.WithDeadEndPolicy(e.opts.deadEnd),
		walker.WithLogger(log),
	)
	if err := w.InitDistributionsFromGraph(mixed, true); err != nil {
		return fail(err)
	}
	seqs, err := walker.Walk(ctx, w, e.cfg.NumWalks, e.cfg.ExplorationLength, e.cfg.NumThreads,
		walker.WithSeedSource(e.roundSeeds(round)),
		walker.WithWalkLogger(log),
	)
	if err != nil {
		return fail(err)
	}

	if err = fill(pheromone, 0); err != nil {
		return fail(err)
	}
	if err = scorer.Loops(seqs, pheromone); err != nil {
		return fail(err)
	}
	if labels != nil {
		if err = scorer.Labels(seqs, labels, pheromone); err != nil {
			return fail(err)
		}
	}
	if err = Evaporate(total, pheromone, e.cfg.Evaporate); err != nil {
		return fail(err)
	}
	if err = Reweight(mixed, base, total, e.cfg.Alpha); err != nil {
		return fail(err)
	}

	d := time.Since(start)
	recordRoundMetrics(ctx, labels != nil, d)
	log.Debug("pheromone round completed",
		slog.Int("round", round),
		slog.Int("sequences", len(seqs)),
		slog.Duration("duration", d),
	)

	return nil
}

// roundSeeds gives every (round, worker) pair its own seed index.
func (e *Engine) roundSeeds(round int) walker.SeedSource {
	src, threads := e.opts.seeds, e.cfg.NumThreads
	return func(worker int) int64 { return src(round*threads + worker) }
}

// exponentiate resolves the result mode for this run.
func (e *Engine) exponentiate(log *slog.Logger, labeled bool) bool {
	switch e.opts.result {
	case ResultRaw:
		return false
	case ResultExponentiated:
		return true
	}
	if labeled {
		e.warnOnce.Do(func() {
			log.Warn("labeled run returns raw total pheromone while unlabeled runs return total^alpha; " +
				"set WithResultMode to pick one explicitly")
		})
		return false
	}

	return true
}

// ACOWalk runs loop-scored rounds over g and returns the pheromone graph,
// exponentiated by alpha under the default result mode.
func ACOWalk(ctx context.Context, g *core.Graph, numWalks, maxStep, numIterations int,
	alpha, evaporate float64, numThreads int, opts ...Option) (*core.Graph, error) {
	e, err := NewEngine(entryConfig(numWalks, maxStep, numIterations, alpha, evaporate, numThreads), opts...)
	if err != nil {
		return nil, fmt.Errorf("ACOWalk: %w", err)
	}

	return e.Run(ctx, g, nil)
}

// ACOWalkWithLabel adds label scoring to every round and returns raw total
// pheromone under the default result mode.
func ACOWalkWithLabel(ctx context.Context, g *core.Graph, labels Labels, numWalks, maxStep, numIterations int,
	alpha, evaporate float64, numThreads int, opts ...Option) (*core.Graph, error) {
	e, err := NewEngine(entryConfig(numWalks, maxStep, numIterations, alpha, evaporate, numThreads), opts...)
	if err != nil {
		return nil, fmt.Errorf("ACOWalkWithLabel: %w", err)
	}
	if labels == nil {
		labels = Labels{}
	}

	return e.Run(ctx, g, labels)
}

func entryConfig(numWalks, maxStep, numIterations int, alpha, evaporate float64, numThreads int) Config {
	cfg := DefaultConfig()
	cfg.NumWalks = numWalks
	cfg.MaxStep = maxStep
	cfg.NumIterations = numIterations
	cfg.Alpha = alpha
	cfg.Evaporate = evaporate
	cfg.NumThreads = numThreads

	return cfg
}
