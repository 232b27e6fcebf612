// SPDX-License-Identifier: MIT

package aco

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("antwalk.aco")
	meter  = otel.Meter("antwalk.aco")
)

var (
	roundsTotal   metric.Int64Counter
	roundDuration metric.Float64Histogram
	runsTotal     metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once; later calls return the first error.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		roundsTotal, err = meter.Int64Counter(
			"antwalk_aco_rounds_total",
			metric.WithDescription("Total number of completed pheromone rounds"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		roundDuration, err = meter.Float64Histogram(
			"antwalk_aco_round_duration_seconds",
			metric.WithDescription("Duration of one pheromone round"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runsTotal, err = meter.Int64Counter(
			"antwalk_aco_runs_total",
			metric.WithDescription("Total number of engine runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordRoundMetrics records one completed round.
func recordRoundMetrics(ctx context.Context, labeled bool, d time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("labeled", labeled))
	roundsTotal.Add(ctx, 1, attrs)
	roundDuration.Record(ctx, d.Seconds(), attrs)
}

// recordRunMetrics records one finished run.
func recordRunMetrics(ctx context.Context, labeled, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	runsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("labeled", labeled),
		attribute.Bool("success", success),
	))
}
