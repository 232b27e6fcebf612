// SPDX-License-Identifier: MIT

package walker

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("antwalk.walker")
	meter  = otel.Meter("antwalk.walker")
)

var (
	walksTotal   metric.Int64Counter
	walkDuration metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once; later calls return the first error.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		walksTotal, err = meter.Int64Counter(
			"antwalk_walks_total",
			metric.WithDescription("Total number of simulated walks"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		walkDuration, err = meter.Float64Histogram(
			"antwalk_walk_phase_duration_seconds",
			metric.WithDescription("Duration of one orchestrated walk phase"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordWalkMetrics records one orchestrated walk phase.
func recordWalkMetrics(ctx context.Context, walks int, workers int, d time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.Int("workers", workers),
		attribute.Bool("success", success),
	)
	if success {
		walksTotal.Add(ctx, int64(walks), attrs)
	}
	walkDuration.Record(ctx, d.Seconds(), attrs)
}
