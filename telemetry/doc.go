// SPDX-License-Identifier: MIT

// Package telemetry wires the OpenTelemetry SDK for antwalk binaries.
//
// The walker and aco packages only use the otel API (otel.Tracer and
// otel.Meter). Until Init installs real providers those calls are no-ops,
// so library users pay nothing for instrumentation they never enable.
//
// Exporters:
//
//	traces:  "stdout", "otlp", "none"
//	metrics: "prometheus", "stdout", "none"
//
// The Prometheus reader registers into a private registry; MetricsHandler
// serves it over HTTP.
//
// Usage:
//
//	shutdown, err := telemetry.Init(ctx, telemetry.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer shutdown(context.Background())
package telemetry
