// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: Root command, shared flags, and per-run setup: config, logger,
//       telemetry providers, and the optional /metrics listener.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/antwalk/bfs"
	"github.com/katalvlaran/antwalk/core"
	"github.com/katalvlaran/antwalk/telemetry"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string

	// Flag values; each overrides the file only when set explicitly.
	logLevel       string
	logFormat      string
	traceExporter  string
	metricExporter string
	metricsAddr    string
	graph          graphConfig

	cfg      fileConfig
	log      *slog.Logger
	shutdown func(context.Context) error
	server   *http.Server
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "antwalk",
		Short:         "Random walks and pheromone reinforcement on undirected graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "text or json")
	pf.StringVar(&a.traceExporter, "trace-exporter", telemetry.ExporterNone, "stdout, otlp or none")
	pf.StringVar(&a.metricExporter, "metric-exporter", telemetry.ExporterNone, "prometheus, stdout or none")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "serve /metrics on this address (prometheus exporter)")
	pf.StringVar(&a.graph.Edges, "edges", "", "edge list file: \"u v [w]\" per line")
	pf.StringVar(&a.graph.Topology, "topology", "", "generated graph, e.g. cycle:10 or grid:4x4+path:3")
	pf.StringVar(&a.graph.Weight, "weight", "", "weights for --topology: const:W, uniform:LO:HI, normal:M:S, exp:R")
	pf.Int64Var(&a.graph.Seed, "graph-seed", 1, "seed for stochastic topologies and weights")

	root.AddCommand(newWalkCmd(a), newACOCmd(a), newInspectCmd(a))

	return root
}

// runE wraps a subcommand body with setup and teardown.
func (a *app) runE(body func(ctx context.Context, cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) (err error) {
		if err = a.setup(cmd); err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, a.teardown())
		}()

		// Ends before teardown flushes the exporters.
		ctx, span := otel.Tracer("antwalk.cmd").Start(cmd.Context(), "antwalk."+cmd.Name())
		defer span.End()
		if err = body(ctx, cmd); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		return err
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	override(cmd, "log-level", &cfg.Log.Level, a.logLevel)
	override(cmd, "log-format", &cfg.Log.Format, a.logFormat)
	override(cmd, "trace-exporter", &cfg.Telemetry.TraceExporter, a.traceExporter)
	override(cmd, "metric-exporter", &cfg.Telemetry.MetricExporter, a.metricExporter)
	override(cmd, "metrics-addr", &cfg.MetricsAddr, a.metricsAddr)
	if cmd.Flags().Changed("edges") || cmd.Flags().Changed("topology") {
		cfg.Graph.Edges, cfg.Graph.Topology = a.graph.Edges, a.graph.Topology
	}
	override(cmd, "weight", &cfg.Graph.Weight, a.graph.Weight)
	override(cmd, "graph-seed", &cfg.Graph.Seed, a.graph.Seed)
	a.cfg = cfg

	if a.log, err = newLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	cfg.Telemetry.Writer = cmd.ErrOrStderr()
	if a.shutdown, err = telemetry.Init(cmd.Context(), cfg.Telemetry); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	a.serveMetrics()

	return nil
}

func (a *app) serveMetrics() {
	h := telemetry.MetricsHandler()
	if a.cfg.MetricsAddr == "" || h == nil {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	a.server = &http.Server{Addr: a.cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics listener stopped", slog.String("addr", a.cfg.MetricsAddr), slog.String("error", err.Error()))
		}
	}()
	a.log.Info("serving metrics", slog.String("addr", a.cfg.MetricsAddr))
}

func (a *app) teardown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []error
	if a.server != nil {
		errs = append(errs, a.server.Shutdown(ctx))
	}
	if a.shutdown != nil {
		errs = append(errs, a.shutdown(ctx))
	}

	return errors.Join(errs...)
}

// loadGraph reads the configured graph and warns about isolated nodes,
// which every walker treats as dead ends.
func (a *app) loadGraph() (*core.Graph, error) {
	g, err := loadGraph(a.cfg.Graph)
	if err != nil {
		return nil, err
	}
	if iso := bfs.Isolated(g); len(iso) > 0 {
		a.log.Warn("graph has isolated nodes", slog.Int("count", len(iso)), slog.Any("first", iso[0]))
	}
	a.log.Debug("graph loaded", slog.Int("nodes", g.NumberOfNodes()), slog.Int("edges", g.NumberOfEdges()))

	return g, nil
}

// override sets *dst to v when flag name was given on the command line.
func override[T any](cmd *cobra.Command, name string, dst *T, v T) {
	if cmd.Flags().Changed(name) {
		*dst = v
	}
}
