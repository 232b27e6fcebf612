// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Input readers: whitespace edge lists, label files, topology specs.
//
// Edge list lines are "u v" or "u v w", or a lone "u" for an isolated
// node; label lines are "node l1 l2 ...".
// Blank lines and lines starting with '#' are skipped.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/builder"
	"github.com/katalvlaran/antwalk/core"
)

// loadGraph reads cfg.Edges or builds cfg.Topology.
func loadGraph(cfg graphConfig) (*core.Graph, error) {
	switch {
	case cfg.Edges != "":
		f, err := os.Open(cfg.Edges)
		if err != nil {
			return nil, fmt.Errorf("open edges: %w", err)
		}
		defer f.Close()

		return readEdgeList(f)

	case cfg.Topology != "":
		cons, err := builder.ParseTopology(cfg.Topology)
		if err != nil {
			return nil, err
		}
		weight, err := builder.ParseWeight(cfg.Weight)
		if err != nil {
			return nil, err
		}

		return builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(cfg.Seed), weight}, cons...)
	}

	return nil, fmt.Errorf("graph: need --edges or --topology: %w", errConfig)
}

func readEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	err := scanFields(r, func(line int, fields []string) error {
		if len(fields) > 3 {
			return fmt.Errorf("line %d: want \"u [v [w]]\": %w", line, errConfig)
		}
		u, err := parseNode(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if len(fields) == 1 {
			g.AddNode(u)
			return nil
		}
		v, err := parseNode(fields[1])
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		w := builder.DefaultEdgeWeight
		if len(fields) == 3 {
			if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return fmt.Errorf("line %d: weight: %w", line, err)
			}
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("edge list: %w", err)
	}

	return g, nil
}

func readLabels(r io.Reader) (aco.Labels, error) {
	labels := aco.Labels{}
	err := scanFields(r, func(line int, fields []string) error {
		u, err := parseNode(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		for _, f := range fields[1:] {
			l, err := strconv.Atoi(f)
			if err != nil {
				return fmt.Errorf("line %d: label %q: %w", line, f, err)
			}
			labels[u] = append(labels[u], l)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}

	return labels, nil
}

func loadLabels(path string) (aco.Labels, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open labels: %w", err)
	}
	defer f.Close()

	return readLabels(f)
}

func scanFields(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(line, strings.Fields(text)); err != nil {
			return err
		}
	}

	return sc.Err()
}

func parseNode(s string) (core.Node, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("node %q: want a non-negative integer: %w", s, errConfig)
	}

	return core.Node(n), nil
}
