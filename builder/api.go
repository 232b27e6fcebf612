// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: BuildGraph orchestrator and constructor composition helpers.
// Determinism:
//   - Constructors run in argument order against one resolved config, so a
//     seeded RNG is consumed in a fixed order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/antwalk/core"
)

// Constructor applies one deterministic topology to g. Implementations
// validate their parameters first and return wrapped sentinels; they never
// panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph resolves bopts, creates an empty graph and applies cons in order.
// The first constructor error is returned wrapped as "BuildGraph: %w"; the
// partial graph is discarded.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs cons against an existing graph. Useful to extend a fixture.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// Offset shifts the node ids of c by off on top of any WithIDOffset.
// Panics on a negative offset or a nil constructor.
func Offset(off int, c Constructor) Constructor {
	if off < 0 || c == nil {
		panic("builder: Offset(off<0 or nil constructor)")
	}
	return func(g *core.Graph, cfg builderConfig) error {
		cfg.idOffset += off
		return c(g, cfg)
	}
}

// wrapAddEdge gives core.AddEdge failures constructor context.
func wrapAddEdge(method string, u, v core.Node, w float64, err error) error {
	return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", method, u, v, w, err)
}
