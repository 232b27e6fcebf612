// SPDX-License-Identifier: MIT
//
// File: impl_star.go
// Role: Star(n): center 0 joined to leaves 1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/antwalk/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star S_n with center 0 (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := cfg.addEdge(g, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
