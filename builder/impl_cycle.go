// SPDX-License-Identifier: MIT
//
// File: impl_cycle.go
// Role: Cycle(n): path plus the closing edge (n-1)-0.
// Determinism: edges emitted i → (i+1)%n for i ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/antwalk/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := cfg.addEdge(g, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
