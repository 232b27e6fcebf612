// SPDX-License-Identifier: MIT
//
// File: impl_wheel.go
// Role: Wheel(n): rim cycle over 1..n-1 plus spokes from hub 0.
// Determinism: rim edges first (ascending), then spokes (ascending).

package builder

import (
	"fmt"

	"github.com/katalvlaran/antwalk/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor for W_n = C_{n-1} + hub (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := cfg.addEdge(g, methodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := cfg.addEdge(g, methodWheel, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
