// SPDX-License-Identifier: MIT
//
// File: impl_path.go
// Role: Path(n): 0-1-…-(n-1).
// Determinism: edges emitted for i ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/antwalk/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := cfg.addEdge(g, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
