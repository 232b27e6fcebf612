// SPDX-License-Identifier: MIT
//
// File: impl_complete.go
// Role: Complete(n): every pair i<j.
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/antwalk/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n (n ≥ 1). K_1 is a single isolated node.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		cfg.addNodes(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.addEdge(g, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
