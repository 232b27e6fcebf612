// SPDX-License-Identifier: MIT
//
// File: impl_bipartite.go
// Role: CompleteBipartite(a, b): left 0..a-1 joined to right a..a+b-1.
// Determinism: left ascending, right ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/antwalk/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{a,b} (a, b ≥ 1).
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if a < minPartitionSize || b < minPartitionSize {
			return fmt.Errorf("%s: a=%d, b=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, a, b, minPartitionSize, ErrTooFewVertices)
		}
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err := cfg.addEdge(g, methodCompleteBipartite, i, a+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
