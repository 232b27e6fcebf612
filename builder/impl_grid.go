// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid(rows, cols): 4-neighborhood lattice, node id r·cols + c.
// Determinism: row-major; for each cell the right edge, then the bottom edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/antwalk/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols grid. A 1×1 grid is a single
// isolated node.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		cfg.addNodes(g, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := cfg.addEdge(g, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.addEdge(g, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
