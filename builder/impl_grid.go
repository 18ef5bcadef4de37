// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// impl_grid.go — 2D orthogonal grid with 4-neighbourhood.
//
// Node (r, c) has index r*cols + c. For each cell, the right then the
// bottom neighbour is connected where it exists.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netsim/matrix"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid lays n = rows·cols nodes on a grid.
func Grid(rows, cols int) Constructor {
	return func(adj *matrix.Dense, _ config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewNodes)
		}
		if n := adj.Rows(); rows*cols != n {
			return fmt.Errorf("%s: %dx%d for n=%d: %w", methodGrid, rows, cols, n, ErrShapeMismatch)
		}

		var r, c, at int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				at = r*cols + c
				if c+1 < cols {
					if err := connect(adj, at, at+1); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := connect(adj, at, at+cols); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}
		return nil
	}
}
