// SPDX-License-Identifier: MIT
// Package: gridtopo/builder
//
// impl_grid.go — Complete(n) and Grid(rows, cols) constructors.
//
// Determinism:
//   • Complete: pairs {i,j} with i<j, i asc then j asc.
//   • Grid: row-major indices r*cols+c; for each cell emit Right then Bottom.

package builder

import "fmt"

const (
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minCompleteNodes = 1
	minGridDim       = 1
)

// Complete returns a Constructor for K_n (n(n-1)/2 edges).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.addVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.addEdge(cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols orthogonal mesh, the typical
// shape of a meshed urban network. Cell (r,c) has index r*cols+c.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.addVertex(cfg.idFn(r*cols + c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.idFn(r*cols + c)
				if c+1 < cols {
					s.addEdge(u, cfg.idFn(r*cols+c+1))
				}
				if r+1 < rows {
					s.addEdge(u, cfg.idFn((r+1)*cols+c))
				}
			}
		}

		return nil
	}
}
