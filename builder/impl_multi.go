// SPDX-License-Identifier: MIT
// Package: gridtopo/builder
//
// impl_multi.go — primitive constructors for multigraph features and
// hand-drawn fixtures: Edge, Loop, Parallel, Isolated.
//
// Indices are local and mapped through cfg.idFn like every other constructor,
// so they compose with Offset and WithOffset.

package builder

import "fmt"

const (
	methodLoop     = "Loop"
	methodParallel = "Parallel"
	methodIsolated = "Isolated"

	minParallel = 1
	minIsolated = 1
)

// Edge returns a Constructor adding the single edge i─j.
func Edge(i, j int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		s.addEdge(cfg.idFn(i), cfg.idFn(j))

		return nil
	}
}

// Loop returns a Constructor adding the self-loop i─i.
func Loop(i int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		id := cfg.idFn(i)
		s.addEdge(id, id)

		return nil
	}
}

// Parallel returns a Constructor adding k parallel edges i─j.
func Parallel(i, j, k int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if k < minParallel {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodParallel, k, minParallel, ErrTooFewVertices)
		}
		u, v := cfg.idFn(i), cfg.idFn(j)
		for n := 0; n < k; n++ {
			s.addEdge(u, v)
		}

		return nil
	}
}

// Isolated returns a Constructor adding n vertices (indices 0..n-1) without
// edges; such buses always end up in the cloud unless one is the root.
func Isolated(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minIsolated {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolated, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.addVertex(cfg.idFn(i))
		}

		return nil
	}
}
