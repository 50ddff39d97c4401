// SPDX-License-Identifier: MIT
// Package: gridtopo/builder
//
// impl_path.go — Path(n), Cycle(n), Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Vertices are added via cfg.idFn in ascending index order.
//   • Edges are emitted in a stable, documented order per topology.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time O(n), Space O(1) extra.

package builder

import "fmt"

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"
	methodWheel = "Wheel"

	minPathNodes  = 1
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
)

// Path returns a Constructor for the n-vertex path 0─1─…─(n-1).
// A path is a tree: connected, n-1 edges, no odd edges.
func Path(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		s.addVertex(cfg.idFn(0))
		for i := 0; i+1 < n; i++ {
			s.addEdge(cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring C_n: edges i─(i+1)%n for i=0..n-1.
func Cycle(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.addVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			s.addEdge(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Star returns a Constructor for a hub (index 0) with n-1 leaves (1..n-1),
// the shape of a radial distribution feeder.
func Star(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		s.addVertex(hub)
		for i := 1; i < n; i++ {
			s.addEdge(hub, cfg.idFn(i))
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: a hub (index 0) joined to every vertex
// of the rim cycle 1..n-1. Spokes are emitted before rim edges.
func Wheel(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		s.addVertex(hub)
		for i := 1; i < n; i++ {
			s.addEdge(hub, cfg.idFn(i))
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			s.addEdge(cfg.idFn(1+i), cfg.idFn(1+(i+1)%rim))
		}

		return nil
	}
}
