// Package builder provides reusable “functional‐options”‐style constructors
// for deterministic network fixtures: the canonical topologies used to test
// and benchmark reachability, spanning trees and cycle bases.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): resolve options, run constructors, freeze
//     the result into an immutable core.Graph.
//     – Offset(k, c): shift one constructor's IDs to compose disjoint components.
//   - Topologies:
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(rows, cols)
//     – RandomSparse(n, p) (needs WithSeed/WithRand for 0<p<1)
//     – Edge(i, j), Loop(i), Parallel(i, j, k), Isolated(n)
//   - Options:
//     – WithOffset(k), WithIDScheme(fn), WithSeed(seed), WithRand(r)
//
// Guarantees:
//
//   - Vertex insertion is idempotent, so constructors can share vertices
//     (BuildGraph(nil, Path(3), Loop(2)) adds a loop to the path's end).
//   - Edges are never deduplicated: the result is a multigraph.
//   - Structured errors: ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed, all matched with errors.Is.
//
// Example:
//
//	// Two islands: a triangle {0,1,2} and a radial feeder {100..103}.
//	g, err := builder.BuildGraph(nil,
//	    builder.Cycle(3),
//	    builder.Offset(100, builder.Star(4)),
//	)
package builder
