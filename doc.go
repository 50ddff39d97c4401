// Package gridtopo answers two questions about an electrical grid modelled as
// an undirected multigraph: is every bus reachable from the grid root, and
// which independent loops does the network contain?
//
// What is in the box
//
//	core/       immutable Graph (vertices, edges, attributes) and its Adjacency
//	reach/      breadth-first reachability: the "cloud" of unreached buses, components
//	span/       BFS spanning tree plus odd (non-tree) edges, spanning forest
//	cycle/      one fundamental cycle per odd edge, via the true lowest common ancestor
//	topology/   Analyzer facade: full pipeline, multi-root analysis, classification
//	dataset/    JSON / YAML network documents and a SQLite store
//	builder/    deterministic fixtures: Path, Cycle, Star, Wheel, Complete, Grid, ...
//	cmd/gridtopo  the command-line front end
//
// Pipeline:
//
//	dataset ─► core.Graph ─► core.Adjacency ─┬─► reach.Cloud
//	                                          └─► span.Build ─► cycle.Extract
//
// Quick ASCII example:
//
//	    1───2
//	     \ /        root 1: cloud {}, tree {(1,2), (1,3)},
//	      3         odd {(2,3)}, cycle 2 -> 1 -> 3 -> 2
//
// Guarantees:
//
//   - Pure functions over read-only inputs; Graph and Adjacency can be shared
//     across goroutines.
//   - Self-loops and parallel lines are first-class: they are kept in the
//     adjacency and close their own cycles.
//   - Errors are package sentinels wrapped with context; match with errors.Is.
//
//	go install github.com/katalvlaran/gridtopo/cmd/gridtopo@latest
package gridtopo
