// Package core provides the immutable network model consumed by the
// topology algorithms: an undirected multigraph of integer-identified
// vertices, and the adjacency index derived from it.
//
// The Graph G = (V,E) is built once from a dataset and never mutated:
//
//   - Vertex IDs are ints, unique within the graph; V must not be empty.
//   - Edges are unordered pairs; self-loops (v,v) and parallel edges are kept
//     as independent entries, numbered by input position (Edge.Index).
//   - Every edge endpoint must be a vertex (ErrInvalidGraph otherwise).
//
// Adjacency is derived with BuildAdjacency:
//
//	a──b        Adjacency:
//	│           a: [b c]
//	c  (c,c)    b: [a]
//	            c: [a c c]
//
// Neighbor order follows edge order, duplicates are retained, and a self-loop
// lists its vertex twice. Because both Graph and Adjacency are read-only, they
// can be shared between goroutines analysing different roots.
//
// Errors:
//
//	ErrInvalidGraph   - empty vertex set, duplicate vertex, dangling edge, nil graph.
//	ErrVertexNotFound - lookup of an ID that is not indexed.
//	ErrUnknownRoot    - traversal root not in the graph (wrapped by reach and span).
package core
