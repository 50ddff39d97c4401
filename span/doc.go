// Package span builds the breadth-first spanning tree of a grid network and
// collects its odd edges, the raw material of a fundamental cycle basis.
//
// What
//
//   - Build(adj, root) returns a Tree with:
//   - Record: tree edges in discovery order, Record[0] = {NoParent, root}
//   - Odd:    non-tree edges, one per undirected pair
//   - Parent, Depth: lookups derived during the pass
//   - Forest(adj) spans every component, one tree per component.
//
// The record doubles as the FIFO work queue: a cursor walks it while newly
// discovered vertices are appended behind it, so every spanned vertex is
// expanded exactly once.
//
// Multigraph rules
//
//   - The edge back to a vertex's own parent is never an odd edge.
//   - k parallel edges between a parent and child yield one tree edge and one
//     odd edge.
//   - A self-loop (v, v) yields the odd edge (v, v) once; WithSkipLoops drops it.
//
// For a connected simple graph len(Tree.Odd) == |E| - |V| + 1.
//
// Errors
//
//	ErrAdjacencyNil      - nil adjacency.
//	ErrUnknownRoot       - root not indexed (wraps core.ErrUnknownRoot).
//	ErrDisconnectedGraph - some vertex unreachable; check reach.Cloud first
//	                       or pass WithPartial.
//
// Complexity: O(V + E) time and memory.
package span
