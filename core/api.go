// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters on Graph.
// Policy:
//   - No algorithms here; traversal lives in reach, span and cycle.
//   - Slices returned to callers are copies; Attrs maps are shared.

package core

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	out := make([]int, len(g.ids))
	copy(out, g.ids)

	return out
}

// Vertex returns the vertex with the given ID and whether it exists.
// Complexity: O(1).
func (g *Graph) Vertex(id int) (Vertex, bool) {
	i, ok := g.index[id]
	if !ok {
		return Vertex{}, false
	}

	return g.vertices[i], true
}

// HasVertex reports whether id is a vertex of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.index[id]

	return ok
}

// Edges returns all edges in input order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.ids) }

// EdgeCount returns |E|, counting every parallel edge and self-loop.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// GraphStats is a snapshot of graph sizes used for diagnostics and reports.
type GraphStats struct {
	VertexCount   int // |V|
	EdgeCount     int // |E| including loops and parallels
	SelfLoops     int // edges with From == To
	ParallelEdges int // edges whose unordered pair was already seen
	Isolated      int // vertices with no incident edge
}

// Stats scans the edge list once and reports the multigraph shape.
//
// Implementation:
//   - Stage 1: Count loops and repeated unordered pairs.
//   - Stage 2: Count vertices that never appear as an endpoint.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) Stats() GraphStats {
	st := GraphStats{VertexCount: len(g.ids), EdgeCount: len(g.edges)}

	seen := make(map[Pair]struct{}, len(g.edges))
	touched := make(map[int]struct{}, len(g.ids))
	for _, e := range g.edges {
		touched[e.From] = struct{}{}
		touched[e.To] = struct{}{}
		if e.From == e.To {
			st.SelfLoops++
		}
		key := normalize(e.From, e.To)
		if _, dup := seen[key]; dup {
			st.ParallelEdges++
			continue
		}
		seen[key] = struct{}{}
	}
	st.Isolated = len(g.ids) - len(touched)

	return st
}

// normalize orders a pair so that U <= V; undirected pairs then compare equal.
func normalize(a, b int) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{U: a, V: b}
}
