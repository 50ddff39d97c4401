// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Pair and Graph declarations, sentinel errors, NewGraph.
// Policy:
//   - Graph is immutable after NewGraph; no mutators are exposed.
//   - Every edge endpoint must name an existing vertex.
//   - Vertex iteration order is ascending by ID; edge order is input order.

package core

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidGraph indicates an empty vertex set, a duplicate vertex ID,
	// or an edge whose endpoint is not a vertex of the graph.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrUnknownRoot indicates a traversal root that is not a vertex of the graph.
	// Traversal packages wrap it so errors.Is(err, core.ErrUnknownRoot) holds
	// regardless of which stage rejected the root.
	ErrUnknownRoot = errors.New("core: unknown root")
)

// Vertex is a node of the network.
//
// ID uniquely identifies the vertex within its Graph.
// Attrs carries the dataset attributes of the node (bus name, voltage, ...).
// Attrs is shared, not deep-copied, by the accessors.
type Vertex struct {
	ID    int
	Attrs map[string]any
}

// Edge is an undirected connection between From and To.
//
// From == To denotes a self-loop. Parallel edges between the same pair are
// independent entries distinguished by Index (position in input order).
type Edge struct {
	Index int
	From  int
	To    int
	Attrs map[string]any
}

// Pair is an endpoint pair without attributes. It is used for edge input,
// odd (non-tree) edges and cycle steps.
type Pair struct {
	U int
	V int
}

// Reverse returns the pair with its endpoints swapped.
func (p Pair) Reverse() Pair { return Pair{U: p.V, V: p.U} }

// IsLoop reports whether both endpoints coincide.
func (p Pair) IsLoop() bool { return p.U == p.V }

// String renders the pair as "(u, v)", the notation used by grid datasets.
func (p Pair) String() string { return fmt.Sprintf("(%d, %d)", p.U, p.V) }

// Graph is an immutable undirected multigraph.
//
// ids holds vertex IDs in ascending order; index maps an ID to its position in
// ids and vertices. edges keeps input order.
type Graph struct {
	ids      []int
	vertices []Vertex
	index    map[int]int
	edges    []Edge
}

// NewGraph validates the vertex and edge lists and returns an immutable Graph.
//
// Edge.Index values supplied by the caller are ignored and reassigned in input
// order. Returns ErrInvalidGraph (wrapped with context) when the vertex set is
// empty, a vertex ID repeats, or an edge references an unknown vertex.
//
// Complexity: O(V log V + E).
func NewGraph(vertices []Vertex, edges []Edge) (*Graph, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("%w: empty vertex set", ErrInvalidGraph)
	}

	vs := make([]Vertex, len(vertices))
	copy(vs, vertices)
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].ID < vs[j].ID })

	g := &Graph{
		ids:      make([]int, len(vs)),
		vertices: vs,
		index:    make(map[int]int, len(vs)),
		edges:    make([]Edge, len(edges)),
	}
	for i, v := range vs {
		if _, dup := g.index[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate vertex %d", ErrInvalidGraph, v.ID)
		}
		g.index[v.ID] = i
		g.ids[i] = v.ID
	}

	for i, e := range edges {
		if _, ok := g.index[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge #%d (%d, %d) references unknown vertex %d",
				ErrInvalidGraph, i, e.From, e.To, e.From)
		}
		if _, ok := g.index[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge #%d (%d, %d) references unknown vertex %d",
				ErrInvalidGraph, i, e.From, e.To, e.To)
		}
		e.Index = i
		g.edges[i] = e
	}

	return g, nil
}

// NewGraphFromIDs builds a Graph without attributes from bare vertex IDs and
// endpoint pairs. Validation is identical to NewGraph.
func NewGraphFromIDs(ids []int, pairs []Pair) (*Graph, error) {
	vs := make([]Vertex, len(ids))
	for i, id := range ids {
		vs[i] = Vertex{ID: id}
	}
	es := make([]Edge, len(pairs))
	for i, p := range pairs {
		es[i] = Edge{From: p.U, To: p.V}
	}

	return NewGraph(vs, es)
}
