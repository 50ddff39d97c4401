// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: Adjacency index derived once from a Graph.
// Policy:
//   - Neighbor order follows edge input order; duplicates are kept.
//   - A self-loop (v, v) appends v to its own list twice, once per endpoint.
//   - The index is read-only after BuildAdjacency and safe for concurrent readers.

package core

import "fmt"

// Adjacency maps every vertex to its ordered neighbor sequence.
type Adjacency struct {
	ids  []int
	nbrs map[int][]int
}

// BuildAdjacency derives the neighbor lists of g.
//
// Implementation:
//   - Stage 1: Seed an empty list for every vertex (isolated vertices stay present).
//   - Stage 2: For each edge (u, v) append v to u and u to v.
//
// Errors:
//   - ErrInvalidGraph if g is nil. A Graph built by NewGraph always satisfies
//     the endpoint invariant, so no other error is possible.
//
// Determinism:
//   - Two builds over the same Graph produce identical neighbor slices.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func BuildAdjacency(g *Graph) (*Adjacency, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidGraph)
	}

	adj := &Adjacency{
		ids:  g.Vertices(),
		nbrs: make(map[int][]int, len(g.ids)),
	}
	for _, id := range g.ids {
		adj.nbrs[id] = []int{}
	}
	for _, e := range g.edges {
		adj.nbrs[e.From] = append(adj.nbrs[e.From], e.To)
		adj.nbrs[e.To] = append(adj.nbrs[e.To], e.From)
	}

	return adj, nil
}

// Vertices returns the indexed vertex IDs in ascending order.
func (a *Adjacency) Vertices() []int {
	out := make([]int, len(a.ids))
	copy(out, a.ids)

	return out
}

// Len returns the number of indexed vertices.
func (a *Adjacency) Len() int { return len(a.ids) }

// Has reports whether id is indexed.
func (a *Adjacency) Has(id int) bool {
	_, ok := a.nbrs[id]

	return ok
}

// Neighbors returns a copy of the neighbor sequence of id.
// Returns ErrVertexNotFound if id is not indexed.
func (a *Adjacency) Neighbors(id int) ([]int, error) {
	list, ok := a.nbrs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]int, len(list))
	copy(out, list)

	return out, nil
}

// Each calls fn for every neighbor of id in index order without copying.
// fn must not retain or mutate anything; it is the hot path of the traversals.
// Unknown IDs yield no calls.
func (a *Adjacency) Each(id int, fn func(nbr int)) {
	for _, n := range a.nbrs[id] {
		fn(n)
	}
}

// Degree returns the length of the neighbor sequence of id; a self-loop
// contributes 2. Returns ErrVertexNotFound if id is not indexed.
func (a *Adjacency) Degree(id int) (int, error) {
	list, ok := a.nbrs[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return len(list), nil
}
