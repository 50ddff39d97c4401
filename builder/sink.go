// SPDX-License-Identifier: MIT
// Package: gridtopo/builder
//
// sink.go - mutable accumulator that constructors write into.
//
// core.Graph is immutable, so constructors cannot mutate it directly. The sink
// collects vertices (idempotent, first-insertion order) and edges (append-only,
// multigraph) and freezes them once through core.NewGraph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/core"
)

type sink struct {
	seen  map[int]struct{}
	verts []core.Vertex
	edges []core.Edge
}

func newSink() *sink {
	return &sink{seen: make(map[int]struct{})}
}

// addVertex inserts id if absent. Repeated calls are no-ops.
func (s *sink) addVertex(id int) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.verts = append(s.verts, core.Vertex{ID: id})
}

// addEdge appends the undirected edge (u, v), auto-adding both endpoints.
func (s *sink) addEdge(u, v int) {
	s.addVertex(u)
	s.addVertex(v)
	s.edges = append(s.edges, core.Edge{From: u, To: v})
}

// freeze validates the collected lists; both ErrConstructFailed and the core
// sentinel stay visible to errors.Is.
func (s *sink) freeze() (*core.Graph, error) {
	g, err := core.NewGraph(s.verts, s.edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstructFailed, err)
	}

	return g, nil
}
