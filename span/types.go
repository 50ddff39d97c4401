// SPDX-License-Identifier: MIT

// Package span defines the spanning-tree record, its options and errors.
package span

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridtopo/core"
)

// NoParent is the sentinel parent of the root entry in a spanning record.
const NoParent = -1

// Sentinel errors for spanning-tree construction.
var (
	// ErrUnknownRoot is returned when the root is not an indexed vertex.
	// It wraps core.ErrUnknownRoot.
	ErrUnknownRoot = fmt.Errorf("span: %w", core.ErrUnknownRoot)

	// ErrDisconnectedGraph is returned when some vertex is unreachable from the
	// root and a full spanning tree was requested. Check reach.Cloud first, or
	// pass WithPartial to accept the root's component only.
	ErrDisconnectedGraph = errors.New("span: graph not connected from root")

	// ErrAdjacencyNil is returned if a nil adjacency pointer is passed.
	ErrAdjacencyNil = errors.New("span: adjacency is nil")
)

// TreeEdge is one entry of the spanning record: Child was discovered from
// Parent. The root entry has Parent == NoParent.
type TreeEdge struct {
	Parent int
	Child  int
}

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds parameters for a spanning-tree pass.
type Options struct {
	// Ctx allows aborting long traversals; checked once per expanded vertex.
	Ctx context.Context

	// SkipLoops drops self-loops from the odd-edge set. By default a looped
	// vertex contributes the single odd edge (v, v).
	SkipLoops bool

	// Partial returns the tree of the root's component instead of failing
	// with ErrDisconnectedGraph.
	Partial bool
}

// DefaultOptions returns Options with a background context, loops recorded
// and strict connectivity.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSkipLoops omits self-loops from the odd-edge set.
func WithSkipLoops() Option {
	return func(o *Options) { o.SkipLoops = true }
}

// WithPartial accepts a graph that is not connected from the root and
// returns the spanning tree of the root's component.
func WithPartial() Option {
	return func(o *Options) { o.Partial = true }
}

// Tree is the outcome of a spanning-tree pass.
//
//   - Record: BFS discovery order; Record[0] is {NoParent, Root}.
//   - Odd: non-tree edges in discovery order, one per undirected pair.
//   - Parent: child -> parent for every non-root vertex of the tree.
//   - Depth: hop distance from Root for every vertex of the tree.
type Tree struct {
	Root   int
	Record []TreeEdge
	Odd    []core.Pair
	Parent map[int]int
	Depth  map[int]int
}

// Len returns the number of vertices spanned (including the root).
func (t *Tree) Len() int { return len(t.Record) }

// Edges returns the tree edges, i.e. the record without the root sentinel.
// A tree over n vertices has exactly n-1 edges.
func (t *Tree) Edges() []TreeEdge {
	if len(t.Record) == 0 {
		return nil
	}
	out := make([]TreeEdge, len(t.Record)-1)
	copy(out, t.Record[1:])

	return out
}

// Contains reports whether v is spanned by the tree.
func (t *Tree) Contains(v int) bool {
	_, ok := t.Depth[v]

	return ok
}

// PathToRoot returns v, parent(v), ..., Root. Returns nil if v is not spanned.
func (t *Tree) PathToRoot(v int) []int {
	d, ok := t.Depth[v]
	if !ok {
		return nil
	}
	path := make([]int, 0, d+1)
	for cur := v; ; {
		path = append(path, cur)
		p, ok := t.Parent[cur]
		if !ok {
			break
		}
		cur = p
	}

	return path
}
