// SPDX-License-Identifier: MIT

package span

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridtopo/core"
)

// builder carries the mutable state of one spanning pass. The record itself
// is the FIFO: head is the index of the next entry to expand, and appending a
// tree edge enqueues its child.
type builder struct {
	adj  *core.Adjacency
	opts Options
	ctx  context.Context
	head int
	tree *Tree
	odd  map[core.Pair]struct{}
}

func newBuilder(adj *core.Adjacency, root int, opts Options) *builder {
	n := adj.Len()
	t := &Tree{
		Root:   root,
		Record: make([]TreeEdge, 0, n),
		Odd:    []core.Pair{},
		Parent: make(map[int]int, n),
		Depth:  make(map[int]int, n),
	}
	t.Record = append(t.Record, TreeEdge{Parent: NoParent, Child: root})
	t.Depth[root] = 0

	return &builder{
		adj:  adj,
		opts: opts,
		ctx:  opts.Ctx,
		tree: t,
		odd:  make(map[core.Pair]struct{}),
	}
}

// Build grows a breadth-first spanning tree of adj from root and collects the
// odd edges: every edge that closes a cycle against the tree.
//
// For the entry (parent, actual) being expanded, each neighbor child of
// actual is handled as follows:
//   - the edge back to actual's own parent is skipped;
//   - an already spanned child yields the odd edge (actual, child), unless
//     that undirected pair is already odd;
//   - an unspanned child is appended as the tree edge (actual, child).
//
// Returns ErrAdjacencyNil, ErrUnknownRoot, ctx.Err() on cancellation, or
// ErrDisconnectedGraph when some vertex of adj is not reachable from root
// (unless WithPartial was given). No partial tree is returned on error.
//
// Complexity: O(V + E) time, O(V + E) memory.
func Build(adj *core.Adjacency, root int, opts ...Option) (*Tree, error) {
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !adj.Has(root) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRoot, root)
	}

	b := newBuilder(adj, root, o)
	if err := b.loop(); err != nil {
		return nil, err
	}
	if missing := adj.Len() - len(b.tree.Record); missing > 0 && !o.Partial {
		return nil, fmt.Errorf("%w: %d of %d vertices unreached from %d",
			ErrDisconnectedGraph, missing, adj.Len(), root)
	}

	return b.tree, nil
}

// loop expands record entries in order until none are left.
func (b *builder) loop() error {
	for b.head < len(b.tree.Record) {
		select {
		case <-b.ctx.Done():
			return b.ctx.Err()
		default:
		}

		actual := b.tree.Record[b.head].Child
		b.head++
		b.adj.Each(actual, func(child int) { b.visit(actual, child) })
	}

	return nil
}

// visit classifies the edge (actual, child) seen while expanding actual.
func (b *builder) visit(actual, child int) {
	if p, ok := b.tree.Parent[actual]; ok && p == child {
		return
	}
	if _, spanned := b.tree.Depth[child]; !spanned {
		b.tree.Record = append(b.tree.Record, TreeEdge{Parent: actual, Child: child})
		b.tree.Parent[child] = actual
		b.tree.Depth[child] = b.tree.Depth[actual] + 1

		return
	}
	if actual == child && b.opts.SkipLoops {
		return
	}

	e := core.Pair{U: actual, V: child}
	if _, dup := b.odd[e]; dup {
		return
	}
	if _, dup := b.odd[e.Reverse()]; dup {
		return
	}
	b.odd[e] = struct{}{}
	b.tree.Odd = append(b.tree.Odd, e)
}
