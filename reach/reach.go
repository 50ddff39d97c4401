// SPDX-License-Identifier: MIT

package reach

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridtopo/core"
)

// walker encapsulates mutable traversal state for one pass.
type walker struct {
	adj     *core.Adjacency
	opts    Options
	ctx     context.Context
	queue   []int
	visited map[int]struct{}
	order   []int
}

func newWalker(adj *core.Adjacency, opts Options) *walker {
	n := adj.Len()

	return &walker{
		adj:     adj,
		opts:    opts,
		ctx:     opts.Ctx,
		queue:   make([]int, 0, n),
		visited: make(map[int]struct{}, n),
		order:   make([]int, 0, n),
	}
}

// Cloud runs a breadth-first pass from root and reports the cloud: every
// vertex of adj that root cannot reach. An empty cloud means the network is
// connected from root.
//
// Returns ErrAdjacencyNil, ErrUnknownRoot, ctx.Err() on cancellation, or a
// wrapped OnVisit error. adj is never mutated.
//
// Complexity: O(V + E) time, O(V) memory.
func Cloud(adj *core.Adjacency, root int, opts ...Option) (*Result, error) {
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

	w := newWalker(adj, o)
	w.enqueue(root)
	if err := w.loop(); err != nil {
		return nil, err
	}

	res := &Result{Root: root, Visited: w.order, Cloud: []int{}, reached: w.visited}
	for _, v := range adj.Vertices() {
		if _, ok := w.visited[v]; !ok {
			res.Cloud = append(res.Cloud, v)
		}
	}

	return res, nil
}

// Connected reports whether every vertex of adj is reachable from root.
func Connected(adj *core.Adjacency, root int) (bool, error) {
	res, err := Cloud(adj, root)
	if err != nil {
		return false, err
	}

	return res.Connected(), nil
}

// enqueue marks id visited, records its discovery and pushes it to the back.
func (w *walker) enqueue(id int) {
	w.visited[id] = struct{}{}
	w.order = append(w.order, id)
	w.queue = append(w.queue, id)
}

// loop pops the front vertex until the queue drains, an error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("reach: OnVisit error at %d: %w", id, err)
		}
		w.adj.Each(id, func(nbr int) {
			if _, seen := w.visited[nbr]; !seen {
				w.enqueue(nbr)
			}
		})
	}

	return nil
}
