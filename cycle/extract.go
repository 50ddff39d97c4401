// SPDX-License-Identifier: MIT

package cycle

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/core"
	"github.com/katalvlaran/gridtopo/span"
)

// lineage is the parent/depth lookup rebuilt from a spanning record.
type lineage struct {
	parent map[int]int
	depth  map[int]int
}

// newLineage validates record against root and derives parents and depths.
// The record must open with {NoParent, root}, name every child once, and
// list each parent before its children (BFS discovery order).
func newLineage(record []span.TreeEdge, root int) (*lineage, error) {
	if len(record) == 0 {
		return nil, fmt.Errorf("%w: empty record", ErrInvalidSpanningState)
	}
	if head := record[0]; head.Parent != span.NoParent || head.Child != root {
		return nil, fmt.Errorf("%w: record starts with (%d, %d), want (%d, %d)",
			ErrInvalidSpanningState, head.Parent, head.Child, span.NoParent, root)
	}

	l := &lineage{
		parent: make(map[int]int, len(record)),
		depth:  make(map[int]int, len(record)),
	}
	l.depth[root] = 0
	for i, e := range record[1:] {
		if _, dup := l.depth[e.Child]; dup {
			return nil, fmt.Errorf("%w: vertex %d spanned twice (entry %d)",
				ErrInvalidSpanningState, e.Child, i+1)
		}
		d, ok := l.depth[e.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: entry %d has unspanned parent %d",
				ErrInvalidSpanningState, i+1, e.Parent)
		}
		l.parent[e.Child] = e.Parent
		l.depth[e.Child] = d + 1
	}

	return l, nil
}

// walk closes the odd edge (u, v) over the tree: u up to the lowest common
// ancestor, down to v, and back to u. The deeper endpoint is lifted first so
// both sides meet at the true LCA wherever it lies.
func (l *lineage) walk(u, v int) Cycle {
	if u == v {
		return Cycle{u, u}
	}

	left, right := []int{u}, []int{v}
	a, b := u, v
	for l.depth[a] > l.depth[b] {
		a = l.parent[a]
		left = append(left, a)
	}
	for l.depth[b] > l.depth[a] {
		b = l.parent[b]
		right = append(right, b)
	}
	for a != b {
		a, b = l.parent[a], l.parent[b]
		left = append(left, a)
		right = append(right, b)
	}

	// left ends at the LCA; right's copy of it is dropped.
	c := make(Cycle, 0, len(left)+len(right))
	c = append(c, left...)
	for i := len(right) - 2; i >= 0; i-- {
		c = append(c, right[i])
	}

	return append(c, u)
}

// Extract returns one fundamental cycle per odd edge, in odd-edge order.
// record and odd must come from the same spanning pass rooted at root.
//
// Returns ErrInvalidSpanningState when the record is malformed or an odd edge
// names a vertex missing from it. No partial result is returned on error.
//
// Complexity: O(V + Σ|cycle|).
func Extract(record []span.TreeEdge, odd []core.Pair, root int) ([]Cycle, error) {
	l, err := newLineage(record, root)
	if err != nil {
		return nil, err
	}

	out := make([]Cycle, 0, len(odd))
	for _, e := range odd {
		for _, x := range [2]int{e.U, e.V} {
			if _, ok := l.depth[x]; !ok {
				return nil, fmt.Errorf("%w: odd edge %s: vertex %d not in tree",
					ErrInvalidSpanningState, e, x)
			}
		}
		out = append(out, l.walk(e.U, e.V))
	}

	return out, nil
}

// FromTree extracts the cycle basis of a tree built by span.Build.
func FromTree(t *span.Tree) ([]Cycle, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidSpanningState)
	}

	return Extract(t.Record, t.Odd, t.Root)
}
