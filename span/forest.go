// SPDX-License-Identifier: MIT

package span

import "github.com/katalvlaran/gridtopo/core"

// Forest spans every component of adj: one tree per component, rooted at the
// component's smallest vertex, in ascending root order. Options apply to every
// tree; WithPartial is implied.
//
// The total number of odd edges across the forest is the cycle-space rank of
// the whole network.
func Forest(adj *core.Adjacency, opts ...Option) ([]*Tree, error) {
	if adj == nil {
		return nil, ErrAdjacencyNil
	}
	opts = append(opts[:len(opts):len(opts)], WithPartial())

	covered := make(map[int]struct{}, adj.Len())
	var forest []*Tree
	for _, v := range adj.Vertices() {
		if _, ok := covered[v]; ok {
			continue
		}
		t, err := Build(adj, v, opts...)
		if err != nil {
			return nil, err
		}
		for _, e := range t.Record {
			covered[e.Child] = struct{}{}
		}
		forest = append(forest, t)
	}

	return forest, nil
}

// OddCount sums the odd edges of a forest.
func OddCount(forest []*Tree) int {
	n := 0
	for _, t := range forest {
		n += len(t.Odd)
	}

	return n
}
