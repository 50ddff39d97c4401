// SPDX-License-Identifier: MIT

package reach

import (
	"sort"

	"github.com/katalvlaran/gridtopo/core"
)

// Components splits the network into its connected components ("islands").
//
// Each component is sorted ascending; components are ordered by their
// smallest vertex, so the first component is the one holding the smallest ID.
// Applied to a disconnected grid, every component but the root's is part of
// the cloud reported by Cloud.
//
// Time:   O(V log V + E).
// Memory: O(V) for visited flags and output.
func Components(adj *core.Adjacency) [][]int {
	if adj == nil {
		return nil
	}

	seen := make(map[int]struct{}, adj.Len())
	var comps [][]int
	for _, start := range adj.Vertices() {
		if _, ok := seen[start]; ok {
			continue
		}
		queue := []int{start}
		seen[start] = struct{}{}
		for qi := 0; qi < len(queue); qi++ {
			adj.Each(queue[qi], func(nbr int) {
				if _, ok := seen[nbr]; !ok {
					seen[nbr] = struct{}{}
					queue = append(queue, nbr)
				}
			})
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}
