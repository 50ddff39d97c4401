// SPDX-License-Identifier: MIT

package topology

import (
	"github.com/katalvlaran/gridtopo/core"
	"github.com/katalvlaran/gridtopo/span"
)

// Classify reports whether adj is a tree, a forest, or contains a cycle.
// Self-loops and parallel edges count as cycles.
func Classify(adj *core.Adjacency) (Class, error) {
	return classifyForest(adj)
}

// HasCycle reports whether any component of adj contains a cycle.
func HasCycle(adj *core.Adjacency) (bool, error) {
	c, err := Classify(adj)
	if err != nil {
		return false, err
	}

	return c == ClassCyclic, nil
}

func classifyForest(adj *core.Adjacency, opts ...span.Option) (Class, error) {
	forest, err := span.Forest(adj, opts...)
	if err != nil {
		return 0, err
	}
	switch {
	case span.OddCount(forest) > 0:
		return ClassCyclic, nil
	case len(forest) > 1:
		return ClassForest, nil
	default:
		return ClassTree, nil
	}
}
