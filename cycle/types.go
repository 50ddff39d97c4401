// SPDX-License-Identifier: MIT

package cycle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridtopo/core"
)

// ErrInvalidSpanningState indicates that the spanning record and the odd-edge
// set were not produced by the same traversal: the record is malformed, or an
// odd edge names a vertex the record never spanned.
var ErrInvalidSpanningState = errors.New("cycle: invalid spanning state")

// Cycle is a closed walk u → … → lca → … → v → u whose first vertex is
// repeated at the end. A self-loop is [v, v]; a parallel pair is [u, v, u].
type Cycle []int

// Len returns the number of edges in the walk.
func (c Cycle) Len() int {
	if len(c) == 0 {
		return 0
	}

	return len(c) - 1
}

// Vertices returns the distinct vertices in walk order, without the closing repeat.
func (c Cycle) Vertices() []int {
	if len(c) == 0 {
		return nil
	}
	out := make([]int, len(c)-1)
	copy(out, c[:len(c)-1])

	return out
}

// Edges returns consecutive vertex pairs; the last one is the odd edge reversed.
func (c Cycle) Edges() []core.Pair {
	if len(c) < 2 {
		return nil
	}
	out := make([]core.Pair, len(c)-1)
	for i := 0; i+1 < len(c); i++ {
		out[i] = core.Pair{U: c[i], V: c[i+1]}
	}

	return out
}

// OddEdge returns the non-tree edge that closed this cycle, as (u, v).
func (c Cycle) OddEdge() core.Pair {
	if len(c) < 2 {
		return core.Pair{}
	}

	return core.Pair{U: c[0], V: c[len(c)-2]}
}

// Contains reports whether v lies on the walk.
func (c Cycle) Contains(v int) bool {
	for _, x := range c {
		if x == v {
			return true
		}
	}

	return false
}

// Canonical returns the lexicographically smallest closed walk among all
// rotations of c and of its reversal. Two cycles over the same vertex ring
// share one canonical form.
func (c Cycle) Canonical() Cycle {
	if len(c) < 2 {
		return append(Cycle(nil), c...)
	}
	base := c[:len(c)-1]

	fwd := minimalRotation(base)
	bwd := minimalRotation(reversed(base))
	pick := fwd
	if compare(bwd, fwd) < 0 {
		pick = bwd
	}

	return append(pick, pick[0])
}

// String renders the walk as "1 -> 2 -> 3 -> 1".
func (c Cycle) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " -> ")
}
