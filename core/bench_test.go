// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/gridtopo/core"
)

// BenchmarkBuildAdjacency indexes a 10 000-bus feeder with one loop per bus.
func BenchmarkBuildAdjacency(b *testing.B) {
	const N = 10000
	ids := make([]int, N)
	pairs := make([]core.Pair, 0, 2*N)
	for i := range ids {
		ids[i] = i
		pairs = append(pairs, core.Pair{U: i, V: i})
		if i > 0 {
			pairs = append(pairs, core.Pair{U: i - 1, V: i})
		}
	}
	g, err := core.NewGraphFromIDs(ids, pairs)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = core.BuildAdjacency(g)
	}
}
