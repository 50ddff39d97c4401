package reach_test

import (
	"testing"

	"github.com/katalvlaran/gridtopo/builder"
	"github.com/katalvlaran/gridtopo/core"
	"github.com/katalvlaran/gridtopo/reach"
)

// BenchmarkCloud_Chain measures reachability on a linear feeder of N buses.
func BenchmarkCloud_Chain(b *testing.B) {
	const N = 10000
	g := builder.MustBuild(nil, builder.Path(N))
	adj, _ := core.BuildAdjacency(g)

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = reach.Cloud(adj, 0)
	}
}

// BenchmarkCloud_Mesh runs reachability on a 100×100 mesh.
func BenchmarkCloud_Mesh(b *testing.B) {
	g := builder.MustBuild(nil, builder.Grid(100, 100))
	adj, _ := core.BuildAdjacency(g)

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = reach.Cloud(adj, 0)
	}
}

// BenchmarkComponents splits 100 disjoint rings.
func BenchmarkComponents(b *testing.B) {
	cons := make([]builder.Constructor, 100)
	for i := range cons {
		cons[i] = builder.Offset(i*100, builder.Cycle(50))
	}
	adj, _ := core.BuildAdjacency(builder.MustBuild(nil, cons...))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = reach.Components(adj)
	}
}
