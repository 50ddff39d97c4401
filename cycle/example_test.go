package cycle_test

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/builder"
	"github.com/katalvlaran/gridtopo/core"
	"github.com/katalvlaran/gridtopo/cycle"
	"github.com/katalvlaran/gridtopo/span"
)

// ExampleExtract shows the cycle basis of a 2×3 mesh: two square cells.
func ExampleExtract() {
	g := builder.MustBuild(nil, builder.Grid(2, 3))
	adj, _ := core.BuildAdjacency(g)
	tr, _ := span.Build(adj, 0)

	cs, err := cycle.Extract(tr.Record, tr.Odd, tr.Root)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range cs {
		fmt.Println(c)
	}
	// Output:
	// 3 -> 0 -> 1 -> 4 -> 3
	// 4 -> 1 -> 2 -> 5 -> 4
}
