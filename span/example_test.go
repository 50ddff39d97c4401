package span_test

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/core"
	"github.com/katalvlaran/gridtopo/span"
)

// ExampleBuild spans a triangle with a looped corner.
func ExampleBuild() {
	g, _ := core.NewGraphFromIDs([]int{1, 2, 3}, []core.Pair{
		{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}, {U: 3, V: 3},
	})
	adj, _ := core.BuildAdjacency(g)

	tr, err := span.Build(adj, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("record:", tr.Record)
	fmt.Println("odd:", tr.Odd)
	// Output:
	// record: [{-1 1} {1 2} {1 3}]
	// odd: [(2, 3) (3, 3)]
}
