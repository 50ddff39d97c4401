package reach_test

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/core"
	"github.com/katalvlaran/gridtopo/reach"
)

// ExampleCloud reports the buses a root cannot reach.
func ExampleCloud() {
	g, _ := core.NewGraphFromIDs([]int{1, 2, 3, 4}, []core.Pair{{U: 1, V: 2}, {U: 3, V: 4}})
	adj, _ := core.BuildAdjacency(g)

	res, err := reach.Cloud(adj, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("connected:", res.Connected())
	fmt.Println("cloud:", res.Cloud)
	fmt.Println("components:", reach.Components(adj))
	// Output:
	// connected: false
	// cloud: [3 4]
	// components: [[1 2] [3 4]]
}
