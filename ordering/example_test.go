package ordering_test

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/core"
	"github.com/katalvlaran/factorgraph/ordering"
)

// ExampleGreedy orders a chain for elimination: the endpoints go first
// because their prospective cliques are the smallest.
func ExampleGreedy() {
	x, _ := core.NewBinary("X")
	y, _ := core.NewBinary("Y")
	z, _ := core.NewBinary("Z")
	fxy, _ := core.NewFactor([]*core.Variable{x, y}, []float64{2, 1, 3, 4})
	fyz, _ := core.NewFactor([]*core.Variable{y, z}, []float64{5, 2, 1, 6})
	g, _ := core.New([]*core.Variable{x, y, z}, []*core.Factor{fxy, fyz})

	order, _ := ordering.Greedy(g, []*core.Variable{x, y, z})
	for _, v := range order {
		fmt.Println(v.ID())
	}
	// Output:
	// X
	// Y
	// Z
}
