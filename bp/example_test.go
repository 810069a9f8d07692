package bp_test

import (
	"fmt"

	"github.com/katalvlaran/factorgraph/bp"
	"github.com/katalvlaran/factorgraph/core"
)

// ExampleRun computes every marginal of a two-variable tree model in one
// message-passing sweep.
func ExampleRun() {
	rain, _ := core.NewVariable("Rain", []string{"no", "yes"})
	wet, _ := core.NewVariable("Wet", []string{"no", "yes"})

	prior, _ := core.NewFactor([]*core.Variable{rain}, []float64{0.8, 0.2})
	sprinkle, _ := core.NewFactor(
		[]*core.Variable{rain, wet},
		[]float64{0.9, 0.1, 0.2, 0.8},
	)
	g, _ := core.New([]*core.Variable{rain, wet}, []*core.Factor{prior, sprinkle})

	marginals, _ := bp.Run(g)
	fmt.Printf("P(Wet=yes) = %.2f\n", marginals["Wet"].At(1))

	conditioned, _ := bp.Run(g, bp.WithEvidence(map[string]string{"Wet": "yes"}))
	fmt.Printf("P(Rain=yes | Wet=yes) = %.3f\n", conditioned["Rain"].At(1))
	// Output:
	// P(Wet=yes) = 0.24
	// P(Rain=yes | Wet=yes) = 0.667
}
