package bayes_test

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/bayes"
)

// ExampleNetwork_JointProbability declares a two-node network and evaluates
// one joint assignment.
func ExampleNetwork_JointProbability() {
	n := bayes.NewNetwork()
	_ = n.AddVariable("rain", "True", "False")
	_ = n.AddVariable("wet", "True", "False")
	_ = n.AddEdge("rain", "wet")
	_ = n.SetCPT("rain", []float64{0.2, 0.8})
	// P(wet | rain): rows are wet outcomes, columns rain outcomes.
	_ = n.SetCPT("wet", []float64{0.9, 0.1, 0.1, 0.9})

	p, err := n.JointProbability(bayes.Assignment{"rain": "True", "wet": "True"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", p)
	// Output:
	// 0.18
}
