package factor_test

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/factor"
)

// ExampleSumOut eliminates B from φ(A,B)·φ(B), the core step of
// sum-product variable elimination.
func ExampleSumOut() {
	tf := []string{"True", "False"}
	ab, _ := factor.New([]string{"A", "B"}, [][]string{tf, tf}, []float64{0.2, 0.3, 0.8, 0.7})
	b, _ := factor.New([]string{"B"}, [][]string{tf}, []float64{0.4, 0.6})

	joint, _ := factor.Multiply(ab, b)
	summed, _ := factor.SumOut(joint, "B")
	maxed, _ := factor.MaxOut(joint, "B")
	fmt.Print(summed)
	fmt.Print(maxed)
	// Output:
	// Factor(A)
	// A=True 0.26
	// A=False 0.74
	// Factor(A)
	// A=True 0.18
	// A=False 0.42
}
