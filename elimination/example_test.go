package elimination_test

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/elimination"
)

// ExampleMinFillOrder orders a four-node cycle. Every node needs one fill
// edge at first; after A is gone the rest are fill-free.
func ExampleMinFillOrder() {
	g := core.NewGraph(core.WithDirected(false))
	_ = g.AddNodes("A", "B", "C", "D")
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")
	g.AddEdge("D", "A")

	order, _ := elimination.MinFillOrder(g, elimination.WithShrinkingGraph())
	fmt.Println(order)
	// Output:
	// [A B C D]
}
