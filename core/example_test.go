package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
)

// ExampleGraph_Ancestors builds the burglary/earthquake graph and lists the
// ancestors of the alarm and the undirected projection's edges.
func ExampleGraph_Ancestors() {
	g := core.NewGraph()
	_ = g.AddNodes("B", "A", "E", "R")
	g.AddEdge("B", "A")
	g.AddEdge("E", "A")
	g.AddEdge("E", "R")

	anc, _ := g.Ancestors("A")
	fmt.Println(anc)
	fmt.Println(g.ToUndirected().Edges())
	// Output:
	// [B E]
	// [{B A} {A E} {E R}]
}
