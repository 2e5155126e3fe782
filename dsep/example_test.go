package dsep_test

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/dsep"
)

// ExampleCheckIndependence shows explaining away: burglary and earthquake are
// independent until the alarm is observed.
func ExampleCheckIndependence() {
	g := core.NewGraph()
	_ = g.AddNodes("B", "A", "E", "R")
	g.AddEdge("B", "A")
	g.AddEdge("E", "A")
	g.AddEdge("E", "R")

	x, y := []core.NodeID{"B"}, []core.NodeID{"E"}
	given := func(z ...core.NodeID) bool {
		ok, _ := dsep.CheckIndependence(g, x, y, z)
		return ok
	}
	fmt.Println(given(), given("R"), given("A"))
	// Output:
	// true true false
}
