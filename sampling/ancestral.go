package sampling

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/dfs"
)

// AncestralOrder returns the variables of net with every parent before its
// children. Among the variables whose parents are all placed, the
// lexicographically smallest goes next.
//
// Errors: dfs.ErrCycleDetected if some variable can never be placed.
//
// Complexity: O(V² + E).
func AncestralOrder(net *bayes.Network) ([]string, error) {
	names := net.Names()
	pending := make(map[string]int, len(names))
	ready := make([]string, 0, len(names))
	for _, name := range names {
		ps, err := net.Parents(name)
		if err != nil {
			return nil, err
		}
		pending[name] = len(ps)
		if len(ps) == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]string, 0, len(names))
	for len(ready) > 0 {
		best := 0
		for i := 1; i < len(ready); i++ {
			if ready[i] < ready[best] {
				best = i
			}
		}
		next := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		order = append(order, next)

		children, err := net.Children(next)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			pending[c]--
			if pending[c] == 0 {
				ready = append(ready, c)
			}
		}
	}
	if len(order) != len(names) {
		var stuck []string
		for _, name := range names {
			if pending[name] > 0 {
				stuck = append(stuck, name)
			}
		}
		return nil, fmt.Errorf("%w: unplaceable variables %v", dfs.ErrCycleDetected, stuck)
	}

	return order, nil
}
