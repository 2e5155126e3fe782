package factor

// odometer walks every coordinate of a row-major shape while keeping, for
// each tracked table, the flat offset that corresponds to the current
// coordinate. An axis a table does not have uses stride 0.
type odometer struct {
	dims    []int
	coords  []int
	strides [][]int
	offs    []int
}

func newOdometer(dims []int, strides ...[]int) *odometer {
	return &odometer{
		dims:    dims,
		coords:  make([]int, len(dims)),
		strides: strides,
		offs:    make([]int, len(strides)),
	}
}

// next advances the last axis first, carrying into slower axes.
func (o *odometer) next() {
	for ax := len(o.dims) - 1; ax >= 0; ax-- {
		o.coords[ax]++
		for t := range o.offs {
			o.offs[t] += o.strides[t][ax]
		}
		if o.coords[ax] < o.dims[ax] {
			return
		}
		for t := range o.offs {
			o.offs[t] -= o.strides[t][ax] * o.dims[ax]
		}
		o.coords[ax] = 0
	}
}

// dimsOf lists the domain size of each axis.
func dimsOf(domains [][]string) []int {
	out := make([]int, len(domains))
	for i, d := range domains {
		out[i] = len(d)
	}

	return out
}

// stridesIn maps every name in scope to its stride inside f, or 0 when f
// does not mention it.
func stridesIn(scope []string, f *Factor) []int {
	out := make([]int, len(scope))
	for i, name := range scope {
		if j := f.axis(name); j >= 0 {
			out[i] = f.strides[j]
		}
	}

	return out
}
