// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Factor is an immutable discrete potential table.
type Factor struct {
	scope   []string
	domains [][]string       // domains[i] are the outcomes of scope[i]
	index   []map[string]int // outcome label → position, per axis
	strides []int            // row-major strides, per axis
	values  []float64
}

// New validates and builds a Factor.
//
// Stage 1 (Validate scope): names non-empty and unique; one non-empty domain
// per name with unique outcome labels.
// Stage 2 (Validate table): len(values) == product of domain sizes; every
// value finite and ≥ 0.
// Stage 3 (Finalize): copy inputs so the caller may reuse its slices.
//
// An empty scope with a single value builds a scalar.
func New(scope []string, domains [][]string, values []float64) (*Factor, error) {
	if len(domains) != len(scope) {
		return nil, fmt.Errorf("%w: %d variables but %d domains", ErrShape, len(scope), len(domains))
	}
	size := 1
	for i, name := range scope {
		if name == "" {
			return nil, fmt.Errorf("%w: empty variable name at axis %d", ErrShape, i)
		}
		if slices.Index(scope[:i], name) >= 0 {
			return nil, fmt.Errorf("%w: duplicate variable %q", ErrShape, name)
		}
		if len(domains[i]) == 0 {
			return nil, fmt.Errorf("%w: empty domain for %q", ErrShape, name)
		}
		for j, o := range domains[i] {
			if slices.Index(domains[i][:j], o) >= 0 {
				return nil, fmt.Errorf("%w: duplicate outcome %q for %q", ErrShape, o, name)
			}
		}
		size *= len(domains[i])
	}
	if len(values) != size {
		return nil, fmt.Errorf("%w: table has %d entries, want %d", ErrShape, len(values), size)
	}
	for i, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: entry %d is %v", ErrNegativeValue, i, v)
		}
	}

	doms := make([][]string, len(domains))
	for i, d := range domains {
		doms[i] = slices.Clone(d)
	}

	return build(slices.Clone(scope), doms, slices.Clone(values)), nil
}

// Scalar returns a zero-variable factor holding v.
func Scalar(v float64) *Factor {
	return build(nil, nil, []float64{v})
}

// build assembles a Factor from already validated parts without copying.
func build(scope []string, domains [][]string, values []float64) *Factor {
	f := &Factor{
		scope:   scope,
		domains: domains,
		index:   make([]map[string]int, len(scope)),
		strides: make([]int, len(scope)),
		values:  values,
	}
	stride := 1
	for i := len(scope) - 1; i >= 0; i-- {
		f.strides[i] = stride
		stride *= len(domains[i])
		m := make(map[string]int, len(domains[i]))
		for j, o := range domains[i] {
			m[o] = j
		}
		f.index[i] = m
	}

	return f
}

// zeros allocates a factor of the given shape filled with 0.
func zeros(scope []string, domains [][]string) *Factor {
	size := 1
	for _, d := range domains {
		size *= len(d)
	}

	return build(scope, domains, make([]float64, size))
}

// Scope returns a copy of the variable names, slowest axis first.
func (f *Factor) Scope() []string { return slices.Clone(f.scope) }

// Rank returns the number of variables in scope.
func (f *Factor) Rank() int { return len(f.scope) }

// Len returns the number of table entries.
func (f *Factor) Len() int { return len(f.values) }

// IsScalar reports whether the scope is empty.
func (f *Factor) IsScalar() bool { return len(f.scope) == 0 }

// Has reports whether v is in scope.
func (f *Factor) Has(v string) bool { return f.axis(v) >= 0 }

// Domain returns the outcomes of v and whether v is in scope.
func (f *Factor) Domain(v string) ([]string, bool) {
	i := f.axis(v)
	if i < 0 {
		return nil, false
	}

	return slices.Clone(f.domains[i]), true
}

// Values returns a copy of the row-major table.
func (f *Factor) Values() []float64 { return slices.Clone(f.values) }

// Value returns the single entry of a scalar factor, or the first entry
// otherwise.
func (f *Factor) Value() float64 { return f.values[0] }

// Clone returns an independent copy.
func (f *Factor) Clone() *Factor {
	doms := make([][]string, len(f.domains))
	for i, d := range f.domains {
		doms[i] = slices.Clone(d)
	}

	return build(slices.Clone(f.scope), doms, slices.Clone(f.values))
}

func (f *Factor) axis(v string) int {
	return slices.Index(f.scope, v)
}

// offset maps a full assignment to its flat index. Extra keys are ignored.
func (f *Factor) offset(assignment map[string]string) (int, error) {
	off := 0
	for i, name := range f.scope {
		label, ok := assignment[name]
		if !ok {
			return 0, fmt.Errorf("%w: no value for %q", ErrScopeMismatch, name)
		}
		j, ok := f.index[i][label]
		if !ok {
			return 0, fmt.Errorf("%w: %q for %q", ErrUnknownOutcome, label, name)
		}
		off += j * f.strides[i]
	}

	return off, nil
}

// Potential returns φ(assignment). Every scope variable must be assigned;
// keys outside the scope are ignored.
func (f *Factor) Potential(assignment map[string]string) (float64, error) {
	off, err := f.offset(assignment)
	if err != nil {
		return 0, err
	}

	return f.values[off], nil
}

// assignmentAt decodes flat index off into outcome labels.
func (f *Factor) assignmentAt(off int) map[string]string {
	out := make(map[string]string, len(f.scope))
	for i, name := range f.scope {
		out[name] = f.domains[i][(off/f.strides[i])%len(f.domains[i])]
	}

	return out
}

// Sum returns the total mass.
func (f *Factor) Sum() float64 {
	s := 0.0
	for _, v := range f.values {
		s += v
	}

	return s
}

// Max returns the largest entry.
func (f *Factor) Max() float64 {
	_, v := f.argMax()
	return v
}

// ArgMax returns the assignment of the largest entry and its value.
// Ties resolve to the first maximum in row-major order.
func (f *Factor) ArgMax() (map[string]string, float64) {
	off, v := f.argMax()
	return f.assignmentAt(off), v
}

func (f *Factor) argMax() (int, float64) {
	best := 0
	for i, v := range f.values {
		if v > f.values[best] {
			best = i
		}
	}

	return best, f.values[best]
}

// Distribution returns outcome → value for a single-variable factor.
func (f *Factor) Distribution() (map[string]float64, error) {
	if len(f.scope) != 1 {
		return nil, fmt.Errorf("%w: distribution needs exactly one variable, have %v", ErrShape, f.scope)
	}
	out := make(map[string]float64, len(f.values))
	for j, o := range f.domains[0] {
		out[o] = f.values[j]
	}

	return out, nil
}

// String renders the table, one row per assignment in row-major order.
func (f *Factor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Factor(%s)\n", strings.Join(f.scope, ", "))
	for off, v := range f.values {
		for i, name := range f.scope {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%s", name, f.domains[i][(off/f.strides[i])%len(f.domains[i])])
		}
		if len(f.scope) > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.6g\n", v)
	}

	return b.String()
}
