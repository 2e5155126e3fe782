// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"slices"
)

// Multiply returns the factor product a·b.
//
// The result scope is a's variables followed by b's variables not in a.
// Each entry equals a(x_a)·b(x_b) where x_a, x_b are the restrictions of the
// joint assignment. Shared variables must have identical outcome lists.
func Multiply(a, b *Factor) (*Factor, error) {
	if a == nil || b == nil {
		return nil, ErrNilFactor
	}
	scope := slices.Clone(a.scope)
	domains := slices.Clone(a.domains)
	for i, name := range b.scope {
		if j := a.axis(name); j >= 0 {
			if !slices.Equal(a.domains[j], b.domains[i]) {
				return nil, fmt.Errorf("%w: %q has %v and %v", ErrDomainMismatch, name, a.domains[j], b.domains[i])
			}
			continue
		}
		scope = append(scope, name)
		domains = append(domains, b.domains[i])
	}

	out := zeros(scope, domains)
	it := newOdometer(dimsOf(domains), stridesIn(scope, a), stridesIn(scope, b))
	for off := range out.values {
		out.values[off] = a.values[it.offs[0]] * b.values[it.offs[1]]
		it.next()
	}

	return out, nil
}

// MultiplyAll folds Multiply left to right. An empty input yields Scalar(1).
func MultiplyAll(factors []*Factor) (*Factor, error) {
	if len(factors) == 0 {
		return Scalar(1), nil
	}
	acc := factors[0]
	if acc == nil {
		return nil, ErrNilFactor
	}
	for _, f := range factors[1:] {
		var err error
		if acc, err = Multiply(acc, f); err != nil {
			return nil, err
		}
	}
	if len(factors) == 1 {
		return acc.Clone(), nil
	}

	return acc, nil
}

// SumOut marginalises v away by summation. If v is not in scope an unchanged
// copy is returned. A nil f is ErrNilFactor.
func SumOut(f *Factor, v string) (*Factor, error) {
	return eliminate(f, v, func(acc, x float64) float64 { return acc + x })
}

// MaxOut marginalises v away by maximisation. If v is not in scope an
// unchanged copy is returned. A nil f is ErrNilFactor.
func MaxOut(f *Factor, v string) (*Factor, error) {
	return eliminate(f, v, func(acc, x float64) float64 {
		if x > acc {
			return x
		}
		return acc
	})
}

// eliminate folds the axis of v with combine. Entries are non-negative, so a
// zero-initialised accumulator is neutral for both sum and max.
func eliminate(f *Factor, v string, combine func(acc, x float64) float64) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	ax := f.axis(v)
	if ax < 0 {
		return f.Clone(), nil
	}
	scope := slices.Delete(slices.Clone(f.scope), ax, ax+1)
	domains := slices.Delete(slices.Clone(f.domains), ax, ax+1)
	out := zeros(scope, domains)

	it := newOdometer(dimsOf(f.domains), stridesIn(f.scope, out))
	for _, x := range f.values {
		o := it.offs[0]
		out.values[o] = combine(out.values[o], x)
		it.next()
	}

	return out, nil
}

// Reduce fixes every scope variable that appears in evidence to its observed
// outcome and drops it from the scope. Evidence keys outside the scope are
// ignored; an unknown outcome for an in-scope variable is an error.
func Reduce(f *Factor, evidence map[string]string) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	base := 0
	var scope []string
	var domains [][]string
	var keep []int
	for i, name := range f.scope {
		label, observed := evidence[name]
		if !observed {
			scope = append(scope, name)
			domains = append(domains, f.domains[i])
			keep = append(keep, f.strides[i])
			continue
		}
		j, ok := f.index[i][label]
		if !ok {
			return nil, fmt.Errorf("%w: %q for %q", ErrUnknownOutcome, label, name)
		}
		base += j * f.strides[i]
	}
	if len(scope) == len(f.scope) {
		return f.Clone(), nil
	}

	out := zeros(scope, domains)
	it := newOdometer(dimsOf(domains), keep)
	for off := range out.values {
		out.values[off] = f.values[base+it.offs[0]]
		it.next()
	}

	return out, nil
}

// Transpose returns the same potentials with axes in the given order, which
// must be a permutation of the scope.
func Transpose(f *Factor, order []string) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	if len(order) != len(f.scope) {
		return nil, fmt.Errorf("%w: order %v is not a permutation of %v", ErrScopeMismatch, order, f.scope)
	}
	domains := make([][]string, len(order))
	for i, name := range order {
		j := f.axis(name)
		if j < 0 || slices.Index(order[:i], name) >= 0 {
			return nil, fmt.Errorf("%w: order %v is not a permutation of %v", ErrScopeMismatch, order, f.scope)
		}
		domains[i] = f.domains[j]
	}

	out := zeros(slices.Clone(order), domains)
	it := newOdometer(dimsOf(domains), stridesIn(order, f))
	for off := range out.values {
		out.values[off] = f.values[it.offs[0]]
		it.next()
	}

	return out, nil
}

// Normalize scales f so its entries sum to 1.
func Normalize(f *Factor) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	total := f.Sum()
	if total == 0 {
		return nil, ErrZeroMass
	}
	out := f.Clone()
	for i := range out.values {
		out.values[i] /= total
	}

	return out, nil
}
