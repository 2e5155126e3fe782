package infer

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/factor"
)

// InitializeFactors returns one factor per variable, in declaration order:
// a copy of its CPT reduced by the evidence that falls in its scope.
// Evidence on variables outside the network is ignored; an unknown outcome
// of a known variable is factor.ErrUnknownOutcome.
func InitializeFactors(net *bayes.Network, evidence bayes.Evidence) ([]*factor.Factor, error) {
	if err := net.CheckEvidence(evidence); err != nil {
		return nil, err
	}
	names := net.Names()
	out := make([]*factor.Factor, 0, len(names))
	for _, name := range names {
		cpt, err := net.CPT(name)
		if err != nil {
			return nil, err
		}
		f, err := factor.Reduce(cpt, evidence)
		if err != nil {
			return nil, fmt.Errorf("infer: reducing CPT of %q: %w", name, err)
		}
		out = append(out, f)
	}

	return out, nil
}

// partition splits factors into those mentioning v and the rest, keeping
// relative order.
func partition(factors []*factor.Factor, v string) (with, without []*factor.Factor) {
	for _, f := range factors {
		if f.Has(v) {
			with = append(with, f)
		} else {
			without = append(without, f)
		}
	}

	return with, without
}

// SumProductEliminate multiplies every factor mentioning v, sums v out and
// returns the untouched factors followed by the new one. If no factor
// mentions v the input is returned as is.
func SumProductEliminate(factors []*factor.Factor, v string) ([]*factor.Factor, error) {
	with, without := partition(factors, v)
	if len(with) == 0 {
		return factors, nil
	}
	prod, err := factor.MultiplyAll(with)
	if err != nil {
		return nil, fmt.Errorf("infer: eliminating %q: %w", v, err)
	}

	out, err := factor.SumOut(prod, v)
	if err != nil {
		return nil, fmt.Errorf("infer: eliminating %q: %w", v, err)
	}

	return append(without, out), nil
}

// MaxProductEliminate is SumProductEliminate with max in place of sum. It
// also returns the product formed before maximisation (nil when no factor
// mentions v), which Traceback needs.
func MaxProductEliminate(factors []*factor.Factor, v string) ([]*factor.Factor, *factor.Factor, error) {
	with, without := partition(factors, v)
	if len(with) == 0 {
		return factors, nil, nil
	}
	prod, err := factor.MultiplyAll(with)
	if err != nil {
		return nil, nil, fmt.Errorf("infer: eliminating %q: %w", v, err)
	}

	out, err := factor.MaxOut(prod, v)
	if err != nil {
		return nil, nil, fmt.Errorf("infer: eliminating %q: %w", v, err)
	}

	return append(without, out), prod, nil
}

// Traceback recovers a maximising assignment from the pre-max factors of a
// max-product run. order is the elimination order; it is walked backwards,
// and each stored factor is evaluated with every already decided variable
// fixed. Ties resolve to the first outcome.
func Traceback(stored map[string]*factor.Factor, order []string) (bayes.Assignment, error) {
	decided := make(bayes.Assignment, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		f, ok := stored[v]
		if !ok || f == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingFactor, v)
		}
		r, err := factor.Reduce(f, decided)
		if err != nil {
			return nil, fmt.Errorf("infer: traceback at %q: %w", v, err)
		}
		if !r.Has(v) {
			return nil, fmt.Errorf("%w: stored factor for %q does not mention it", factor.ErrScopeMismatch, v)
		}
		best, _ := r.ArgMax()
		decided[v] = best[v]
	}

	return decided, nil
}
