package sampling

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvbayes/bayes"
)

// Sample draws one outcome of dist by roulette-wheel selection. Outcomes
// are laid on the wheel in lexicographic order so seeded runs repeat.
//
// Errors: ErrNegativeWeight, ErrZeroMass.
func (s *Sampler) Sample(dist bayes.Distribution) (string, error) {
	outcomes := make([]string, 0, len(dist))
	for o := range dist {
		outcomes = append(outcomes, o)
	}
	sort.Strings(outcomes)
	weights := make([]float64, len(outcomes))
	for i, o := range outcomes {
		weights[i] = dist[o]
	}

	return s.SampleOutcome(outcomes, weights)
}

// SampleOutcome draws outcomes[i] with probability weights[i]/Σweights.
// The wheel is the cumulative sum of weights searched with a uniform draw
// in [0, Σweights); zero-weight outcomes are never drawn.
//
// Errors: ErrLengthMismatch, ErrNegativeWeight, ErrZeroMass.
//
// Complexity: O(k) to build the wheel, O(log k) to search it.
func (s *Sampler) SampleOutcome(outcomes []string, weights []float64) (string, error) {
	if len(outcomes) != len(weights) {
		return "", fmt.Errorf("%w: %d outcomes, %d weights", ErrLengthMismatch, len(outcomes), len(weights))
	}
	cum, err := cumulative(weights)
	if err != nil {
		return "", err
	}

	return outcomes[s.spin(cum)], nil
}

// cumulative returns the running sums of weights.
func cumulative(weights []float64) ([]float64, error) {
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: %v at %d", ErrNegativeWeight, w, i)
		}
		total += w
		cum[i] = total
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, ErrZeroMass
	}

	return cum, nil
}

// spin returns the first index whose cumulative weight exceeds the draw.
func (s *Sampler) spin(cum []float64) int {
	u := s.rng.Float64() * cum[len(cum)-1]
	return sort.Search(len(cum), func(i int) bool { return cum[i] > u })
}

// Normalize scales d to sum to 1.
func Normalize(d bayes.Distribution) (bayes.Distribution, error) {
	total := 0.0
	for _, p := range d {
		if p < 0 || math.IsNaN(p) {
			return nil, fmt.Errorf("%w: %v", ErrNegativeWeight, p)
		}
		total += p
	}
	if !(total > 0) {
		return nil, ErrZeroMass
	}
	out := make(bayes.Distribution, len(d))
	for o, p := range d {
		out[o] = p / total
	}

	return out, nil
}

// frequencies turns counts into a distribution over every outcome.
func frequencies(outcomes []string, counts []int, total int) bayes.Distribution {
	out := make(bayes.Distribution, len(outcomes))
	for i, o := range outcomes {
		out[o] = float64(counts[i]) / float64(total)
	}

	return out
}
