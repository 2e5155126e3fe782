package sampling

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/core"
)

// prepared caches what every forward sample needs.
type prepared struct {
	order    []string
	outcomes map[string][]string
}

func prepare(net *bayes.Network) (*prepared, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}
	order, err := AncestralOrder(net)
	if err != nil {
		return nil, err
	}
	p := &prepared{order: order, outcomes: make(map[string][]string, len(order))}
	for _, name := range order {
		if p.outcomes[name], err = net.Outcomes(name); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ForwardSample draws one full assignment: variables are visited in
// ancestral order and each is drawn from its CPT column given the parent
// outcomes already drawn.
func (s *Sampler) ForwardSample(net *bayes.Network) (bayes.Assignment, error) {
	p, err := prepare(net)
	if err != nil {
		return nil, err
	}

	return s.forward(net, p)
}

func (s *Sampler) forward(net *bayes.Network, p *prepared) (bayes.Assignment, error) {
	a := make(bayes.Assignment, len(p.order))
	for _, name := range p.order {
		weights, err := net.Column(name, a)
		if err != nil {
			return nil, err
		}
		cum, err := cumulative(weights)
		if err != nil {
			return nil, fmt.Errorf("sampling: CPT column of %q: %w", name, err)
		}
		a[name] = p.outcomes[name][s.spin(cum)]
	}

	return a, nil
}

// ForwardSamplingMarginal estimates P(v) from n forward samples. Every
// outcome of v appears in the result, possibly with frequency 0.
//
// Errors: ErrInvalidSampleCount if n <= 0, core.ErrNodeNotFound for an
// unknown v, and any bayes.Network.Validate error.
func (s *Sampler) ForwardSamplingMarginal(net *bayes.Network, v string, n int) (bayes.Distribution, error) {
	start := time.Now()
	ctx, span := startEstimateSpan(s.ctx, "forward", v, n)
	dist, drawn, _, err := s.rejection(net, v, nil, n)
	endEstimateSpan(span, drawn, err)
	recordEstimate(ctx, "forward", drawn, 0, time.Since(start), err == nil)

	return dist, err
}

// RejectionSamplingMarginal estimates P(v | evidence) from n forward
// samples, discarding those that disagree with the evidence. Evidence on
// variables outside net is ignored.
//
// Errors: as ForwardSamplingMarginal, plus factor.ErrUnknownOutcome for bad
// evidence and ErrNoAcceptedSamples when every sample was discarded.
func (s *Sampler) RejectionSamplingMarginal(net *bayes.Network, v string, evidence bayes.Evidence, n int) (bayes.Distribution, error) {
	start := time.Now()
	ctx, span := startEstimateSpan(s.ctx, "rejection", v, n)
	dist, drawn, accepted, err := s.rejection(net, v, evidence, n)
	endEstimateSpan(span, drawn, err)
	recordEstimate(ctx, "rejection", drawn, drawn-accepted, time.Since(start), err == nil)

	return dist, err
}

// rejection draws n samples and tallies v over those consistent with
// evidence. It also reports how many samples were drawn and accepted.
func (s *Sampler) rejection(net *bayes.Network, v string, evidence bayes.Evidence, n int) (dist bayes.Distribution, drawn, accepted int, err error) {
	if n <= 0 {
		return nil, drawn, accepted, fmt.Errorf("%w: n=%d", ErrInvalidSampleCount, n)
	}
	if !net.Has(v) {
		return nil, drawn, accepted, fmt.Errorf("%w: %q", core.ErrNodeNotFound, v)
	}
	if err = net.CheckEvidence(evidence); err != nil {
		return nil, drawn, accepted, err
	}
	evidence = net.Restrict(evidence)
	p, err := prepare(net)
	if err != nil {
		return nil, drawn, accepted, err
	}

	outcomes := p.outcomes[v]
	counts := make([]int, len(outcomes))
	for ; drawn < n; drawn++ {
		if err = s.ctx.Err(); err != nil {
			return nil, drawn, accepted, err
		}
		var a bayes.Assignment
		if a, err = s.forward(net, p); err != nil {
			return nil, drawn, accepted, err
		}
		if !consistent(a, evidence) {
			continue
		}
		for k, o := range outcomes {
			if a[v] == o {
				counts[k]++
				break
			}
		}
		accepted++
	}
	s.logger.LogAttrs(s.ctx, slog.LevelDebug, "forward sampling finished",
		slog.String("variable", v),
		slog.Int("samples", n),
		slog.Int("accepted", accepted),
	)
	if accepted == 0 {
		return nil, drawn, 0, fmt.Errorf("%w: %d samples drawn for evidence %v", ErrNoAcceptedSamples, n, evidence)
	}

	return frequencies(outcomes, counts, accepted), drawn, accepted, nil
}

func consistent(a bayes.Assignment, evidence bayes.Evidence) bool {
	for k, o := range evidence {
		if a[k] != o {
			return false
		}
	}

	return true
}
