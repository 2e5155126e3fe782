package sampling

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/core"
)

// InitialState returns a full assignment with evidence variables fixed to
// their observed outcome and every other variable at its first outcome.
// Evidence on variables outside net is ignored. The result may have
// probability 0; GibbsSamplingMarginal starts from a drawn state instead.
func InitialState(net *bayes.Network, evidence bayes.Evidence) (bayes.Assignment, error) {
	if err := net.CheckEvidence(evidence); err != nil {
		return nil, err
	}
	state := make(bayes.Assignment, net.Len())
	for _, name := range net.Names() {
		if o, ok := evidence[name]; ok {
			state[name] = o
			continue
		}
		outcomes, err := net.Outcomes(name)
		if err != nil {
			return nil, err
		}
		state[name] = outcomes[0]
	}

	return state, nil
}

// MarkovBlanketDistribution returns the unnormalised distribution of node
// given the rest of state: for each outcome o of node,
//
//	P(node=o | parents) · Π_{c ∈ children(node)} P(c=state[c] | parents(c)),
//
// with node set to o in every factor. state must assign node's Markov
// blanket; it is not modified.
//
// Errors: core.ErrNodeNotFound, factor.ErrScopeMismatch for an unassigned
// blanket variable, bayes.ErrMissingCPT.
func MarkovBlanketDistribution(net *bayes.Network, node string, state bayes.Assignment) (bayes.Distribution, error) {
	outcomes, err := net.Outcomes(node)
	if err != nil {
		return nil, err
	}
	own, err := net.Column(node, state)
	if err != nil {
		return nil, err
	}
	children, err := net.Children(node)
	if err != nil {
		return nil, err
	}

	local := make(bayes.Assignment, len(state))
	for k, v := range state {
		local[k] = v
	}
	dist := make(bayes.Distribution, len(outcomes))
	for i, o := range outcomes {
		local[node] = o
		p := own[i]
		for _, c := range children {
			cpt, err := net.CPT(c)
			if err != nil {
				return nil, err
			}
			w, err := cpt.Potential(local)
			if err != nil {
				return nil, fmt.Errorf("sampling: blanket of %q at child %q: %w", node, c, err)
			}
			p *= w
		}
		dist[o] = p
	}

	return dist, nil
}

// GibbsSamplingMarginal estimates P(v | evidence) by Gibbs sampling.
//
// Steps:
//  1. Draw a start state with positive joint probability: free variables
//     are forward-sampled from their CPT columns with evidence clamped, up
//     to maxStartAttempts times; failing that, InitialState is repaired by
//     giving each free variable its first outcome of positive local mass.
//  2. Run burnIn + n·thinning sweeps. A sweep resamples every unobserved
//     variable, in ancestral order, from its normalised Markov-blanket
//     distribution.
//  3. After burn-in, record v after every thinning-th sweep (n records).
//  4. Return the normalised frequencies over every outcome of v.
//
// Evidence variables never change. Evidence on variables outside net is
// ignored.
//
// Errors: ErrInvalidSampleCount for n <= 0, thinning <= 0 or burnIn < 0;
// core.ErrNodeNotFound for an unknown v; factor.ErrUnknownOutcome for bad
// evidence; ErrZeroMass when no start state of positive probability is
// found (always the case for evidence of probability 0); any
// bayes.Network.Validate error.
//
// Complexity: O((burnIn + n·thinning) · Σ_X |outcomes(X)| · (1 + |children(X)|)).
func (s *Sampler) GibbsSamplingMarginal(net *bayes.Network, v string, evidence bayes.Evidence, n, burnIn, thinning int) (bayes.Distribution, error) {
	start := time.Now()
	ctx, span := startEstimateSpan(s.ctx, "gibbs", v, n)
	dist, sweeps, err := s.gibbs(net, v, evidence, n, burnIn, thinning)
	endEstimateSpan(span, sweeps, err)
	recordEstimate(ctx, "gibbs", sweeps, 0, time.Since(start), err == nil)

	return dist, err
}

func (s *Sampler) gibbs(net *bayes.Network, v string, evidence bayes.Evidence, n, burnIn, thinning int) (bayes.Distribution, int, error) {
	if n <= 0 || thinning <= 0 || burnIn < 0 {
		return nil, 0, fmt.Errorf("%w: n=%d burn-in=%d thinning=%d", ErrInvalidSampleCount, n, burnIn, thinning)
	}
	if !net.Has(v) {
		return nil, 0, fmt.Errorf("%w: %q", core.ErrNodeNotFound, v)
	}
	p, err := prepare(net)
	if err != nil {
		return nil, 0, err
	}
	evidence = net.Restrict(evidence)
	if err = net.CheckEvidence(evidence); err != nil {
		return nil, 0, err
	}
	free := make([]string, 0, len(p.order))
	for _, name := range p.order {
		if _, ok := evidence[name]; !ok {
			free = append(free, name)
		}
	}
	state, err := s.startState(net, p, free, evidence)
	if err != nil {
		return nil, 0, err
	}

	outcomes := p.outcomes[v]
	counts := make([]int, len(outcomes))
	total := burnIn + n*thinning
	recorded := 0
	weights := make([]float64, 0, 8)
	for sweep := 1; sweep <= total; sweep++ {
		if err = s.ctx.Err(); err != nil {
			return nil, sweep - 1, err
		}
		for _, name := range free {
			d, err := MarkovBlanketDistribution(net, name, state)
			if err != nil {
				return nil, sweep, err
			}
			weights = weights[:0]
			for _, o := range p.outcomes[name] {
				weights = append(weights, d[o])
			}
			cum, err := cumulative(weights)
			if err != nil {
				return nil, sweep, fmt.Errorf("sampling: resampling %q in sweep %d: %w", name, sweep, err)
			}
			state[name] = p.outcomes[name][s.spin(cum)]
		}
		if s.onSweep != nil {
			s.onSweep(sweep, state)
		}
		if sweep == burnIn {
			s.logger.LogAttrs(s.ctx, slog.LevelDebug, "gibbs burn-in complete",
				slog.Int("sweeps", sweep),
			)
		}
		if sweep > burnIn && (sweep-burnIn)%thinning == 0 {
			for k, o := range outcomes {
				if state[v] == o {
					counts[k]++
					break
				}
			}
			recorded++
		}
	}
	s.logger.LogAttrs(s.ctx, slog.LevelDebug, "gibbs sampling finished",
		slog.String("variable", v),
		slog.Int("sweeps", total),
		slog.Int("burn_in", burnIn),
		slog.Int("thinning", thinning),
		slog.Int("recorded", recorded),
	)

	return frequencies(outcomes, counts, recorded), total, nil
}

// maxStartAttempts bounds the clamped forward draws made by startState.
const maxStartAttempts = 1000

// startState returns a full assignment consistent with evidence whose
// joint probability is positive. From such a state every blanket
// distribution keeps positive mass at the current outcome.
func (s *Sampler) startState(net *bayes.Network, p *prepared, free []string, evidence bayes.Evidence) (bayes.Assignment, error) {
	for attempt := 0; attempt < maxStartAttempts; attempt++ {
		a, ok, err := s.clampedDraw(net, p, evidence)
		if err != nil {
			return nil, err
		}
		if ok {
			return a, nil
		}
	}

	state, err := InitialState(net, evidence)
	if err != nil {
		return nil, err
	}
	for _, name := range free {
		d, err := MarkovBlanketDistribution(net, name, state)
		if err != nil {
			return nil, err
		}
		for _, o := range p.outcomes[name] {
			if d[o] > 0 {
				state[name] = o
				break
			}
		}
	}
	joint, err := net.JointProbability(state)
	if err != nil {
		return nil, err
	}
	if joint <= 0 {
		return nil, fmt.Errorf("%w: no start state with positive probability for evidence %v", ErrZeroMass, evidence)
	}

	return state, nil
}

// clampedDraw forward-samples the free variables with evidence fixed and
// reports whether the draw has positive joint probability.
func (s *Sampler) clampedDraw(net *bayes.Network, p *prepared, evidence bayes.Evidence) (bayes.Assignment, bool, error) {
	a := make(bayes.Assignment, len(p.order))
	for k, o := range evidence {
		a[k] = o
	}
	for _, name := range p.order {
		if _, ok := evidence[name]; ok {
			continue
		}
		weights, err := net.Column(name, a)
		if err != nil {
			return nil, false, err
		}
		cum, err := cumulative(weights)
		if errors.Is(err, ErrZeroMass) {
			// A parent outcome drawn earlier leaves this column empty.
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		a[name] = p.outcomes[name][s.spin(cum)]
	}
	joint, err := net.JointProbability(a)
	if err != nil {
		return nil, false, err
	}

	return a, joint > 0, nil
}
