package infer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/dsep"
	"github.com/katalvlaran/lvbayes/elimination"
	"github.com/katalvlaran/lvbayes/factor"
)

// Posterior returns P(query | evidence) as a normalised factor whose scope
// lists the query variables in the given order.
//
// Errors: ErrEmptyQuery, core.ErrNodeNotFound for an unknown query variable,
// ErrQueryIsEvidence, ErrDuplicateQuery, factor.ErrUnknownOutcome for bad evidence,
// factor.ErrZeroMass when the evidence has probability 0, and any
// bayes.Network.Validate error.
func Posterior(net *bayes.Network, query []string, evidence bayes.Evidence, opts ...Option) (*factor.Factor, error) {
	o := buildOptions(opts)
	start := time.Now()
	ctx, span := startQuerySpan(o.Ctx, "Posterior", len(query), len(evidence))

	joint, order, err := marginal(ctx, o, "posterior", net, query, evidence)
	var out *factor.Factor
	if err == nil {
		out, err = factor.Normalize(joint)
		if err != nil {
			err = fmt.Errorf("infer: evidence %v has probability 0: %w", evidence, err)
		}
	}
	endQuerySpan(span, order, err)
	recordQueryMetrics(ctx, "posterior", time.Since(start), err == nil)

	return out, err
}

// Joint returns the unnormalised P(query, evidence) as a factor over the
// query variables in the given order.
func Joint(net *bayes.Network, query []string, evidence bayes.Evidence, opts ...Option) (*factor.Factor, error) {
	o := buildOptions(opts)
	start := time.Now()
	ctx, span := startQuerySpan(o.Ctx, "Joint", len(query), len(evidence))

	joint, order, err := marginal(ctx, o, "joint", net, query, evidence)
	endQuerySpan(span, order, err)
	recordQueryMetrics(ctx, "joint", time.Since(start), err == nil)

	return joint, err
}

// marginal runs sum-product elimination over every variable outside
// query ∪ evidence and returns the product of what remains.
func marginal(ctx context.Context, o Options, kind string, net *bayes.Network, query []string, evidence bayes.Evidence) (*factor.Factor, []string, error) {
	if len(query) == 0 {
		return nil, nil, ErrEmptyQuery
	}
	if err := net.Validate(); err != nil {
		return nil, nil, err
	}
	evidence = net.Restrict(evidence)
	seen := make(map[string]struct{}, len(query))
	for _, q := range query {
		if !net.Has(q) {
			return nil, nil, fmt.Errorf("%w: %q", core.ErrNodeNotFound, q)
		}
		if _, ok := evidence[q]; ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrQueryIsEvidence, q)
		}
		if _, ok := seen[q]; ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateQuery, q)
		}
		seen[q] = struct{}{}
	}
	factors, err := InitializeFactors(net, evidence)
	if err != nil {
		return nil, nil, err
	}

	keep := make(map[string]struct{}, len(query)+len(evidence))
	for _, q := range query {
		keep[q] = struct{}{}
	}
	for e := range evidence {
		keep[e] = struct{}{}
	}
	order, err := plan(ctx, o, net, keep)
	if err != nil {
		return nil, nil, err
	}

	for _, v := range order {
		if err = ctx.Err(); err != nil {
			return nil, order, err
		}
		before := len(factors)
		if factors, err = SumProductEliminate(factors, v); err != nil {
			return nil, order, err
		}
		last := factors[len(factors)-1]
		o.Logger.LogAttrs(ctx, slog.LevelDebug, "eliminated variable",
			slog.String("variable", v),
			slog.Int("factors_before", before),
			slog.Int("factors_after", len(factors)),
			slog.Int("result_rank", last.Rank()),
		)
		recordStep(ctx, kind, last.Len())
	}

	joint, err := factor.MultiplyAll(factors)
	if err != nil {
		return nil, order, err
	}
	joint, err = factor.Transpose(joint, query)
	if err != nil {
		return nil, order, fmt.Errorf("infer: arranging result: %w", err)
	}

	return joint, order, nil
}

// plan orders every variable not in keep on the moral graph of net.
func plan(ctx context.Context, o Options, net *bayes.Network, keep map[string]struct{}) ([]string, error) {
	moral, err := dsep.MoralGraph(net.Graph())
	if err != nil {
		return nil, err
	}
	hidden := make([]core.NodeID, 0, net.Len())
	for _, name := range net.Names() {
		if _, ok := keep[name]; !ok {
			hidden = append(hidden, core.NodeID(name))
		}
	}
	order, err := elimination.Order(o.Heuristic, moral,
		elimination.WithCandidates(hidden),
		elimination.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}
	o.Logger.LogAttrs(ctx, slog.LevelDebug, "planned elimination order",
		slog.String("heuristic", o.Heuristic.String()),
		slog.Any("order", order),
	)

	return core.Strings(order), nil
}

// MAP returns the most probable full assignment consistent with evidence and
// its joint probability, by max-product elimination and Traceback.
func MAP(net *bayes.Network, evidence bayes.Evidence, opts ...Option) (*MAPResult, error) {
	o := buildOptions(opts)
	start := time.Now()
	ctx, span := startQuerySpan(o.Ctx, "MAP", net.Len(), len(evidence))

	res, err := maxProduct(ctx, o, net, evidence)
	var order []string
	if res != nil {
		order = res.Order
	}
	endQuerySpan(span, order, err)
	recordQueryMetrics(ctx, "map", time.Since(start), err == nil)

	return res, err
}

func maxProduct(ctx context.Context, o Options, net *bayes.Network, evidence bayes.Evidence) (*MAPResult, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}
	evidence = net.Restrict(evidence)
	factors, err := InitializeFactors(net, evidence)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]struct{}, len(evidence))
	for e := range evidence {
		keep[e] = struct{}{}
	}
	order, err := plan(ctx, o, net, keep)
	if err != nil {
		return nil, err
	}

	stored := make(map[string]*factor.Factor, len(order))
	for _, v := range order {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		var pre *factor.Factor
		if factors, pre, err = MaxProductEliminate(factors, v); err != nil {
			return nil, err
		}
		if pre == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingFactor, v)
		}
		stored[v] = pre
		o.Logger.LogAttrs(ctx, slog.LevelDebug, "maximised variable",
			slog.String("variable", v),
			slog.Int("factors_after", len(factors)),
			slog.Int("combined_rank", pre.Rank()),
		)
		recordStep(ctx, "map", pre.Len())
	}

	rest, err := factor.MultiplyAll(factors)
	if err != nil {
		return nil, err
	}
	assignment, err := Traceback(stored, order)
	if err != nil {
		return nil, err
	}
	for k, v := range evidence {
		assignment[k] = v
	}

	return &MAPResult{Probability: rest.Value(), Assignment: assignment, Order: order}, nil
}
