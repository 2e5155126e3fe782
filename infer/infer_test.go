package infer_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/builder"
	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/dfs"
	"github.com/katalvlaran/lvbayes/elimination"
	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/infer"
)

var tf = []string{"True", "False"}

func network(t testing.TB, c builder.NetworkConstructor) *bayes.Network {
	t.Helper()
	n, err := builder.BuildNetwork(nil, c)
	require.NoError(t, err)

	return n
}

func mustFactor(t *testing.T, scope []string, values ...float64) *factor.Factor {
	t.Helper()
	domains := make([][]string, len(scope))
	for i := range domains {
		domains[i] = tf
	}
	f, err := factor.New(scope, domains, values)
	require.NoError(t, err)

	return f
}

func TestInitializeFactors(t *testing.T) {
	net := network(t, builder.Chain4())

	fs, err := infer.InitializeFactors(net, nil)
	require.NoError(t, err)
	require.Len(t, fs, 4)
	assert.Equal(t, []string{"A", "B"}, fs[0].Scope())

	fs, err = infer.InitializeFactors(net, bayes.Evidence{"B": "True", "unrelated": "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, fs[0].Scope())
	assert.InDelta(t, 0.2, fs[0].Values()[0], 1e-12)
	assert.Equal(t, []string{"C"}, fs[1].Scope())

	_, err = infer.InitializeFactors(net, bayes.Evidence{"B": "Maybe"})
	assert.ErrorIs(t, err, factor.ErrUnknownOutcome)
}

func TestCanonicalNetworks_Properties(t *testing.T) {
	tests := []struct {
		name string
		cons builder.NetworkConstructor
	}{
		{"wet grass", builder.WetGrass()},
		{"alarm", builder.Alarm()},
		{"chain4", builder.Chain4()},
		{"slippery road", builder.SlipperyRoad()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			net := network(t, tc.cons)

			post, err := infer.Posterior(net, net.Names(), nil)
			require.NoError(t, err)
			assert.Equal(t, net.Names(), post.Scope())
			assert.InDelta(t, 1.0, post.Sum(), 1e-12)

			fs, err := infer.InitializeFactors(net, bayes.Evidence{})
			require.NoError(t, err)
			require.Len(t, fs, net.Len())
			for i, name := range net.Names() {
				reduced, err := factor.Reduce(fs[i], bayes.Evidence{})
				require.NoError(t, err)
				cpt, err := net.CPT(name)
				require.NoError(t, err)
				assert.Equal(t, cpt.Scope(), reduced.Scope(), name)
				assert.Equal(t, cpt.Values(), reduced.Values(), name)
			}
		})
	}
}

func TestSumProductEliminate(t *testing.T) {
	f1 := mustFactor(t, []string{"A", "B"}, 0.2, 0.3, 0.8, 0.7)
	f2 := mustFactor(t, []string{"B"}, 0.4, 0.6)

	res, err := infer.SumProductEliminate([]*factor.Factor{f1, f2}, "B")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []string{"A"}, res[0].Scope())
	assert.InDeltaSlice(t, []float64{0.26, 0.74}, res[0].Values(), 1e-12)

	same, err := infer.SumProductEliminate([]*factor.Factor{f2}, "C")
	require.NoError(t, err)
	assert.Equal(t, []*factor.Factor{f2}, same)
}

func TestMaxProductEliminate(t *testing.T) {
	f1 := mustFactor(t, []string{"A", "B"}, 0.2, 0.3, 0.8, 0.7)
	f2 := mustFactor(t, []string{"B"}, 0.4, 0.6)

	res, pre, err := infer.MaxProductEliminate([]*factor.Factor{f1, f2}, "B")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.InDeltaSlice(t, []float64{0.18, 0.42}, res[0].Values(), 1e-12)
	require.NotNil(t, pre)
	assert.Equal(t, []string{"A", "B"}, pre.Scope())
	assert.InDeltaSlice(t, []float64{0.08, 0.18, 0.32, 0.42}, pre.Values(), 1e-12)

	_, pre, err = infer.MaxProductEliminate([]*factor.Factor{f2}, "C")
	require.NoError(t, err)
	assert.Nil(t, pre)
}

func TestTraceback(t *testing.T) {
	stored := map[string]*factor.Factor{
		"A": mustFactor(t, []string{"A"}, 0.18, 0.42),
		"B": mustFactor(t, []string{"A", "B"}, 0.08, 0.18, 0.32, 0.42),
	}
	got, err := infer.Traceback(stored, []string{"B", "A"})
	require.NoError(t, err)
	assert.Equal(t, bayes.Assignment{"A": "False", "B": "False"}, got)

	_, err = infer.Traceback(stored, []string{"C"})
	assert.ErrorIs(t, err, infer.ErrMissingFactor)

	_, err = infer.Traceback(map[string]*factor.Factor{"B": stored["A"]}, []string{"B"})
	assert.ErrorIs(t, err, factor.ErrScopeMismatch)
}

func TestPosterior_WetGrass(t *testing.T) {
	net := network(t, builder.WetGrass())
	wet := bayes.Evidence{"wet_grass": "True"}

	for _, h := range []elimination.Heuristic{elimination.MinFill, elimination.MinDegree} {
		h := h
		t.Run(h.String(), func(t *testing.T) {
			post, err := infer.Posterior(net, []string{"rain"}, wet, infer.WithHeuristic(h))
			require.NoError(t, err)
			d, err := post.Distribution()
			require.NoError(t, err)
			assert.InDelta(t, 0.6811322363, d["True"], 1e-9)
			assert.InDelta(t, 0.3188677637, d["False"], 1e-9)
		})
	}

	post, err := infer.Posterior(net, []string{"sprinkler", "rain"}, wet)
	require.NoError(t, err)
	assert.Equal(t, []string{"sprinkler", "rain"}, post.Scope())
	assert.InDeltaSlice(t, []float64{0.17725296, 0.29243755, 0.50387927, 0.02643022}, post.Values(), 1e-8)

	joint, err := infer.Joint(net, []string{"wet_grass"}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.70374, joint.Values()[0], 1e-9)
}

func TestPosterior_OtherNetworks(t *testing.T) {
	chain := network(t, builder.Chain4())
	joint, err := infer.Joint(chain, []string{"A"}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.228, joint.Values()[0], 1e-12)

	post, err := infer.Posterior(chain, []string{"C"}, bayes.Evidence{"A": "True"})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.42105263, 0.57894737}, post.Values(), 1e-8)

	road := network(t, builder.SlipperyRoad())
	post, err = infer.Posterior(road, []string{"slippery_road"}, bayes.Evidence{"wet_grass": "True"})
	require.NoError(t, err)
	assert.InDelta(t, 0.65567521, post.Values()[0], 1e-8)

	post, err = infer.Posterior(road, []string{"winter"}, bayes.Evidence{"slippery_road": "True"})
	require.NoError(t, err)
	assert.InDelta(t, 0.92307692, post.Values()[0], 1e-8)

	alarm := network(t, builder.Alarm())
	post, err = infer.Posterior(alarm, []string{"alarm"}, bayes.Evidence{"john": "Calling"})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.34170854, 0.25628141, 0.40201005}, post.Values(), 1e-8)

	post, err = infer.Posterior(alarm, []string{"burglary"}, bayes.Evidence{"john": "Calling"})
	require.NoError(t, err)
	assert.InDelta(t, 0.62311558, post.Values()[0], 1e-8)
}

// enumerate sums the joint probability of every full assignment consistent
// with evidence, split by the outcome of v.
func enumerate(t *testing.T, net *bayes.Network, v string, evidence bayes.Evidence) map[string]float64 {
	t.Helper()
	names := net.Names()
	out := make(map[string]float64)
	a := make(bayes.Assignment, len(names))

	var walk func(i int)
	walk = func(i int) {
		if i == len(names) {
			p, err := net.JointProbability(a)
			require.NoError(t, err)
			out[a[v]] += p
			return
		}
		outcomes, err := net.Outcomes(names[i])
		require.NoError(t, err)
		for _, o := range outcomes {
			if e, ok := evidence[names[i]]; ok && e != o {
				continue
			}
			a[names[i]] = o
			walk(i + 1)
		}
	}
	walk(0)

	return out
}

func TestPosterior_MatchesEnumeration(t *testing.T) {
	net := network(t, builder.WetGrass())
	evidence := bayes.Evidence{"wet_grass": "True", "winter": "False"}

	for _, v := range []string{"rain", "sprinkler", "dry_fields"} {
		sums := enumerate(t, net, v, evidence)
		var total float64
		for _, p := range sums {
			total += p
		}

		post, err := infer.Posterior(net, []string{v}, evidence)
		require.NoError(t, err)
		d, err := post.Distribution()
		require.NoError(t, err)
		for o, p := range sums {
			assert.InDelta(t, p/total, d[o], 1e-12, "%s=%s", v, o)
		}
	}
}

func TestPosterior_Errors(t *testing.T) {
	net := network(t, builder.SlipperyRoad())

	_, err := infer.Posterior(net, nil, nil)
	assert.ErrorIs(t, err, infer.ErrEmptyQuery)

	_, err = infer.Posterior(net, []string{"nope"}, nil)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = infer.Posterior(net, []string{"rain"}, bayes.Evidence{"rain": "True"})
	assert.ErrorIs(t, err, infer.ErrQueryIsEvidence)

	_, err = infer.Joint(net, []string{"rain", "winter", "rain"}, nil)
	assert.ErrorIs(t, err, infer.ErrDuplicateQuery)
	assert.NotErrorIs(t, err, factor.ErrScopeMismatch)

	_, err = infer.Posterior(net, []string{"rain"}, bayes.Evidence{"winter": "Maybe"})
	assert.ErrorIs(t, err, factor.ErrUnknownOutcome)

	_, err = infer.Posterior(net, []string{"winter"}, bayes.Evidence{"rain": "False", "slippery_road": "True"})
	assert.ErrorIs(t, err, factor.ErrZeroMass)

	cyclic := bayes.NewNetwork()
	require.NoError(t, cyclic.AddVariable("A", tf...))
	require.NoError(t, cyclic.AddVariable("B", tf...))
	require.NoError(t, cyclic.AddEdge("A", "B"))
	require.NoError(t, cyclic.AddEdge("B", "A"))
	_, err = infer.Posterior(cyclic, []string{"A"}, nil)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = infer.Posterior(net, []string{"rain"}, nil, infer.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMAP(t *testing.T) {
	tests := []struct {
		name     string
		net      builder.NetworkConstructor
		evidence bayes.Evidence
		prob     float64
		want     bayes.Assignment
	}{
		{
			name: "chain4", net: builder.Chain4(), prob: 0.2304,
			want: bayes.Assignment{"A": "False", "B": "True", "C": "False", "D": "False"},
		},
		{
			name: "chain4_A_true", net: builder.Chain4(), evidence: bayes.Evidence{"A": "True"}, prob: 0.0576,
			want: bayes.Assignment{"A": "True", "B": "True", "C": "False", "D": "False"},
		},
		{
			name: "wet_grass", net: builder.WetGrass(), prob: 0.342144,
			want: bayes.Assignment{
				"winter": "True", "sprinkler": "False", "rain": "True",
				"wet_grass": "True", "dry_fields": "False",
			},
		},
		{
			name: "wet_grass_dry", net: builder.WetGrass(), evidence: bayes.Evidence{"wet_grass": "False"}, prob: 0.06912,
			want: bayes.Assignment{
				"winter": "True", "sprinkler": "False", "rain": "False",
				"wet_grass": "False", "dry_fields": "True",
			},
		},
		{
			name: "alarm", net: builder.Alarm(), prob: 0.24,
			want: bayes.Assignment{"john": "Not_calling", "burglary": "Safe", "alarm": "Broken"},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			net := network(t, tc.net)
			res, err := infer.MAP(net, tc.evidence)
			require.NoError(t, err)
			assert.InDelta(t, tc.prob, res.Probability, 1e-12)
			assert.Equal(t, tc.want, res.Assignment)
			assert.Len(t, res.Order, net.Len()-len(tc.evidence))

			p, err := net.JointProbability(res.Assignment)
			require.NoError(t, err)
			assert.InDelta(t, res.Probability, p, 1e-12)
		})
	}
}

func TestMAP_AllObserved(t *testing.T) {
	net := network(t, builder.Chain4())
	all := bayes.Evidence{"A": "True", "B": "True", "C": "True", "D": "True"}

	res, err := infer.MAP(net, all)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Equal(t, bayes.Assignment(all), res.Assignment)
	assert.InDelta(t, 0.4*0.6*0.2*0.4, res.Probability, 1e-12)
}

func TestWithLogger_EmitsEliminationSteps(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	net := network(t, builder.Chain4())

	_, err := infer.Posterior(net, []string{"A"}, nil, infer.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"planned elimination order"`)
	assert.Contains(t, buf.String(), `"msg":"eliminated variable"`)
}
