package sampling_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/builder"
	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/dfs"
	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/sampling"
)

var tf = []string{"True", "False"}

func network(t testing.TB, c builder.NetworkConstructor) *bayes.Network {
	t.Helper()
	n, err := builder.BuildNetwork(nil, c)
	require.NoError(t, err)

	return n
}

func TestSampleOutcome(t *testing.T) {
	s := sampling.New(sampling.WithSeed(11))
	outcomes := []string{"red", "green", "blue", "never"}
	weights := []float64{0.15, 0.55, 0.3, 0}

	counts := map[string]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		o, err := s.SampleOutcome(outcomes, weights)
		require.NoError(t, err)
		counts[o]++
	}
	assert.Zero(t, counts["never"])
	for i, o := range outcomes[:3] {
		assert.InDelta(t, weights[i], float64(counts[o])/draws, 0.02, o)
	}
}

func TestSampleOutcome_Errors(t *testing.T) {
	s := sampling.New()

	_, err := s.SampleOutcome([]string{"a", "b"}, []float64{0, 0})
	assert.ErrorIs(t, err, sampling.ErrZeroMass)

	_, err = s.SampleOutcome([]string{"a", "b"}, []float64{0.5, -0.1})
	assert.ErrorIs(t, err, sampling.ErrNegativeWeight)

	_, err = s.SampleOutcome([]string{"a"}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, sampling.ErrLengthMismatch)

	_, err = s.Sample(bayes.Distribution{})
	assert.ErrorIs(t, err, sampling.ErrZeroMass)
}

func TestSample_SeedPolicy(t *testing.T) {
	dist := bayes.Distribution{"red": 0.15, "green": 0.55, "blue": 0.3}
	draw := func(s *sampling.Sampler) []string {
		out := make([]string, 50)
		for i := range out {
			o, err := s.Sample(dist)
			require.NoError(t, err)
			out[i] = o
		}
		return out
	}

	assert.Equal(t, draw(sampling.New(sampling.WithSeed(5))), draw(sampling.New(sampling.WithSeed(5))))
	// Seed 0 selects the default seed.
	assert.Equal(t, draw(sampling.New(sampling.WithSeed(0))), draw(sampling.New(sampling.WithSeed(1))))
	assert.Equal(t, draw(sampling.New()), draw(sampling.New(sampling.WithSeed(1))))

	parent := sampling.New(sampling.WithSeed(3))
	a, b := parent.Fork(1), parent.Fork(1)
	assert.NotEqual(t, draw(a), draw(b))

	p1, p2 := sampling.New(sampling.WithSeed(3)), sampling.New(sampling.WithSeed(3))
	assert.Equal(t, draw(p1.Fork(9)), draw(p2.Fork(9)))
}

func TestNormalize(t *testing.T) {
	d, err := sampling.Normalize(bayes.Distribution{"a": 1, "b": 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, d["a"], 1e-12)
	assert.InDelta(t, 0.75, d["b"], 1e-12)

	_, err = sampling.Normalize(bayes.Distribution{"a": 0})
	assert.ErrorIs(t, err, sampling.ErrZeroMass)
}

func TestAncestralOrder(t *testing.T) {
	order, err := sampling.AncestralOrder(network(t, builder.WetGrass()))
	require.NoError(t, err)
	assert.Equal(t, []string{"winter", "rain", "dry_fields", "sprinkler", "wet_grass"}, order)

	order, err = sampling.AncestralOrder(network(t, builder.Alarm()))
	require.NoError(t, err)
	assert.Equal(t, []string{"alarm", "burglary", "john"}, order)

	rnd, err := builder.BuildNetwork([]builder.BuilderOption{
		builder.WithSeed(9), builder.WithPrefixIDs("n"), builder.WithEdgeProbability(0.4),
	}, builder.Random(15))
	require.NoError(t, err)
	order, err = sampling.AncestralOrder(rnd)
	require.NoError(t, err)
	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	require.Len(t, pos, rnd.Len())
	for _, name := range order {
		ps, err := rnd.Parents(name)
		require.NoError(t, err)
		for _, p := range ps {
			assert.Less(t, pos[p], pos[name], "%s before %s", p, name)
		}
	}

	cyclic := bayes.NewNetwork()
	require.NoError(t, cyclic.AddVariable("A", tf...))
	require.NoError(t, cyclic.AddVariable("B", tf...))
	require.NoError(t, cyclic.AddVariable("C", tf...))
	require.NoError(t, cyclic.AddEdge("A", "B"))
	require.NoError(t, cyclic.AddEdge("B", "C"))
	require.NoError(t, cyclic.AddEdge("C", "B"))
	_, err = sampling.AncestralOrder(cyclic)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestForwardSample(t *testing.T) {
	net := network(t, builder.SlipperyRoad())
	s := sampling.New(sampling.WithSeed(21))
	for i := 0; i < 200; i++ {
		a, err := s.ForwardSample(net)
		require.NoError(t, err)
		require.Len(t, a, net.Len())
		p, err := net.JointProbability(a)
		require.NoError(t, err)
		assert.Greater(t, p, 0.0, "forward samples have positive probability: %v", a)
	}
}

func TestForwardSamplingMarginal(t *testing.T) {
	net := network(t, builder.WetGrass())
	s := sampling.New(sampling.WithSeed(42))

	d, err := s.ForwardSamplingMarginal(net, "wet_grass", 10000)
	require.NoError(t, err)
	assert.InDelta(t, 0.70374, d["True"], 0.03)
	assert.InDelta(t, 0.29626, d["False"], 0.03)
	assert.InDelta(t, 1.0, d["True"]+d["False"], 1e-12)

	alarm := network(t, builder.Alarm())
	d, err = s.ForwardSamplingMarginal(alarm, "alarm", 100)
	require.NoError(t, err)
	assert.Len(t, d, 3)

	_, err = s.ForwardSamplingMarginal(net, "wet_grass", 0)
	assert.ErrorIs(t, err, sampling.ErrInvalidSampleCount)
	_, err = s.ForwardSamplingMarginal(net, "nope", 10)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sampling.New(sampling.WithContext(ctx)).ForwardSamplingMarginal(net, "rain", 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRejectionSamplingMarginal(t *testing.T) {
	net := network(t, builder.WetGrass())
	s := sampling.New(sampling.WithSeed(7))

	d, err := s.RejectionSamplingMarginal(net, "rain", bayes.Evidence{"wet_grass": "True", "unrelated": "x"}, 20000)
	require.NoError(t, err)
	assert.InDelta(t, 0.6811322363, d["True"], 0.03)

	_, err = s.RejectionSamplingMarginal(net, "rain", bayes.Evidence{"wet_grass": "Maybe"}, 10)
	assert.ErrorIs(t, err, factor.ErrUnknownOutcome)

	road := network(t, builder.SlipperyRoad())
	_, err = s.RejectionSamplingMarginal(road, "winter", bayes.Evidence{"rain": "False", "slippery_road": "True"}, 500)
	assert.ErrorIs(t, err, sampling.ErrNoAcceptedSamples)
}

func TestInitialState(t *testing.T) {
	net := network(t, builder.Alarm())
	state, err := sampling.InitialState(net, bayes.Evidence{"alarm": "Broken", "other": "x"})
	require.NoError(t, err)
	assert.Equal(t, bayes.Assignment{"john": "Calling", "burglary": "Intruder", "alarm": "Broken"}, state)

	_, err = sampling.InitialState(net, bayes.Evidence{"alarm": "Loud"})
	assert.ErrorIs(t, err, factor.ErrUnknownOutcome)
}

func TestMarkovBlanketDistribution(t *testing.T) {
	net := network(t, builder.Chain4())

	state := bayes.Assignment{"A": "True", "B": "False", "C": "True", "D": "False"}
	d, err := sampling.MarkovBlanketDistribution(net, "A", state)
	require.NoError(t, err)
	d, err = sampling.Normalize(d)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, d["True"], 1e-12)
	assert.InDelta(t, 0.7, d["False"], 1e-12)

	d, err = sampling.MarkovBlanketDistribution(net, "B", state)
	require.NoError(t, err)
	assert.InDelta(t, 0.6*0.2*0.6, d["True"], 1e-12)
	assert.InDelta(t, 0.4*0.3*0.8, d["False"], 1e-12)
	assert.Equal(t, "False", state["B"], "state is not modified")

	_, err = sampling.MarkovBlanketDistribution(net, "B", bayes.Assignment{"B": "True", "C": "True"})
	assert.ErrorIs(t, err, factor.ErrScopeMismatch)

	_, err = sampling.MarkovBlanketDistribution(net, "Z", state)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGibbsSamplingMarginal(t *testing.T) {
	net := network(t, builder.WetGrass())

	d, err := sampling.New(sampling.WithSeed(1)).
		GibbsSamplingMarginal(net, "wet_grass", bayes.Evidence{"slippery_road": "True"}, 10000, 100, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.70374, d["True"], 0.05)
	assert.InDelta(t, 0.29626, d["False"], 0.05)

	d, err = sampling.New(sampling.WithSeed(2)).
		GibbsSamplingMarginal(net, "rain", bayes.Evidence{"wet_grass": "True"}, 10000, 200, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.6811322363, d["True"], 0.05)
}

func TestGibbs_EvidenceNeverChanges(t *testing.T) {
	net := network(t, builder.SlipperyRoad())
	evidence := bayes.Evidence{"wet_grass": "True", "winter": "False"}

	sweeps := 0
	hook := func(sweep int, state bayes.Assignment) {
		sweeps++
		assert.Equal(t, sweeps, sweep)
		for k, v := range evidence {
			if state[k] != v {
				t.Fatalf("sweep %d changed %s to %s", sweep, k, state[k])
			}
		}
	}
	s := sampling.New(sampling.WithSeed(4), sampling.WithSweepHook(hook))
	d, err := s.GibbsSamplingMarginal(net, "winter", evidence, 300, 20, 3)
	require.NoError(t, err)
	assert.Equal(t, 20+300*3, sweeps)
	assert.Equal(t, bayes.Distribution{"True": 0, "False": 1}, d)
}

func TestGibbs_StartsFromPossibleState(t *testing.T) {
	// C is True only when A and B are both False, so the first-outcome
	// state A=B=True is impossible under evidence C=True.
	net := bayes.NewNetwork()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, net.AddVariable(name, tf...))
	}
	require.NoError(t, net.AddEdge("A", "C"))
	require.NoError(t, net.AddEdge("B", "C"))
	require.NoError(t, net.SetCPT("A", []float64{0.5, 0.5}))
	require.NoError(t, net.SetCPT("B", []float64{0.5, 0.5}))
	require.NoError(t, net.SetCPT("C", []float64{0, 0, 0, 1, 1, 1, 1, 0}))
	evidence := bayes.Evidence{"C": "True"}

	first, err := sampling.InitialState(net, evidence)
	require.NoError(t, err)
	p, err := net.JointProbability(first)
	require.NoError(t, err)
	require.Zero(t, p)

	hook := func(sweep int, state bayes.Assignment) {
		assert.Equal(t, bayes.Assignment{"A": "False", "B": "False", "C": "True"}, state, "sweep %d", sweep)
	}
	s := sampling.New(sampling.WithSeed(3), sampling.WithSweepHook(hook))
	d, err := s.GibbsSamplingMarginal(net, "A", evidence, 100, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, bayes.Distribution{"True": 0, "False": 1}, d)
}

func TestGibbs_Deterministic(t *testing.T) {
	net := network(t, builder.Alarm())
	run := func() bayes.Distribution {
		d, err := sampling.New(sampling.WithSeed(99)).
			GibbsSamplingMarginal(net, "alarm", bayes.Evidence{"john": "Calling"}, 500, 50, 1)
		require.NoError(t, err)
		return d
	}
	assert.Equal(t, run(), run())
}

func TestGibbs_Errors(t *testing.T) {
	net := network(t, builder.WetGrass())
	s := sampling.New()

	for _, c := range [][3]int{{0, 10, 1}, {10, -1, 1}, {10, 10, 0}} {
		_, err := s.GibbsSamplingMarginal(net, "rain", nil, c[0], c[1], c[2])
		assert.ErrorIs(t, err, sampling.ErrInvalidSampleCount, "%v", c)
	}
	_, err := s.GibbsSamplingMarginal(net, "nope", nil, 10, 0, 1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	// Y is never True, so no start state has positive probability.
	never := bayes.NewNetwork()
	require.NoError(t, never.AddVariable("X", tf...))
	require.NoError(t, never.AddVariable("Y", tf...))
	require.NoError(t, never.AddEdge("X", "Y"))
	require.NoError(t, never.SetCPT("X", []float64{0.5, 0.5}))
	require.NoError(t, never.SetCPT("Y", []float64{0, 0, 1, 1}))
	_, err = s.GibbsSamplingMarginal(never, "X", bayes.Evidence{"Y": "True"}, 10, 0, 1)
	assert.ErrorIs(t, err, sampling.ErrZeroMass)
}
