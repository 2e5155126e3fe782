package infer_test

import (
	"testing"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/builder"
	"github.com/katalvlaran/lvbayes/infer"
)

func BenchmarkPosterior_Random(b *testing.B) {
	net, err := builder.BuildNetwork([]builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithPrefixIDs("v"),
		builder.WithEdgeProbability(0.2),
	}, builder.Random(20))
	if err != nil {
		b.Fatal(err)
	}
	evidence := bayes.Evidence{"v19": "s0"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = infer.Posterior(net, []string{"v0"}, evidence); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMAP_WetGrass(b *testing.B) {
	net, err := builder.BuildNetwork(nil, builder.WetGrass())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = infer.MAP(net, nil); err != nil {
			b.Fatal(err)
		}
	}
}
