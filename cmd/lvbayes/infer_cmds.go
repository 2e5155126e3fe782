package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/builder"
	"github.com/katalvlaran/lvbayes/elimination"
	"github.com/katalvlaran/lvbayes/infer"
	"github.com/katalvlaran/lvbayes/sampling"
)

// loadNetwork resolves a network fixture, mapping unknown names to exit code 2.
func loadNetwork(name string) (*bayes.Network, error) {
	n, err := builder.NetworkByName(name)
	if err != nil {
		return nil, usageError("%v", err)
	}
	return n, nil
}

// inferOptions applies the configured heuristic and the command's logger.
func (a *app) inferOptions(cmd *cobra.Command) ([]infer.Option, error) {
	h, err := elimination.ParseHeuristic(a.cfg.Inference.Heuristic)
	if err != nil {
		return nil, usageError("%v", err)
	}
	return []infer.Option{
		infer.WithContext(cmd.Context()),
		infer.WithLogger(a.logger),
		infer.WithHeuristic(h),
	}, nil
}

func newQueryCmd(a *app) *cobra.Command {
	var (
		network  string
		vars     []string
		evidence []string
		joint    bool
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Compute P(vars | evidence) by variable elimination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			net, err := loadNetwork(network)
			if err != nil {
				return err
			}
			e, err := parseEvidence(evidence)
			if err != nil {
				return err
			}
			opts, err := a.inferOptions(cmd)
			if err != nil {
				return err
			}
			run := infer.Posterior
			if joint {
				run = infer.Joint
			}
			f, err := run(net, vars, e, opts...)
			if err != nil {
				return err
			}
			fmt.Fprint(a.stdout, f)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&network, "network", "wet-grass", "network name (see list)")
	f.StringSliceVar(&vars, "vars", nil, "query variables")
	f.StringSliceVar(&evidence, "evidence", nil, "observations as var=outcome")
	f.BoolVar(&joint, "joint", false, "print the unnormalised P(vars, evidence)")

	return cmd
}

func newMAPCmd(a *app) *cobra.Command {
	var (
		network  string
		evidence []string
	)
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Find the most probable full assignment given evidence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			net, err := loadNetwork(network)
			if err != nil {
				return err
			}
			e, err := parseEvidence(evidence)
			if err != nil {
				return err
			}
			opts, err := a.inferOptions(cmd)
			if err != nil {
				return err
			}
			res, err := infer.MAP(net, e, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "probability: %.6g\nassignment: %s\n", res.Probability, formatAssignment(res.Assignment))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&network, "network", "chain4", "network name (see list)")
	f.StringSliceVar(&evidence, "evidence", nil, "observations as var=outcome")

	return cmd
}

func newSampleCmd(a *app) *cobra.Command {
	var (
		network  string
		variable string
		evidence []string
		method   string
		samples  int
		burnIn   int
		thinning int
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Estimate P(var | evidence) by forward, rejection or Gibbs sampling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			sc := a.cfg.Sampling
			if flags.Changed("method") {
				sc.Method = method
			}
			if flags.Changed("samples") {
				sc.Samples = samples
			}
			if flags.Changed("burn-in") {
				sc.BurnIn = burnIn
			}
			if flags.Changed("thinning") {
				sc.Thinning = thinning
			}
			if flags.Changed("seed") {
				sc.Seed = seed
			}
			cfg := a.cfg
			cfg.Sampling = sc
			if err := cfg.Validate(); err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			net, err := loadNetwork(network)
			if err != nil {
				return err
			}
			e, err := parseEvidence(evidence)
			if err != nil {
				return err
			}
			outcomes, err := net.Outcomes(variable)
			if err != nil {
				return usageError("%v", err)
			}
			s := sampling.New(
				sampling.WithSeed(sc.Seed),
				sampling.WithContext(cmd.Context()),
				sampling.WithLogger(a.logger),
			)

			var d bayes.Distribution
			switch sc.Method {
			case "forward":
				if len(e) > 0 {
					return usageError("sample: forward sampling ignores evidence; use --method rejection or gibbs")
				}
				d, err = s.ForwardSamplingMarginal(net, variable, sc.Samples)
			case "rejection":
				d, err = s.RejectionSamplingMarginal(net, variable, e, sc.Samples)
			default:
				d, err = s.GibbsSamplingMarginal(net, variable, e, sc.Samples, sc.BurnIn, sc.Thinning)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s (%s, n=%d): %s\n", variable, sc.Method, sc.Samples, formatDistribution(outcomes, d))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&network, "network", "wet-grass", "network name (see list)")
	f.StringVar(&variable, "var", "wet_grass", "variable to estimate")
	f.StringSliceVar(&evidence, "evidence", nil, "observations as var=outcome")
	f.StringVar(&method, "method", "", "forward, rejection or gibbs")
	f.IntVar(&samples, "samples", 0, "number of samples")
	f.IntVar(&burnIn, "burn-in", 0, "Gibbs sweeps discarded before recording")
	f.IntVar(&thinning, "thinning", 0, "record every n-th Gibbs sweep")
	f.Int64Var(&seed, "seed", 0, "RNG seed (0 selects the default seed)")

	return cmd
}
