package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/internal/config"
	"github.com/katalvlaran/lvbayes/internal/ctxlog"
)

// app is the state shared by every subcommand after PersistentPreRunE.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "lvbayes",
		Short: "Discrete Bayesian-network analysis and inference",
		Long: `lvbayes inspects causal structure, tests conditional independence,
plans elimination orders and answers exact and sampled probability
queries on the built-in graphs and networks.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newListCmd(a),
		newStructureCmd(a),
		newEquivalentCmd(a),
		newDsepCmd(a),
		newOrderCmd(a),
		newQueryCmd(a),
		newMAPCmd(a),
		newSampleCmd(a),
	)

	return root
}

// setup loads the configuration, applies the global flag overrides and
// installs the logger in the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	logger, err := ctxlog.New(a.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	a.cfg = cfg
	a.logger = logger
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	logger.Debug("configuration loaded", "path", a.configPath, "config", cfg)

	return nil
}

// usageError reports a bad flag value with exit code 2.
func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// parseEvidence reads "var=outcome" pairs.
func parseEvidence(pairs []string) (bayes.Evidence, error) {
	e := make(bayes.Evidence, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" || v == "" {
			return nil, usageError("invalid evidence %q: want var=outcome", p)
		}
		e[k] = v
	}

	return e, nil
}

// formatIDs renders node IDs as a space-separated list, "-" when empty.
func formatIDs(ids []core.NodeID) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(core.Strings(ids), " ")
}

// formatDistribution renders a distribution in the given outcome order.
func formatDistribution(outcomes []string, d bayes.Distribution) string {
	parts := make([]string, len(outcomes))
	for i, o := range outcomes {
		parts[i] = fmt.Sprintf("%s=%.6f", o, d[o])
	}
	return strings.Join(parts, " ")
}

// formatAssignment renders an assignment sorted by variable name.
func formatAssignment(a bayes.Assignment) string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + a[k]
	}
	return strings.Join(parts, " ")
}
