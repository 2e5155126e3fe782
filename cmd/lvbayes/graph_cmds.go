package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbayes/builder"
	"github.com/katalvlaran/lvbayes/causal"
	"github.com/katalvlaran/lvbayes/core"
	"github.com/katalvlaran/lvbayes/dsep"
	"github.com/katalvlaran/lvbayes/elimination"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in graphs and networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(a.stdout, "graphs:  ", strings.Join(builder.GraphNames(), " "))
			fmt.Fprintln(a.stdout, "networks:", strings.Join(builder.NetworkNames(), " "))
			return nil
		},
	}
}

// loadGraph resolves a fixture name, mapping unknown names to exit code 2.
func loadGraph(name string) (*core.Graph, error) {
	g, err := builder.GraphByName(name)
	if err != nil {
		return nil, usageError("%v", err)
	}
	return g, nil
}

func newStructureCmd(a *app) *cobra.Command {
	var graph string
	cmd := &cobra.Command{
		Use:   "structure",
		Short: "Print forks, chains, colliders and immoralities of a graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(graph)
			if err != nil {
				return err
			}
			forks, err := causal.Forks(g)
			if err != nil {
				return err
			}
			chains, err := causal.Chains(g)
			if err != nil {
				return err
			}
			colliders, err := causal.Colliders(g)
			if err != nil {
				return err
			}
			imm, err := causal.Immoralities(g)
			if err != nil {
				return err
			}
			pairs := make([]string, len(imm))
			for i, p := range imm {
				pairs[i] = p.String()
			}
			if len(pairs) == 0 {
				pairs = []string{"-"}
			}
			fmt.Fprintln(a.stdout, "forks:       ", formatIDs(forks))
			fmt.Fprintln(a.stdout, "chains:      ", formatIDs(chains))
			fmt.Fprintln(a.stdout, "colliders:   ", formatIDs(colliders))
			fmt.Fprintln(a.stdout, "immoralities:", strings.Join(pairs, " "))
			return nil
		},
	}
	cmd.Flags().StringVar(&graph, "graph", "example", "graph or network name (see list)")

	return cmd
}

func newEquivalentCmd(a *app) *cobra.Command {
	var first, second string
	cmd := &cobra.Command{
		Use:   "equivalent",
		Short: "Compare skeletons and Markov equivalence of two graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g1, err := loadGraph(first)
			if err != nil {
				return err
			}
			g2, err := loadGraph(second)
			if err != nil {
				return err
			}
			same, err := causal.SameSkeleton(g1, g2)
			if err != nil {
				return err
			}
			equiv, err := causal.MarkovEquivalent(g1, g2)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "same skeleton: %t\nmarkov equivalent: %t\n", same, equiv)
			return nil
		},
	}
	cmd.Flags().StringVar(&first, "a", "example", "first graph")
	cmd.Flags().StringVar(&second, "b", "example-reversed", "second graph")

	return cmd
}

func newDsepCmd(a *app) *cobra.Command {
	var (
		graph    string
		xs, ys   []string
		zs       []string
		general  bool
		rule     string
		showPath bool
	)
	cmd := &cobra.Command{
		Use:   "dsep",
		Short: "Test whether X and Y are independent given Z",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(xs) == 0 || len(ys) == 0 {
				return usageError("dsep: -x and -y are required")
			}
			g, err := loadGraph(graph)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("collider-rule") {
				rule = a.cfg.Inference.ColliderRule
			}
			r, err := dsep.ParseColliderRule(rule)
			if err != nil {
				return usageError("%v", err)
			}
			opts := []dsep.Option{dsep.WithContext(cmd.Context()), dsep.WithColliderRule(r)}

			x, y, z := core.IDs(xs...), core.IDs(ys...), core.IDs(zs...)
			var indep bool
			if general {
				indep, err = dsep.CheckIndependenceGeneral(g, x, y, z)
			} else {
				indep, err = dsep.CheckIndependence(g, x, y, z, opts...)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "independent: %t\n", indep)

			if showPath && len(x) == 1 && len(y) == 1 {
				paths, err := dsep.Paths(g, x[0], y[0], opts...)
				if err != nil {
					return err
				}
				for _, p := range paths {
					open, err := dsep.IsPathOpen(g, p, z, opts...)
					if err != nil {
						return err
					}
					state := "blocked"
					if open {
						state = "open"
					}
					fmt.Fprintf(a.stdout, "  %-7s %s\n", state, formatIDs(p))
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&graph, "graph", "lecture", "graph or network name (see list)")
	f.StringSliceVarP(&xs, "x", "x", nil, "first node set")
	f.StringSliceVarP(&ys, "y", "y", nil, "second node set")
	f.StringSliceVarP(&zs, "z", "z", nil, "conditioning set")
	f.BoolVar(&general, "general", false, "use the ancestral/moral-graph criterion")
	f.StringVar(&rule, "collider-rule", "", "collider rule: direct-parents or ancestors")
	f.BoolVar(&showPath, "paths", false, "list every path and whether Z blocks it")

	return cmd
}

func newOrderCmd(a *app) *cobra.Command {
	var (
		graph     string
		heuristic string
		shrinking bool
		moral     bool
	)
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Plan a greedy elimination order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(graph)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("heuristic") {
				heuristic = a.cfg.Inference.Heuristic
			}
			h, err := elimination.ParseHeuristic(heuristic)
			if err != nil {
				return usageError("%v", err)
			}
			if moral {
				if g, err = dsep.MoralGraph(g); err != nil {
					return err
				}
			}
			opts := []elimination.Option{elimination.WithContext(cmd.Context())}
			if shrinking || (!cmd.Flags().Changed("shrinking") && a.cfg.Inference.Shrinking) {
				opts = append(opts, elimination.WithShrinkingGraph())
			}
			order, err := elimination.Order(h, g, opts...)
			if err != nil {
				return err
			}
			a.logger.Debug("elimination order planned", "heuristic", h.String(), "nodes", len(order))
			fmt.Fprintln(a.stdout, formatIDs(order))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&graph, "graph", "lecture", "graph or network name (see list)")
	f.StringVar(&heuristic, "heuristic", "", "min-fill or min-degree")
	f.BoolVar(&shrinking, "shrinking", false, "drop eliminated nodes from the interaction graph")
	f.BoolVar(&moral, "moral", false, "order the moral graph instead of the graph itself")

	return cmd
}
