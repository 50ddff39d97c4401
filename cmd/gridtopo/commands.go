// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridtopo/core"
	"github.com/katalvlaran/gridtopo/cycle"
	"github.com/katalvlaran/gridtopo/dataset"
	"github.com/katalvlaran/gridtopo/internal/config"
	"github.com/katalvlaran/gridtopo/reach"
	"github.com/katalvlaran/gridtopo/span"
	"github.com/katalvlaran/gridtopo/topology"
)

type connectivityView struct {
	Root      int   `json:"root" yaml:"root"`
	Vertices  int   `json:"vertices" yaml:"vertices"`
	Connected bool  `json:"connected" yaml:"connected"`
	Cloud     []int `json:"cloud" yaml:"cloud"`
}

func (a *app) connectivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connectivity <dataset>",
		Short: "Report the vertices the root cannot reach",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			adj, err := core.BuildAdjacency(g)
			if err != nil {
				return err
			}
			res, err := reach.Cloud(adj, a.cfg.Root, reach.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			view := connectivityView{Root: a.cfg.Root, Vertices: g.VertexCount(), Connected: res.Connected(), Cloud: res.Cloud}
			err = a.render(view, func(w io.Writer) {
				if view.Connected {
					fmt.Fprintf(w, "connected: root %d reaches all %d vertices\n", view.Root, view.Vertices)
					return
				}
				fmt.Fprintf(w, "disconnected: root %d misses %d of %d vertices\n", view.Root, len(view.Cloud), view.Vertices)
				fmt.Fprintf(w, "cloud: %v\n", view.Cloud)
			})
			if err != nil {
				return err
			}
			if !view.Connected {
				return &exitError{code: 2}
			}

			return nil
		},
	}
	cmd.Flags().Int("root", config.DefaultRoot, "root vertex")

	return cmd
}

type cyclesView struct {
	Root     int           `json:"root" yaml:"root"`
	OddEdges []core.Pair   `json:"odd_edges" yaml:"odd_edges"`
	Cycles   []cycle.Cycle `json:"cycles" yaml:"cycles"`
}

func (a *app) cyclesCmd() *cobra.Command {
	var canonical bool
	cmd := &cobra.Command{
		Use:   "cycles <dataset>",
		Short: "List one fundamental cycle per non-tree edge",
		Long: "cycles builds a breadth-first spanning tree from the root and closes one cycle\n" +
			"per non-tree edge. The network must be connected from the root.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			adj, err := core.BuildAdjacency(g)
			if err != nil {
				return err
			}
			opts := []span.Option{span.WithContext(cmd.Context())}
			if a.cfg.SkipLoops {
				opts = append(opts, span.WithSkipLoops())
			}
			tr, err := span.Build(adj, a.cfg.Root, opts...)
			if err != nil {
				return err
			}
			cs, err := cycle.FromTree(tr)
			if err != nil {
				return err
			}
			if canonical {
				cs = cycle.SortCanonical(cs)
			}
			a.log.Info("cycle basis extracted", slog.Int("root", tr.Root), slog.Int("cycles", len(cs)))

			view := cyclesView{Root: tr.Root, OddEdges: tr.Odd, Cycles: cs}

			return a.render(view, func(w io.Writer) {
				fmt.Fprintf(w, "%d cycles from root %d\n", len(view.Cycles), view.Root)
				for _, c := range view.Cycles {
					fmt.Fprintln(w, c)
				}
			})
		},
	}
	cmd.Flags().Int("root", config.DefaultRoot, "root vertex")
	cmd.Flags().BoolVar(&canonical, "canonical", false, "rotate each cycle to its canonical form and sort")

	return cmd
}

type componentsView struct {
	Count      int     `json:"count" yaml:"count"`
	Components [][]int `json:"components" yaml:"components"`
}

func (a *app) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components <dataset>",
		Short: "Split the network into connected components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			adj, err := core.BuildAdjacency(g)
			if err != nil {
				return err
			}
			comps := reach.Components(adj)
			view := componentsView{Count: len(comps), Components: comps}

			return a.render(view, func(w io.Writer) {
				fmt.Fprintf(w, "%d components\n", view.Count)
				for _, c := range view.Components {
					fmt.Fprintf(w, "  %v\n", c)
				}
			})
		},
	}
}

func (a *app) analyzeCmd() *cobra.Command {
	var roots []int
	cmd := &cobra.Command{
		Use:   "analyze <dataset>",
		Short: "Run the full analysis from one or more roots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(roots) == 0 {
				roots = []int{a.cfg.Root}
			}
			reps, err := a.analyzer().AnalyzeRoots(cmd.Context(), g, roots, a.cfg.Concurrency)
			if err != nil {
				return err
			}

			return a.render(reps, func(w io.Writer) {
				for _, r := range reps {
					printReport(w, r)
				}
			})
		},
	}
	cmd.Flags().IntSliceVar(&roots, "root", nil, "root vertex; repeat to analyse several roots (default from config)")
	cmd.Flags().Int("concurrency", 4, "maximum analyses in flight")

	return cmd
}

func printReport(w io.Writer, r *topology.Report) {
	fmt.Fprintf(w, "run %s root %d: %s\n", r.RunID, r.Root, r.Class)
	fmt.Fprintf(w, "  vertices %d, edges %d, tree edges %d, odd edges %d\n",
		r.Vertices, r.Edges, r.TreeEdges, len(r.OddEdges))
	if r.Connected {
		fmt.Fprintln(w, "  connected")
	} else {
		fmt.Fprintf(w, "  cloud: %v\n", r.Cloud)
		fmt.Fprintf(w, "  components: %d\n", len(r.Components))
	}
	for _, c := range r.Cycles {
		fmt.Fprintf(w, "  cycle: %s\n", c)
	}
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <dataset> <store.db>",
		Short: "Copy a JSON or YAML dataset into a SQLite store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, err := a.load(ctx, args[0])
			if err != nil {
				return err
			}
			s, err := dataset.OpenStore(ctx, args[1])
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Save(ctx, g); err != nil {
				return err
			}
			a.log.Info("dataset imported", slog.String("store", s.Path()))
			fmt.Fprintf(a.out, "imported %d vertices and %d edges into %s\n", g.VertexCount(), g.EdgeCount(), args[1])

			return nil
		},
	}
}
