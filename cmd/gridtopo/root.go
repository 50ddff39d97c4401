// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridtopo/core"
	"github.com/katalvlaran/gridtopo/dataset"
	"github.com/katalvlaran/gridtopo/internal/config"
	"github.com/katalvlaran/gridtopo/internal/logging"
	"github.com/katalvlaran/gridtopo/topology"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
	log        *slog.Logger
	closer     io.Closer
	out        io.Writer
	errOut     io.Writer
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{v: config.New(), out: stdout, errOut: stderr}

	root := &cobra.Command{
		Use:               "gridtopo",
		Short:             "Connectivity and cycle analysis of grid networks",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ./gridtopo.yaml when present)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("log-file", "", "write logs to this file, rotated")
	pf.Bool("skip-loops", false, "ignore self-loops when collecting cycles")
	pf.StringP("output", "o", "text", "output format: text, json or yaml")
	for key, flag := range map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
		"log.file":   "log-file",
		"skip_loops": "skip-loops",
		"output":     "output",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		a.connectivityCmd(),
		a.cyclesCmd(),
		a.componentsCmd(),
		a.analyzeCmd(),
		a.importCmd(),
	)

	return root, a
}

// setup resolves configuration and logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if f := cmd.Flags().Lookup("root"); f != nil && f.Value.Type() == "int" {
		_ = a.v.BindPFlag("root", f)
	}
	if f := cmd.Flags().Lookup("concurrency"); f != nil {
		_ = a.v.BindPFlag("concurrency", f)
	}

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log, a.closer = logging.New(cfg.Logging(), a.errOut)
	a.log.Debug("configuration loaded",
		slog.Int("root", cfg.Root),
		slog.Int("concurrency", cfg.Concurrency),
		slog.String("output", cfg.Output),
	)

	return nil
}

func (a *app) close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

func (a *app) analyzer() *topology.Analyzer {
	opts := []topology.Option{topology.WithLogger(a.log)}
	if a.cfg.SkipLoops {
		opts = append(opts, topology.WithSkipLoops())
	}

	return topology.New(opts...)
}

// load reads a dataset and logs its shape.
func (a *app) load(ctx context.Context, path string) (*core.Graph, error) {
	g, err := dataset.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	a.log.Info("dataset loaded",
		slog.String("path", path),
		slog.Int("vertices", st.VertexCount),
		slog.Int("edges", st.EdgeCount),
		slog.Int("self_loops", st.SelfLoops),
		slog.Int("parallel_edges", st.ParallelEdges),
		slog.Int("isolated", st.Isolated),
	)

	return g, nil
}

// render writes v as JSON or YAML, or calls text for the text format.
func (a *app) render(v any, text func(w io.Writer)) error {
	switch a.cfg.Output {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		text(a.out)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", a.cfg.Output)
	}
}
