// SPDX-License-Identifier: MIT

package topology

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridtopo/core"
	"github.com/katalvlaran/gridtopo/cycle"
	"github.com/katalvlaran/gridtopo/reach"
	"github.com/katalvlaran/gridtopo/span"
)

// Analyzer runs the reachability, spanning and cycle stages as one pipeline.
// It holds no per-run state and is safe for concurrent use.
type Analyzer struct {
	log       *slog.Logger
	skipLoops bool
	newID     func() string
}

// New returns an Analyzer with a discard logger and random run IDs.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		log:   discardLogger(),
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Analyze builds the adjacency of g and analyses it from root.
func (a *Analyzer) Analyze(ctx context.Context, g *core.Graph, root int) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	adj, err := core.BuildAdjacency(g)
	if err != nil {
		return nil, err
	}

	return a.run(ctx, g, adj, root)
}

// AnalyzeRoots analyses g from every root over one shared adjacency, at most
// limit analyses at a time (limit < 1 means unbounded). Reports follow the
// order of roots. The first failure cancels the remaining analyses.
func (a *Analyzer) AnalyzeRoots(ctx context.Context, g *core.Graph, roots []int, limit int) ([]*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	adj, err := core.BuildAdjacency(g)
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, len(roots))
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, root := range roots {
		eg.Go(func() error {
			r, err := a.run(egCtx, g, adj, root)
			if err != nil {
				return fmt.Errorf("root %d: %w", root, err)
			}
			reports[i] = r

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// run executes the pipeline on a prebuilt adjacency.
func (a *Analyzer) run(ctx context.Context, g *core.Graph, adj *core.Adjacency, root int) (*Report, error) {
	start := time.Now()
	rep := &Report{
		RunID:    a.newID(),
		Root:     root,
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
	}
	log := a.log.With(slog.String("run_id", rep.RunID), slog.Int("root", root))

	res, err := reach.Cloud(adj, root, reach.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	rep.Connected = res.Connected()
	rep.Cloud = res.Cloud
	log.Debug("reachability done", slog.Int("visited", len(res.Visited)), slog.Int("cloud", len(res.Cloud)))

	opts := []span.Option{span.WithContext(ctx)}
	if a.skipLoops {
		opts = append(opts, span.WithSkipLoops())
	}
	if !rep.Connected {
		rep.Components = reach.Components(adj)
		opts = append(opts, span.WithPartial())
		log.Debug("network split", slog.Int("components", len(rep.Components)))
	}

	tr, err := span.Build(adj, root, opts...)
	if err != nil {
		return nil, err
	}
	rep.TreeEdges = len(tr.Edges())
	rep.OddEdges = tr.Odd
	log.Debug("spanning tree built", slog.Int("tree_edges", rep.TreeEdges), slog.Int("odd_edges", len(tr.Odd)))

	if rep.Cycles, err = cycle.FromTree(tr); err != nil {
		return nil, err
	}

	if rep.Connected {
		rep.Class = ClassTree
		if len(tr.Odd) > 0 {
			rep.Class = ClassCyclic
		}
	} else if rep.Class, err = a.classify(ctx, adj); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	rep.ElapsedNS = elapsed.Nanoseconds()
	log.Info("analysis finished",
		slog.Bool("connected", rep.Connected),
		slog.Int("cloud", len(rep.Cloud)),
		slog.Int("cycles", len(rep.Cycles)),
		slog.String("class", rep.Class.String()),
		slog.Duration("elapsed", elapsed),
	)

	return rep, nil
}

func (a *Analyzer) classify(ctx context.Context, adj *core.Adjacency) (Class, error) {
	opts := []span.Option{span.WithContext(ctx)}
	if a.skipLoops {
		opts = append(opts, span.WithSkipLoops())
	}

	return classifyForest(adj, opts...)
}
