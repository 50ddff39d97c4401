// SPDX-License-Identifier: MIT
// Package: gridtopo/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against one sink, then freezes the sink into an immutable core.Graph.
//   - All public factories are declared in impl_*.go, one topology per file.
//   - Determinism: same inputs/options/seed and constructor order => identical graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/core"
)

// Constructor appends vertices and edges to the sink using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Map every local index i to a vertex ID through cfg.idFn.
//   - Preserve determinism for the same config and call order.
type Constructor func(s *sink, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting core.Graph.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially filled sink is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: sum of their costs, then O(V log V + E) to freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	s := newSink()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := s.freeze()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures whose parameters are known to be valid
// (tests, examples, benchmarks). It panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// Offset returns a Constructor that runs c with every vertex ID shifted by k.
// Use it to place several components side by side in one graph:
//
//	BuildGraph(nil, Cycle(3), Offset(10, Path(4)))  // {0,1,2} and {10..13}
func Offset(k int, c Constructor) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Offset(%d): nil constructor: %w", k, ErrConstructFailed)
		}
		inner := cfg
		base := cfg.idFn
		inner.idFn = func(i int) int { return base(i) + k }

		return c(s, inner)
	}
}
