// SPDX-License-Identifier: MIT

// Package reach provides tunable options, errors and the result type for
// single-source reachability over a core.Adjacency.
package reach

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridtopo/core"
)

// Sentinel errors for reachability analysis.
var (
	// ErrUnknownRoot is returned when the root is not an indexed vertex.
	// It wraps core.ErrUnknownRoot.
	ErrUnknownRoot = fmt.Errorf("reach: %w", core.ErrUnknownRoot)

	// ErrAdjacencyNil is returned if a nil adjacency pointer is passed.
	ErrAdjacencyNil = errors.New("reach: adjacency is nil")
)

// Option configures reachability behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a reachability pass.
type Options struct {
	// Ctx allows aborting long traversals; checked once per dequeue.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued for expansion.
	// Returning an error aborts the traversal and propagates that error.
	OnVisit func(id int) error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run for every expanded vertex.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a reachability pass:
//   - Root: the traversal root.
//   - Visited: reached vertices in discovery order (root first).
//   - Cloud: vertices not reached from Root, ascending.
type Result struct {
	Root    int
	Visited []int
	Cloud   []int

	reached map[int]struct{}
}

// Connected reports whether every vertex was reached, i.e. the cloud is empty.
func (r *Result) Connected() bool { return len(r.Cloud) == 0 }

// Reached reports whether id was visited.
//
// Complexity: O(1) for a Result returned by Cloud; O(V) for one built by hand.
func (r *Result) Reached(id int) bool {
	if r.reached != nil {
		_, ok := r.reached[id]
		return ok
	}
	for _, v := range r.Visited {
		if v == id {
			return true
		}
	}

	return false
}
