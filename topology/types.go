// SPDX-License-Identifier: MIT

package topology

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridtopo/core"
	"github.com/katalvlaran/gridtopo/cycle"
)

// ErrGraphNil is returned when Analyze is given a nil graph.
var ErrGraphNil = errors.New("topology: graph is nil")

// Class is the coarse shape of a network.
type Class int

const (
	// ClassTree is a connected network without cycles (a radial grid).
	ClassTree Class = iota
	// ClassForest is a disconnected network without cycles.
	ClassForest
	// ClassCyclic is a network with at least one cycle in some component.
	ClassCyclic
)

var classNames = [...]string{"tree", "forest", "cyclic"}

// String returns "tree", "forest" or "cyclic".
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}

	return classNames[c]
}

// MarshalText implements encoding.TextMarshaler so reports carry the name.
func (c Class) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Report is the outcome of one analysis from one root.
//
// For a disconnected network Cloud and Components are filled, and Cycles
// covers only the root's component.
type Report struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	Root       int           `json:"root" yaml:"root"`
	Vertices   int           `json:"vertices" yaml:"vertices"`
	Edges      int           `json:"edges" yaml:"edges"`
	Connected  bool          `json:"connected" yaml:"connected"`
	Cloud      []int         `json:"cloud" yaml:"cloud"`
	Components [][]int       `json:"components,omitempty" yaml:"components,omitempty"`
	TreeEdges  int           `json:"tree_edges" yaml:"tree_edges"`
	OddEdges   []core.Pair   `json:"odd_edges" yaml:"odd_edges"`
	Cycles     []cycle.Cycle `json:"cycles" yaml:"cycles"`
	Class      Class         `json:"class" yaml:"class"`
	ElapsedNS  int64         `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// WithSkipLoops drops self-loops from the odd edges and the cycle basis.
func WithSkipLoops() Option {
	return func(a *Analyzer) { a.skipLoops = true }
}

// WithIDGenerator overrides how run IDs are minted.
func WithIDGenerator(fn func() string) Option {
	return func(a *Analyzer) {
		if fn != nil {
			a.newID = fn
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
