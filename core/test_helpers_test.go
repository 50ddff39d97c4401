// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for gridtopo/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridtopo/core"
)

// Common vertex IDs used across core tests.
const (
	V1 = 1
	V2 = 2
	V3 = 3
	V4 = 4

	VMissing = 99
)

// NewTriangle RETURNS the three-vertex cycle 1-2-3 used by several tests.
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFromIDs(
		[]int{V1, V2, V3},
		[]core.Pair{{U: V1, V: V2}, {U: V2, V: V3}, {U: V1, V: V3}},
	)
	MustNoError(t, err, "NewGraphFromIDs(triangle)")

	return g
}

// MustBuildAdjacency RETURNS the adjacency of g or fails the test.
func MustBuildAdjacency(t *testing.T, g *core.Graph) *core.Adjacency {
	t.Helper()
	adj, err := core.BuildAdjacency(g)
	MustNoError(t, err, "BuildAdjacency")

	return adj
}

// MustNoError FAILS the test when err is non-nil.
func MustNoError(t *testing.T, err error, ctx string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", ctx, err)
	}
}

// MustErrorIs FAILS the test when err does not match target via errors.Is.
func MustErrorIs(t *testing.T, err, target error, ctx string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want errors.Is(%v), got %v", ctx, target, err)
	}
}

// MustTrue FAILS the test when cond is false.
func MustTrue(t *testing.T, cond bool, ctx string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: want true", ctx)
	}
}

// MustFalse FAILS the test when cond is true.
func MustFalse(t *testing.T, cond bool, ctx string) {
	t.Helper()
	if cond {
		t.Fatalf("%s: want false", ctx)
	}
}

// MustEqualInts FAILS the test when got and want differ element-wise.
func MustEqualInts(t *testing.T, got, want []int, ctx string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", ctx, got, want)
	}
}

// CountOf RETURNS how many times x occurs in s.
func CountOf(s []int, x int) int {
	n := 0
	for _, v := range s {
		if v == x {
			n++
		}
	}

	return n
}
