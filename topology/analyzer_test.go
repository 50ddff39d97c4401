package topology_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridtopo/builder"
	"github.com/katalvlaran/gridtopo/core"
	"github.com/katalvlaran/gridtopo/cycle"
	"github.com/katalvlaran/gridtopo/topology"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFromIDs([]int{1, 2, 3},
		[]core.Pair{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}})
	require.NoError(t, err)

	return g
}

// TestAnalyze_Connected runs the full pipeline on Scenario B.
func TestAnalyze_Connected(t *testing.T) {
	rep, err := topology.New().Analyze(context.Background(), triangle(t), 1)
	require.NoError(t, err)

	assert.True(t, rep.Connected)
	assert.Empty(t, rep.Cloud)
	assert.Nil(t, rep.Components)
	assert.Equal(t, 3, rep.Vertices)
	assert.Equal(t, 3, rep.Edges)
	assert.Equal(t, 2, rep.TreeEdges)
	assert.Equal(t, []core.Pair{{U: 2, V: 3}}, rep.OddEdges)
	assert.Equal(t, []cycle.Cycle{{2, 1, 3, 2}}, rep.Cycles)
	assert.Equal(t, topology.ClassCyclic, rep.Class)

	_, err = uuid.Parse(rep.RunID)
	assert.NoError(t, err, "run id is a uuid")
}

// TestAnalyze_Disconnected reports the cloud instead of failing.
func TestAnalyze_Disconnected(t *testing.T) {
	g := builder.MustBuild(nil,
		builder.Cycle(3),
		builder.Offset(10, builder.Path(2)),
	)
	a := topology.New()

	rep, err := a.Analyze(context.Background(), g, 0)
	require.NoError(t, err)
	assert.False(t, rep.Connected)
	assert.Equal(t, []int{10, 11}, rep.Cloud)
	assert.Equal(t, [][]int{{0, 1, 2}, {10, 11}}, rep.Components)
	assert.Len(t, rep.Cycles, 1, "cycles of the root's component")
	assert.Equal(t, topology.ClassCyclic, rep.Class)

	rep, err = a.Analyze(context.Background(), g, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, rep.Cloud)
	assert.Empty(t, rep.Cycles)
	assert.Equal(t, topology.ClassCyclic, rep.Class, "the triangle still makes the network cyclic")

	forest := builder.MustBuild(nil, builder.Path(3), builder.Offset(10, builder.Star(3)))
	rep, err = a.Analyze(context.Background(), forest, 0)
	require.NoError(t, err)
	assert.Equal(t, topology.ClassForest, rep.Class)
}

// TestAnalyze_Errors verifies failures surface with no report.
func TestAnalyze_Errors(t *testing.T) {
	a := topology.New()

	rep, err := a.Analyze(context.Background(), nil, 1)
	assert.ErrorIs(t, err, topology.ErrGraphNil)
	assert.Nil(t, rep)

	rep, err = a.Analyze(context.Background(), triangle(t), 99)
	assert.ErrorIs(t, err, core.ErrUnknownRoot)
	assert.Nil(t, rep)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.Analyze(ctx, triangle(t), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestAnalyze_SkipLoops treats a looped singleton as a tree.
func TestAnalyze_SkipLoops(t *testing.T) {
	g, err := core.NewGraphFromIDs([]int{1}, []core.Pair{{U: 1, V: 1}})
	require.NoError(t, err)

	rep, err := topology.New().Analyze(context.Background(), g, 1)
	require.NoError(t, err)
	assert.Equal(t, topology.ClassCyclic, rep.Class)
	assert.Equal(t, []cycle.Cycle{{1, 1}}, rep.Cycles)

	rep, err = topology.New(topology.WithSkipLoops()).Analyze(context.Background(), g, 1)
	require.NoError(t, err)
	assert.Equal(t, topology.ClassTree, rep.Class)
	assert.Empty(t, rep.Cycles)
}

// TestAnalyze_Logging checks the finished line carries the run id.
func TestAnalyze_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := topology.New(
		topology.WithLogger(logger),
		topology.WithIDGenerator(func() string { return "run-1" }),
	)

	rep, err := a.Analyze(context.Background(), triangle(t), 1)
	require.NoError(t, err)
	assert.Equal(t, "run-1", rep.RunID)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	assert.Equal(t, "analysis finished", last["msg"])
	assert.Equal(t, "run-1", last["run_id"])
	assert.Equal(t, "cyclic", last["class"])
	assert.EqualValues(t, 1, last["root"])
	assert.Contains(t, buf.String(), "spanning tree built")
}

// TestAnalyzeRoots keeps input order and stops on the first failure.
func TestAnalyzeRoots(t *testing.T) {
	g := builder.MustBuild(nil, builder.Grid(4, 4))
	roots := []int{15, 0, 5, 10, 3}

	reps, err := topology.New().AnalyzeRoots(context.Background(), g, roots, 2)
	require.NoError(t, err)
	require.Len(t, reps, len(roots))
	for i, r := range reps {
		assert.Equal(t, roots[i], r.Root)
		assert.True(t, r.Connected)
		assert.Len(t, r.Cycles, 9, "24 edges - 16 vertices + 1")
	}
	assert.NotEqual(t, reps[0].RunID, reps[1].RunID)

	_, err = topology.New().AnalyzeRoots(context.Background(), g, []int{0, 404, 1}, 0)
	assert.ErrorIs(t, err, core.ErrUnknownRoot)
	assert.Contains(t, err.Error(), "root 404")

	_, err = topology.New().AnalyzeRoots(context.Background(), nil, roots, 1)
	assert.ErrorIs(t, err, topology.ErrGraphNil)
}

// TestReport_JSON checks the wire shape of a report.
func TestReport_JSON(t *testing.T) {
	rep, err := topology.New().Analyze(context.Background(), triangle(t), 1)
	require.NoError(t, err)

	raw, err := json.Marshal(rep)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "cyclic", m["class"])
	assert.Equal(t, []any{"(2, 3)"}, m["odd_edges"])
	assert.NotContains(t, m, "components")
	assert.IsType(t, float64(0), m["elapsed_ns"])
}

// TestReport_YAML keeps the elapsed field numeric in YAML output too.
func TestReport_YAML(t *testing.T) {
	rep, err := topology.New().Analyze(context.Background(), triangle(t), 1)
	require.NoError(t, err)

	raw, err := yaml.Marshal(rep)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &m))
	assert.Equal(t, "cyclic", m["class"])
	assert.IsType(t, 0, m["elapsed_ns"], "nanoseconds, not a duration string")
	assert.EqualValues(t, rep.ElapsedNS, m["elapsed_ns"])
	assert.Equal(t, []any{"(2, 3)"}, m["odd_edges"])
}
