package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridtopo/dataset"
)

// Two islands: a ring {1,2,3,4} with a chord (1,3), and the pair {7,8}.
const islandsJSON = `{
  "Nodes": {"1": {}, "2": {}, "3": {}, "4": {}, "7": {}, "8": {}},
  "Edges": {
    "(1, 2)": {}, "(2, 3)": {}, "(3, 4)": {}, "(4, 1)": {}, "(1, 3)": {},
    "(7, 8)": {}
  }
}`

const ringJSON = `{
  "Nodes": {"1": {}, "2": {}, "3": {}},
  "Edges": {"(1, 2)": {}, "(2, 3)": {}, "(1, 3)": {}}
}`

func writeDataset(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// exec runs one command line in a clean working directory.
func exec(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestConnectivity(t *testing.T) {
	path := writeDataset(t, "islands.json", islandsJSON)

	code, out, _ := exec(t, "connectivity", path, "--root", "1")
	assert.Equal(t, 2, code, "a cloud exits with 2")
	assert.Contains(t, out, "disconnected: root 1 misses 2 of 6 vertices")
	assert.Contains(t, out, "cloud: [7 8]")

	code, out, _ = exec(t, "connectivity", writeDataset(t, "ring.json", ringJSON), "--root", "2")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "connected: root 2 reaches all 3 vertices")

	code, out, _ = exec(t, "connectivity", path, "--root", "7", "-o", "json")
	assert.Equal(t, 2, code)
	var view connectivityView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, []int{1, 2, 3, 4}, view.Cloud)
}

func TestConnectivity_Errors(t *testing.T) {
	path := writeDataset(t, "ring.json", ringJSON)

	code, _, errOut := exec(t, "connectivity", path)
	assert.Equal(t, 1, code, "default root 14319 is not in the ring")
	assert.Contains(t, errOut, "unknown root")

	code, _, errOut = exec(t, "connectivity", filepath.Join(t.TempDir(), "none.csv"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unsupported format")

	code, _, _ = exec(t, "connectivity")
	assert.Equal(t, 1, code, "missing argument")

	code, _, errOut = exec(t, "connectivity", path, "--root", "1", "--log-level", "loud")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid configuration")
}

func TestCycles(t *testing.T) {
	path := writeDataset(t, "islands.json", islandsJSON)

	code, _, errOut := exec(t, "cycles", path, "--root", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "not connected", "cycles need a connected network")

	ring := writeDataset(t, "ring.json", ringJSON)
	code, out, _ := exec(t, "cycles", ring, "--root", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "1 cycles from root 1\n2 -> 1 -> 3 -> 2\n", out)

	code, out, _ = exec(t, "cycles", ring, "--root", "1", "--canonical", "-o", "yaml")
	require.Equal(t, 0, code)
	var view struct {
		Root     int      `yaml:"root"`
		OddEdges []string `yaml:"odd_edges"`
		Cycles   [][]int  `yaml:"cycles"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Equal(t, []string{"(2, 3)"}, view.OddEdges)
	assert.Equal(t, [][]int{{1, 2, 3, 1}}, view.Cycles)
}

func TestComponents(t *testing.T) {
	code, out, _ := exec(t, "components", writeDataset(t, "islands.json", islandsJSON))
	require.Equal(t, 0, code)
	assert.Equal(t, "2 components\n  [1 2 3 4]\n  [7 8]\n", out)
}

func TestAnalyze(t *testing.T) {
	path := writeDataset(t, "islands.json", islandsJSON)

	code, out, _ := exec(t, "analyze", path, "--root", "1", "--root", "7", "-o", "json", "--concurrency", "2")
	require.Equal(t, 0, code)

	var reps []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reps))
	require.Len(t, reps, 2)
	assert.EqualValues(t, 1, reps[0]["root"])
	assert.EqualValues(t, 7, reps[1]["root"])
	assert.Equal(t, "cyclic", reps[0]["class"])
	assert.Len(t, reps[0]["cycles"], 2, "square with a chord")
	assert.Empty(t, reps[1]["cycles"])

	code, out, _ = exec(t, "analyze", writeDataset(t, "ring.json", ringJSON), "--root", "3")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "root 3: cyclic")
	assert.Contains(t, out, "  connected\n")
	assert.Equal(t, 1, strings.Count(out, "cycle: "))
}

func TestAnalyze_ConfigFile(t *testing.T) {
	ring := writeDataset(t, "ring.json", ringJSON)
	cfg := writeDataset(t, "gridtopo.yaml", "root: 2\noutput: yaml\nlog:\n  level: debug\n  format: json\n")

	code, out, errOut := exec(t, "--config", cfg, "analyze", ring)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "root: 2")
	assert.Contains(t, errOut, `"msg":"configuration loaded"`)
}

func TestImport(t *testing.T) {
	src := writeDataset(t, "islands.json", islandsJSON)
	dst := filepath.Join(t.TempDir(), "grid.db")

	code, out, _ := exec(t, "import", src, dst)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "imported 6 vertices and 6 edges")

	g, err := dataset.LoadFile(context.Background(), dst)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 7, 8}, g.Vertices())

	code, out, _ = exec(t, "components", dst)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "2 components")
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "gridtopo.log")
	code, _, errOut := exec(t, "components", writeDataset(t, "ring.json", ringJSON), "--log-file", logPath)
	require.Equal(t, 0, code)
	assert.Empty(t, errOut)

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "dataset loaded")
}
