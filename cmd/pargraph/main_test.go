package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestGen(t *testing.T) {
	out, _, err := execute(t, "", "gen", "path", "4")
	require.NoError(t, err)
	assert.Equal(t, "4 3\n1 2\n2 3\n3 4\n", out)

	a, _, err := execute(t, "", "gen", "random", "40", "0.2", "--seed", "5")
	require.NoError(t, err)
	b, _, err := execute(t, "", "gen", "random", "40", "0.2", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGen_Errors(t *testing.T) {
	tests := [][]string{
		{"gen", "hypercube", "3"},
		{"gen", "grid", "3"},
		{"gen", "path", "x"},
		{"gen", "cycle", "2"},
		{"gen", "random", "10", "2"},
	}
	for _, args := range tests {
		_, _, err := execute(t, "", args...)
		assert.Error(t, err, args)
	}
}

func TestBFS_TextFromStdin(t *testing.T) {
	graph, _, err := execute(t, "", "gen", "path", "5")
	require.NoError(t, err)

	out, _, err := execute(t, graph, "bfs", "-", "--workers", "3", "--verify", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: parallel\n")
	assert.Contains(t, out, "reached: 5\n")
	assert.Contains(t, out, "eccentricity: 4\n")
	assert.Contains(t, out, "verified: ok\n")
	assert.Contains(t, out, "vertex distance parent\n1 0 1\n2 1 1\n3 2 2\n4 3 3\n5 4 4\n")
}

func TestBFS_HybridYAML(t *testing.T) {
	path := writeGraph(t, "# two components\n6 4\n1 2\n2 3\n4 5\n5 6\n")
	out, _, err := execute(t, "", "bfs", path,
		"--hybrid", "--rounds", "3", "--claim", "--root", "2", "-w", "2", "-o", "yaml", "--log-level", "error")
	require.NoError(t, err)

	var rep struct {
		RunID     string  `yaml:"run_id"`
		Algorithm string  `yaml:"algorithm"`
		Reached   int     `yaml:"reached"`
		Rounds    int     `yaml:"rounds"`
		Distance  []int32 `yaml:"distance"`
		Parent    []int32 `yaml:"parent"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, "hybrid", rep.Algorithm)
	assert.Equal(t, 3, rep.Reached)
	assert.Equal(t, 1, rep.Rounds)
	assert.Equal(t, []int32{1, 0, 1, -1, -1, -1}, rep.Distance)
	assert.Equal(t, []int32{2, 2, 2, -1, -1, -1}, rep.Parent)
}

func TestBFS_Errors(t *testing.T) {
	path := writeGraph(t, "3 2\n1 2\n2 3\n")

	_, _, err := execute(t, "", "bfs", path, "--root", "7", "--log-level", "error")
	assert.Error(t, err)
	_, _, err = execute(t, "", "bfs", path, "--root", "0")
	assert.Error(t, err)
	_, _, err = execute(t, "", "bfs", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	_, _, err = execute(t, "3 5\n1 2\n", "bfs", "-")
	assert.Error(t, err)
	_, _, err = execute(t, "", "bfs")
	assert.Error(t, err)
}

func TestColor_WithMetrics(t *testing.T) {
	graph, _, err := execute(t, "", "gen", "cycle", "5")
	require.NoError(t, err)

	out, errOut, err := execute(t, graph, "color", "-", "--verify", "--metrics", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "colors: 3\n")
	assert.Contains(t, out, "verified: ok\n")
	assert.Contains(t, errOut, `pargraph_run_total{algorithm="greedy",status="success"} 1`)
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "pargraph.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: yaml\nbfs:\n  root: 3\nlog:\n  level: error\n"), 0o600))
	path := writeGraph(t, "3 2\n1 2\n2 3\n")

	out, _, err := execute(t, "", "--config", cfgPath, "bfs", path)
	require.NoError(t, err)
	assert.Contains(t, out, "root: 3\n")
	assert.Contains(t, out, "distance: [2, 1, 0]")

	// flags win over the file
	out, _, err = execute(t, "", "--config", cfgPath, "bfs", path, "--root", "1", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "root: 1\n")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("output: xml\n"), 0o600))
	_, _, err = execute(t, "", "--config", bad, "bfs", path)
	assert.Error(t, err)
}
