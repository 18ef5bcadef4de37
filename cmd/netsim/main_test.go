// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "netsim version "+version+"\n", out)
}

func TestKinds(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)
	require.Equal(t, "contagion\nedge_decay\nedge_formation\nvoter\n", out)

	out, err = execute(t, "kinds", "--json")
	require.NoError(t, err)
	var kinds []string
	require.NoError(t, json.Unmarshal([]byte(out), &kinds))
	require.Len(t, kinds, 4)
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", "-c", filepath.Join("testdata", "formation.yaml"),
		"--json", "--dump", "--log-level", "error")
	require.NoError(t, err)

	var res runResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	_, err = uuid.Parse(res.RunID)
	require.NoError(t, err)
	require.Equal(t, "formation", res.Scenario)
	require.Equal(t, 6, res.Steps)
	require.True(t, res.Absorbed)
	require.Equal(t, "absorbed", res.Status)
	require.Equal(t, 1, res.Components)
	require.Len(t, res.Adjacency, 4)
	require.Equal(t, []float64{0, 1, 1, 1}, res.Adjacency[0])
}

func TestRunOverridesStop(t *testing.T) {
	out, err := execute(t, "run", "-c", filepath.Join("testdata", "formation.yaml"),
		"--max-steps", "2", "--seed", "11", "--dump", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, ": 2 steps,")
	require.Contains(t, out, "ready")
	require.Contains(t, out, "System\nNodes:\n")
}

func TestRunRejectsBadOverride(t *testing.T) {
	_, err := execute(t, "run", "-c", filepath.Join("testdata", "formation.yaml"), "--max-time", "-1")
	require.Error(t, err)

	_, err = execute(t, "run", "-c", filepath.Join("testdata", "formation.yaml"), "--log-level", "loud")
	require.Error(t, err)

	_, err = execute(t, "run")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", filepath.Join("testdata", "formation.yaml"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "ok "))
	require.Contains(t, out, "(4 nodes, 1 rules)")

	out, err = execute(t, "validate",
		filepath.Join("testdata", "formation.yaml"),
		filepath.Join("testdata", "broken.yaml"))
	require.Error(t, err)
	require.Contains(t, out, "FAIL")
	require.Contains(t, out, "missing bound parameter")
}
