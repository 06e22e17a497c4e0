package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "2"))
	err := cmd.Execute()
	return out.String(), err
}

func TestCompute_PrintsList(t *testing.T) {
	out, err := run(t, "compute", "--areas", "1,0,0,0,0,0,0,0,0,0,0,0", "--flooding", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[100, 87, "), out)
	assert.Equal(t, 13, strings.Count(out, ",")+1)
}

func TestCompute_ParameterFlag(t *testing.T) {
	out, err := run(t, "compute", "--areas", "1,0,0,0,0,0,0,0,0,0,0,0", "--flow_per_commercial_area", "300", "--solver", "cycle", "--verify")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[300, 260, "), out)
}

func TestCompute_ScenarioFileAndGeoJSON(t *testing.T) {
	dir := t.TempDir()
	scenario := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(scenario, []byte("areas: [0,0,2,1,0,1,1,0,0,2,0,1]\nflooding: 2\n"), 0o600))
	geo := filepath.Join(dir, "out.geojson")

	out, err := run(t, "compute", "--scenario", scenario, "--workers", "3", "--geojson", geo, "--table")
	require.NoError(t, err)
	assert.Contains(t, out, "Flooding + Communication")
	assert.Contains(t, out, "street13")
	assert.FileExists(t, geo)
}

func TestCompute_Errors(t *testing.T) {
	_, err := run(t, "compute")
	assert.Error(t, err)

	_, err = run(t, "compute", "--areas", "1,0,0")
	assert.Error(t, err)

	_, err = run(t, "compute", "--areas", "1,0,0,0,0,0,0,0,0,0,0,0", "--flooding", "5")
	assert.Error(t, err)

	_, err = run(t, "compute", "--areas", "1,0,0,0,0,0,0,0,0,0,0,0", "--solver", "simplex")
	assert.Error(t, err)
}

func TestTopology(t *testing.T) {
	out, err := run(t, "topology")
	require.NoError(t, err)
	assert.Contains(t, out, "C3-C4")
	assert.Contains(t, out, "(0.66, 1)")
}

func TestDimacs(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "dimacs", "--areas", "0,0,0,0,0,1,0,0,0,2,0,0", "--flooding", "2", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "R1.min")
	assert.Contains(t, out, "R5.min")

	data, err := os.ReadFile(filepath.Join(dir, "R5.min"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "p min 12 26")
	assert.Contains(t, string(data), "c source R5")
}

func TestNewEngine_LogLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "-1")

	cmd := computeCmd()
	require.NoError(t, cmd.ParseFlags(nil))
	_, log, err := newEngine(cmd, &scenarioFlags{workers: 1})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	// An explicit flag still wins over the environment.
	root := newRootCmd()
	compute, _, err := root.Find([]string{"compute"})
	require.NoError(t, err)
	require.NoError(t, compute.ParseFlags([]string{"--log-level", "1"}))
	_, log, err = newEngine(compute, &scenarioFlags{workers: 1})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}
