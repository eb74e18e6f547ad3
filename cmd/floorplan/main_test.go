package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorplan/layout"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

// TestRun_WritesOutputs runs the whole CLI on a small house.
func TestRun_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	spec := writeFile(t, dir, "rooms.yaml", "rooms:\n  - {type: living, area: 30}\n  - {type: bedroom, area: 15}\n  - {type: kitchen, area: 10}\n")
	out := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-spec", spec, "-seed", "7", "-n", "2", "-out", out, "-all"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	var rep struct {
		ID         string `json:"id"`
		Best       int    `json:"best"`
		Candidates []struct {
			ModelID string `json:"model_id"`
			Seed    int64  `json:"seed"`
		} `json:"candidates"`
		Models map[string]string `json:"models"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rep))
	require.Len(t, rep.Candidates, 2)
	assert.Len(t, rep.Models, 2)

	data, err := os.ReadFile(filepath.Join(out, layoutFile))
	require.NoError(t, err)
	l, err := layout.UnmarshalGeoJSON(data)
	require.NoError(t, err)
	assert.Len(t, l.Rooms, 3)
	assert.Equal(t, rep.Candidates[rep.Best].Seed, l.Seed)

	for _, c := range rep.Candidates {
		ply, err := os.ReadFile(filepath.Join(out, modelName(c.ModelID)))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(ply), "ply\n"))
	}
	_, err = os.Stat(filepath.Join(out, "layout_1.geojson"))
	assert.NoError(t, err)
}

// TestRun_Failures maps errors to exit codes.
func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run(nil, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"-bogus"}, &stdout, &stderr))

	noHub := writeFile(t, dir, "storage.yaml", "- {type: storage, area: 5}\n")
	assert.Equal(t, exitConfig, run([]string{"-spec", noHub, "-out", dir, "-seed", "1"}, &stdout, &stderr))

	badCfg := writeFile(t, dir, "cfg.yaml", "unknown: 1\n")
	ok := writeFile(t, dir, "ok.yaml", "- {type: living, area: 20}\n")
	assert.Equal(t, exitConfig, run([]string{"-spec", ok, "-config", badCfg}, &stdout, &stderr))
	assert.Equal(t, exitConfig, run([]string{"-spec", ok, "-log-level", "loud"}, &stdout, &stderr))
	assert.Equal(t, exitConfig, run([]string{"-spec", filepath.Join(dir, "missing.yaml")}, &stdout, &stderr))
}

// TestRun_NoMesh skips model files.
func TestRun_NoMesh(t *testing.T) {
	dir := t.TempDir()
	spec := writeFile(t, dir, "rooms.json", `[{"type":"living","area":20},{"type":"study","area":9}]`)
	var stdout, stderr bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-spec", spec, "-seed", "3", "-no-mesh", "-out", dir, "-log-format", "json"}, &stdout, &stderr))

	matches, err := filepath.Glob(filepath.Join(dir, "model_*.ply"))
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Contains(t, stderr.String(), `"msg":"done"`)
}
