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
)

var testSnapshot = filepath.Join("testdata", "river_road.yaml")

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

type jsonOutput struct {
	Name   string `json:"name"`
	Curves []struct {
		Kind         string   `json:"kind"`
		StartStation *float64 `json:"start_station"`
	} `json:"curves"`
	PIPoints []map[string]float64 `json:"pi_points"`
}

func executeJSON(t *testing.T, args ...string) jsonOutput {
	t.Helper()
	stdout, _, err := execute(t, append([]string{"--format", "json"}, args...)...)
	require.NoError(t, err)
	var doc jsonOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	return doc
}

func TestText(t *testing.T) {
	stdout, stderr, err := execute(t, testSnapshot)
	require.NoError(t, err)

	assert.Contains(t, stdout, "# River Road")
	assert.Contains(t, stdout, "PI points: 1")
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Equal(t, []string{"10", "10", "0"}, strings.Fields(lines[len(lines)-1]))

	assert.Contains(t, stderr, "placed PI points")
	assert.NotContains(t, stderr, "loaded snapshot", "debug entries are off by default")
}

func TestCorrectedStations(t *testing.T) {
	doc := executeJSON(t, testSnapshot)
	assert.Equal(t, "River Road", doc.Name)
	require.Len(t, doc.Curves, 2)
	assert.Equal(t, "Arc", doc.Curves[0].Kind)
	assert.Equal(t, "Line", doc.Curves[1].Kind)
	assert.Equal(t, []map[string]float64{{"x": 10, "y": 10, "z": 0}}, doc.PIPoints)
}

func TestRawStations(t *testing.T) {
	doc := executeJSON(t, "--raw-stations", testSnapshot)
	assert.Equal(t, []map[string]float64{{"x": 20, "y": 20, "z": 0}}, doc.PIPoints)
}

func TestSortByStation(t *testing.T) {
	doc := executeJSON(t, "--sort", testSnapshot)
	require.Len(t, doc.Curves, 2)
	assert.Equal(t, "Line", doc.Curves[0].Kind)
	assert.Equal(t, "Arc", doc.Curves[1].Kind)
	assert.Equal(t, []map[string]float64{{"x": 10, "y": 10, "z": 0}}, doc.PIPoints)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aligndump.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
format = "geojson"
log_level = "debug"
raw_stations = true
`), 0o644))

	stdout, stderr, err := execute(t, "--config", path, testSnapshot)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"FeatureCollection"`)
	assert.Contains(t, stdout, `[20,20]`)
	assert.Contains(t, stderr, "loaded snapshot")

	// Flags win over the file.
	stdout, _, err = execute(t, "--config", path, "--format", "text", "--log-level", "warn", testSnapshot)
	require.NoError(t, err)
	assert.Contains(t, stdout, "PI points: 1")
}

func TestErrors(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)

	_, _, err = execute(t, filepath.Join("testdata", "missing.yaml"))
	assert.ErrorContains(t, err, "reading snapshot")

	_, _, err = execute(t, "--format", "svg", testSnapshot)
	assert.ErrorContains(t, err, `unknown format "svg"`)

	_, _, err = execute(t, "--log-level", "loud", testSnapshot)
	assert.Error(t, err)
}
