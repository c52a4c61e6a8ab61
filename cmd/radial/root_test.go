package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/radial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	flatData     = "../../testdata/wheel.json"
	emotionsData = "../../testdata/emotions.json"
	spinScript   = "../../testdata/spin.json"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "radial.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func backgroundRect(th radial.Theme) string {
	return `<rect width="100%" height="100%" fill="` + th.Background.Hex() + `"/>`
}

func TestLayoutCommand(t *testing.T) {
	out, err := run(t, "layout", flatData)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, out, "joy")
	assert.Regexp(t, `pride\s+secondary\s+joy\s+90\.000\s+180\.000\s+90\.000`, out)
}

func TestLayoutCommandJSON(t *testing.T) {
	out, err := run(t, "layout", "--json", flatData)
	require.NoError(t, err)

	var rows []segmentRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 7)
	assert.Equal(t, "joy", rows[0].ID)
	assert.Equal(t, "primary", rows[0].Level)
	assert.InDelta(t, 180, rows[0].EndDeg, 1e-9)
	assert.InDelta(t, 360, rows[1].EndDeg, 1e-9)
}

func TestLayoutCommandDetectsEmotions(t *testing.T) {
	out, err := run(t, "layout", emotionsData)
	require.NoError(t, err)
	assert.Regexp(t, `Alegria\s+primary\s+0\.000\s+270\.000`, out)

	// Forced flat parsing finds no categories in an emotions document.
	out, err = run(t, "layout", "--format", "flat", emotionsData)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1)
}

func TestLayoutCommandUnknownFormat(t *testing.T) {
	_, err := run(t, "layout", "--format", "yaml", flatData)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dataset format "yaml"`)
}

func TestSVGCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.svg")
	out, err := run(t, "svg", "--labels", "--select", "joy", "-o", path, flatData)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(data)
	assert.Equal(t, 7, strings.Count(doc, "<path "))
	assert.Contains(t, doc, ">Joy</text>")
	assert.Contains(t, doc, `fill="`+radial.DefaultTheme.Selected.Hex()+`"`)
}

func TestSVGCommandStdoutTheme(t *testing.T) {
	out, err := run(t, "svg", "--theme", "dark", "--rotate", "30", flatData)
	require.NoError(t, err)
	assert.Contains(t, out, backgroundRect(radial.DarkTheme))
	assert.Contains(t, out, "rotate(30 200 200)")
	assert.NotContains(t, out, "<text")

	_, err = run(t, "svg", "--theme", "neon", flatData)
	assert.True(t, errors.Is(err, radial.ErrConfiguration))
}

func TestReplayCommand(t *testing.T) {
	out, err := run(t, "replay", flatData, spinScript)
	require.NoError(t, err)
	assert.Contains(t, out, "drag (quarter turn)")
	assert.Contains(t, out, "angle=90.000")
	assert.Contains(t, out, "scale=1.100")
	assert.Contains(t, out, "selected: []")
}

func TestReplayCommandWritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "final.svg")
	_, err := run(t, "replay", "--svg", path, flatData, spinScript)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestReplayCommandBadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"steps": [{"action": "fling"}]}`), 0o644))
	_, err := run(t, "replay", flatData, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse gesture script")
}

func TestConfigFile(t *testing.T) {
	cfg := writeConfig(t, `
theme  = "dark"
labels = true

selection {
  mode    = "single"
  initial = ["fear"]
}

view {
  rotation = 45
  scale    = 1.5
}
`)
	out, err := run(t, "--config", cfg, "svg", flatData)
	require.NoError(t, err)
	assert.Contains(t, out, backgroundRect(radial.DarkTheme))
	assert.Contains(t, out, "rotate(45 200 200)")
	assert.Contains(t, out, "scale(1.5)")
	assert.Contains(t, out, ">Fear</text>")
	assert.Contains(t, out, `fill="`+radial.DarkTheme.Selected.Hex()+`"`)
}

func TestConfigFileErrors(t *testing.T) {
	bad := writeConfig(t, `theme = `)
	_, err := run(t, "--config", bad, "layout", flatData)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")

	mode := writeConfig(t, `
selection {
  mode = "many"
}
`)
	_, err = run(t, "--config", mode, "layout", flatData)
	assert.True(t, errors.Is(err, radial.ErrConfiguration), "err = %v", err)
}

func TestWheelOptionsFromConfig(t *testing.T) {
	cfg := fileConfig{
		Radius: 120,
		Layout: &layoutConfig{WeightedChildren: true},
		Selection: &selectionConfig{
			MaxSelected: 2,
			Policy:      "reject-new",
			Disabled:    []string{"fear"},
		},
		View: &viewConfig{Inertia: true, SnapToSectors: true},
	}
	opts, err := cfg.wheelOptions()
	require.NoError(t, err)
	assert.Equal(t, 120.0, opts.Radius)
	assert.True(t, opts.Layout.WeightedChildren)
	assert.Equal(t, radial.RejectNew, opts.Selection.Policy)
	assert.Equal(t, []string{"fear"}, opts.Selection.DisabledIDs)
	assert.True(t, opts.View.Inertia)
	assert.Nil(t, opts.InitialView)
}
