// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// writePNG renders rows as a PNG: '#' is white, any other rune r is the
// colour whose packed RGB value is r.
func writePNG(t *testing.T, rows ...string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, r := range row {
			c := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
			if r != '#' {
				c = color.RGBA{R: uint8(r >> 16), G: uint8(r >> 8), B: uint8(r), A: 0xFF}
			}
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

var twoRects = []string{
	"#######",
	"#AA#BB#",
	"#AA#BB#",
	"#AA#BB#",
	"#######",
}

func TestParse(t *testing.T) {
	path := writePNG(t, twoRects...)
	out, err := run(t, "parse", path, "--set", "frame=2")
	require.NoError(t, err)

	var s summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	assert.Equal(t, path, s.Image)
	assert.Equal(t, 2, s.Frame)
	assert.Equal(t, 7, s.Width)
	assert.Equal(t, 5, s.Height)
	assert.Equal(t, 6, s.Vertices)
	assert.Equal(t, 8, s.Bonds)
	require.Len(t, s.Cells, 2)
	assert.EqualValues(t, 'A', s.Cells[0].Label)
	assert.Equal(t, 4, s.Cells[0].Bonds)
	assert.InDelta(t, 12.0, s.Cells[0].Area, 1e-9)
	assert.True(t, s.Cells[0].Margin)
}

func TestParse_RemoveMarginCells(t *testing.T) {
	path := writePNG(t, twoRects...)
	out, err := run(t, "parse", path, "--set", "remove_margin_cells=true")
	require.NoError(t, err)

	var s summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	assert.Empty(t, s.Cells)
	assert.Len(t, s.Ignored, 2)
}

func TestParse_AdjacencyFails(t *testing.T) {
	path := writePNG(t,
		"######",
		"#AACC#",
		"#AACC#",
		"######",
	)
	_, err := run(t, "parse", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(3,2)")
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", writePNG(t, twoRects...))
	require.NoError(t, err)
	assert.Contains(t, out, "consistent (2 cells, 8 bonds, 6 vertices)")

	nested := writePNG(t,
		"#######",
		"#AAAAA#",
		"#A###A#",
		"#A#B#A#",
		"#A###A#",
		"#AAAAA#",
		"#######",
	)
	out, err = run(t, "check", nested)
	assert.ErrorIs(t, err, errViolations)
	assert.Contains(t, out, "tissue: consistency violation")

	_, err = run(t, "check", nested, "--set", "fail_on_violations=false")
	assert.NoError(t, err)
}

func TestCheck_MetricsFile(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "tissuenet.prom")
	_, err := run(t, "check", writePNG(t, twoRects...), "--set", "metrics_file="+metricsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tissuenet_builds_total{result="ok"} 1`)
}

func TestBadFlags(t *testing.T) {
	_, err := run(t, "parse")
	assert.Error(t, err)

	_, err = run(t, "parse", "x.png", "--log-level", "loud")
	assert.Error(t, err)

	_, err = run(t, "parse", filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
