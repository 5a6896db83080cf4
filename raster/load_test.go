// SPDX-License-Identifier: MIT

package raster_test

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/tissuenet/raster"
)

// labelImage paints a 4×3 image: a bond frame around cells 0x010203 and 0x0A0B0C.
func labelImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	bond := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, bond)
		}
	}
	img.Set(1, 1, color.RGBA{R: 0x01, G: 0x02, B: 0x03, A: 0xFF})
	img.Set(2, 1, color.RGBA{R: 0x0A, G: 0x0B, B: 0x0C, A: 0xFF})
	return img
}

func writeImage(t *testing.T, name string, encode func(io.Writer, image.Image) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f, labelImage()))
	require.NoError(t, f.Close())
	return path
}

func TestLoad_Formats(t *testing.T) {
	cases := []struct {
		name   string
		encode func(io.Writer, image.Image) error
	}{
		{"frame.png", png.Encode},
		{"frame.tif", func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }},
		{"frame.bmp", bmp.Encode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := raster.Load(writeImage(t, tc.name, tc.encode))
			require.NoError(t, err)
			assert.Equal(t, 4, r.Width)
			assert.Equal(t, 3, r.Height)
			assert.Equal(t, raster.Bond, r.At(raster.Position{X: 0, Y: 0}))
			assert.Equal(t, []raster.CellIndex{0x010203, 0x0A0B0C}, r.CellLabels())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := raster.Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))
	_, err = raster.Load(path)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestLoad_TranslucentLabels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x80})
	img.Set(1, 0, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x80})
	img.Set(2, 0, color.NRGBA{R: 0x0A, G: 0x0B, B: 0x0C, A: 0x01})

	r, err := raster.FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, raster.Bond, r.At(raster.Position{X: 0, Y: 0}))
	assert.Equal(t, raster.CellLabel(0x123456), r.At(raster.Position{X: 1, Y: 0}))
	assert.Equal(t, raster.CellLabel(0x0A0B0C), r.At(raster.Position{X: 2, Y: 0}))

	path := filepath.Join(t.TempDir(), "translucent.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	loaded, err := raster.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []raster.CellIndex{0x0A0B0C, 0x123456}, loaded.CellLabels())
}
