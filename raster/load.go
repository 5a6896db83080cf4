// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Load decodes the segmented image at path into a Raster.
// PNG, GIF and JPEG are decoded by the standard library, TIFF and BMP by
// golang.org/x/image. JPEG is lossy and only safe for synthetic inputs.
func Load(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("raster: decode %s: %w", path, err)
	}
	r, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("raster: %s image %s: %w", format, path, err)
	}
	return r, nil
}
