package transform

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop extracts a rectangular region from an image.
//
// A nil region returns the input unchanged, without copying. Otherwise the
// request is clamped before extraction:
//
//   - negative X/Y are raised to 0
//   - zero or negative Width/Height expand to the full source extent
//   - a region running past the right or bottom edge is reduced to fit
//
// The clamped region is copied into a new buffer; the input is never
// modified. If the clamped region has no positive extent (the origin lies at
// or beyond the image edge) the operation fails with ErrCropOutOfRange.
func Crop(img image.Image, region *Rectangle) (image.Image, error) {
	if region == nil {
		return img, nil
	}

	bounds := img.Bounds()

	x := region.X
	if x < 0 {
		x = 0
	}
	y := region.Y
	if y < 0 {
		y = 0
	}

	width := region.Width
	if width <= 0 {
		width = bounds.Dx()
	}
	height := region.Height
	if height <= 0 {
		height = bounds.Dy()
	}

	if x+width > bounds.Dx() {
		width = bounds.Dx() - x
	}
	if y+height > bounds.Dy() {
		height = bounds.Dy() - y
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("crop %dx%d at (%d,%d) from %dx%d image: %w",
			region.Width, region.Height, region.X, region.Y,
			bounds.Dx(), bounds.Dy(), ErrCropOutOfRange)
	}

	rect := image.Rect(bounds.Min.X+x, bounds.Min.Y+y, bounds.Min.X+x+width, bounds.Min.Y+y+height)
	return imaging.Crop(img, rect), nil
}
