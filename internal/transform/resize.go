package transform

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Resize scales an image by a uniform factor.
//
// The result measures floor(W*scale) x floor(H*scale) and keeps the source's
// content drawn from the origin with bilinear resampling. The factor is
// expected in (0, 1] but is not clamped; factors above 1 upscale. A factor
// that yields a zero or negative dimension fails with ErrAllocation rather
// than handing a degenerate rectangle to the resampler.
func Resize(img image.Image, scale float64) (image.Image, error) {
	bounds := img.Bounds()
	width := int(float64(bounds.Dx()) * scale)
	height := int(float64(bounds.Dy()) * scale)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scale %g yields a %dx%d image: %w", scale, width, height, ErrAllocation)
	}

	return transform.Resize(img, width, height, transform.Linear), nil
}

// ResizeTo produces an image at exactly width x height by subset extraction:
// the top-left width x height region of the source is copied 1:1, never
// scaled. This is a deliberate asymmetry from Resize. Requesting dimensions
// larger than the source does not upscale; the overlapping region is copied
// and the remainder stays transparent.
func ResizeTo(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("target %dx%d: %w", width, height, ErrAllocation)
	}

	canvas := imaging.New(width, height, color.NRGBA{})
	return imaging.Paste(canvas, img, image.Pt(0, 0)), nil
}

// ResizeWithRatio produces an image at exactly width x height with the source
// drawn from the origin scaled by ratio. Unlike ResizeTo this variant does
// scale-and-draw: the source covers round(W*ratio) x round(H*ratio) of the
// canvas and the rest stays transparent.
func ResizeWithRatio(img image.Image, width, height int, ratio float64) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("target %dx%d: %w", width, height, ErrAllocation)
	}
	if ratio <= 0 {
		return nil, fmt.Errorf("ratio %g: %w", ratio, ErrAllocation)
	}

	bounds := img.Bounds()
	scaledW := int(math.Round(float64(bounds.Dx()) * ratio))
	scaledH := int(math.Round(float64(bounds.Dy()) * ratio))

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, image.Rect(0, 0, scaledW, scaledH), img, bounds, xdraw.Src, nil)
	return dst, nil
}
