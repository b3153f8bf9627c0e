package transform

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// AddBorder composites an image onto a larger canvas filled with a border
// color. The result measures (W + 2*size) x (H + 2*size).
//
// The source is not pasted at 1:1 scale with a literal size-pixel margin.
// Instead the canvas is filled with the border color, the source is scaled
// by the ratio between the old and new width, and the scaled image is drawn
// centered. The visible margin is therefore only approximately size pixels,
// and differs between the horizontal and vertical axes whenever the padding
// changes the aspect ratio. This is the authoritative behavior; callers that
// need an exact margin should compose ResizeTo and a paste themselves.
func AddBorder(img image.Image, c Color, size int) (image.Image, error) {
	if size < 0 {
		return nil, fmt.Errorf("border size %d: %w", size, ErrAllocation)
	}

	bounds := img.Bounds()
	newW := bounds.Dx() + 2*size
	newH := bounds.Dy() + 2*size

	canvas := imaging.New(newW, newH, c.NRGBA())
	if size == 0 {
		return imaging.Paste(canvas, img, image.Pt(0, 0)), nil
	}

	ratio := float64(bounds.Dx()) / float64(newW)
	scaledW := int(math.Round(float64(bounds.Dx()) * ratio))
	scaledH := int(math.Round(float64(bounds.Dy()) * ratio))
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}
	scaled := imaging.Resize(img, scaledW, scaledH, imaging.Lanczos)

	return imaging.PasteCenter(canvas, scaled), nil
}
