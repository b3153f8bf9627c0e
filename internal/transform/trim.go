package transform

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// pixelReader is the accessor the edge scans run over. Coordinates are
// zero-based from the top-left corner.
type pixelReader func(x, y int) Color

// Trim crops an image to the tightest rectangle enclosing all pixels that
// differ from an opaque white background.
//
// A pixel counts as foreground when it is not fully transparent and any of
// its R/G/B/A components differ from the background's. Fully transparent
// pixels are always background, whatever their stored RGB. All four edge
// scans share this one predicate; older revisions of this operation compared
// the right edge against opaque white without the transparency test, which
// made a transparent pixel with non-white RGB count as content on that edge
// only, and that inconsistency is deliberately not reproduced.
//
// Trim never fails observably: an image with no foreground at all comes back
// as an independent copy at the original dimensions.
func Trim(img image.Image) image.Image {
	return TrimColor(img, White, 0)
}

// TrimColor is Trim against an arbitrary background color.
//
// With tolerance 0 the predicate is exact component inequality. A positive
// tolerance compares colors by perceptual distance in Lab space instead, so
// near-background noise (scanner dust, JPEG ringing) is trimmed too; values
// around 0.02-0.05 work well for scanned documents.
func TrimColor(img image.Image, bg Color, tolerance float64) image.Image {
	src := imaging.Clone(img)
	width := src.Bounds().Dx()
	height := src.Bounds().Dy()

	at := func(x, y int) Color {
		c := src.NRGBAAt(x, y)
		return Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	fg := func(c Color) bool {
		return isForeground(c, bg, tolerance)
	}

	left, okL := leftmostContent(at, width, height, fg)
	right, okR := rightmostContent(at, width, height, fg)
	top, okT := topmostContent(at, width, height, fg)
	bottom, okB := bottommostContent(at, width, height, fg)

	if !okL || !okR || !okT || !okB {
		// Uniform background image: nothing to crop to.
		return src
	}

	region := Rect(left, top, right-left+1, bottom-top+1)
	out, err := Crop(src, &region)
	if err != nil {
		return imaging.Clone(img)
	}
	return out
}

// isForeground reports whether a pixel differs from the background under the
// trim predicate. Fully transparent pixels are never foreground.
func isForeground(c, bg Color, tolerance float64) bool {
	if c.Transparent() {
		return false
	}
	if tolerance <= 0 {
		return !c.Equal(bg)
	}
	return labDistance(c, bg) > tolerance
}

func labDistance(a, b Color) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceLab(cb)
}

// leftmostContent scans columns left to right, each column top to bottom,
// and returns the first column holding a foreground pixel.
func leftmostContent(at pixelReader, width, height int, fg func(Color) bool) (int, bool) {
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if fg(at(x, y)) {
				return x, true
			}
		}
	}
	return 0, false
}

// rightmostContent is the mirror scan, right to left.
func rightmostContent(at pixelReader, width, height int, fg func(Color) bool) (int, bool) {
	for x := width - 1; x >= 0; x-- {
		for y := 0; y < height; y++ {
			if fg(at(x, y)) {
				return x, true
			}
		}
	}
	return 0, false
}

// topmostContent scans rows top to bottom, each row left to right.
func topmostContent(at pixelReader, width, height int, fg func(Color) bool) (int, bool) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if fg(at(x, y)) {
				return y, true
			}
		}
	}
	return 0, false
}

// bottommostContent is the mirror scan, bottom to top.
func bottommostContent(at pixelReader, width, height int, fg func(Color) bool) (int, bool) {
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			if fg(at(x, y)) {
				return y, true
			}
		}
	}
	return 0, false
}
