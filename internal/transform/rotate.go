package transform

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// AngleEstimator computes the best-fit rotation, in degrees, that deskews the
// content of an image. Implementations must not mutate the image. The skew
// package provides the default projection-profile estimator; tests substitute
// fixed-angle stubs.
type AngleEstimator interface {
	EstimateAngle(img image.Image) (float64, error)
}

// Rotate rotates an image by the given angle in degrees, clockwise-positive,
// about its center.
//
// The destination canvas is expanded to the axis-aligned bounding box of the
// rotated source,
//
//	newW = round(|cos|*W + |sin|*H)
//	newH = round(|cos|*H + |sin|*W)
//
// so no corner is ever clipped. Destination pixels with no source coverage
// are fully transparent. An angle of exactly 0 still allocates a new buffer;
// its content is pixel-identical to the input.
func Rotate(img image.Image, degrees float64) image.Image {
	src := imaging.Clone(img)
	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()

	theta := degrees * math.Pi / 180
	sin, cos := math.Sincos(theta)

	dstW := int(math.Round(math.Abs(cos)*float64(srcW) + math.Abs(sin)*float64(srcH)))
	dstH := int(math.Round(math.Abs(cos)*float64(srcH) + math.Abs(sin)*float64(srcW)))
	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))

	// Inverse mapping: each destination pixel center is rotated back about
	// the destination center, then translated by the source half-dimensions
	// (not the destination's) to land in source coordinates.
	dstCX := float64(dstW) / 2
	dstCY := float64(dstH) / 2
	srcCX := float64(srcW) / 2
	srcCY := float64(srcH) / 2

	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			dx := float64(x) + 0.5 - dstCX
			dy := float64(y) + 0.5 - dstCY
			sx := cos*dx + sin*dy + srcCX - 0.5
			sy := -sin*dx + cos*dy + srcCY - 0.5
			dst.SetNRGBA(x, y, sampleBilinear(src, sx, sy))
		}
	}

	return dst
}

// Deskew estimates the image's skew angle with the given estimator and
// rotates by it. A zero estimate degrades to the Rotate identity, which
// still yields a fresh buffer.
func Deskew(img image.Image, est AngleEstimator) (image.Image, error) {
	angle, err := est.EstimateAngle(img)
	if err != nil {
		return nil, err
	}
	return Rotate(img, angle), nil
}

// SkewAngle returns the estimator's best-fit rotation angle in degrees.
// It is a pass-through with no logic of its own.
func SkewAngle(img image.Image, est AngleEstimator) (float64, error) {
	return est.EstimateAngle(img)
}

// sampleBilinear reads the source at a fractional coordinate, blending the
// 2x2 neighborhood. Neighbors outside the source contribute nothing, so
// samples taken fully outside come back transparent.
func sampleBilinear(src *image.NRGBA, x, y float64) color.NRGBA {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	var r, g, b, a float64
	for dy := 0; dy <= 1; dy++ {
		py := y0 + dy
		if py < 0 || py >= h {
			continue
		}
		wy := 1 - fy
		if dy == 1 {
			wy = fy
		}
		for dx := 0; dx <= 1; dx++ {
			px := x0 + dx
			if px < 0 || px >= w {
				continue
			}
			wx := 1 - fx
			if dx == 1 {
				wx = fx
			}
			weight := wx * wy
			if weight == 0 {
				continue
			}
			c := src.NRGBAAt(px, py)
			r += weight * float64(c.R)
			g += weight * float64(c.G)
			b += weight * float64(c.B)
			a += weight * float64(c.A)
		}
	}

	return color.NRGBA{
		R: uint8(math.Round(r)),
		G: uint8(math.Round(g)),
		B: uint8(math.Round(b)),
		A: uint8(math.Round(a)),
	}
}
