package skew

import (
	"fmt"
	"image"
	"math"
)

// Estimator computes document skew by projection-profile scoring.
//
// The zero value is not ready for use; call NewEstimator for the standard
// configuration.
type Estimator struct {
	// MaxAngle is the sweep half-range in degrees. Candidates run from
	// -MaxAngle to +MaxAngle.
	MaxAngle float64

	// Step is the sweep increment in degrees and bounds the result's
	// resolution.
	Step float64

	// InkThreshold is the luminance (0-1) below which a pixel counts as
	// content. Document scans are dark ink on a light background.
	InkThreshold float64
}

// NewEstimator returns an estimator with the standard sweep: +/-15 degrees
// in quarter-degree steps, ink threshold 0.5.
func NewEstimator() *Estimator {
	return &Estimator{
		MaxAngle:     15,
		Step:         0.25,
		InkThreshold: 0.5,
	}
}

// EstimateAngle returns the rotation in degrees, clockwise-positive, that
// best deskews the image's content.
//
// An image with too little dark content to measure has no detectable skew
// and yields 0. Only zero-sized images are an error.
func (e *Estimator) EstimateAngle(img image.Image) (float64, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return 0, fmt.Errorf("cannot estimate skew of %dx%d image", width, height)
	}

	points := e.inkPoints(img)
	if len(points) < 16 {
		return 0, nil
	}

	// Sweep candidate angles; the one that concentrates the most pixels
	// into the fewest projected rows wins.
	bestAngle := 0.0
	bestScore := -1.0
	for angle := -e.MaxAngle; angle <= e.MaxAngle+e.Step/2; angle += e.Step {
		score := projectionEnergy(points, angle, width, height)
		if score > bestScore {
			bestScore = score
			bestAngle = angle
		}
	}

	// Snap near-zero results so the no-skew case is exact.
	if math.Abs(bestAngle) < e.Step/2 {
		bestAngle = 0
	}
	return bestAngle, nil
}

type point struct {
	x, y int
}

// inkPoints collects dark pixels, striding on large images so the sweep cost
// stays bounded.
func (e *Estimator) inkPoints(img image.Image) []point {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	stride := 1
	if m := max(width, height); m > 1024 {
		stride = m / 1024
	}

	points := make([]point, 0, width*height/(stride*stride)/4)
	for y := 0; y < height; y += stride {
		for x := 0; x < width; x += stride {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				continue
			}
			// ITU-R BT.601 luminance on 16-bit components.
			lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 65535.0
			if lum < e.InkThreshold {
				points = append(points, point{x: x, y: y})
			}
		}
	}
	return points
}

// projectionEnergy rotates the point cloud by the candidate angle and
// histograms the resulting row coordinates. The sum of squared bin counts is
// maximal when content rows align with the projection rows.
func projectionEnergy(points []point, degrees float64, width, height int) float64 {
	theta := degrees * math.Pi / 180
	sin, cos := math.Sincos(theta)

	// Rotated row coordinate can range over the source diagonal.
	diag := int(math.Hypot(float64(width), float64(height))) + 2
	bins := make([]int, 2*diag)

	for _, p := range points {
		row := int(math.Round(sin*float64(p.x)+cos*float64(p.y))) + diag
		if row >= 0 && row < len(bins) {
			bins[row]++
		}
	}

	energy := 0.0
	for _, n := range bins {
		if n > 0 {
			energy += float64(n) * float64(n)
		}
	}
	return energy
}
