package skew

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/image-transform-mcp/internal/transform"
)

// newStripeImage draws thick horizontal black stripes on white, the kind of
// row structure a document scan projects.
func newStripeImage(width, height, spacing, thickness int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	for y := spacing; y < height-spacing; y += spacing {
		for dy := 0; dy < thickness; dy++ {
			for x := 10; x < width-10; x++ {
				img.SetNRGBA(x, y+dy, color.NRGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}

func TestEstimateAngle_ZeroDimensions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))

	if _, err := NewEstimator().EstimateAngle(img); err == nil {
		t.Error("zero-sized image should be an error")
	}
}

func TestEstimateAngle_Blank(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}

	angle, err := NewEstimator().EstimateAngle(img)
	if err != nil {
		t.Fatalf("EstimateAngle failed: %v", err)
	}
	if angle != 0 {
		t.Errorf("blank image angle: got %g, want 0", angle)
	}
}

func TestEstimateAngle_LevelContent(t *testing.T) {
	img := newStripeImage(300, 200, 40, 3)

	angle, err := NewEstimator().EstimateAngle(img)
	if err != nil {
		t.Fatalf("EstimateAngle failed: %v", err)
	}
	if angle != 0 {
		t.Errorf("level stripes angle: got %g, want 0", angle)
	}
}

func TestEstimateAngle_RecoversRotation(t *testing.T) {
	stripes := newStripeImage(300, 200, 40, 3)

	for _, applied := range []float64{4, -6} {
		rotated := transform.Rotate(stripes, applied)

		angle, err := NewEstimator().EstimateAngle(rotated)
		if err != nil {
			t.Fatalf("EstimateAngle failed: %v", err)
		}
		if math.Abs(angle-(-applied)) > 1.0 {
			t.Errorf("applied %g degrees: estimated deskew %g, want about %g",
				applied, angle, -applied)
		}
	}
}

func TestEstimateAngle_Deterministic(t *testing.T) {
	img := transform.Rotate(newStripeImage(300, 200, 40, 3), 5)

	est := NewEstimator()
	first, err := est.EstimateAngle(img)
	if err != nil {
		t.Fatalf("EstimateAngle failed: %v", err)
	}
	second, err := est.EstimateAngle(img)
	if err != nil {
		t.Fatalf("EstimateAngle failed: %v", err)
	}
	if first != second {
		t.Errorf("estimates differ across runs: %g vs %g", first, second)
	}
}
