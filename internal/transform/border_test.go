package transform

import (
	"errors"
	"image/color"
	"testing"
)

func TestAddBorder_Dimensions(t *testing.T) {
	tests := []struct {
		name         string
		w, h, size   int
		wantW, wantH int
	}{
		{"landscape", 100, 50, 10, 120, 70},
		{"square", 64, 64, 3, 70, 70},
		{"single pixel border", 10, 10, 1, 12, 12},
		{"zero size", 40, 30, 0, 40, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newUniformImage(tt.w, tt.h, color.NRGBA{0, 0, 0, 255})
			out, err := AddBorder(img, Color{255, 255, 255, 255}, tt.size)
			if err != nil {
				t.Fatalf("AddBorder failed: %v", err)
			}
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestAddBorder_Corners(t *testing.T) {
	img := newUniformImage(100, 50, color.NRGBA{0, 0, 0, 255})
	border := Color{255, 0, 0, 255}

	out, err := AddBorder(img, border, 10)
	if err != nil {
		t.Fatalf("AddBorder failed: %v", err)
	}

	w := out.Bounds().Dx()
	h := out.Bounds().Dy()
	for _, corner := range [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		r, g, b, a := pixelAt(out, corner[0], corner[1])
		if r != 255 || g != 0 || b != 0 || a != 255 {
			t.Errorf("corner (%d,%d): got (%d,%d,%d,%d), want border red",
				corner[0], corner[1], r, g, b, a)
		}
	}

	// The scaled source sits centered on the canvas.
	if r, _, _, _ := pixelAt(out, w/2, h/2); r != 0 {
		t.Error("canvas center should hold source content")
	}
}

func TestAddBorder_ScalesSourceToFit(t *testing.T) {
	// The source is drawn scaled by W/(W+2*size) and centered, not pasted
	// 1:1 behind a literal margin, so the visible margin exceeds size.
	img := newUniformImage(100, 100, color.NRGBA{0, 0, 0, 255})

	out, err := AddBorder(img, Color{255, 255, 255, 255}, 10)
	if err != nil {
		t.Fatalf("AddBorder failed: %v", err)
	}

	// Scaled source is ~83x83 on a 120x120 canvas: (10,60) lies inside a
	// literal 10px margin but outside the scaled source.
	if r, _, _, _ := pixelAt(out, 10, 60); r != 255 {
		t.Error("pixel just inside a literal margin should still be border color")
	}
}

func TestAddBorder_NegativeSize(t *testing.T) {
	img := newUniformImage(10, 10, color.NRGBA{0, 0, 0, 255})

	if _, err := AddBorder(img, White, -1); !errors.Is(err, ErrAllocation) {
		t.Errorf("negative size: want ErrAllocation, got %v", err)
	}
}

func TestAddBorder_SizeZeroContent(t *testing.T) {
	img := newPatternImage(20, 20)

	out, err := AddBorder(img, White, 0)
	if err != nil {
		t.Fatalf("AddBorder failed: %v", err)
	}

	r, g, b, _ := pixelAt(out, 5, 5)
	if r != 255 || g != 0 || b != 0 {
		t.Error("zero-size border should keep content at 1:1 scale")
	}
}
