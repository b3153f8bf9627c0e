package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a width x height red PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir string, width, height int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}

	path := filepath.Join(dir, "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestImageCache_Load(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 32, 16)
	cache := NewImageCache()

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Errorf("dimensions: got %dx%d, want 32x16", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestImageCache_CacheHit(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 8, 8)
	cache := NewImageCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Removing the file proves the second load comes from cache.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}

	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if first != second {
		t.Error("second Load should return the cached instance")
	}
}

func TestImageCache_Evict(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 8, 8)
	cache := NewImageCache()

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Evict(path)
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}

	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Evict should hit the disk and fail")
	}
}

func TestImageCache_LoadMissing(t *testing.T) {
	cache := NewImageCache()

	if _, err := cache.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoadImageInfo(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 20, 10)

	info, err := LoadImageInfo(NewImageCache(), path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 20 || info.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("color depth: got %s, want 8-bit", info.ColorDepth)
	}
	if !info.HasAlpha {
		t.Error("NRGBA PNG should report an alpha channel")
	}
	if info.FileSizeBytes <= 0 {
		t.Error("file size should be positive")
	}
}

func TestGetDimensions(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 33, 44)

	dims, err := GetDimensions(NewImageCache(), path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 33 || dims.Height != 44 {
		t.Errorf("dimensions: got %dx%d, want 33x44", dims.Width, dims.Height)
	}
}
