package transform

import "image"

// DetectBackground infers the dominant color of an image, for trimming scans
// whose background is not white.
//
// Colors are grouped by dropping the low 4 bits of each RGB component so
// minor noise lands in one bucket, then counted; the most frequent bucket
// wins and the first pixel seen in it is returned. Returning an actual pixel
// value rather than the quantized representative keeps exact-match trimming
// usable on uniform backgrounds. An empty image yields opaque white.
func DetectBackground(img image.Image) Color {
	bounds := img.Bounds()
	counts := make(map[Color]int)
	samples := make(map[Color]Color)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			c := Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			q := Color{R: c.R &^ 0x0F, G: c.G &^ 0x0F, B: c.B &^ 0x0F, A: c.A &^ 0x0F}
			if counts[q] == 0 {
				samples[q] = c
			}
			counts[q]++
		}
	}

	best := White
	bestCount := 0
	for q, n := range counts {
		if n > bestCount {
			best = samples[q]
			bestCount = n
		}
	}
	return best
}
