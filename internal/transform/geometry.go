package transform

import (
	"fmt"
	"image/color"
	"strconv"
)

// Rectangle describes an axis-aligned region within an image.
//
// X and Y locate the top-left corner. A Width or Height of zero or less is a
// sentinel meaning "use the full remaining extent"; Crop expands such fields
// to the source dimensions before clamping.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect constructs a Rectangle from a top-left corner and dimensions.
func Rect(x, y, width, height int) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Color is an 8-bit-per-component RGBA color value.
//
// Alpha is non-premultiplied: 0 = fully transparent, 255 = fully opaque.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// White is the default background reference used by Trim.
var White = Color{R: 255, G: 255, B: 255, A: 255}

// Transparent reports whether the color is fully transparent (alpha zero),
// regardless of its stored RGB components.
func (c Color) Transparent() bool {
	return c.A == 0
}

// Equal reports exact component-wise equality, alpha included.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B && c.A == o.A
}

// NRGBA converts to the stdlib non-premultiplied color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats the color as "#RRGGBB" when fully opaque, "#RRGGBBAA" otherwise.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseColor parses a hex color string like "#FF0000" or "#FF000080".
// The leading '#' is optional. Six-digit colors are fully opaque.
func ParseColor(hex string) (Color, error) {
	if len(hex) == 0 {
		return Color{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var c Color
	c.A = 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		c.R = uint8(val >> 16)
		c.G = uint8(val >> 8)
		c.B = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		c.R = uint8(val >> 24)
		c.G = uint8(val >> 16)
		c.B = uint8(val >> 8)
		c.A = uint8(val)
	default:
		return Color{}, fmt.Errorf("invalid hex color length %d", len(hex))
	}

	return c, nil
}
