package cairo

import (
	"image/color"
	"strconv"
)

// RGBA is a non-premultiplied color with components in [0, 1], the form
// cairo takes for solid sources and gradient stops.
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit values.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	p := c.clamp()
	a = uint32(p.A * 0xffff)
	r = uint32(p.R * p.A * 0xffff)
	g = uint32(p.G * p.A * 0xffff)
	b = uint32(p.B * p.A * 0xffff)
	return r, g, b, a
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	if v, ok := c.(RGBA); ok {
		return v
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates a color from a hex string with an optional leading '#'.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
// Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB(0, 0, 0)
	}

	var r, g, b, a uint64
	switch len(hex) {
	case 3:
		r, g, b, a = (v>>8&0xf)*17, (v>>4&0xf)*17, (v&0xf)*17, 255
	case 4:
		r, g, b, a = (v>>12&0xf)*17, (v>>8&0xf)*17, (v>>4&0xf)*17, (v&0xf)*17
	case 6:
		r, g, b, a = v>>16&0xff, v>>8&0xff, v&0xff, 255
	case 8:
		r, g, b, a = v>>24&0xff, v>>16&0xff, v>>8&0xff, v&0xff
	default:
		return RGB(0, 0, 0)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func (c RGBA) clamp() RGBA {
	return RGBA{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
