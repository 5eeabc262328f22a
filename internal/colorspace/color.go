package colorspace

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Perceptual luma weights (ITU-R BT.601).
const (
	lumaRedWeight   = 0.299
	lumaGreenWeight = 0.587
	lumaBlueWeight  = 0.114
)

// ColorValue is an immutable color with 8-bit RGB channels.
//
// The type is comparable: == and map-key semantics are defined over the RGB
// triple, so colors that decode to the same channels are interchangeable
// regardless of how they were produced. The hue/chroma/luma view is derived
// from the channels on every call and never stored.
type ColorValue struct {
	R uint8 // Red channel (0-255)
	G uint8 // Green channel (0-255)
	B uint8 // Blue channel (0-255)
}

// FromRGB constructs a ColorValue from 8-bit channels. It never fails;
// inputs outside [0,255] are clamped.
func FromRGB(r, g, b int) ColorValue {
	return ColorValue{
		R: uint8(clampInt(r, 0, 255)),
		G: uint8(clampInt(g, 0, 255)),
		B: uint8(clampInt(b, 0, 255)),
	}
}

// FromFloatRGB constructs a ColorValue from channels in [0,1]. Channels are
// clamped to [0,1] and rounded half away from zero to 8 bits.
func FromFloatRGB(r, g, b float64) ColorValue {
	return ColorValue{
		R: quantizeChannel(r),
		G: quantizeChannel(g),
		B: quantizeChannel(b),
	}
}

// FromHCY constructs the ColorValue closest to the given hue (degrees,
// wrapping), chroma (0-1), and luma (0-1).
//
// The reconstruction picks the base color on the hue hexagon at the requested
// chroma, then offsets every channel equally until the weighted luma matches.
// Channels that land outside [0,1] are clamped independently, so extreme
// chroma/luma combinations are approximated rather than rejected.
func FromHCY(hue, chroma, luma float64) ColorValue {
	hue = wrapDegrees(hue)
	chroma = clampFloat(chroma, 0, 1)
	luma = clampFloat(luma, 0, 1)

	h := hue / 60
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))

	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	// Shift all channels equally to hit the requested luma.
	m := luma - (lumaRedWeight*r + lumaGreenWeight*g + lumaBlueWeight*b)
	return FromFloatRGB(r+m, g+m, b+m)
}

// ParseHex parses a "#RRGGBB" or "#RGB" color string.
func ParseHex(s string) (ColorValue, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorValue{}, fmt.Errorf("failed to parse hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return ColorValue{R: r, G: g, B: b}, nil
}

// Hex formats the color as "#rrggbb".
func (c ColorValue) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Hue returns the color's position on the color wheel in degrees [0,360).
// Grayscale colors report hue 0.
func (c ColorValue) Hue() float64 {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	if max == min {
		return 0
	}

	d := max - min
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	return wrapDegrees(h * 60)
}

// Chroma returns the normalized channel spread in [0,1].
func (c ColorValue) Chroma() float64 {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	return math.Max(r, math.Max(g, b)) - math.Min(r, math.Min(g, b))
}

// Luma returns the perceptually weighted brightness in [0,1].
func (c ColorValue) Luma() float64 {
	return (lumaRedWeight*float64(c.R) +
		lumaGreenWeight*float64(c.G) +
		lumaBlueWeight*float64(c.B)) / 255
}

// WithHue returns a copy with the hue replaced and chroma/luma preserved.
func (c ColorValue) WithHue(hue float64) ColorValue {
	return FromHCY(hue, c.Chroma(), c.Luma())
}

// WithChroma returns a copy with the chroma replaced and hue/luma preserved.
func (c ColorValue) WithChroma(chroma float64) ColorValue {
	return FromHCY(c.Hue(), chroma, c.Luma())
}

// WithLuma returns a copy with the luma replaced and hue/chroma preserved.
func (c ColorValue) WithLuma(luma float64) ColorValue {
	return FromHCY(c.Hue(), c.Chroma(), luma)
}

// Grayscale returns the gray with the same luma as c.
func (c ColorValue) Grayscale() ColorValue {
	y := c.Luma()
	return FromFloatRGB(y, y, y)
}

// Negative returns the per-channel inverse of c.
func (c ColorValue) Negative() ColorValue {
	return ColorValue{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// quantizeChannel converts a [0,1] channel to 8 bits, clamping first and
// rounding half away from zero.
func quantizeChannel(v float64) uint8 {
	return uint8(math.Round(clampFloat(v, 0, 1) * 255))
}

// wrapDegrees normalizes an angle into [0,360).
func wrapDegrees(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
