package colorspace

import "math"

// RandomSource supplies uniform values in [0,1). A *rand.Rand satisfies it.
// One source is shared across every blend and mode call of a run, so a run
// is reproducible from its seed alone.
type RandomSource interface {
	Float64() float64
}

// RandomColor draws three consecutive values from rng and interprets them as
// an RGB triple in [0,1).
func RandomColor(rng RandomSource) ColorValue {
	r := rng.Float64()
	g := rng.Float64()
	b := rng.Float64()
	return FromFloatRGB(r, g, b)
}

// HueBlend returns a with its hue replaced by b's hue.
func HueBlend(a, b ColorValue) ColorValue {
	return a.WithHue(b.Hue())
}

// ChromaBlend returns a with its chroma replaced by b's chroma.
func ChromaBlend(a, b ColorValue) ColorValue {
	return a.WithChroma(b.Chroma())
}

// LumaBlend returns a with its luma replaced by b's luma.
func LumaBlend(a, b ColorValue) ColorValue {
	return a.WithLuma(b.Luma())
}

// Low-saturation policy bounds. A color below the chroma threshold or with
// luma outside the window reads as near-grayscale on screen.
const (
	lowChromaThreshold = 0.25
	lowLumaBound       = 0.15
	highLumaBound      = 0.85
)

// LowSaturation reports whether c is considered low saturation: chroma below
// the threshold, or luma outside the mid window. The two conditions combine
// with OR — a washed-out bright color counts even when its chroma is high.
func LowSaturation(c ColorValue) bool {
	return c.Chroma() < lowChromaThreshold ||
		c.Luma() < lowLumaBound || c.Luma() > highLumaBound
}

// AcidBlend perturbs c the way the legacy shuffle did: hue by a wide random
// offset, chroma and luma by smaller ones. Near-grayscale colors (per
// LowSaturation) get an extra chroma push so they come out visibly colored.
//
// Exactly four values are drawn from rng per call, on both branches, so the
// random stream stays aligned no matter which colors are fed in.
func AcidBlend(c ColorValue, rng RandomSource) ColorValue {
	dh := (rng.Float64() - 0.5) * 360
	dc := (rng.Float64() - 0.5) * 0.5
	dy := (rng.Float64() - 0.5) * 0.5
	boost := rng.Float64()

	if LowSaturation(c) {
		dc += boost * 0.5
	}
	return FromHCY(c.Hue()+dh, c.Chroma()+dc, c.Luma()+dy)
}

// MaseyaBlend shifts c by the change color while keeping the result visually
// pleasing. The change color's channels act as three uniform draws: red
// drives the hue rotation, green the chroma shift, blue the luma shift.
func MaseyaBlend(c, changes ColorValue) ColorValue {
	cr := float64(changes.R) / 255
	cg := float64(changes.G) / 255
	cb := float64(changes.B) / 255

	// Ensure at least a 2.5% rotation around the wheel.
	hue := (cr*0.95+0.025)*360 + c.Hue()

	chromaShift := cg - 0.5
	xChroma := c.Chroma()
	chroma := xChroma
	if chromaShift > 0 {
		// Put heavy limitations on oversaturating colors.
		chroma *= 1 + (1-xChroma)*chromaShift*0.5
	} else {
		// No limit on desaturating, but bias toward small shifts.
		chroma *= math.Sqrt(1 - math.Pow(chromaShift*2, 2))
	}

	lumaShift := cb - 0.5
	xLuma := c.Luma()
	luma := xLuma
	if lumaShift > 0 {
		// Brighten sparingly, more freely when saturation was removed.
		chromaDiff := math.Max(xChroma-chroma, 0)
		luma *= 1 + (1-xLuma)*lumaShift*(1+chromaDiff)
	} else {
		// Darken at half strength.
		luma *= 1 + lumaShift/2
	}

	return FromHCY(hue, chroma, luma)
}
