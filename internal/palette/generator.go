package palette

import "github.com/ironsheep/z3pal/internal/colorspace"

// Generator binds a Mode to its parameters.
//
// Fill is only consulted by ModeBlackout; the zero value (black) matches the
// historical behavior.
type Generator struct {
	Mode Mode
	Fill colorspace.ColorValue
}

// Generate produces a new palette of the same length as p. The input is
// never mutated and may be retained by the caller.
//
// Random draws per slot are fixed for each mode, so the stream position
// after a call depends only on the mode and the palette length:
//
//   - none, grayscale, negative, blackout: no draws
//   - maseya: three draws per palette (one change color shared by all slots)
//   - classic: one draw per slot (partner selection)
//   - dizzy, sick, puke: three draws per slot (one fresh color each)
//   - acid: four draws per slot
//
// Every mode accepts any well-formed palette, including lengths 0 and 1.
func (g Generator) Generate(p Palette, rng colorspace.RandomSource) Palette {
	out := make(Palette, len(p))

	switch g.Mode {
	case ModeMaseya:
		changes := colorspace.RandomColor(rng)
		for i, c := range p {
			out[i] = colorspace.MaseyaBlend(c, changes)
		}

	case ModeGrayscale:
		for i, c := range p {
			out[i] = c.Grayscale()
		}

	case ModeNegative:
		for i, c := range p {
			out[i] = c.Negative()
		}

	case ModeBlackout:
		for i := range p {
			out[i] = g.Fill
		}

	case ModeClassic:
		if len(p) <= 1 {
			copy(out, p)
			break
		}
		for i, c := range p {
			// Pick a uniform partner from the other slots, then take its
			// hue and chroma while keeping this slot's luma.
			j := int(rng.Float64() * float64(len(p)-1))
			if j >= i {
				j++
			}
			out[i] = colorspace.LumaBlend(p[j], c)
		}

	case ModeDizzy:
		for i, c := range p {
			out[i] = colorspace.HueBlend(c, colorspace.RandomColor(rng))
		}

	case ModeSick:
		for i, c := range p {
			out[i] = colorspace.LumaBlend(colorspace.RandomColor(rng), c)
		}

	case ModePuke:
		for i := range p {
			out[i] = colorspace.RandomColor(rng)
		}

	case ModeAcid:
		for i, c := range p {
			out[i] = colorspace.AcidBlend(c, rng)
		}

	default: // ModeNone
		copy(out, p)
	}

	return out
}
