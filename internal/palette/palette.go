// Package palette defines ordered color palettes and the generation modes
// that transform them.
package palette

import (
	"fmt"
	"strings"

	"github.com/ironsheep/z3pal/internal/colorspace"
)

// Palette is an ordered sequence of colors. Position is the palette slot
// index the game engine uses, so order is significant.
type Palette []colorspace.ColorValue

// Clone returns an independent copy of p.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Equal reports element-wise equality.
func (p Palette) Equal(q Palette) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Mode selects one palette generation recipe. The set is closed: adding a
// mode means adding a constant and its case in Generator.Generate.
type Mode int

const (
	// ModeNone passes palettes through unchanged.
	ModeNone Mode = iota

	// ModeMaseya is the default perceptual blend: one change color per
	// palette, applied to every slot so the palette keeps its internal
	// contrast.
	ModeMaseya

	// ModeGrayscale collapses every slot to its luma.
	ModeGrayscale

	// ModeNegative inverts every slot per channel.
	ModeNegative

	// ModeBlackout replaces every slot with the configured fill color.
	ModeBlackout

	// ModeClassic blends each slot with a randomly chosen other slot of
	// the same palette, taking the partner's hue and chroma.
	ModeClassic

	// ModeDizzy randomizes hue only.
	ModeDizzy

	// ModeSick randomizes hue and chroma, holding luma.
	ModeSick

	// ModePuke randomizes all three axes independently.
	ModePuke

	// ModeAcid jitters each slot with the legacy wide-range shuffle.
	ModeAcid
)

var modeNames = map[Mode]string{
	ModeNone:      "none",
	ModeMaseya:    "maseya",
	ModeGrayscale: "grayscale",
	ModeNegative:  "negative",
	ModeBlackout:  "blackout",
	ModeClassic:   "classic",
	ModeDizzy:     "dizzy",
	ModeSick:      "sick",
	ModePuke:      "puke",
	ModeAcid:      "acid",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves a mode name case-insensitively. A few alias spellings
// are accepted for compatibility with earlier releases.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "none":
		return ModeNone, nil
	case "maseya", "default":
		return ModeMaseya, nil
	case "grayscale", "greyscale":
		return ModeGrayscale, nil
	case "negative", "invert", "inverse", "inverted":
		return ModeNegative, nil
	case "blackout":
		return ModeBlackout, nil
	case "classic":
		return ModeClassic, nil
	case "dizzy":
		return ModeDizzy, nil
	case "sick":
		return ModeSick, nil
	case "puke":
		return ModePuke, nil
	case "acid":
		return ModeAcid, nil
	default:
		return ModeNone, fmt.Errorf("unknown mode %q", name)
	}
}

// Modes lists every mode in a stable order, for help text and tests.
func Modes() []Mode {
	return []Mode{
		ModeNone, ModeMaseya, ModeGrayscale, ModeNegative, ModeBlackout,
		ModeClassic, ModeDizzy, ModeSick, ModePuke, ModeAcid,
	}
}
