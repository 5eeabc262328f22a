// Package patch applies palette generation modes to the binary image.
//
// Apply is atomic: all work happens on a scratch copy of the image, and the
// caller-visible buffer is only touched after every group has decoded,
// generated, and re-encoded cleanly. A failing group therefore never leaves
// the image half-patched.
package patch

import (
	"errors"
	"fmt"

	"github.com/ironsheep/z3pal/internal/colorspace"
	"github.com/ironsheep/z3pal/internal/offsets"
	"github.com/ironsheep/z3pal/internal/palette"
)

// ErrPatch reports an offset group that does not fit the image. Wrapped
// errors can be tested with errors.Is.
var ErrPatch = errors.New("patch error")

// Apply rewrites every offset group of image in place using the generator.
//
// Groups are visited sorted by base address (ties by name), and all random
// draws come from the single rng in that fixed order, so a run is
// byte-reproducible from its seed. Groups marked SkipFirst keep slot 0
// untouched and exclude it from the mode invocation, so the transparent
// slot never consumes a draw.
func Apply(image []byte, table *offsets.Table, gen palette.Generator, rng colorspace.RandomSource) error {
	groups := table.Sorted()

	// Reject out-of-bounds groups before any work happens.
	for _, g := range groups {
		if g.End() > len(image) {
			return fmt.Errorf("group %q: extent [%#x,%#x) exceeds image size %#x: %w",
				g.Name, g.BaseAddress, g.End(), len(image), ErrPatch)
		}
	}

	// Identity mode writes nothing. Re-encoding would normalize unused
	// high bits inside the group extents, so skip the round trip entirely.
	if gen.Mode == palette.ModeNone {
		return nil
	}

	scratch := make([]byte, len(image))
	copy(scratch, image)

	for _, g := range groups {
		start := 0
		if g.SkipFirst && g.EntryCount > 0 {
			start = 1
		}

		pal, err := decodeEntries(scratch, g, start)
		if err != nil {
			return err
		}
		out := gen.Generate(pal, rng)
		if err := encodeEntries(scratch, g, start, out); err != nil {
			return err
		}
	}

	copy(image, scratch)
	return nil
}

// DecodeGroup reads the group's packed entries out of image as a palette,
// including any transparency slot. The caller must have bounds-checked the
// group against the image.
func DecodeGroup(image []byte, g offsets.Group) (palette.Palette, error) {
	return decodeEntries(image, g, 0)
}

// decodeEntries reads the group's entries starting at slot from.
func decodeEntries(image []byte, g offsets.Group, from int) (palette.Palette, error) {
	pal := make(palette.Palette, 0, g.EntryCount-from)
	for i := from; i < g.EntryCount; i++ {
		at := g.BaseAddress + i*g.BytesPerEntry
		c, err := colorspace.Decode(image[at:at+g.BytesPerEntry], g.Encoding)
		if err != nil {
			return nil, fmt.Errorf("group %q entry %d at %#x: %w", g.Name, i, at, err)
		}
		pal = append(pal, c)
	}
	return pal, nil
}

// encodeEntries writes pal back into the group starting at slot from. Slots
// below from keep their original bytes.
func encodeEntries(image []byte, g offsets.Group, from int, pal palette.Palette) error {
	for i, c := range pal {
		at := g.BaseAddress + (from+i)*g.BytesPerEntry
		if err := colorspace.Encode(c, g.Encoding, image[at:at+g.BytesPerEntry]); err != nil {
			return fmt.Errorf("group %q entry %d at %#x: %w", g.Name, from+i, at, err)
		}
	}
	return nil
}
