// Package preview renders patched palettes as a swatch sheet image so a run
// can be eyeballed without booting the game.
package preview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/z3pal/internal/palette"
)

// Swatch size of one palette slot in the rendered sheet, in pixels.
const cellSize = 16

// GroupSwatches pairs one offset group's palette before and after patching.
type GroupSwatches struct {
	Name   string
	Before palette.Palette
	After  palette.Palette
}

// Render draws the groups as a sheet: two rows per group (before above
// after) separated by a blank line, one column per palette slot. Each cell
// is cellSize pixels square.
func Render(groups []GroupSwatches) (image.Image, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("no groups to render")
	}

	cols := 1
	for _, g := range groups {
		if n := max(len(g.Before), len(g.After)); n > cols {
			cols = n
		}
	}
	rows := len(groups) * 3 // before, after, separator

	// Draw at one pixel per cell, then upscale without smoothing so the
	// swatches stay flat.
	sheet := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for i, g := range groups {
		drawRow(sheet, i*3, g.Before)
		drawRow(sheet, i*3+1, g.After)
	}

	return transform.Resize(sheet, cols*cellSize, rows*cellSize, transform.NearestNeighbor), nil
}

// Save encodes the sheet to path; the format is inferred from the extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}
	return nil
}

func drawRow(dst *image.RGBA, y int, p palette.Palette) {
	for x, c := range p {
		dst.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}
}
