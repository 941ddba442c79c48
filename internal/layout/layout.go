// Package layout provides centering-offset math for blocks of text in a
// pixel viewport.
package layout

import "unicode/utf8"

// Empirical glyph footprint ratios relative to font size. These are not
// real font metrics: the block width is estimated from the first row's
// character count alone, and the ratios are tuned for the stock fonts.
// Keep them as-is when placement must match existing layouts.
const (
	CharWidthRatio  = 0.67
	CharHeightRatio = 0.23
)

// PlaceBlock returns the top-left corner (x, y) at which a block of text
// rows appears centered in a viewport of the given pixel size. An empty
// block centers on the viewport midpoint.
func PlaceBlock(viewportW, viewportH float64, block []string, fontSize int) (float64, float64) {
	midX := viewportW / 2
	midY := viewportH / 2
	if len(block) == 0 {
		return midX, midY
	}

	cols := float64(utf8.RuneCountInString(block[0]))
	blockMidX := cols / 2 * (float64(fontSize) * CharWidthRatio)
	blockMidY := float64(len(block)) / 2 * (float64(fontSize) * CharHeightRatio)

	return midX - blockMidX, midY - blockMidY
}
