package art

import (
	"math"

	"github.com/guptarohit/asciigraph"
)

// Wave generates a sine-wave plot as ascii art, sized in character cells.
// Degenerate sizes fall back to a single flat row.
func Wave(width, height int) string {
	if width < 2 || height < 1 {
		return "~"
	}

	data := make([]float64, width)
	for i := range data {
		data[i] = math.Sin(4 * math.Pi * float64(i) / float64(width-1))
	}

	return asciigraph.Plot(data,
		asciigraph.Width(width),
		asciigraph.Height(height),
	)
}
