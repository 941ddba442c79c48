// Package palette defines the terminal color model and the stock colors.
//
// A [Color] carries four float channels (red, green, blue, alpha) in the
// conventional [0, 1] range. Nothing enforces the range; out-of-range
// values flow through the arithmetic unchanged and are only clamped at
// the rendering boundary.
package palette

import (
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with float64 channels.
type Color struct {
	R, G, B, A float64
}

// Stock colors, carried over from the classic terminal color table.
var (
	Crimson     = Color{0.86, 0.08, 0.24, 1.0}
	DarkGrey    = Color{0.16, 0.16, 0.16, 1.0}
	DarkPurple  = Color{0.4, 0.2, 0.7, 1.0}
	Emerald     = Color{0.0, 0.79, 0.34, 1.0}
	Gold        = Color{1.0, 0.65, 0.10, 1.0}
	LightBlue   = Color{0.4, 0.8, 1.0, 1.0}
	LightPurple = Color{0.6, 0.4, 1.0, 1.0}
	OffWhite    = Color{0.98, 0.96, 0.94, 1.0}
)

// Cycle is the default color rotation for animated art sequences.
var Cycle = []Color{Emerald, Gold, Crimson, LightPurple, LightBlue}

var named = map[string]Color{
	"crimson":      Crimson,
	"dark_grey":    DarkGrey,
	"dark_purple":  DarkPurple,
	"emerald":      Emerald,
	"gold":         Gold,
	"light_blue":   LightBlue,
	"light_purple": LightPurple,
	"off_white":    OffWhite,
}

// Named looks a stock color up by its table name ("emerald", "gold", ...).
func Named(name string) (Color, bool) {
	c, ok := named[name]
	return c, ok
}

// Names returns the stock color names in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse resolves a stock color name or a hex string like "#00c957".
func Parse(s string) (Color, bool) {
	if c, ok := Named(s); ok {
		return c, true
	}
	hex, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	return Color{hex.R, hex.G, hex.B, 1.0}, true
}

// Brightness returns the perceived brightness of the color, scaled by
// alpha. The weights and per-channel squaring follow the classic
// perceived-luminance approximation rather than linear RGB luminance;
// they are kept exactly for compatibility with the stock color table.
func (c Color) Brightness() float64 {
	weighted := c.R*c.R*0.241 + c.G*c.G*0.691 + c.B*c.B*0.068
	return math.Sqrt(weighted) * c.A
}

// BrighterThan reports whether c appears strictly brighter than other.
// Equal brightness is false in both directions.
func (c Color) BrighterThan(other Color) bool {
	return c.Brightness() > other.Brightness()
}

// Shift returns the color with delta added to each RGB channel and the
// given alpha, without clamping.
func (c Color) Shift(delta, alpha float64) Color {
	return Color{c.R + delta, c.G + delta, c.B + delta, alpha}
}

// Lipgloss converts the color to a lipgloss hex color, clamping each
// channel into [0, 1] and discarding alpha.
func (c Color) Lipgloss() lipgloss.Color {
	rgb := colorful.Color{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B)}
	return lipgloss.Color(rgb.Hex())
}

// Over alpha-composites c onto an opaque background and returns the
// resulting opaque color. Terminal cells cannot blend, so the composite
// is resolved here before rendering.
func (c Color) Over(bg Color) Color {
	fg := colorful.Color{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B)}
	base := colorful.Color{R: clamp(bg.R), G: clamp(bg.G), B: clamp(bg.B)}
	mixed := base.BlendRgb(fg, clamp(c.A))
	return Color{mixed.R, mixed.G, mixed.B, 1.0}
}

// ScanlineShade derives the color of the darkened (or lightened) rows of
// the scanline filter from the current background and foreground: bright
// text on a dark screen dims the rows, the inverse lightens them. The
// translucent shade is composited onto the background.
func ScanlineShade(bg, fg Color) Color {
	var shade Color
	if fg.BrighterThan(bg) {
		shade = bg.Shift(-0.2, 0.5)
	} else {
		shade = bg.Shift(0.15, 0.4)
	}
	return shade.Over(bg)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
