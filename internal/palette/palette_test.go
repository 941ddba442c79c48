package palette

import (
	"math"
	"testing"
)

func TestBrightness(t *testing.T) {
	// Reference value from the stock color table.
	if got := Emerald.Brightness(); math.Abs(got-0.6626567) > 1e-6 {
		t.Errorf("Emerald.Brightness() = %v, expected 0.6626567", got)
	}

	// Alpha scales the result linearly.
	half := Gold
	half.A = 0.5
	if got, want := half.Brightness(), Gold.Brightness()/2; math.Abs(got-want) > 1e-12 {
		t.Errorf("half-alpha gold brightness = %v, expected %v", got, want)
	}
}

func TestBrighterThan(t *testing.T) {
	if !LightPurple.BrighterThan(DarkPurple) {
		t.Error("light purple should be brighter than dark purple")
	}
	if !OffWhite.BrighterThan(DarkGrey) {
		t.Error("off white should be brighter than dark grey")
	}
	if DarkGrey.BrighterThan(OffWhite) {
		t.Error("dark grey should not be brighter than off white")
	}

	// Strict comparison: a color is never brighter than itself.
	if Emerald.BrighterThan(Emerald) {
		t.Error("a color compared to itself must be false")
	}
}

func TestParse(t *testing.T) {
	if c, ok := Parse("emerald"); !ok || c != Emerald {
		t.Errorf("Parse(emerald) = %v, %v", c, ok)
	}
	c, ok := Parse("#ff0000")
	if !ok || math.Abs(c.R-1.0) > 1e-9 || c.G != 0 || c.B != 0 || c.A != 1.0 {
		t.Errorf("Parse(#ff0000) = %v, %v", c, ok)
	}
	if _, ok := Parse("no-such-color"); ok {
		t.Error("expected Parse to reject unknown names")
	}
}

func TestLipgloss(t *testing.T) {
	if got := (Color{1, 0, 0, 1}).Lipgloss(); string(got) != "#ff0000" {
		t.Errorf("red hex = %s", got)
	}
	// Out-of-range channels clamp only at the rendering boundary.
	if got := (Color{1.5, -0.2, 0, 1}).Lipgloss(); string(got) != "#ff0000" {
		t.Errorf("clamped hex = %s", got)
	}
}

func TestScanlineShade(t *testing.T) {
	// Bright foreground on dark background darkens the rows.
	shade := ScanlineShade(DarkGrey, Emerald)
	if !DarkGrey.BrighterThan(shade) {
		t.Errorf("shade %v should be darker than background %v", shade, DarkGrey)
	}

	// Dim foreground on bright background lightens them.
	shade = ScanlineShade(OffWhite, DarkGrey)
	if !shade.BrighterThan(OffWhite) {
		t.Errorf("shade %v should be lighter than background %v", shade, OffWhite)
	}

	if shade.A != 1.0 {
		t.Errorf("composited shade must be opaque, alpha %v", shade.A)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 8 {
		t.Fatalf("expected 8 stock colors, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
