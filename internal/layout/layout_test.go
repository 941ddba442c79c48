package layout

import (
	"math"
	"testing"
)

func TestPlaceBlock(t *testing.T) {
	block := []string{"0123456789", "0123", ""}

	// Width comes from the first row only: 10 chars * 10pt * 0.67 = 67px.
	// Height: 3 rows * 10pt * 0.23 = 6.9px.
	x, y := PlaceBlock(800, 600, block, 10)
	if math.Abs(x-366.5) > 1e-9 {
		t.Errorf("x = %v, expected 366.5", x)
	}
	if math.Abs(y-296.55) > 1e-9 {
		t.Errorf("y = %v, expected 296.55", y)
	}
}

func TestPlaceBlockWidthSymmetry(t *testing.T) {
	block := []string{"some art row"}

	x1, y1 := PlaceBlock(800, 600, block, 12)
	x2, y2 := PlaceBlock(1600, 600, block, 12)

	// Doubling the viewport width moves x right by half the delta.
	if math.Abs((x2-x1)-400) > 1e-9 {
		t.Errorf("x delta = %v, expected 400", x2-x1)
	}
	if y1 != y2 {
		t.Errorf("y should be unaffected by width, got %v and %v", y1, y2)
	}
}

func TestPlaceBlockEmpty(t *testing.T) {
	x, y := PlaceBlock(800, 600, nil, 10)
	if x != 400 || y != 300 {
		t.Errorf("empty block should center on viewport midpoint, got (%v, %v)", x, y)
	}
}
