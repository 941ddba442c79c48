package fauxterm_test

import (
	"testing"
	"time"

	"github.com/hollisb/fauxterm"
)

func TestPublicSurface(t *testing.T) {
	lines, err := fauxterm.Reflow([]string{"hello world"}, 5)
	if err != nil {
		t.Fatalf("Reflow: %v", err)
	}
	if len(lines) != 2 || lines[0] != "hello" || lines[1] != "world" {
		t.Fatalf("Reflow = %q", lines)
	}

	trm := fauxterm.New(fauxterm.DefaultOptions())
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := trm.Tell(t0, "hi"); err != nil {
		t.Fatalf("Tell: %v", err)
	}
	if got := trm.State(); got != fauxterm.StateTyping {
		t.Fatalf("state = %v, want %v", got, fauxterm.StateTyping)
	}

	if !fauxterm.Emerald.BrighterThan(fauxterm.DarkGrey) {
		t.Fatal("emerald should outshine dark grey")
	}
}
