// Package flash provides timing predicates for blinking UI elements and
// typewriter-style text reveal. All functions are pure computations over
// caller-supplied timestamps; nothing here sleeps or polls a clock.
package flash

import "time"

const (
	// DefaultPeriod is the blink half-cycle for elements like the input
	// cursor and the "press enter" prompt.
	DefaultPeriod = 500 * time.Millisecond

	// DefaultTypeTime is how long the terminal takes to reveal a single
	// character when typing out a message.
	DefaultTypeTime = 20 * time.Millisecond
)

// Checker decides whether a blinking element is currently visible.
type Checker struct {
	Period time.Duration
}

// NewChecker returns a Checker with the default blink period.
func NewChecker() Checker {
	return Checker{Period: DefaultPeriod}
}

// Check reports whether the element is on at now, given the last toggle
// instant. When more than two periods have passed (the surrounding loop
// stalled, e.g. the window lost focus), last is reset to now and the
// element is forced on for the frame. Otherwise last is left untouched
// and the result alternates with a 50% duty cycle as now advances.
func (c Checker) Check(now time.Time, last *time.Time) bool {
	elapsed := now.Sub(*last)
	if elapsed > 2*c.Period {
		*last = now
		return true
	}
	return elapsed > c.Period
}

// TypedCount returns how many of total characters are revealed after
// elapsed time at perChar per character. The result is clamped to
// [0, total]; a non-positive perChar reveals everything at once.
func TypedCount(elapsed, perChar time.Duration, total int) int {
	if perChar <= 0 {
		return total
	}
	if elapsed <= 0 {
		return 0
	}
	n := int(elapsed / perChar)
	if n > total {
		return total
	}
	return n
}
