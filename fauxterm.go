// Package fauxterm renders a retro fake terminal: typed-out messages,
// ascii-art animations, line input capture, configurable colors and a
// scanline filter, all driven by a non-blocking frame tick.
//
// This package is the public surface over the internal implementation:
//
//   - [Terminal]: the fake-terminal state machine ([New], [DefaultOptions])
//   - [SplitWord], [Reflow]: fixed-width text reflow with mid-word splitting
//   - [Checker]: blink/flash timing predicate for cursors and prompts
//   - [Color]: RGBA color with perceived-brightness comparison
//   - [PlaceBlock]: centering offsets for text blocks in a pixel viewport
//
// The cmd/fauxterm binary plays YAML scripts of terminal actions inside
// a real terminal; embedders with their own render loop use [Terminal]
// directly and draw the [Frame] it computes for each instant.
package fauxterm

import (
	"github.com/hollisb/fauxterm/internal/flash"
	"github.com/hollisb/fauxterm/internal/layout"
	"github.com/hollisb/fauxterm/internal/palette"
	"github.com/hollisb/fauxterm/internal/term"
	"github.com/hollisb/fauxterm/internal/text"
)

// Reflow core.
var (
	// ErrInvalidBudget reports a column budget below one character.
	ErrInvalidBudget = text.ErrInvalidBudget

	SplitWord = text.SplitWord
	Reflow    = text.Reflow
)

// Flash timing.
type Checker = flash.Checker

const (
	DefaultFlashPeriod = flash.DefaultPeriod
	DefaultTypeTime    = flash.DefaultTypeTime
)

// Colors.
type Color = palette.Color

var (
	Crimson     = palette.Crimson
	DarkGrey    = palette.DarkGrey
	DarkPurple  = palette.DarkPurple
	Emerald     = palette.Emerald
	Gold        = palette.Gold
	LightBlue   = palette.LightBlue
	LightPurple = palette.LightPurple
	OffWhite    = palette.OffWhite
)

// PlaceBlock returns the top-left corner at which a block of text rows
// appears centered in a viewport of the given pixel size.
var PlaceBlock = layout.PlaceBlock

// Terminal state machine.
type (
	Terminal = term.Terminal
	Options  = term.Options
	Frame    = term.Frame
	State    = term.State
)

const (
	StateIdle             = term.StateIdle
	StateTyping           = term.StateTyping
	StateAwaitingContinue = term.StateAwaitingContinue
	StateAwaitingInput    = term.StateAwaitingInput
	StateArtDisplay       = term.StateArtDisplay
	StateClosed           = term.StateClosed
)

var (
	New            = term.New
	DefaultOptions = term.DefaultOptions
)
