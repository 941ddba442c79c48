package term

import (
	"time"

	"github.com/hollisb/fauxterm/internal/flash"
	"github.com/hollisb/fauxterm/internal/palette"
)

// Frame is everything visible on the terminal at one instant. It is
// recomputed per call and owned by the renderer; the terminal keeps no
// reference to it.
type Frame struct {
	State State

	// Lines is the visible portion of the message or art block. During
	// typing the last line carries the block cursor.
	Lines []string
	Art   bool

	// Input is the bottom line: the live input buffer or the continue
	// prompt. Marker prefixes it with "> ". InputVisible gates the whole
	// line (blinking prompt); CursorOn gates only the trailing cursor.
	Input        string
	Marker       bool
	InputVisible bool
	CursorOn     bool

	Background palette.Color
	Foreground palette.Color
	Scanlines  bool
	FontSize   int
}

// FrameAt computes what is visible at now. It has one side effect: the
// blink timestamp is reset after a stalled gap, per the flash predicate.
func (t *Terminal) FrameAt(now time.Time) Frame {
	f := Frame{
		State:      t.state,
		Background: t.bg,
		Foreground: t.fg,
		Scanlines:  t.scanlines,
		FontSize:   t.fontSize,
	}

	switch t.state {
	case StateClosed:
		return f

	case StateTyping:
		typed := flash.TypedCount(now.Sub(t.typingStart), t.typeTime, t.totalChars)
		f.Lines = t.partialLines(typed)
		if len(f.Lines) > 0 {
			f.Lines[len(f.Lines)-1] += TypingCursor
		}

	case StateAwaitingContinue:
		f.Lines = append(f.Lines, t.message...)
		f.Marker = true
		f.Input = t.prompt
		f.InputVisible = t.flash.Check(now, &t.flashLast)

	case StateAwaitingInput:
		f.Lines = append(f.Lines, t.message...)
		f.Marker = true
		f.Input = t.input
		f.InputVisible = true
		f.CursorOn = t.flash.Check(now, &t.flashLast)

	case StateArtDisplay:
		f.Lines = append(f.Lines, t.message...)
		f.Art = true
		f.FontSize = t.artFontSize

	default: // StateIdle
		f.Lines = append(f.Lines, t.message...)
		f.Art = t.art
	}

	return f
}

// partialLines returns the first typed runes of the message, whole lines
// first, then a prefix of the line being typed.
func (t *Terminal) partialLines(typed int) []string {
	out := make([]string, 0, len(t.message))
	remaining := typed
	for _, line := range t.message {
		if remaining <= 0 {
			break
		}
		runes := []rune(line)
		if len(runes) <= remaining {
			out = append(out, line)
			remaining -= len(runes)
			continue
		}
		out = append(out, string(runes[:remaining]))
		break
	}
	return out
}
