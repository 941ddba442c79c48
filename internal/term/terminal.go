package term

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hollisb/fauxterm/internal/flash"
	"github.com/hollisb/fauxterm/internal/palette"
	"github.com/hollisb/fauxterm/internal/text"
)

// ContinuePrompt is the blinking line shown while waiting for enter.
const ContinuePrompt = "Press Enter to Continue"

// TypingCursor trails the last typed character, in the style of a
// classic block cursor.
const TypingCursor = "[]"

// Options configures a new Terminal. Zero fields take defaults.
type Options struct {
	Title       string
	Columns     int
	Background  palette.Color
	Foreground  palette.Color
	Scanlines   bool
	FontSize    int
	ArtFontSize int
	FlashPeriod time.Duration
	TypeTime    time.Duration
}

// DefaultOptions returns the classic dark-grey / emerald terminal.
func DefaultOptions() Options {
	return Options{
		Title:       "fauxterm",
		Columns:     60,
		Background:  palette.DarkGrey,
		Foreground:  palette.Emerald,
		Scanlines:   true,
		FontSize:    32,
		ArtFontSize: 10,
		FlashPeriod: flash.DefaultPeriod,
		TypeTime:    flash.DefaultTypeTime,
	}
}

// Terminal is the fake-terminal state machine. It is a single-threaded
// value: all methods must be called from one goroutine, typically the
// event loop that owns frame pacing.
type Terminal struct {
	title       string
	columns     int
	bg, fg      palette.Color
	scanlines   bool
	fontSize    int
	artFontSize int
	typeTime    time.Duration
	flash       flash.Checker

	state   State
	pend    pending
	raw     string   // unreflowed source of the current message
	message []string // display lines (reflowed message or art rows)
	art     bool

	input     string // live input preview while awaiting input
	lastInput string
	prompt    string

	typingStart time.Time
	totalChars  int
	holdFor     time.Duration
	holdUntil   time.Time
	flashLast   time.Time
}

// New creates an idle terminal from opts.
func New(opts Options) *Terminal {
	def := DefaultOptions()
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.Columns < 1 {
		opts.Columns = def.Columns
	}
	if opts.Background == (palette.Color{}) {
		opts.Background = def.Background
	}
	if opts.Foreground == (palette.Color{}) {
		opts.Foreground = def.Foreground
	}
	if opts.FontSize < 1 {
		opts.FontSize = def.FontSize
	}
	if opts.ArtFontSize < 1 {
		opts.ArtFontSize = def.ArtFontSize
	}
	if opts.FlashPeriod <= 0 {
		opts.FlashPeriod = def.FlashPeriod
	}
	if opts.TypeTime <= 0 {
		opts.TypeTime = def.TypeTime
	}

	return &Terminal{
		title:       opts.Title,
		columns:     opts.Columns,
		bg:          opts.Background,
		fg:          opts.Foreground,
		scanlines:   opts.Scanlines,
		fontSize:    opts.FontSize,
		artFontSize: opts.ArtFontSize,
		typeTime:    opts.TypeTime,
		flash:       flash.Checker{Period: opts.FlashPeriod},
		state:       StateIdle,
	}
}

// Tell types out message, then waits for the user to press enter.
func (t *Terminal) Tell(now time.Time, message string) error {
	return t.beginMessage(now, message, pendContinue, 0)
}

// Ask types out message, then captures a line of input. The submitted
// line is available from LastInput once the user confirms it.
func (t *Terminal) Ask(now time.Time, message string) error {
	return t.beginMessage(now, message, pendInput, 0)
}

// Show types out message, then holds it on screen for the given time
// before the terminal reports Done.
func (t *Terminal) Show(now time.Time, message string, hold time.Duration) error {
	return t.beginMessage(now, message, pendHold, hold)
}

// DisplayArt shows an ascii-art block centered on the terminal for the
// given time. Art rows are taken verbatim; no reflow is applied.
func (t *Terminal) DisplayArt(now time.Time, artText string, hold time.Duration) error {
	if err := t.interruptible(); err != nil {
		return err
	}
	t.message = strings.Split(artText, "\n")
	t.raw = ""
	t.art = true
	t.input = ""
	t.prompt = ""
	t.state = StateArtDisplay
	t.holdUntil = now.Add(hold)
	return nil
}

func (t *Terminal) beginMessage(now time.Time, message string, p pending, hold time.Duration) error {
	if err := t.interruptible(); err != nil {
		return err
	}
	lines, err := text.Reflow([]string{message}, t.columns)
	if err != nil {
		return err
	}
	t.raw = message
	t.message = lines
	t.art = false
	t.input = ""
	t.prompt = ""
	t.pend = p
	t.holdFor = hold
	t.state = StateTyping
	t.typingStart = now
	t.totalChars = 0
	for _, line := range lines {
		t.totalChars += utf8.RuneCountInString(line)
	}
	return nil
}

// interruptible reports whether a new message or art block may replace
// what is on screen. Interaction states must be resolved by the user.
func (t *Terminal) interruptible() error {
	switch t.state {
	case StateClosed:
		return ErrClosed
	case StateAwaitingContinue, StateAwaitingInput:
		return ErrBusy
	}
	return nil
}

// Advance applies time-driven transitions and returns the new state:
// typing completes into its follow-up state, and timed art displays
// return to idle. Call it once per frame before FrameAt.
func (t *Terminal) Advance(now time.Time) State {
	switch t.state {
	case StateTyping:
		typed := flash.TypedCount(now.Sub(t.typingStart), t.typeTime, t.totalChars)
		if typed < t.totalChars {
			break
		}
		t.flashLast = now
		switch t.pend {
		case pendContinue:
			t.prompt = ContinuePrompt
			t.state = StateAwaitingContinue
		case pendInput:
			t.state = StateAwaitingInput
		case pendHold:
			t.holdUntil = now.Add(t.holdFor)
			t.state = StateIdle
		default:
			t.state = StateIdle
		}
		t.pend = pendNone
	case StateArtDisplay:
		if !now.Before(t.holdUntil) {
			t.state = StateIdle
		}
	}
	return t.state
}

// Continue resolves an awaiting-continue prompt.
func (t *Terminal) Continue() error {
	if t.state == StateClosed {
		return ErrClosed
	}
	if t.state != StateAwaitingContinue {
		return ErrWrongState
	}
	t.prompt = ""
	t.state = StateIdle
	return nil
}

// SetInputPreview replaces the live input line shown while awaiting
// input. The value is display-only until SubmitInput confirms it.
func (t *Terminal) SetInputPreview(s string) {
	if t.state == StateAwaitingInput {
		t.input = s
	}
}

// SubmitInput confirms line as the answer to the current Ask. Empty
// lines are refused; the prompt keeps waiting.
func (t *Terminal) SubmitInput(line string) error {
	if t.state == StateClosed {
		return ErrClosed
	}
	if t.state != StateAwaitingInput {
		return ErrWrongState
	}
	if line == "" {
		return ErrEmptyInput
	}
	t.lastInput = line
	t.input = ""
	t.state = StateIdle
	return nil
}

// Close shuts the terminal down. All further operations fail with
// ErrClosed; Close itself is idempotent.
func (t *Terminal) Close() {
	t.state = StateClosed
}

// Done reports whether the terminal is idle and any hold time from a
// Show has elapsed, i.e. the next scripted operation may start.
func (t *Terminal) Done(now time.Time) bool {
	return t.state == StateIdle && !now.Before(t.holdUntil)
}

// State returns the current state.
func (t *Terminal) State() State { return t.state }

// Title returns the window title.
func (t *Terminal) Title() string { return t.title }

// Columns returns the current column budget.
func (t *Terminal) Columns() int { return t.columns }

// LastInput returns the line submitted by the most recent Ask.
func (t *Terminal) LastInput() string { return t.lastInput }

// Colors returns the current background and foreground.
func (t *Terminal) Colors() (bg, fg palette.Color) { return t.bg, t.fg }

// Scanlines reports whether the scanline filter is on.
func (t *Terminal) Scanlines() bool { return t.scanlines }

// FontSize returns the message font size.
func (t *Terminal) FontSize() int { return t.fontSize }

// ArtFontSize returns the art font size.
func (t *Terminal) ArtFontSize() int { return t.artFontSize }

// SetColors changes the background and foreground. The change shows on
// the next frame.
func (t *Terminal) SetColors(bg, fg palette.Color) {
	t.bg = bg
	t.fg = fg
}

// SetScanlines toggles the scanline filter.
func (t *Terminal) SetScanlines(on bool) { t.scanlines = on }

// SetFont sets the message font size.
func (t *Terminal) SetFont(size int) {
	if size > 0 {
		t.fontSize = size
	}
}

// SetArtFont sets the art font size.
func (t *Terminal) SetArtFont(size int) {
	if size > 0 {
		t.artFontSize = size
	}
}

// Resize changes the column budget and re-reflows the current message.
// Art blocks are left untouched.
func (t *Terminal) Resize(columns int) {
	if columns < 1 || columns == t.columns {
		return
	}
	t.columns = columns
	if t.art || t.raw == "" {
		return
	}
	lines, err := text.Reflow([]string{t.raw}, t.columns)
	if err != nil {
		return
	}
	t.message = lines
	t.totalChars = 0
	for _, line := range lines {
		t.totalChars += utf8.RuneCountInString(line)
	}
}
