package term_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hollisb/fauxterm/internal/palette"
	"github.com/hollisb/fauxterm/internal/term"
)

var _ = Describe("Terminal", func() {
	var (
		t0  time.Time
		trm *term.Terminal
	)

	// 10ms per character, 100ms blink half-cycle: a 5-char message is
	// fully typed at +50ms.
	newTerminal := func() *term.Terminal {
		return term.New(term.Options{
			Columns:     20,
			TypeTime:    10 * time.Millisecond,
			FlashPeriod: 100 * time.Millisecond,
		})
	}

	BeforeEach(func() {
		t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		trm = newTerminal()
	})

	Describe("telling a message", func() {
		BeforeEach(func() {
			Expect(trm.Tell(t0, "hello world")).To(Succeed())
		})

		It("starts typing", func() {
			Expect(trm.State()).To(Equal(term.StateTyping))
		})

		It("reveals characters over time with a trailing cursor", func() {
			f := trm.FrameAt(t0.Add(35 * time.Millisecond))
			Expect(f.Lines).To(Equal([]string{"hel" + term.TypingCursor}))

			f = trm.FrameAt(t0.Add(75 * time.Millisecond))
			Expect(f.Lines).To(Equal([]string{"hello w" + term.TypingCursor}))
		})

		It("shows nothing before the first character", func() {
			f := trm.FrameAt(t0)
			Expect(f.Lines).To(BeEmpty())
		})

		It("moves to awaiting-continue once fully typed", func() {
			Expect(trm.Advance(t0.Add(50 * time.Millisecond))).To(Equal(term.StateTyping))
			Expect(trm.Advance(t0.Add(110 * time.Millisecond))).To(Equal(term.StateAwaitingContinue))

			f := trm.FrameAt(t0.Add(110 * time.Millisecond))
			Expect(f.Lines).To(Equal([]string{"hello world"}))
			Expect(f.Marker).To(BeTrue())
			Expect(f.Input).To(Equal(term.ContinuePrompt))
		})

		It("blinks the continue prompt", func() {
			done := t0.Add(110 * time.Millisecond)
			trm.Advance(done)

			Expect(trm.FrameAt(done.Add(50 * time.Millisecond)).InputVisible).To(BeFalse())
			Expect(trm.FrameAt(done.Add(150 * time.Millisecond)).InputVisible).To(BeTrue())
			// A long stall forces the prompt on for the frame.
			Expect(trm.FrameAt(done.Add(5 * time.Second)).InputVisible).To(BeTrue())
		})

		It("returns to idle on continue", func() {
			trm.Advance(t0.Add(110 * time.Millisecond))
			Expect(trm.Continue()).To(Succeed())
			Expect(trm.State()).To(Equal(term.StateIdle))
			Expect(trm.Done(t0.Add(time.Second))).To(BeTrue())
		})

		It("refuses continue in other states", func() {
			Expect(trm.Continue()).To(MatchError(term.ErrWrongState))
		})

		It("refuses a new message while awaiting continue", func() {
			trm.Advance(t0.Add(time.Second))
			Expect(trm.Tell(t0.Add(time.Second), "again")).To(MatchError(term.ErrBusy))
		})
	})

	Describe("asking for input", func() {
		var ready time.Time

		BeforeEach(func() {
			Expect(trm.Ask(t0, "name?")).To(Succeed())
			ready = t0.Add(60 * time.Millisecond)
			Expect(trm.Advance(ready)).To(Equal(term.StateAwaitingInput))
		})

		It("shows the live input preview with a blinking cursor", func() {
			trm.SetInputPreview("gord")

			f := trm.FrameAt(ready.Add(50 * time.Millisecond))
			Expect(f.Input).To(Equal("gord"))
			Expect(f.InputVisible).To(BeTrue())
			Expect(f.CursorOn).To(BeFalse())

			f = trm.FrameAt(ready.Add(150 * time.Millisecond))
			Expect(f.CursorOn).To(BeTrue())
		})

		It("refuses empty input", func() {
			Expect(trm.SubmitInput("")).To(MatchError(term.ErrEmptyInput))
			Expect(trm.State()).To(Equal(term.StateAwaitingInput))
		})

		It("stores the submitted line and returns to idle", func() {
			Expect(trm.SubmitInput("gordon")).To(Succeed())
			Expect(trm.LastInput()).To(Equal("gordon"))
			Expect(trm.State()).To(Equal(term.StateIdle))
		})
	})

	Describe("showing a timed message", func() {
		It("holds the message before reporting done", func() {
			Expect(trm.Show(t0, "brb", 500*time.Millisecond)).To(Succeed())

			typed := t0.Add(40 * time.Millisecond)
			Expect(trm.Advance(typed)).To(Equal(term.StateIdle))
			Expect(trm.Done(typed)).To(BeFalse())
			Expect(trm.Done(typed.Add(300 * time.Millisecond))).To(BeFalse())
			Expect(trm.Done(typed.Add(500 * time.Millisecond))).To(BeTrue())

			// The message stays on screen while idle.
			f := trm.FrameAt(typed.Add(time.Second))
			Expect(f.Lines).To(Equal([]string{"brb"}))
		})
	})

	Describe("displaying art", func() {
		It("shows the block verbatim and returns to idle after the hold", func() {
			Expect(trm.DisplayArt(t0, "<('-')>\n\n<('-')>", 200*time.Millisecond)).To(Succeed())

			f := trm.FrameAt(t0)
			Expect(f.Art).To(BeTrue())
			Expect(f.Lines).To(Equal([]string{"<('-')>", "", "<('-')>"}))

			Expect(trm.Advance(t0.Add(100 * time.Millisecond))).To(Equal(term.StateArtDisplay))
			Expect(trm.Advance(t0.Add(200 * time.Millisecond))).To(Equal(term.StateIdle))
		})

		It("allows replacing a frame mid-display", func() {
			Expect(trm.DisplayArt(t0, "frame one", time.Second)).To(Succeed())
			Expect(trm.DisplayArt(t0.Add(100*time.Millisecond), "frame two", time.Second)).To(Succeed())

			f := trm.FrameAt(t0.Add(150 * time.Millisecond))
			Expect(f.Lines).To(Equal([]string{"frame two"}))
		})

		It("uses the art font size", func() {
			trm.SetArtFont(14)
			Expect(trm.DisplayArt(t0, "x", time.Second)).To(Succeed())
			Expect(trm.FrameAt(t0).FontSize).To(Equal(14))
		})
	})

	Describe("closing", func() {
		BeforeEach(func() {
			trm.Close()
		})

		It("absorbs every operation", func() {
			Expect(trm.Tell(t0, "hi")).To(MatchError(term.ErrClosed))
			Expect(trm.Ask(t0, "hi")).To(MatchError(term.ErrClosed))
			Expect(trm.Show(t0, "hi", time.Second)).To(MatchError(term.ErrClosed))
			Expect(trm.DisplayArt(t0, "hi", time.Second)).To(MatchError(term.ErrClosed))
			Expect(trm.SubmitInput("hi")).To(MatchError(term.ErrClosed))
			Expect(trm.Continue()).To(MatchError(term.ErrClosed))
		})

		It("renders an empty frame", func() {
			f := trm.FrameAt(t0)
			Expect(f.State).To(Equal(term.StateClosed))
			Expect(f.Lines).To(BeEmpty())
		})
	})

	Describe("reflow integration", func() {
		It("wraps the told message to the column budget", func() {
			Expect(trm.Tell(t0, "the quick brown fox jumps")).To(Succeed())
			trm.Advance(t0.Add(time.Minute))

			f := trm.FrameAt(t0.Add(time.Minute))
			Expect(f.Lines).To(Equal([]string{"the quick brown fox", "jumps"}))
		})

		It("re-reflows on resize", func() {
			Expect(trm.Tell(t0, "the quick brown fox jumps")).To(Succeed())
			trm.Advance(t0.Add(time.Minute))
			trm.Resize(9)

			f := trm.FrameAt(t0.Add(time.Minute))
			Expect(f.Lines).To(Equal([]string{"the quick", "brown fox", "jumps"}))
		})
	})

	Describe("appearance settings", func() {
		It("carries colors and scanlines into the frame", func() {
			trm.SetColors(palette.DarkGrey, palette.Gold)
			trm.SetScanlines(true)

			f := trm.FrameAt(t0)
			Expect(f.Background).To(Equal(palette.DarkGrey))
			Expect(f.Foreground).To(Equal(palette.Gold))
			Expect(f.Scanlines).To(BeTrue())
		})
	})
})
