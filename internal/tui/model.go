// Package tui drives a fake terminal inside a real one: a Bubble Tea
// program ticks the state machine, feeds it script steps, and renders
// each frame with the scanline filter.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hollisb/fauxterm/internal/art"
	"github.com/hollisb/fauxterm/internal/config"
	"github.com/hollisb/fauxterm/internal/palette"
	"github.com/hollisb/fauxterm/internal/script"
	"github.com/hollisb/fauxterm/internal/term"
)

const frameInterval = time.Second / 30

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// danceState tracks the dance animation across frames: n counts shown
// frames, each dance pose repeats with the color rotation advancing.
type danceState struct {
	n       int
	repeats int
	total   int
	per     time.Duration
}

type model struct {
	trm   *term.Terminal
	steps []script.Step
	idx   int

	dance      *danceState
	pauseUntil time.Time

	input textinput.Model
	now   time.Time

	width, height int
	quitting      bool
}

// New builds the program model for a terminal with the given options
// playing the given steps.
func New(opts term.Options, steps []script.Step) model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	return model{
		trm:   term.New(opts),
		steps: steps,
		input: ti,
		now:   time.Now(),
	}
}

// Run plays a script under the given configuration until it ends or the
// user quits.
func Run(cfg *config.Config, s *script.Script) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if s.Title != "" {
		opts.Title = s.Title
	}

	p := tea.NewProgram(New(opts, s.Steps), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.trm.Resize(columnsFor(msg.Width))
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		m.trm.Advance(m.now)
		m.advanceScript(m.now)
		if m.quitting {
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	awaitingInput := m.trm.State() == term.StateAwaitingInput

	switch msg.String() {
	case "ctrl+c", "esc":
		m.trm.Close()
		m.quitting = true
		return m, tea.Quit
	case "q":
		if !awaitingInput {
			m.trm.Close()
			m.quitting = true
			return m, tea.Quit
		}
	case "enter":
		switch m.trm.State() {
		case term.StateAwaitingContinue:
			_ = m.trm.Continue()
			return m, nil
		case term.StateAwaitingInput:
			if err := m.trm.SubmitInput(m.input.Value()); err == nil {
				m.input.Reset()
			}
			return m, nil
		}
	}

	if awaitingInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.trm.SetInputPreview(m.input.Value())
		return m, cmd
	}
	return m, nil
}

// advanceScript starts the next step once the terminal is free. Dance
// animation and pauses are handled here; everything else maps onto one
// terminal operation.
func (m *model) advanceScript(now time.Time) {
	if m.trm.State() == term.StateClosed {
		m.quitting = true
		return
	}
	if !m.trm.Done(now) {
		return
	}

	if d := m.dance; d != nil {
		if d.n < d.total {
			bg, _ := m.trm.Colors()
			m.trm.SetColors(bg, palette.Cycle[d.n%len(palette.Cycle)])
			_ = m.trm.DisplayArt(now, art.Dances[d.n/d.repeats], d.per)
			d.n++
			return
		}
		m.dance = nil
	}
	if now.Before(m.pauseUntil) {
		return
	}

	if m.idx >= len(m.steps) {
		m.quitting = true
		return
	}
	step := m.steps[m.idx]
	m.idx++
	m.startStep(now, step)
}

func (m *model) startStep(now time.Time, step script.Step) {
	switch step.Kind() {
	case script.KindSay:
		_ = m.trm.Tell(now, m.expand(step.Say))
	case script.KindAsk:
		m.input.Reset()
		_ = m.trm.Ask(now, m.expand(step.Ask))
	case script.KindShow:
		_ = m.trm.Show(now, m.expand(step.Show.Text), step.Duration())
	case script.KindArt:
		a, ok := art.Lookup(step.Art.Name)
		if ok {
			_ = m.trm.DisplayArt(now, a, step.Duration())
		}
	case script.KindDance:
		repeats := step.Dance.Repeats
		if repeats < 1 {
			repeats = 1
		}
		m.dance = &danceState{
			repeats: repeats,
			total:   len(art.Dances) * repeats,
			per:     step.Duration(),
		}
	case script.KindColors:
		bg, _ := palette.Parse(step.Colors.Background)
		fg, _ := palette.Parse(step.Colors.Foreground)
		m.trm.SetColors(bg, fg)
	case script.KindFont:
		if step.Font.Size > 0 {
			m.trm.SetFont(step.Font.Size)
		}
		if step.Font.ArtSize > 0 {
			m.trm.SetArtFont(step.Font.ArtSize)
		}
	case script.KindPause:
		m.pauseUntil = now.Add(step.Duration())
	}
}

// expand substitutes the last captured input into script text, so a
// step after an ask can address the user by what they typed.
func (m *model) expand(text string) string {
	return strings.ReplaceAll(text, "{input}", m.trm.LastInput())
}

func (m model) View() string {
	if m.width == 0 || m.quitting {
		return ""
	}
	return renderFrame(m.trm.FrameAt(m.now), m.width, m.height)
}
