// Package script defines the YAML script format that drives a terminal
// session: an ordered list of steps, each one terminal operation.
package script

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hollisb/fauxterm/internal/art"
	"github.com/hollisb/fauxterm/internal/palette"
)

// Step is one scripted terminal action. Exactly one field may be set.
type Step struct {
	// Say types the text, then waits for enter.
	Say string `yaml:"say,omitempty"`
	// Ask types the text, then captures a line of input.
	Ask string `yaml:"ask,omitempty"`
	// Show types the text, then holds it for a time.
	Show *TimedText `yaml:"show,omitempty"`
	// Art displays a named ascii-art block for a time.
	Art *ArtStep `yaml:"art,omitempty"`
	// Dance plays the dance animation, cycling the stock colors.
	Dance *DanceStep `yaml:"dance,omitempty"`
	// Colors switches the background and foreground.
	Colors *ColorStep `yaml:"colors,omitempty"`
	// Font changes the message and art font sizes.
	Font *FontStep `yaml:"font,omitempty"`
	// Pause idles for the given number of seconds.
	Pause float64 `yaml:"pause,omitempty"`
}

type TimedText struct {
	Text    string  `yaml:"text"`
	Seconds float64 `yaml:"seconds"`
}

type ArtStep struct {
	Name    string  `yaml:"name"`
	Seconds float64 `yaml:"seconds"`
}

type DanceStep struct {
	// FrameSeconds is the display time of one frame.
	FrameSeconds float64 `yaml:"frame_seconds"`
	// Repeats plays each frame this many times before moving on.
	Repeats int `yaml:"repeats"`
}

type ColorStep struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

// FontStep carries the new sizes; zero fields are left unchanged.
type FontStep struct {
	Size    int `yaml:"size,omitempty"`
	ArtSize int `yaml:"art_size,omitempty"`
}

// Kind discriminates the step variants after validation.
type Kind int

const (
	KindInvalid Kind = iota
	KindSay
	KindAsk
	KindShow
	KindArt
	KindDance
	KindColors
	KindFont
	KindPause
)

// Kind returns which action the step carries, or KindInvalid when the
// step is empty or ambiguous.
func (s Step) Kind() Kind {
	kind := KindInvalid
	n := 0
	if s.Say != "" {
		kind, n = KindSay, n+1
	}
	if s.Ask != "" {
		kind, n = KindAsk, n+1
	}
	if s.Show != nil {
		kind, n = KindShow, n+1
	}
	if s.Art != nil {
		kind, n = KindArt, n+1
	}
	if s.Dance != nil {
		kind, n = KindDance, n+1
	}
	if s.Colors != nil {
		kind, n = KindColors, n+1
	}
	if s.Font != nil {
		kind, n = KindFont, n+1
	}
	if s.Pause > 0 {
		kind, n = KindPause, n+1
	}
	if n != 1 {
		return KindInvalid
	}
	return kind
}

// Duration converts the step's seconds field to a duration; steps
// without a time component return zero.
func (s Step) Duration() time.Duration {
	var secs float64
	switch s.Kind() {
	case KindShow:
		secs = s.Show.Seconds
	case KindArt:
		secs = s.Art.Seconds
	case KindDance:
		secs = s.Dance.FrameSeconds
	case KindPause:
		secs = s.Pause
	}
	return time.Duration(secs * float64(time.Second))
}

// Script is an ordered terminal session.
type Script struct {
	Title string `yaml:"title,omitempty"`
	Steps []Step `yaml:"steps"`
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func Save(path string, s *Script) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every step: exactly one action, known art names,
// resolvable colors, sane times.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("script: %w", ErrNoSteps)
	}
	for i, step := range s.Steps {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("script: step %d: %w", i+1, err)
		}
	}
	return nil
}

func validateStep(step Step) error {
	switch step.Kind() {
	case KindInvalid:
		return ErrBadStep
	case KindShow:
		if step.Show.Seconds <= 0 {
			return ErrBadDuration
		}
	case KindArt:
		if _, ok := art.Lookup(step.Art.Name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownArt, step.Art.Name)
		}
		if step.Art.Seconds <= 0 {
			return ErrBadDuration
		}
	case KindDance:
		if step.Dance.FrameSeconds <= 0 {
			return ErrBadDuration
		}
	case KindColors:
		if _, ok := palette.Parse(step.Colors.Background); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColor, step.Colors.Background)
		}
		if _, ok := palette.Parse(step.Colors.Foreground); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColor, step.Colors.Foreground)
		}
	case KindFont:
		if step.Font.Size < 0 || step.Font.ArtSize < 0 || (step.Font.Size == 0 && step.Font.ArtSize == 0) {
			return ErrBadFont
		}
	}
	return nil
}

// Default is the built-in demo: the dance animation with cycling colors,
// a welcome, and a short exchange.
func Default() *Script {
	return &Script{
		Title: "fauxterm demo",
		Steps: []Step{
			{Art: &ArtStep{Name: "logo", Seconds: 2}},
			{Dance: &DanceStep{FrameSeconds: 0.2, Repeats: 4}},
			{Say: "Welcome to fauxterm!"},
			{Ask: "What should I call you?"},
			{Show: &TimedText{Text: "Pleasure doing business with you, {input}.", Seconds: 2}},
			{Colors: &ColorStep{Background: "dark_grey", Foreground: "gold"}},
			{Art: &ArtStep{Name: "wave", Seconds: 2}},
		},
	}
}
