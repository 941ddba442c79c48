package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hollisb/fauxterm/internal/palette"
	"github.com/hollisb/fauxterm/internal/term"
)

const (
	DefaultColumns     = 60
	DefaultFontSize    = 32
	DefaultArtFontSize = 10
	DefaultFlashMillis = 500
	DefaultTypeMillis  = 20
)

// Config is the on-disk terminal configuration. Colors are stock color
// names or hex strings.
type Config struct {
	Title       string `yaml:"title"`
	Columns     int    `yaml:"columns"`
	Background  string `yaml:"background"`
	Foreground  string `yaml:"foreground"`
	Scanlines   bool   `yaml:"scanlines"`
	FontSize    int    `yaml:"font_size"`
	ArtFontSize int    `yaml:"art_font_size"`
	FlashMillis int    `yaml:"flash_millis"`
	TypeMillis  int    `yaml:"type_millis"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:       "fauxterm",
		Columns:     DefaultColumns,
		Background:  "dark_grey",
		Foreground:  "emerald",
		Scanlines:   true,
		FontSize:    DefaultFontSize,
		ArtFontSize: DefaultArtFontSize,
		FlashMillis: DefaultFlashMillis,
		TypeMillis:  DefaultTypeMillis,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options resolves the configuration into terminal options, parsing the
// color fields against the stock palette and hex notation.
func (c *Config) Options() (term.Options, error) {
	bg, ok := palette.Parse(c.Background)
	if !ok {
		return term.Options{}, fmt.Errorf("config: unknown background color %q", c.Background)
	}
	fg, ok := palette.Parse(c.Foreground)
	if !ok {
		return term.Options{}, fmt.Errorf("config: unknown foreground color %q", c.Foreground)
	}

	return term.Options{
		Title:       c.Title,
		Columns:     c.Columns,
		Background:  bg,
		Foreground:  fg,
		Scanlines:   c.Scanlines,
		FontSize:    c.FontSize,
		ArtFontSize: c.ArtFontSize,
		FlashPeriod: time.Duration(c.FlashMillis) * time.Millisecond,
		TypeTime:    time.Duration(c.TypeMillis) * time.Millisecond,
	}, nil
}
