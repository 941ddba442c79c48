package config

import "sort"

// Presets are ready-made terminal looks selectable by name.
var Presets = map[string]*Config{
	"classic": {
		Title: "fauxterm", Columns: 60, Background: "dark_grey", Foreground: "emerald",
		Scanlines: true, FontSize: 32, ArtFontSize: 10,
		FlashMillis: DefaultFlashMillis, TypeMillis: DefaultTypeMillis,
	},
	"amber": {
		Title: "fauxterm", Columns: 60, Background: "#1a1006", Foreground: "gold",
		Scanlines: true, FontSize: 32, ArtFontSize: 10,
		FlashMillis: DefaultFlashMillis, TypeMillis: DefaultTypeMillis,
	},
	"paper": {
		Title: "fauxterm", Columns: 72, Background: "off_white", Foreground: "dark_grey",
		Scanlines: false, FontSize: 28, ArtFontSize: 10,
		FlashMillis: DefaultFlashMillis, TypeMillis: DefaultTypeMillis,
	},
	"midnight": {
		Title: "fauxterm", Columns: 60, Background: "#0a0a1a", Foreground: "light_blue",
		Scanlines: true, FontSize: 32, ArtFontSize: 10,
		FlashMillis: DefaultFlashMillis, TypeMillis: DefaultTypeMillis,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	// Copy so callers can tweak without touching the table.
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
