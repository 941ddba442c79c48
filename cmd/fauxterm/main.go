package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hollisb/fauxterm/internal/art"
	"github.com/hollisb/fauxterm/internal/config"
	"github.com/hollisb/fauxterm/internal/script"
	"github.com/hollisb/fauxterm/internal/text"
	"github.com/hollisb/fauxterm/internal/tui"
)

var (
	configFile string
	preset     string
	columns    int
	seconds    float64
)

// main is the entry point for the fauxterm CLI; it registers commands
// and flags, and plays the built-in demo when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "fauxterm",
		Short: "retro fake terminal for demos and hobby scripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg, script.Default())
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a preset look")

	playCmd := &cobra.Command{
		Use:   "play [script.yaml]",
		Short: "play a terminal script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg, s)
		},
	}

	sayCmd := &cobra.Command{
		Use:   "say [text]",
		Short: "type a message and wait for enter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s := &script.Script{Steps: []script.Step{{Say: strings.Join(args, " ")}}}
			return tui.Run(cfg, s)
		},
	}

	artCmd := &cobra.Command{
		Use:   "art [name]",
		Short: "display a named ascii art",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := art.Lookup(args[0]); !ok {
				return fmt.Errorf("unknown art: %s (available: %v)", args[0], art.Names())
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s := &script.Script{Steps: []script.Step{
				{Art: &script.ArtStep{Name: args[0], Seconds: seconds}},
			}}
			return tui.Run(cfg, s)
		},
	}
	artCmd.Flags().Float64Var(&seconds, "seconds", 3.0, "display time")

	artsCmd := &cobra.Command{
		Use:   "arts",
		Short: "list available art",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range art.Names() {
				fmt.Println(name)
			}
		},
	}

	wrapCmd := &cobra.Command{
		Use:   "wrap [text]",
		Short: "reflow text to a column budget (reads stdin without args)",
		RunE: func(cmd *cobra.Command, args []string) error {
			paragraphs := args
			if len(paragraphs) == 0 {
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					paragraphs = append(paragraphs, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}
			lines, err := text.Reflow(paragraphs, columns)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Println(line)
			}
			return nil
		},
	}
	wrapCmd.Flags().IntVar(&columns, "columns", 80, "maximum line width")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset looks",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config init [path]",
		Short: "write a default config file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "init" {
				return fmt.Errorf("unknown config action: %s", args[0])
			}
			path := "fauxterm.yaml"
			if len(args) > 1 {
				path = args[1]
			}
			cfg := config.DefaultConfig()
			if preset != "" {
				if cfg = config.GetPreset(preset); cfg == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
				}
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	scriptCmd := &cobra.Command{
		Use:   "script init [path]",
		Short: "write the demo script to a file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "init" {
				return fmt.Errorf("unknown script action: %s", args[0])
			}
			path := "demo.yaml"
			if len(args) > 1 {
				path = args[1]
			}
			if err := script.Save(path, script.Default()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, sayCmd, artCmd, artsCmd, wrapCmd, presetsCmd, configCmd, scriptCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: preset, then config
// file (file values win), then defaults.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg, nil
}
