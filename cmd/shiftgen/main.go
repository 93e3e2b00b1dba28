// Command shiftgen generates, validates, and serves monthly work
// schedules for a small care facility's staff roster.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/carefacility/shiftgen/internal/config"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/pkg/logger"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

var (
	rosterPath   string
	settingsPath string
	logLevel     string
	noColor      bool

	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shiftgen",
	Short: "Monthly work-shift scheduler for a small care facility",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
		var overrides logger.Overrides
		if settingsPath != "" {
			if s, err := loadSettings(settingsPath); err == nil {
				overrides = logger.Overrides(s.LogLevels)
			}
		}
		log = logger.New("shiftgen", logLevel, overrides)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rosterPath, "roster", "", "path to a roster file (.json or .yaml)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "path to a settings file (.json or .yaml); defaults applied when omitted")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(generateCmd, validateCmd, editCheckCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadRoster(path string) (config.RosterFile, error) {
	if path == "" {
		return config.RosterFile{}, fmt.Errorf("--roster is required")
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return config.LoadRosterYAML(path)
	}
	return config.LoadRosterJSON(path)
}

func loadSettings(path string) (config.Settings, error) {
	if path == "" {
		return config.Default(), nil
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return config.LoadSettingsYAML(path)
	}
	return config.LoadSettingsJSON(path)
}

func byID(staff []*roster.Staff) map[string]*roster.Staff {
	out := make(map[string]*roster.Staff, len(staff))
	for _, s := range staff {
		if s != nil {
			out[s.ID] = s
		}
	}
	return out
}
