package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carefacility/shiftgen/internal/cli"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/validator"
)

var schedulePath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Re-check a generated or hand-edited schedule against the hard rules",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&schedulePath, "schedule", "", "path to a schedule JSON file produced by 'generate --format json'")
	validateCmd.MarkFlagRequired("schedule")
}

func runValidate(cmd *cobra.Command, args []string) error {
	rf, err := loadRoster(rosterPath)
	if err != nil {
		return err
	}
	settings, err := loadSettings(settingsPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(schedulePath)
	if err != nil {
		return fmt.Errorf("read schedule file %q: %w", schedulePath, err)
	}
	var out generateOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("parse schedule file %q: %w", schedulePath, err)
	}
	table := schedule.FromGrid(out.Grid)

	warnings := validator.Validate(rf.Staff, table, table.Year, table.Month, settings)
	cli.RenderWarnings(warnings)
	return nil
}
