package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carefacility/shiftgen/internal/cli"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
	"github.com/carefacility/shiftgen/internal/validator"
)

var (
	editStaffID   string
	editDay       int
	editShiftText string
)

var editCheckCmd = &cobra.Command{
	Use:   "edit-check",
	Short: "Probe a single proposed cell edit without committing it",
	RunE:  runEditCheck,
}

func init() {
	editCheckCmd.Flags().StringVar(&schedulePath, "schedule", "", "path to a schedule JSON file produced by 'generate --format json'")
	editCheckCmd.Flags().StringVar(&editStaffID, "staff", "", "staff id to probe")
	editCheckCmd.Flags().IntVar(&editDay, "day", 0, "1-based day of month")
	editCheckCmd.Flags().StringVar(&editShiftText, "shift", "", "proposed shift: OFF, EARLY, LATE, NIGHT, NIGHT_OFF, OVERTIME, PART")
	editCheckCmd.MarkFlagRequired("schedule")
	editCheckCmd.MarkFlagRequired("staff")
	editCheckCmd.MarkFlagRequired("day")
	editCheckCmd.MarkFlagRequired("shift")
}

func runEditCheck(cmd *cobra.Command, args []string) error {
	rf, err := loadRoster(rosterPath)
	if err != nil {
		return err
	}
	settings, err := loadSettings(settingsPath)
	if err != nil {
		return err
	}

	newShift, ok := shift.ParseType(editShiftText)
	if !ok {
		return fmt.Errorf("unrecognized shift token %q", editShiftText)
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

	ids := byID(rf.Staff)
	s := ids[editStaffID]
	if s == nil {
		return fmt.Errorf("unknown staff id %q", editStaffID)
	}

	warnings := validator.EditWarnings(s, table, editDay, newShift, table.Year, table.Month, settings)
	cli.RenderWarnings(warnings)
	return nil
}
