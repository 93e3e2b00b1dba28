package validator

import (
	"strings"
	"testing"

	"github.com/carefacility/shiftgen/internal/config"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

func TestValidateFlagsConsecutiveOverrun(t *testing.T) {
	s := &roster.Staff{ID: "a", Name: "Akiko", Kind: roster.Full}
	tbl := schedule.New(2025, 4, []string{"a"})
	for day := 1; day <= 6; day++ {
		tbl.Set("a", day, shift.Early)
	}
	warnings := Validate([]*roster.Staff{s}, tbl, 2025, 4, config.Default())
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "consecutive workday run") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a consecutive-run warning, got %v", warnings)
	}
}

func TestValidateFlagsMissingNightOff(t *testing.T) {
	s := &roster.Staff{ID: "a", Name: "Kenji", Kind: roster.Full, Night: roster.NightAll}
	tbl := schedule.New(2025, 4, []string{"a"})
	tbl.Set("a", 10, shift.Night)
	tbl.Set("a", 11, shift.Early) // should have been NightOff

	warnings := Validate([]*roster.Staff{s}, tbl, 2025, 4, config.Default())
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "not followed by NIGHT_OFF") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a missing-NIGHT_OFF warning, got %v", warnings)
	}
}

func TestValidateFlagsIneligibleNight(t *testing.T) {
	s := &roster.Staff{ID: "a", Name: "Part-timer", Kind: roster.PartTime, Night: roster.NightAll}
	tbl := schedule.New(2025, 4, []string{"a"})
	tbl.Set("a", 5, shift.Night)

	warnings := Validate([]*roster.Staff{s}, tbl, 2025, 4, config.Default())
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "not eligible for night shifts") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an ineligible-night warning, got %v", warnings)
	}
}

func TestValidateFlagsEarlyOnlyPartGivenLate(t *testing.T) {
	s := &roster.Staff{ID: "a", Name: "Morning-only", Kind: roster.PartTime, EarlyOnly: true}
	tbl := schedule.New(2025, 4, []string{"a"})
	tbl.Set("a", 3, shift.Late)

	warnings := Validate([]*roster.Staff{s}, tbl, 2025, 4, config.Default())
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "early-only part-timer assigned LATE") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an early-only violation warning, got %v", warnings)
	}
}

func TestValidateClean(t *testing.T) {
	s := &roster.Staff{ID: "a", Name: "Clean", Kind: roster.Full, CanOvertime: true}
	tbl := schedule.New(2025, 4, []string{"a"})
	tbl.Set("a", 1, shift.Early)
	tbl.Set("a", 2, shift.Off)

	warnings := Validate([]*roster.Staff{s}, tbl, 2025, 4, config.Default())
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestEditWarningsDoesNotMutateLiveTable(t *testing.T) {
	s := &roster.Staff{ID: "a", Name: "Akiko", Kind: roster.Full}
	live := schedule.New(2025, 4, []string{"a"})
	for day := 1; day <= 5; day++ {
		live.Set("a", day, shift.Early)
	}

	warnings := EditWarnings(s, live, 6, shift.Early, 2025, 4, config.Default())
	if len(warnings) == 0 {
		t.Error("expected a consecutive-run warning for the hypothetical edit")
	}
	if got := live.Get("a", 6); got != shift.Off {
		t.Errorf("EditWarnings must not mutate the live table, got %s at day 6", got)
	}
}
