package validator

import (
	"github.com/carefacility/shiftgen/internal/config"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

// EditWarnings evaluates a candidate single-cell edit for s without
// committing it: it applies newShift to day on a scratch copy of s's
// row alone (never the live table) and re-runs the subset of §4.7's
// checks that a single-row edit can violate — consecutive run,
// night eligibility and day-of-week, part-timer early/late-only
// restrictions, and overtime eligibility.
func EditWarnings(s *roster.Staff, live *schedule.Table, day int, newShift shift.Type, year, month int, settings config.Settings) []string {
	if s == nil || live == nil {
		return nil
	}

	scratch := schedule.New(year, month, []string{s.ID})
	for d := 1; d <= live.Days && d <= scratch.Days; d++ {
		scratch.Set(s.ID, d, live.Get(s.ID, d))
	}
	scratch.Set(s.ID, day, newShift)

	var warnings []string
	warnings = append(warnings, checkConsecutiveRuns(scratch, s, settings.MaxConsecutive)...)
	warnings = append(warnings, checkNightRules(scratch, s, year, month)...)
	warnings = append(warnings, checkOvertimeEligibility(scratch, s)...)
	warnings = append(warnings, checkEarlyLateOnly(scratch, s)...)
	return warnings
}
