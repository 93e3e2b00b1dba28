// Package validator re-examines a completed AssignmentTable against
// the hard rules of §3/§4.7 and produces a warning for each violation,
// and exposes the subset of those checks an ad-hoc single-cell edit
// probe needs (§4.8).
package validator

import (
	"fmt"

	"github.com/carefacility/shiftgen/internal/config"
	"github.com/carefacility/shiftgen/internal/constraint"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

// Validate re-examines table and returns one warning string per
// violation found. It never mutates table.
func Validate(staffList []*roster.Staff, table *schedule.Table, year, month int, settings config.Settings) []string {
	var warnings []string
	for _, s := range staffList {
		if s == nil {
			continue
		}
		warnings = append(warnings, checkConsecutiveRuns(table, s, settings.MaxConsecutive)...)
		warnings = append(warnings, checkNightRules(table, s, year, month)...)
		warnings = append(warnings, checkOvertimeEligibility(table, s)...)
		warnings = append(warnings, checkEarlyLateOnly(table, s)...)
	}
	return warnings
}

func checkConsecutiveRuns(t *schedule.Table, s *roster.Staff, globalMax int) []string {
	var warnings []string
	max := constraint.EffectiveMaxConsecutive(s, globalMax)
	hardCap := max
	if s.AllowConsecutivePlusOne {
		hardCap = max + 1
	}

	overrunRuns := 0
	runLen := 0
	flush := func(endDay int) {
		if runLen == 0 {
			return
		}
		if runLen > hardCap {
			warnings = append(warnings, fmt.Sprintf(
				"%s: consecutive workday run of %d ending day %d exceeds the allowed %d",
				s.Name, runLen, endDay, hardCap))
		} else if s.AllowConsecutivePlusOne && runLen == max+1 {
			overrunRuns++
		}
		runLen = 0
	}

	for day := 1; day <= t.Days; day++ {
		if shift.IsWorkday(t.Get(s.ID, day)) {
			runLen++
		} else {
			flush(day - 1)
		}
	}
	flush(t.Days)

	if overrunRuns > 2 {
		warnings = append(warnings, fmt.Sprintf(
			"%s: used the one-day consecutive overrun allowance %d times, more than the 2 permitted this month",
			s.Name, overrunRuns))
	}
	return warnings
}

func checkNightRules(t *schedule.Table, s *roster.Staff, year, month int) []string {
	var warnings []string
	for day := 1; day <= t.Days; day++ {
		if t.Get(s.ID, day) != shift.Night {
			continue
		}
		if s.IsPart() || s.Night == roster.NightNone {
			warnings = append(warnings, fmt.Sprintf(
				"%s: assigned NIGHT on day %d but is not eligible for night shifts", s.Name, day))
		}
		if !constraint.CanDoNightDayOfWeek(s, year, month, day) {
			warnings = append(warnings, fmt.Sprintf(
				"%s: assigned NIGHT on day %d, a weekend day forbidden for weekday-only night staff", s.Name, day))
		}
		if day+1 <= t.Days && t.Get(s.ID, day+1) != shift.NightOff {
			warnings = append(warnings, fmt.Sprintf(
				"%s: NIGHT on day %d is not followed by NIGHT_OFF on day %d", s.Name, day, day+1))
		}
	}
	return warnings
}

func checkOvertimeEligibility(t *schedule.Table, s *roster.Staff) []string {
	var warnings []string
	for day := 1; day <= t.Days; day++ {
		if t.Get(s.ID, day) != shift.Overtime {
			continue
		}
		if !constraint.CanDoOvertime(s) {
			warnings = append(warnings, fmt.Sprintf(
				"%s: assigned OVERTIME on day %d but is not eligible for overtime", s.Name, day))
		}
	}
	return warnings
}

func checkEarlyLateOnly(t *schedule.Table, s *roster.Staff) []string {
	var warnings []string
	if !s.IsPart() {
		return warnings
	}
	for day := 1; day <= t.Days; day++ {
		v := t.Get(s.ID, day)
		if s.LateOnly && (v == shift.Early || v == shift.Overtime) {
			warnings = append(warnings, fmt.Sprintf(
				"%s: late-only part-timer assigned %s on day %d", s.Name, v, day))
		}
		if s.EarlyOnly && (v == shift.Late || v == shift.Overtime) {
			warnings = append(warnings, fmt.Sprintf(
				"%s: early-only part-timer assigned %s on day %d", s.Name, v, day))
		}
	}
	return warnings
}
