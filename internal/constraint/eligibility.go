// Package constraint holds the per-staff eligibility predicates and
// the consecutive-run / night-assignment gates the generator and
// validator both consult, so the two never drift apart on what
// "allowed" means.
package constraint

import (
	"github.com/carefacility/shiftgen/internal/calendar"
	"github.com/carefacility/shiftgen/internal/roster"
)

// EffectiveMaxConsecutive returns the consecutive-workday cap for s:
// an explicit per-staff override if set, else 2 for a full-timer with
// any night capability, else the global default (normally 5).
func EffectiveMaxConsecutive(s *roster.Staff, globalDefault int) int {
	if s.MaxConsecutiveOverride > 0 {
		return s.MaxConsecutiveOverride
	}
	if s.Kind == roster.Full && s.Night != roster.NightNone {
		return 2
	}
	return globalDefault
}

// CanDoEarly reports whether s may ever be assigned EARLY. Only a
// late-only part-timer is excluded.
func CanDoEarly(s *roster.Staff) bool {
	return !(s.IsPart() && s.LateOnly)
}

// CanDoLate reports whether s may ever be assigned LATE. Only an
// early-only part-timer is excluded.
func CanDoLate(s *roster.Staff) bool {
	return !(s.IsPart() && s.EarlyOnly)
}

// CanDoOvertime reports whether s may ever be assigned OVERTIME: never
// for a part-timer, and only for a full-timer flagged CanOvertime.
func CanDoOvertime(s *roster.Staff) bool {
	return s.Kind == roster.Full && s.CanOvertime
}

// CanDoNightDayOfWeek reports whether day's weekday allows NIGHT for
// s's night capability: NightNone never qualifies (checked by the
// caller, not here), NightWeekdayOnly excludes Fri/Sat/Sun, NightAll
// always qualifies.
func CanDoNightDayOfWeek(s *roster.Staff, year, month, day int) bool {
	if s.Night == roster.NightWeekdayOnly && calendar.IsFriSatSun(year, month, day) {
		return false
	}
	return true
}
