package constraint

import (
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

// CanWorkOn reports whether s may be assigned any work shift on day,
// per §4.2: day's cell must currently be OFF, and the resulting
// consecutive run (backward run + this day + forward run) must not
// exceed the effective cap — or exceed it by exactly one day, if s
// tolerates a plus-one overrun and still has budget for one. usesPlusOne
// reports whether granting this day would spend that budget; the
// caller must call budget.Consume only once the assignment is
// actually committed.
func CanWorkOn(t *schedule.Table, s *roster.Staff, day int, globalMaxDefault int, budget *OverrunBudget) (ok bool, usesPlusOne bool) {
	if t.Get(s.ID, day) != shift.Off {
		return false, false
	}
	max := EffectiveMaxConsecutive(s, globalMaxDefault)
	past := BackwardRun(t, s.ID, day)
	forward := ForwardRun(t, s.ID, day+1)
	total := past + 1 + forward

	if total <= max {
		return true, false
	}
	if total == max+1 && s.AllowConsecutivePlusOne && budget.HasRoom(s.ID) {
		return true, true
	}
	return false, false
}

// CanAssignNight reports whether s may be assigned NIGHT on day, per
// §4.2: s must be a full-timer with some night capability, the
// weekday must be allowed for s's capability, the three-day window
// [day, day+1, day+2] must currently be entirely OFF (day+2 is left
// for the operator but must still be free at assignment time), and the
// consecutive run formed by the night shift itself (the NIGHT_OFF at
// day+1 breaks the run, so the forward count resumes at day+2) must
// respect the same cap/plus-one rule as CanWorkOn.
func CanAssignNight(t *schedule.Table, s *roster.Staff, day, year, month int, globalMaxDefault int, budget *OverrunBudget) (ok bool, usesPlusOne bool) {
	if s.IsPart() || s.Night == roster.NightNone {
		return false, false
	}
	if !CanDoNightDayOfWeek(s, year, month, day) {
		return false, false
	}
	for _, d := range []int{day, day + 1, day + 2} {
		if d > t.Days {
			continue
		}
		if t.Get(s.ID, d) != shift.Off {
			return false, false
		}
	}

	max := EffectiveMaxConsecutive(s, globalMaxDefault)
	past := BackwardRun(t, s.ID, day)
	forward := ForwardRun(t, s.ID, day+2)
	total := past + 1 + forward

	if total <= max {
		return true, false
	}
	if total == max+1 && s.AllowConsecutivePlusOne && budget.HasRoom(s.ID) {
		return true, true
	}
	return false, false
}
