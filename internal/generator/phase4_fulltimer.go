package generator

import (
	"fmt"

	"github.com/carefacility/shiftgen/internal/calendar"
	"github.com/carefacility/shiftgen/internal/constraint"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

const overtimeSoftTarget = 5

// phase4FullTimer is §4.6 Phase 4: for each day, in order, run the six
// coverage steps against the three checkpoints. The effective floor at
// each checkpoint already reflects the Sunday-relaxation budget
// (schedule.RequiredFloor), so every shortfall computed below — not
// just the count itself — tracks whichever floor currently applies.
func phase4FullTimer(st *state) {
	for day := 1; day <= st.days; day++ {
		sunday := calendar.IsSunday(st.year, st.month, day)
		relaxationLeft := st.sundayRelaxUsed < 3

		mFloor := schedule.RequiredFloor(schedule.Morning, sunday, relaxationLeft)
		nFloor := schedule.RequiredFloor(schedule.Noon, sunday, relaxationLeft)
		eFloor := schedule.RequiredFloor(schedule.Evening, sunday, relaxationLeft)

		recount := func() (int, int, int) {
			return st.countAt(day, schedule.Morning),
				st.countAt(day, schedule.Noon),
				st.countAt(day, schedule.Evening)
		}

		M, N, E := recount()

		// Step 1: strategic OVERTIME for staff who can close both a
		// morning and an evening shortfall at once.
		otWant := min(max(0, mFloor-M), max(0, eFloor-E))
		if otWant > 0 {
			pool := st.availableForWork(day)
			var eligible []candidate
			for _, c := range pool {
				if !constraint.CanDoOvertime(c.staff) {
					continue
				}
				if schedule.CountShift(st.table, c.staff.ID, shift.Overtime) >= overtimeSoftTarget {
					continue
				}
				eligible = append(eligible, c)
			}
			sorted := st.sortForOvertime(eligible)
			n := min(otWant, len(sorted))
			for i := 0; i < n; i++ {
				st.commit(sorted[i], day, shift.Overtime)
			}
			M, N, E = recount()
		}

		// Step 2: fill a morning shortfall with EARLY.
		if need := mFloor - M; need > 0 {
			pool := st.availableForWork(day)
			st.sortSoftThenBalance(pool, shift.Early)
			n := min(need, len(pool))
			for i := 0; i < n; i++ {
				st.commit(pool[i], day, shift.Early)
			}
			M, N, E = recount()
		}

		// Step 3: fill an evening shortfall with LATE.
		if need := eFloor - E; need > 0 {
			pool := st.availableForWork(day)
			st.sortSoftThenBalance(pool, shift.Late)
			n := min(need, len(pool))
			for i := 0; i < n; i++ {
				st.commit(pool[i], day, shift.Late)
			}
			M, N, E = recount()
		}

		// Step 4: fill remaining noon shortfall one slot at a time,
		// choosing EARLY or LATE by whichever the candidate has fewer of.
		for need := nFloor - N; need > 0; need = nFloor - N {
			pool := st.availableForWork(day)
			if len(pool) == 0 {
				break
			}
			st.sortSoft(pool)
			pick := pool[0]
			t := shift.Early
			if schedule.CountShift(st.table, pick.staff.ID, shift.Late) < schedule.CountShift(st.table, pick.staff.ID, shift.Early) {
				t = shift.Late
			}
			st.commit(pick, day, t)
			M, N, E = recount()
		}

		// Step 5: overtime upgrade fallback — EARLY->OVERTIME if
		// evening is still short, LATE->OVERTIME if morning is still short.
		if E < eFloor {
			upgradeToOvertime(st, day, shift.Early, func() bool { return E < eFloor }, &E)
		}
		if M < mFloor {
			upgradeToOvertime(st, day, shift.Late, func() bool { return M < mFloor }, &M)
		}

		// Step 6: emit warnings for whatever coverage could not be rescued.
		if M < mFloor {
			st.addCoverageWarning(fmt.Sprintf("day %d: morning coverage %d below required %d", day, M, mFloor))
		}
		if N < nFloor {
			st.addCoverageWarning(fmt.Sprintf("day %d: noon coverage %d below required %d", day, N, nFloor))
		}
		if E < eFloor {
			st.addCoverageWarning(fmt.Sprintf("day %d: evening coverage %d below required %d", day, E, eFloor))
		}

		if sunday && relaxationLeft && (M == 3 || N == 3) {
			st.sundayRelaxUsed++
		}
	}
}

// upgradeToOvertime scans full-timers currently on fromType on day who
// can take overtime, sorted by sortForOvertime (which enforces the
// hard 6/month cap, not the step-1 soft target of 5), and upgrades
// them to OVERTIME until the checkpoint tracked by stillShort clears.
func upgradeToOvertime(st *state, day int, fromType shift.Type, stillShort func() bool, counter *int) {
	var cands []candidate
	for _, s := range st.roster {
		if s.Kind != roster.Full {
			continue
		}
		if st.table.Get(s.ID, day) != fromType {
			continue
		}
		if !constraint.CanDoOvertime(s) {
			continue
		}
		cands = append(cands, candidate{staff: s})
	}
	sorted := st.sortForOvertime(cands)
	for _, c := range sorted {
		if !stillShort() {
			return
		}
		st.table.Set(c.staff.ID, day, shift.Overtime)
		*counter++
	}
}

// countAt is a small convenience wrapper around schedule.CountAtCheckpoint.
func (st *state) countAt(day int, cp schedule.Checkpoint) int {
	return schedule.CountAtCheckpoint(st.table, day, cp, st.byID)
}

// availableForWork is the candidate pool for phases 4 and 5: full-time
// staff whose day is currently OFF, who did not request it off, who
// have not yet reached their off-day target (the off-day floor — only
// upgrades of already-placed shifts may push them further), and who
// pass the shared consecutive-run gate.
func (st *state) availableForWork(day int) []candidate {
	var out []candidate
	for _, s := range st.roster {
		if s.Kind != roster.Full {
			continue
		}
		if st.requested(s.ID, day) {
			continue
		}
		if schedule.OffDays(st.table, s.ID) <= s.MonthlyDaysOffTarget {
			continue
		}
		ok, plusOne := constraint.CanWorkOn(st.table, s, day, st.settings.MaxConsecutive, st.budget)
		if !ok {
			continue
		}
		out = append(out, candidate{staff: s, plusOne: plusOne})
	}
	return out
}

// commit assigns t to c's day and consumes the overrun budget if this
// placement relied on it.
func (st *state) commit(c candidate, day int, t shift.Type) {
	st.table.Set(c.staff.ID, day, t)
	if c.plusOne {
		st.budget.Consume(c.staff.ID)
	}
}
