package generator

import (
	"github.com/carefacility/shiftgen/internal/calendar"
	"github.com/carefacility/shiftgen/internal/constraint"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

// phase55CoverageRescue is §4.6 Phase 5.5: a last pass over every
// remaining (day, checkpoint) shortfall, trying — in order — an
// OVERTIME upgrade of an already-present EARLY/LATE holder, then
// adding any currently-OFF full-timer, then a currently-OFF
// part-timer whose own hours cover the checkpoint minute. It emits no
// new warnings; phase 4 already recorded whatever remains unrescued.
func phase55CoverageRescue(st *state) {
	for day := 1; day <= st.days; day++ {
		sunday := calendar.IsSunday(st.year, st.month, day)
		relaxLeft := st.sundayRelaxUsed < 3

		rescue(st, day, schedule.Morning, schedule.RequiredFloor(schedule.Morning, sunday, relaxLeft))
		rescue(st, day, schedule.Noon, schedule.RequiredFloor(schedule.Noon, sunday, relaxLeft))
		rescue(st, day, schedule.Evening, schedule.RequiredFloor(schedule.Evening, sunday, relaxLeft))
	}
}

func rescue(st *state, day int, cp schedule.Checkpoint, floor int) {
	if st.countAt(day, cp) >= floor {
		return
	}

	switch cp {
	case schedule.Evening:
		upgradePresentHolders(st, day, shift.Early, cp, floor)
	case schedule.Morning:
		upgradePresentHolders(st, day, shift.Late, cp, floor)
	}
	if st.countAt(day, cp) >= floor {
		return
	}

	addOffFullTimer(st, day, cp, floor)
	if st.countAt(day, cp) >= floor {
		return
	}

	addOffPartTimer(st, day, cp, floor)
}

// upgradePresentHolders upgrades full-timers currently on fromType to
// OVERTIME, which is present at every checkpoint EARLY/LATE isn't,
// until the checkpoint clears or candidates run out.
func upgradePresentHolders(st *state, day int, fromType shift.Type, cp schedule.Checkpoint, floor int) {
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
	for _, c := range st.sortForOvertime(cands) {
		if st.countAt(day, cp) >= floor {
			return
		}
		st.table.Set(c.staff.ID, day, shift.Overtime)
	}
}

func addOffFullTimer(st *state, day int, cp schedule.Checkpoint, floor int) {
	pool := st.availableForWork(day)
	st.sortSoft(pool)
	for _, c := range pool {
		if st.countAt(day, cp) >= floor {
			return
		}
		t := checkpointShiftChoice(st, c.staff, cp)
		st.commit(c, day, t)
	}
}

func checkpointShiftChoice(st *state, s *roster.Staff, cp schedule.Checkpoint) shift.Type {
	switch cp {
	case schedule.Morning:
		return shift.Early
	case schedule.Evening:
		return shift.Late
	default:
		if schedule.CountShift(st.table, s.ID, shift.Late) < schedule.CountShift(st.table, s.ID, shift.Early) {
			return shift.Late
		}
		return shift.Early
	}
}

func addOffPartTimer(st *state, day int, cp schedule.Checkpoint, floor int) {
	minute := cp.Minute()
	for _, s := range st.roster {
		if st.countAt(day, cp) >= floor {
			return
		}
		if !s.IsPart() {
			continue
		}
		if st.table.Get(s.ID, day) != shift.Off {
			continue
		}
		if minute < s.StartMinute() || minute >= s.EndMinute() {
			continue
		}
		ok, usesPlusOne := canPlacePart(st, st.table, s, day)
		if !ok {
			continue
		}
		st.table.Set(s.ID, day, shift.Part)
		if usesPlusOne {
			st.budget.Consume(s.ID)
		}
	}
}
