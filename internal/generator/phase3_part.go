package generator

import (
	"github.com/carefacility/shiftgen/internal/constraint"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

// phase3Part is §4.6 Phase 3: place PART shifts for every part-timer,
// one staff member at a time, in roster order.
func phase3Part(st *state) {
	for _, s := range st.roster {
		if !s.IsPart() {
			continue
		}
		if st.maxConsecutive(s) <= 2 {
			placePartRotatingOffsets(st, s)
		} else {
			placePartRandomWalk(st, s)
		}
	}
}

// canPlacePart gates a single PART placement: the day must not be
// requested off, must pass the shared consecutive-run/plus-one check,
// and must not push the owning week's workday count past the staff's
// weekly cap.
func canPlacePart(st *state, table *schedule.Table, s *roster.Staff, day int) (ok bool, usesPlusOne bool) {
	if st.requested(s.ID, day) {
		return false, false
	}
	ok, usesPlusOne = constraint.CanWorkOn(table, s, day, st.settings.MaxConsecutive, st.budget)
	if !ok {
		return false, false
	}
	if schedule.WeekWorkdays(table, s.ID, st.year, st.month, day) >= s.MaxDaysPerWeek {
		return false, false
	}
	return true, usesPlusOne
}

// placePartRotatingOffsets implements the max_consecutive<=2 branch:
// try the three work-work-off offsets against a scratch single-row
// table, keep the offset that yields the most workdays.
func placePartRotatingOffsets(st *state, s *roster.Staff) {
	type attempt struct {
		table     *schedule.Table
		count     int
		plusOnes  []int
	}

	var best *attempt
	for offset := 0; offset < 3; offset++ {
		scratch := schedule.New(st.year, st.month, []string{s.ID})
		a := &attempt{table: scratch}
		for day := 1; day <= st.days; day++ {
			if (day-1+offset)%3 == 2 {
				continue // the "off" slot of the work-work-off pattern
			}
			ok, usesPlusOne := canPlacePart(st, scratch, s, day)
			if !ok {
				continue
			}
			if usesPlusOne && st.budget.Used(s.ID)+len(a.plusOnes) >= 2 {
				continue // this attempt has already spent the staff's remaining overruns
			}
			scratch.Set(s.ID, day, shift.Part)
			a.count++
			if usesPlusOne {
				a.plusOnes = append(a.plusOnes, day)
			}
		}
		if best == nil || a.count > best.count {
			best = a
		}
	}
	if best == nil {
		return
	}
	for day := 1; day <= st.days; day++ {
		st.table.Set(s.ID, day, best.table.Get(s.ID, day))
	}
	for range best.plusOnes {
		st.budget.Consume(s.ID)
	}
}

// placePartRandomWalk implements the max_consecutive>2 branch: a
// random start day, a forward wrapping pass placing PART under the
// same gates, then — if still short of target — a second reverse pass.
func placePartRandomWalk(st *state, s *roster.Staff) {
	start := st.rng.Intn(st.days) + 1
	for i := 0; i < st.days; i++ {
		day := ((start - 1 + i) % st.days) + 1
		tryPlacePart(st, s, day)
	}

	if schedule.Workdays(st.table, s.ID) < schedule.TargetWorkdays(st.table, s.ID, s) {
		for day := st.days; day >= 1; day-- {
			tryPlacePart(st, s, day)
		}
	}
}

func tryPlacePart(st *state, s *roster.Staff, day int) bool {
	ok, usesPlusOne := canPlacePart(st, st.table, s, day)
	if !ok {
		return false
	}
	st.table.Set(s.ID, day, shift.Part)
	if usesPlusOne {
		st.budget.Consume(s.ID)
	}
	return true
}
