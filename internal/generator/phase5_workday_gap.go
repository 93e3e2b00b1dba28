package generator

import (
	"github.com/carefacility/shiftgen/internal/calendar"
	"github.com/carefacility/shiftgen/internal/constraint"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

// phase5WorkdayGap is §4.6 Phase 5: for each full-timer still short of
// their target workdays (and still below their off-day floor), repeatedly
// place one more shift on the best remaining day until the gap closes
// or no candidate day remains.
func phase5WorkdayGap(st *state) {
	for _, s := range st.roster {
		if s.IsPart() {
			continue
		}
		for schedule.WorkGap(st.table, s.ID, s) > 0 && schedule.OffDays(st.table, s.ID) > s.MonthlyDaysOffTarget {
			if !topUpOnce(st, s) {
				break
			}
		}
	}
}

type dayOption struct {
	day          int
	plusOne      bool
	shortfall    int
	totalPresent int
	shiftType    shift.Type
}

func topUpOnce(st *state, s *roster.Staff) bool {
	var options []dayOption
	for day := 1; day <= st.days; day++ {
		if st.table.Get(s.ID, day) != shift.Off {
			continue
		}
		if st.requested(s.ID, day) {
			continue
		}
		ok, plusOne := constraint.CanWorkOn(st.table, s, day, st.settings.MaxConsecutive, st.budget)
		if !ok {
			continue
		}

		sunday := calendar.IsSunday(st.year, st.month, day)
		relaxLeft := st.sundayRelaxUsed < 3
		mFloor := schedule.RequiredFloor(schedule.Morning, sunday, relaxLeft)
		nFloor := schedule.RequiredFloor(schedule.Noon, sunday, relaxLeft)
		eFloor := schedule.RequiredFloor(schedule.Evening, sunday, relaxLeft)
		M, N, E := st.countAt(day, schedule.Morning), st.countAt(day, schedule.Noon), st.countAt(day, schedule.Evening)
		mShort, nShort, eShort := max(0, mFloor-M), max(0, nFloor-N), max(0, eFloor-E)

		t := shift.Early
		switch {
		case eShort > 0:
			t = shift.Late
		case mShort > 0:
			t = shift.Early
		default:
			if schedule.CountShift(st.table, s.ID, shift.Late) < schedule.CountShift(st.table, s.ID, shift.Early) {
				t = shift.Late
			}
		}

		options = append(options, dayOption{
			day:          day,
			plusOne:      plusOne,
			shortfall:    mShort + nShort + eShort,
			totalPresent: M + N + E,
			shiftType:    t,
		})
	}
	if len(options) == 0 {
		return false
	}

	best := bestShortfallOption(st, options)
	if best == nil {
		best = bestLeastPresentOption(st, options)
	}
	if best == nil {
		return false
	}

	st.table.Set(s.ID, best.day, best.shiftType)
	if best.plusOne {
		st.budget.Consume(s.ID)
	}
	return true
}

func bestShortfallOption(st *state, options []dayOption) *dayOption {
	maxShortfall := 0
	for _, o := range options {
		if o.shortfall > maxShortfall {
			maxShortfall = o.shortfall
		}
	}
	if maxShortfall == 0 {
		return nil
	}
	var tier []dayOption
	for _, o := range options {
		if o.shortfall == maxShortfall {
			tier = append(tier, o)
		}
	}
	st.rng.Shuffle(len(tier), func(i, j int) { tier[i], tier[j] = tier[j], tier[i] })
	picked := tier[0]
	return &picked
}

func bestLeastPresentOption(st *state, options []dayOption) *dayOption {
	minPresent := options[0].totalPresent
	for _, o := range options {
		if o.totalPresent < minPresent {
			minPresent = o.totalPresent
		}
	}
	var tier []dayOption
	for _, o := range options {
		if o.totalPresent == minPresent {
			tier = append(tier, o)
		}
	}
	st.rng.Shuffle(len(tier), func(i, j int) { tier[i], tier[j] = tier[j], tier[i] })
	picked := tier[0]
	return &picked
}
