package generator

import (
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

// phase58EarlyLateBalance is §4.6 Phase 5.8: for every full-timer whose
// EARLY and LATE counts differ by more than 2, swap half the
// difference from the dominant shift to the other, one day at a time,
// reverting any single swap that would drop morning or evening
// coverage below 4 that day.
func phase58EarlyLateBalance(st *state) {
	for _, s := range st.roster {
		if s.Kind != roster.Full {
			continue
		}
		balanceOne(st, s)
	}
}

func balanceOne(st *state, s *roster.Staff) {
	early := schedule.CountShift(st.table, s.ID, shift.Early)
	late := schedule.CountShift(st.table, s.ID, shift.Late)
	diff := early - late
	if diff < 0 {
		diff = -diff
	}
	if diff <= 2 {
		return
	}

	from, to := shift.Early, shift.Late
	if late > early {
		from, to = shift.Late, shift.Early
	}

	want := diff / 2
	swapped := 0
	for day := 1; day <= st.days && swapped < want; day++ {
		if st.table.Get(s.ID, day) != from {
			continue
		}
		st.table.Set(s.ID, day, to)
		if coverageDrops(st, day) {
			st.table.Set(s.ID, day, from)
			continue
		}
		swapped++
	}
}

// coverageDrops reports whether morning or evening coverage on day is
// currently below the unrelaxed floor of 4.
func coverageDrops(st *state, day int) bool {
	return st.countAt(day, schedule.Morning) < 4 || st.countAt(day, schedule.Evening) < 4
}
