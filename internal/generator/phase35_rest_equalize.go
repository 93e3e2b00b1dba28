package generator

import (
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
)

const restEqualizeMaxIterations = 20

// phase35PartRestEqualize is §4.6 Phase 3.5: repeatedly finds the part
// staff member whose off-day count most exceeds their target and tries
// to give them one more PART shift (forward pass, then backward) to
// bring them back down, so one part-timer never absorbs another's
// rest burden. Stops early once the chosen staff member cannot be given
// another shift anywhere in the month.
func phase35PartRestEqualize(st *state) {
	for iter := 0; iter < restEqualizeMaxIterations; iter++ {
		target := pickLargestRestSurplus(st)
		if target == nil {
			return
		}

		placed := false
		for day := 1; day <= st.days; day++ {
			if tryPlacePart(st, target, day) {
				placed = true
				break
			}
		}
		if !placed {
			for day := st.days; day >= 1; day-- {
				if tryPlacePart(st, target, day) {
					placed = true
					break
				}
			}
		}
		if !placed {
			return
		}
	}
}

func pickLargestRestSurplus(st *state) *roster.Staff {
	var best *roster.Staff
	bestSurplus := 0
	for _, s := range st.roster {
		if !s.IsPart() {
			continue
		}
		surplus := schedule.OffDays(st.table, s.ID) - s.MonthlyDaysOffTarget
		if surplus > bestSurplus {
			bestSurplus = surplus
			best = s
		}
	}
	return best
}
