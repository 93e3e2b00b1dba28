package generator

import (
	"fmt"
	"sort"

	"github.com/carefacility/shiftgen/internal/calendar"
	"github.com/carefacility/shiftgen/internal/constraint"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

// phase2Night is §4.6 Phase 2: for each day, place the required number
// of NIGHT shifts (Sunday uses sundayNightRequired, weekdays use
// nightRequired), each time scoring eligible candidates by ascending
// month NIGHT count then ascending workdays, shuffling the minimum
// tier before picking. A forced NIGHT also sets day+1 to NIGHT_OFF.
func phase2Night(st *state) {
	for day := 1; day <= st.days; day++ {
		required := st.settings.NightRequired
		if calendar.IsSunday(st.year, st.month, day) {
			required = st.settings.SundayNightRequired
		}

		for i := 0; i < required; i++ {
			id, usesPlusOne, ok := pickNightCandidate(st, day)
			if !ok {
				st.addCoverageWarning(fmt.Sprintf("day %d: no eligible staff available for the night shift", day))
				break
			}
			st.table.Set(id, day, shift.Night)
			if day+1 <= st.days {
				st.table.Set(id, day+1, shift.NightOff)
			}
			if usesPlusOne {
				st.budget.Consume(id)
			}
		}
	}
}

type nightScore struct {
	id         string
	usesPlusOne bool
	nightCount int
	workdays   int
}

func pickNightCandidate(st *state, day int) (id string, usesPlusOne bool, ok bool) {
	var scored []nightScore
	for _, s := range st.roster {
		if st.requested(s.ID, day) {
			continue
		}
		canOK, plusOne := constraint.CanAssignNight(st.table, s, day, st.year, st.month, st.settings.MaxConsecutive, st.budget)
		if !canOK {
			continue
		}
		scored = append(scored, nightScore{
			id:          s.ID,
			usesPlusOne: plusOne,
			nightCount:  schedule.CountShift(st.table, s.ID, shift.Night),
			workdays:    schedule.Workdays(st.table, s.ID),
		})
	}
	if len(scored) == 0 {
		return "", false, false
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].nightCount != scored[j].nightCount {
			return scored[i].nightCount < scored[j].nightCount
		}
		return scored[i].workdays < scored[j].workdays
	})

	tierEnd := 1
	for tierEnd < len(scored) &&
		scored[tierEnd].nightCount == scored[0].nightCount &&
		scored[tierEnd].workdays == scored[0].workdays {
		tierEnd++
	}
	tier := scored[:tierEnd]
	st.rng.Shuffle(len(tier), func(i, j int) { tier[i], tier[j] = tier[j], tier[i] })

	return tier[0].id, tier[0].usesPlusOne, true
}
