package generator

import (
	"fmt"

	"github.com/carefacility/shiftgen/internal/schedule"
)

// phase6OffDayWarnings is §4.6 Phase 6: warn about every staff member
// who finished the month below their off-day target. Finishing above
// target is permitted and never warned about.
func phase6OffDayWarnings(st *state) {
	for _, s := range st.roster {
		off := schedule.OffDays(st.table, s.ID)
		if off < s.MonthlyDaysOffTarget {
			st.addWarning(fmt.Sprintf("%s: %d off days, below target %d", s.ID, off, s.MonthlyDaysOffTarget))
		}
	}
}
