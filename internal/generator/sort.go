package generator

import (
	"sort"

	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

// candidate bundles a staff record with whether placing them today
// would spend their one-day consecutive-run overrun allowance, so the
// caller knows to consume it only once the placement is committed.
type candidate struct {
	staff   *roster.Staff
	plusOne bool
}

func (st *state) shuffleCandidates(cands []candidate) {
	st.rng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})
}

// sortSoft implements §4.5: shuffle for a fair tie-break, then a
// stable sort that puts positive work-gap staff ahead of everyone
// else, larger gap first.
func (st *state) sortSoft(cands []candidate) {
	st.shuffleCandidates(cands)
	gap := func(s *roster.Staff) int { return schedule.WorkGap(st.table, s.ID, s) }
	sort.SliceStable(cands, func(i, j int) bool {
		gi, gj := gap(cands[i].staff), gap(cands[j].staff)
		pi, pj := gi > 0, gj > 0
		if pi != pj {
			return pi
		}
		return gi > gj
	})
}

// sortSoftThenBalance is sortSoft with a secondary tie-break on the
// count of a chosen shift type already on the staff's row — balance_early
// and balance_late from §4.5.
func (st *state) sortSoftThenBalance(cands []candidate, tieBreakType shift.Type) {
	st.shuffleCandidates(cands)
	gap := func(s *roster.Staff) int { return schedule.WorkGap(st.table, s.ID, s) }
	count := func(s *roster.Staff) int { return schedule.CountShift(st.table, s.ID, tieBreakType) }
	sort.SliceStable(cands, func(i, j int) bool {
		gi, gj := gap(cands[i].staff), gap(cands[j].staff)
		pi, pj := gi > 0, gj > 0
		if pi != pj {
			return pi
		}
		if gi != gj {
			return gi > gj
		}
		return count(cands[i].staff) < count(cands[j].staff)
	})
}

const overtimeMonthlyCap = 6

// sortForOvertime implements §4.5: drop anyone already at the 6/month
// overtime cap, shuffle, then stable sort by ascending current
// overtime count and descending work gap.
func (st *state) sortForOvertime(cands []candidate) []candidate {
	filtered := make([]candidate, 0, len(cands))
	for _, c := range cands {
		if schedule.CountShift(st.table, c.staff.ID, shift.Overtime) < overtimeMonthlyCap {
			filtered = append(filtered, c)
		}
	}
	st.shuffleCandidates(filtered)
	otCount := func(s *roster.Staff) int { return schedule.CountShift(st.table, s.ID, shift.Overtime) }
	gap := func(s *roster.Staff) int { return schedule.WorkGap(st.table, s.ID, s) }
	sort.SliceStable(filtered, func(i, j int) bool {
		oi, oj := otCount(filtered[i].staff), otCount(filtered[j].staff)
		if oi != oj {
			return oi < oj
		}
		return gap(filtered[i].staff) > gap(filtered[j].staff)
	})
	return filtered
}

// sortForOvertimeUpgrade is sortForOvertime but ignores the 5-shift
// "target" some call sites apply before calling it — the cap enforced
// here is always the hard monthly 6, per §4.6 step 5.
func (st *state) sortForOvertimeUpgrade(cands []candidate) []candidate {
	return st.sortForOvertime(cands)
}
