package constraint

import (
	"github.com/carefacility/shiftgen/internal/schedule"
	"github.com/carefacility/shiftgen/internal/shift"
)

// BackwardRun counts the maximal run of workday cells ending at
// day-1, walking backward until it hits Off, NightOff, or the start
// of the month. day itself is not inspected.
func BackwardRun(t *schedule.Table, id string, day int) int {
	n := 0
	for d := day - 1; d >= 1; d-- {
		if !shift.IsWorkday(t.Get(id, d)) {
			break
		}
		n++
	}
	return n
}

// ForwardRun counts the maximal run of workday cells starting at
// fromDay, walking forward until it hits Off, NightOff, or the end of
// the month.
func ForwardRun(t *schedule.Table, id string, fromDay int) int {
	n := 0
	for d := fromDay; d <= t.Days; d++ {
		if !shift.IsWorkday(t.Get(id, d)) {
			break
		}
		n++
	}
	return n
}
