package schedule

import (
	"github.com/carefacility/shiftgen/internal/calendar"
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/shift"
)

// CountShift returns the number of cells in id's row equal to t.
func CountShift(t *Table, id string, want shift.Type) int {
	n := 0
	for day := 1; day <= t.Days; day++ {
		if t.Get(id, day) == want {
			n++
		}
	}
	return n
}

// Workdays returns the number of cells in id's row that count as a
// workday (everything but Off and NightOff).
func Workdays(t *Table, id string) int {
	n := 0
	for day := 1; day <= t.Days; day++ {
		if shift.IsWorkday(t.Get(id, day)) {
			n++
		}
	}
	return n
}

// OffDays returns the number of Off cells in id's row. NightOff is
// rest but is not an off-day for quota purposes.
func OffDays(t *Table, id string) int {
	return CountShift(t, id, shift.Off)
}

// TargetWorkdays is the number of workdays a staff member should end
// the month with: total days minus their off-day target minus any
// NIGHT_OFF cells already forced onto their row by a NIGHT placement.
func TargetWorkdays(t *Table, id string, s *roster.Staff) int {
	return t.Days - s.MonthlyDaysOffTarget - CountShift(t, id, shift.NightOff)
}

// WorkGap is positive when a staff member still needs more workdays to
// reach their target, zero or negative once they have met or exceeded it.
func WorkGap(t *Table, id string, s *roster.Staff) int {
	return TargetWorkdays(t, id, s) - Workdays(t, id)
}

// weekBounds returns the inclusive [start, end] day range, clamped to
// the month, of the Monday-Sunday week containing day.
func weekBounds(t *Table, year, month, day int) (int, int) {
	dow := int(calendar.Weekday(year, month, day)) // 0=Sunday .. 6=Saturday
	// Days since the most recent Monday (ISO-like week start).
	sinceMonday := (dow + 6) % 7
	start := day - sinceMonday
	end := start + 6
	if start < 1 {
		start = 1
	}
	if end > t.Days {
		end = t.Days
	}
	return start, end
}

// WeekWorkdays returns the number of workdays id has within the
// Monday-Sunday week containing day, used to enforce a part-timer's
// per-week cap.
func WeekWorkdays(t *Table, id string, year, month, day int) int {
	start, end := weekBounds(t, year, month, day)
	n := 0
	for d := start; d <= end; d++ {
		if shift.IsWorkday(t.Get(id, d)) {
			n++
		}
	}
	return n
}
