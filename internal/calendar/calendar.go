// Package calendar provides the month-shape primitives the rest of the
// scheduler builds on: day counts, day-of-week lookup, and the two
// day-of-week predicates the generator and validator branch on.
package calendar

import "time"

// DaysInMonth returns the number of days in the given 1-based month of year.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday returns the day-of-week for the given 1-based (year, month, day).
func Weekday(year, month, day int) time.Weekday {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
}

// IsSunday reports whether (year, month, day) falls on a Sunday.
func IsSunday(year, month, day int) bool {
	return Weekday(year, month, day) == time.Sunday
}

// IsFriSatSun reports whether (year, month, day) falls on a Friday,
// Saturday, or Sunday — the window a weekday-only night worker may
// never be scheduled on.
func IsFriSatSun(year, month, day int) bool {
	switch Weekday(year, month, day) {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
