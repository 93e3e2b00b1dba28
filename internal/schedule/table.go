// Package schedule owns the AssignmentTable — the single in-memory
// grid every generator phase mutates and the validator reads — plus
// the coverage-counting and fairness arithmetic built on top of it.
package schedule

import (
	"github.com/carefacility/shiftgen/internal/calendar"
	"github.com/carefacility/shiftgen/internal/shift"
)

// Table is a (staff id -> day -> shift) grid for one calendar month.
// Days are 1-based; every cell starts at shift.Off (the type's zero
// value) and every phase leaves every cell populated by the time the
// caller receives the table back.
type Table struct {
	Year, Month, Days int

	order []string
	cells map[string][]shift.Type
}

// New allocates a blank table (phase 0 of the pipeline): every cell is
// shift.Off, and staffIDs fixes the iteration order every later phase
// uses, namely roster input order.
func New(year, month int, staffIDs []string) *Table {
	days := calendar.DaysInMonth(year, month)
	order := append([]string{}, staffIDs...)
	cells := make(map[string][]shift.Type, len(order))
	for _, id := range order {
		cells[id] = make([]shift.Type, days)
	}
	return &Table{Year: year, Month: month, Days: days, order: order, cells: cells}
}

// StaffIDs returns the staff iteration order fixed at construction.
func (t *Table) StaffIDs() []string { return t.order }

// Get returns the shift assigned to id on the given 1-based day. Out
// of range days return shift.Off defensively rather than panicking,
// since callers routinely probe day+1/day+2 at month boundaries.
func (t *Table) Get(id string, day int) shift.Type {
	row, ok := t.cells[id]
	if !ok || day < 1 || day > t.Days {
		return shift.Off
	}
	return row[day-1]
}

// Set assigns v to (id, day). Out-of-range days are silently ignored,
// matching Get's boundary-probing contract.
func (t *Table) Set(id string, day int, v shift.Type) {
	row, ok := t.cells[id]
	if !ok || day < 1 || day > t.Days {
		return
	}
	row[day-1] = v
}

// Row returns a copy of id's full-month row, used by the ad-hoc edit
// probe so it can mutate a cell without touching the live table.
func (t *Table) Row(id string) []shift.Type {
	row, ok := t.cells[id]
	if !ok {
		return nil
	}
	out := make([]shift.Type, len(row))
	copy(out, row)
	return out
}
