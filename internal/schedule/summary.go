package schedule

import (
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/shift"
)

// StaffSummary is a per-staff rollup of a finished table, used by the
// CLI/HTTP presentation layers; the core generator never reads it.
type StaffSummary struct {
	StaffID  string
	Name     string
	Early    int
	Late     int
	Night    int
	Overtime int
	Part     int
	Workdays int
	OffDays  int
	WorkGap  int
}

// Summarize computes a StaffSummary row for every staff in the table,
// in table iteration order.
func Summarize(t *Table, byID map[string]*roster.Staff) []StaffSummary {
	out := make([]StaffSummary, 0, len(t.StaffIDs()))
	for _, id := range t.StaffIDs() {
		s := byID[id]
		row := StaffSummary{
			StaffID:  id,
			Early:    CountShift(t, id, shift.Early),
			Late:     CountShift(t, id, shift.Late),
			Night:    CountShift(t, id, shift.Night),
			Overtime: CountShift(t, id, shift.Overtime),
			Part:     CountShift(t, id, shift.Part),
			Workdays: Workdays(t, id),
			OffDays:  OffDays(t, id),
		}
		if s != nil {
			row.Name = s.Name
			row.WorkGap = WorkGap(t, id, s)
		}
		out = append(out, row)
	}
	return out
}
