package schedule

import (
	"github.com/carefacility/shiftgen/internal/roster"
	"github.com/carefacility/shiftgen/internal/shift"
)

// Checkpoint names the three fixed instants coverage is checked at.
type Checkpoint int

const (
	Morning Checkpoint = iota
	Noon
	Evening
)

func (c Checkpoint) String() string {
	switch c {
	case Morning:
		return "morning"
	case Noon:
		return "noon"
	case Evening:
		return "evening"
	default:
		return "unknown"
	}
}

// Minute returns the fixed minute-of-day a checkpoint is evaluated at.
func (c Checkpoint) Minute() int {
	switch c {
	case Morning:
		return 420
	case Noon:
		return 600
	case Evening:
		return 1065
	default:
		return 0
	}
}

// Checkpoints lists the three checkpoints in evaluation order.
var Checkpoints = []Checkpoint{Morning, Noon, Evening}

// RequiredFloor returns the head-count floor for a checkpoint. Weekday
// floors and the Sunday evening floor are always 4; Sunday morning and
// noon drop to 3 while the monthly Sunday-relaxation budget still has
// slots left (relaxationLeft is true).
func RequiredFloor(c Checkpoint, sunday bool, relaxationLeft bool) int {
	if sunday && c != Evening && relaxationLeft {
		return 3
	}
	return 4
}

// CountAt returns the number of staff present at the given day/minute,
// the single source of truth every phase, warning, and summary uses.
func CountAt(t *Table, day, minute int, byID map[string]*roster.Staff) int {
	count := 0
	for _, id := range t.StaffIDs() {
		s := byID[id]
		startMin, endMin := 0, 0
		if s != nil {
			startMin, endMin = s.StartMinute(), s.EndMinute()
		}
		if shift.PresentAt(t.Get(id, day), minute, startMin, endMin) {
			count++
		}
	}
	return count
}

// CountAtCheckpoint is CountAt evaluated at a named checkpoint.
func CountAtCheckpoint(t *Table, day int, c Checkpoint, byID map[string]*roster.Staff) int {
	return CountAt(t, day, c.Minute(), byID)
}
